// Package component is the authoring API for simulator components.
//
// A component is a struct that embeds exactly one of ActuatorBase or
// SensorBase and optionally implements the capability interfaces below.
// Component modules register their components into a Registry; the
// documentation generator reads the registry back.
package component

// Category is one of the two component families
type Category string

const (
	CategoryActuator Category = "actuator"
	CategorySensor   Category = "sensor"
)

// Categories lists the known categories in generation order
var Categories = []Category{CategoryActuator, CategorySensor}

// Dir returns the output directory name for the category
func (c Category) Dir() string {
	return string(c) + "s"
}

// Title returns the human readable plural, e.g. "Sensors"
func (c Category) Title() string {
	switch c {
	case CategoryActuator:
		return "Actuators"
	case CategorySensor:
		return "Sensors"
	default:
		return string(c)
	}
}

// Component is implemented by every registrable component through the
// embedded base type.
type Component interface {
	Category() Category
}

// ActuatorBase marks a component as an actuator
type ActuatorBase struct{}

// Category implements Component
func (ActuatorBase) Category() Category { return CategoryActuator }

// SensorBase marks a component as a sensor
type SensorBase struct{}

// Category implements Component
func (SensorBase) Category() Category { return CategorySensor }

// Named overrides the Go type name used as display name
type Named interface {
	DisplayName() string
}

// Described provides the one-line summary shown in bold on the page
type Described interface {
	ShortDescription() string
}

// Documented provides the full doc string of the component.
//
// Doc strings start with an empty line followed by indented text and may
// use ":param name:" and ":return:" field markers.
type Documented interface {
	Doc() string
}

// DataFieldExporter lists the values a component exports at runtime
type DataFieldExporter interface {
	DataFields() []DataField
}

// PropertyExporter lists the configuration parameters of a component
type PropertyExporter interface {
	Properties() []Property
}

// ServiceExporter lists the remotely callable services of a component
type ServiceExporter interface {
	Services() []Service
}

// DataField is a named value exported by a component
type DataField struct {
	Name    string `validate:"required"`
	Initial any
	Type    string
	Doc     string
}

// Property is a named configuration parameter
type Property struct {
	Name    string `validate:"required"`
	Default any
	Type    string
	Doc     string
}

// Service describes a remotely callable method
type Service struct {
	Name    string `validate:"required"`
	Handler any
	Async   bool
	Doc     string
}

// Field declares an exported data field
func Field(name string, initial any, typ, doc string) DataField {
	return DataField{Name: name, Initial: initial, Type: typ, Doc: doc}
}

// Param declares a configuration property
func Param(name string, def any, typ, doc string) Property {
	return Property{Name: name, Default: def, Type: typ, Doc: doc}
}

// Sync declares a blocking service
func Sync(name string, handler any, doc string) Service {
	return Service{Name: name, Handler: handler, Doc: doc}
}

// Async declares a non-blocking service
func Async(name string, handler any, doc string) Service {
	return Service{Name: name, Handler: handler, Async: true, Doc: doc}
}
