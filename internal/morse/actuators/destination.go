package actuators

import "github.com/toyz/morsedoc/pkg/component"

// Destination pushes a robot straight towards a point
type Destination struct {
	component.ActuatorBase

	X, Y, Z float64
}

// NewDestination creates a destination actuator
func NewDestination() *Destination {
	return &Destination{}
}

// ShortDescription implements component.Described
func (d *Destination) ShortDescription() string {
	return "Destination motion controller"
}

// Doc implements component.Documented
func (d *Destination) Doc() string {
	return `
    This actuator reads the coordinates of a destination point, and moves
    the robot in a straight line towards the given point, without turning.
    It provides a very simplistic movement, and can be used for testing or
    for robots with holonomic movement.
    `
}

// DataFields implements component.DataFieldExporter
func (d *Destination) DataFields() []component.DataField {
	return []component.DataField{
		component.Field("x", 0.0, "float", "Destination X coordinate"),
		component.Field("y", 0.0, "float", "Destination Y coordinate"),
		component.Field("z", 0.0, "float", "Destination Z coordinate"),
	}
}

// Properties implements component.PropertyExporter
func (d *Destination) Properties() []component.Property {
	return []component.Property{
		component.Param("Speed", 5.0, "float", "movement speed, in m/s"),
		component.Param("Tolerance", 0.5, "float", "tolerance in meters when arriving at the destination"),
	}
}
