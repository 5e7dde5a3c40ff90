package sensors

import "github.com/toyz/morsedoc/pkg/component"

// Gps reports the world position of the sensor
type Gps struct {
	component.SensorBase
}

func NewGps() *Gps {
	return &Gps{}
}

// DisplayName implements component.Named
func (g *Gps) DisplayName() string { return "GPS" }

// ShortDescription implements component.Described
func (g *Gps) ShortDescription() string {
	return "A GPS sensor that returns coordinates."
}

// Doc implements component.Documented
func (g *Gps) Doc() string {
	return `
    This sensor emulates a GPS, providing the exact coordinates in the
    Blender scene. The coordinates provided by the GPS are with respect to
    the origin of the Blender coordinate reference.
    `
}

// DataFields implements component.DataFieldExporter
func (g *Gps) DataFields() []component.DataField {
	return []component.DataField{
		component.Field("x", 0.0, "float", "x coordinate of the sensor, in world coordinate, in meter"),
		component.Field("y", 0.0, "float", "y coordinate of the sensor, in world coordinate, in meter"),
		component.Field("z", 0.0, "float", "z coordinate of the sensor, in world coordinate, in meter"),
	}
}
