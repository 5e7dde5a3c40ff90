package sensors

import "github.com/toyz/morsedoc/pkg/component"

// Gyroscope reports the orientation angles of the robot
type Gyroscope struct {
	component.SensorBase

	Yaw, Pitch, Roll float64
}

func NewGyroscope() *Gyroscope {
	return &Gyroscope{}
}

// ShortDescription implements component.Described
func (g *Gyroscope) ShortDescription() string {
	return "Gyroscope sensor"
}

// Doc implements component.Documented
func (g *Gyroscope) Doc() string {
	return `
    This sensor emulates a Gyroscope, providing the yaw, pitch and roll
    angles of the sensor object with respect to the Blender world
    reference axes.

    Angles are given in radians.
    `
}

// DataFields implements component.DataFieldExporter
func (g *Gyroscope) DataFields() []component.DataField {
	return []component.DataField{
		component.Field("yaw", 0.0, "float", "rotation around the Z axis of the sensor, in radian"),
		component.Field("pitch", 0.0, "float", "rotation around the Y axis of the sensor, in radian"),
		component.Field("roll", 0.0, "float", "rotation around the X axis of the sensor, in radian"),
	}
}
