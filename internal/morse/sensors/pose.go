package sensors

import "github.com/toyz/morsedoc/pkg/component"

// Pose reports the position and orientation of the sensor
type Pose struct {
	component.SensorBase
}

func NewPose() *Pose {
	return &Pose{}
}

// ShortDescription implements component.Described
func (p *Pose) ShortDescription() string {
	return "Pose sensor"
}

// Doc implements component.Documented
func (p *Pose) Doc() string {
	return `
    This sensor returns the full pose of the sensor, i.e. both
    translation and rotation with respect to the Blender world frame.
    `
}

// DataFields implements component.DataFieldExporter
func (p *Pose) DataFields() []component.DataField {
	return []component.DataField{
		component.Field("x", 0.0, "float", "x coordinate of the sensor, in world coordinate, in meter"),
		component.Field("y", 0.0, "float", "y coordinate of the sensor, in world coordinate, in meter"),
		component.Field("z", 0.0, "float", "z coordinate of the sensor, in world coordinate, in meter"),
		component.Field("yaw", 0.0, "float", "rotation around the Z axis of the sensor, in radian"),
		component.Field("pitch", 0.0, "float", "rotation around the Y axis of the sensor, in radian"),
		component.Field("roll", 0.0, "float", "rotation around the X axis of the sensor, in radian"),
	}
}
