package sensors

import "github.com/toyz/morsedoc/pkg/component"

// Odometry reports the displacement of the robot since the last sample
type Odometry struct {
	component.SensorBase

	Level string
}

func NewOdometry() *Odometry {
	return &Odometry{Level: "integrated"}
}

// ShortDescription implements component.Described
func (o *Odometry) ShortDescription() string {
	return "Odometry sensor"
}

// Doc implements component.Documented
func (o *Odometry) Doc() string {
	return `
    This sensor produces relative displacement with respect to the position
    and rotation in the previous Blender tick. It can compute too the
    position of the robot with respect to its original position, and the
    associated speed.

    The angles for yaw, pitch and roll are given in radians.

    .. note::

        This sensor always provides perfect data.
    `
}

// DataFields implements component.DataFieldExporter
func (o *Odometry) DataFields() []component.DataField {
	return []component.DataField{
		component.Field("dS", 0.0, "float", "curvilinear distance since last tick"),
		component.Field("x", 0.0, "float", "x coordinate of the sensor"),
		component.Field("y", 0.0, "float", "y coordinate of the sensor"),
		component.Field("z", 0.0, "float", "z coordinate of the sensor"),
		component.Field("yaw", 0.0, "float", "rotation angle with respect to the Z axis"),
		component.Field("vx", 0.0, "float", "linear velocity related to the X coordinate of the sensor"),
		component.Field("wz", 0.0, "float", "angular velocity related to the Z coordinate of the sensor"),
	}
}

// Properties implements component.PropertyExporter
func (o *Odometry) Properties() []component.Property {
	return []component.Property{
		component.Param("level", "integrated", "string",
			"Kind of odometry to compute: 'raw', 'differential' or 'integrated'"),
	}
}
