package actuators

import "github.com/toyz/morsedoc/pkg/component"

// Teleport moves a robot instantly to an absolute pose
type Teleport struct {
	component.ActuatorBase

	X, Y, Z          float64
	Yaw, Pitch, Roll float64
}

// NewTeleport creates a teleport actuator at the origin
func NewTeleport() *Teleport {
	return &Teleport{}
}

// ShortDescription implements component.Described
func (t *Teleport) ShortDescription() string {
	return "Motion controller which changes instantly robot pose (position and orientation)"
}

// Doc implements component.Documented
func (t *Teleport) Doc() string {
	return `
    This actuator teleports the robot to the absolute position and
    orientation with respect to the origin of the Blender scene. The
    position is given in meters and the orientation in radians.
    `
}

// DataFields implements component.DataFieldExporter
func (t *Teleport) DataFields() []component.DataField {
	return []component.DataField{
		component.Field("x", 0.0, "float", "X coordinate of the destination, in meter"),
		component.Field("y", 0.0, "float", "Y coordinate of the destination, in meter"),
		component.Field("z", 0.0, "float", "Z coordinate of the destination, in meter"),
		component.Field("yaw", 0.0, "float", "Rotation angle with respect to the Z axis, in radian"),
		component.Field("pitch", 0.0, "float", "Rotation angle with respect to the Y axis, in radian"),
		component.Field("roll", 0.0, "float", "Rotation angle with respect to the X axis, in radian"),
	}
}

// Services implements component.ServiceExporter
func (t *Teleport) Services() []component.Service {
	return []component.Service{
		component.Sync("translate", t.Translate, `
        Translate the actuator owner by the given (x,y,z) vector.

        This is a **relative** displacement.

        :param x: (default: 0.0) X translation, in meter
        :param y: (default: 0.0) Y translation, in meter
        :param z: (default: 0.0) Z translation, in meter
        `),
		component.Sync("rotate", t.Rotate, `
        Rotates the actuator owner by the given (roll,pitch,yaw).

        This is a **relative** rotation.

        :param roll: (default: 0.0) rotation around the X axis, in radian
        :param pitch: (default: 0.0) rotation around the Y axis, in radian
        :param yaw: (default: 0.0) rotation around the Z axis, in radian
        `),
	}
}

// Translate moves the target pose by a relative vector
func (t *Teleport) Translate(x, y, z float64) {
	t.X += x
	t.Y += y
	t.Z += z
}

// Rotate turns the target pose by relative angles
func (t *Teleport) Rotate(roll, pitch, yaw float64) {
	t.Roll += roll
	t.Pitch += pitch
	t.Yaw += yaw
}
