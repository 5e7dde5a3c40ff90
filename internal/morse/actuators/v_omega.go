package actuators

import "github.com/toyz/morsedoc/pkg/component"

// MotionVW drives a robot from a linear and an angular speed
type MotionVW struct {
	component.ActuatorBase

	V           float64
	W           float64
	ControlType string
}

// NewMotionVW creates a stopped actuator in velocity control
func NewMotionVW() *MotionVW {
	return &MotionVW{ControlType: "Velocity"}
}

// DisplayName implements component.Named
func (m *MotionVW) DisplayName() string { return "Linear and angular speed (V, W) actuator" }

// ShortDescription implements component.Described
func (m *MotionVW) ShortDescription() string {
	return "Motion controller using linear and angular speeds"
}

// Doc implements component.Documented
func (m *MotionVW) Doc() string {
	return `
    This actuator reads the values of forwards movement and rotation
    and applies them directly to the associated robot. This controller
    is best suited for a robot with two differential drive wheels.

    The values for linear and angular velocity are given in meters per
    second and radians per second.

    .. note::

        Positive angular velocity turns the robot to the left.
    `
}

// DataFields implements component.DataFieldExporter
func (m *MotionVW) DataFields() []component.DataField {
	return []component.DataField{
		component.Field("v", 0.0, "float", "linear velocity in x direction (forward movement) (m/s)"),
		component.Field("w", 0.0, "float", "angular velocity (rad/s)"),
	}
}

// Properties implements component.PropertyExporter
func (m *MotionVW) Properties() []component.Property {
	return []component.Property{
		component.Param("ControlType", "Velocity", "string",
			"Kind of control to move the parent robot, in ['Position', 'Velocity', 'Differential']"),
	}
}

// Services implements component.ServiceExporter
func (m *MotionVW) Services() []component.Service {
	return []component.Service{
		component.Sync("set_speed", m.SetSpeed, `
        Modifies v and w according to the parameters

        :param v: desired linear velocity (meter by second)
        :param w: desired angular velocity (radian by second)
        `),
		component.Sync("stop", m.Stop, `
        Stops the robot by setting both speeds to zero.
        `),
	}
}

// SetSpeed changes both velocities at once
func (m *MotionVW) SetSpeed(v, w float64) {
	m.V, m.W = v, w
}

// Stop zeroes both velocities
func (m *MotionVW) Stop() {
	m.SetSpeed(0, 0)
}
