package actuators

import (
	"math"

	"github.com/toyz/morsedoc/pkg/component"
)

// Waypoint status values
const (
	StatusArrived = "Arrived"
	StatusTransit = "Transit"
	StatusStopped = "Stop"
)

// Waypoint moves a robot towards a target position
type Waypoint struct {
	component.ActuatorBase

	X, Y, Z   float64
	Tolerance float64
	Speed     float64
	Status    string
	stopped   bool
}

// NewWaypoint creates a waypoint actuator at rest
func NewWaypoint() *Waypoint {
	return &Waypoint{Tolerance: 0.5, Speed: 1.0, Status: StatusArrived}
}

// ShortDescription implements component.Described
func (w *Waypoint) ShortDescription() string {
	return "Waypoint motion controller"
}

// Doc implements component.Documented
func (w *Waypoint) Doc() string {
	return `
    This actuator reads the coordinates of a destination point, and moves
    the robot towards the given point, with the robot restricted to moving
    only forward, turning around its Z axis, and possibly going up and
    down.

    The movement is driven by a simple proportional controller; the robot
    slows down when it reaches the tolerance radius around the target.
    `
}

// DataFields implements component.DataFieldExporter
func (w *Waypoint) DataFields() []component.DataField {
	return []component.DataField{
		component.Field("x", 0.0, "float", "X coordinate of the destination, in world frame, in meter"),
		component.Field("y", 0.0, "float", "Y coordinate of the destination, in world frame, in meter"),
		component.Field("z", 0.0, "float", "Z coordinate of the destination, in world frame, in meter"),
		component.Field("tolerance", 0.5, "float", "Tolerance, in meter, to consider the destination as reached."),
		component.Field("speed", 1.0, "float", "If the robot is moving, this is the current speed, in m/s"),
	}
}

// Properties implements component.PropertyExporter
func (w *Waypoint) Properties() []component.Property {
	return []component.Property{
		component.Param("Target", "", "string", "name of a blender object in the scene. When specified, this object will be placed at the coordinates given to the actuator, to indicate the expected destination of the robot."),
		component.Param("ObstacleAvoidance", true, "bool", "if true (default), will activate obstacle avoidance if the radars are present"),
		component.Param("FreeZ", false, "bool", "if false (default), the robot is only controlled on 'X' and heading; if true, 'Z' is also controlled"),
		component.Param("AngleTolerance", 0.1745, "float", "Tolerance in radian regarding the final heading of the robot"),
	}
}

// Services implements component.ServiceExporter
func (w *Waypoint) Services() []component.Service {
	return []component.Service{
		component.Async("goto", w.Goto, `
        Go to a new destination.

        The service returns when the destination is reached within
        the provided tolerance bounds.

        :param x: x coordinate of the destination, in world frame, in meter
        :param y: y coordinate of the destination, in world frame, in meter
        :param z: z coordinate of the destination, in world frame, in meter
        :param tolerance: tolerance, in meter, to consider the destination as reached.
        :param speed: (default: 1.0) speed to use, in m/s.
        `),
		component.Sync("stop", w.Stop, `
        Stop the robot

        The service returns immediately.
        `),
		component.Sync("resume", w.Resume, `
        Restart the robot towards its last destination.
        `),
		component.Sync("get_status", w.GetStatus, `
        Return the current status (Transit or Arrived)

        :return: the current status
        `),
	}
}

// Goto sets a new destination
func (w *Waypoint) Goto(x, y, z, tolerance, speed float64) {
	w.X, w.Y, w.Z = x, y, z
	w.Tolerance = tolerance
	w.Speed = speed
	w.stopped = false
	w.Status = StatusTransit
}

// Stop halts the robot and keeps the destination
func (w *Waypoint) Stop() {
	w.stopped = true
	w.Status = StatusStopped
}

// Resume continues towards the last destination
func (w *Waypoint) Resume() {
	w.stopped = false
	w.Status = StatusTransit
}

// GetStatus returns the current status
func (w *Waypoint) GetStatus() string {
	return w.Status
}

// Step updates the status given the robot position
func (w *Waypoint) Step(x, y, z float64) {
	if w.stopped {
		return
	}
	if math.Hypot(math.Hypot(w.X-x, w.Y-y), w.Z-z) <= w.Tolerance {
		w.Status = StatusArrived
	}
}
