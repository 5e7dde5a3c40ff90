package actuators

import "github.com/toyz/morsedoc/pkg/component"

// Gripper grabs and releases small objects in front of the robot
type Gripper struct {
	component.ActuatorBase

	Grab    bool
	holding string
}

// NewGripper creates an empty gripper
func NewGripper() *Gripper {
	return &Gripper{}
}

// ShortDescription implements component.Described
func (g *Gripper) ShortDescription() string {
	return "Instruct the robot to move towards a given target object."
}

// Doc implements component.Documented
func (g *Gripper) Doc() string {
	return `
    This actuator is a simple grasping device that can pick up objects
    located inside a cone in front of it. Objects need to carry the
    'Object' game property to be considered graspable.
    `
}

// DataFields implements component.DataFieldExporter
func (g *Gripper) DataFields() []component.DataField {
	return []component.DataField{
		component.Field("grab", false, "bool", "Currently not used"),
	}
}

// Properties implements component.PropertyExporter
func (g *Gripper) Properties() []component.Property {
	return []component.Property{
		component.Param("Angle", 60.0, "float", "aperture angle of the radar capable to detecting the graspable objects (in degree)"),
		component.Param("Distance", 0.5, "float", "detection distance in meter. Objects further than this distance are not graspable"),
	}
}

// Services implements component.ServiceExporter
func (g *Gripper) Services() []component.Service {
	return []component.Service{
		component.Sync("grab", g.GrabObject, `
        Grab an object which is in front of the gripper.

        :param name: name of the object to grab
        :return: true if an object was grabbed
        `),
		component.Sync("release", g.ReleaseObject, `
        Free the grabbed object.

        :return: true if an object was released
        `),
	}
}

// GrabObject picks up the named object when the gripper is empty
func (g *Gripper) GrabObject(name string) bool {
	if g.holding != "" || name == "" {
		return false
	}
	g.holding = name
	return true
}

// ReleaseObject drops whatever the gripper holds
func (g *Gripper) ReleaseObject() bool {
	if g.holding == "" {
		return false
	}
	g.holding = ""
	return true
}
