// Package actuators holds the actuator components of the simulator.
package actuators

import "github.com/toyz/morsedoc/pkg/component"

// modules maps each dotted module name to the component it defines
var modules = []struct {
	module string
	build  func() component.Component
}{
	{"morse.actuators.destination", func() component.Component { return NewDestination() }},
	{"morse.actuators.gripper", func() component.Component { return NewGripper() }},
	{"morse.actuators.teleport", func() component.Component { return NewTeleport() }},
	{"morse.actuators.v_omega", func() component.Component { return NewMotionVW() }},
	{"morse.actuators.waypoint", func() component.Component { return NewWaypoint() }},
}

// Register adds every actuator module to reg
func Register(reg *component.Registry) error {
	for _, m := range modules {
		if err := reg.Register(m.module, m.build()); err != nil {
			return err
		}
	}
	return nil
}
