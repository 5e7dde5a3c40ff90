// Package sensors holds the sensor components of the simulator.
package sensors

import "github.com/toyz/morsedoc/pkg/component"

var modules = []struct {
	module string
	build  func() component.Component
}{
	{"morse.sensors.battery", func() component.Component { return NewBattery() }},
	{"morse.sensors.gps", func() component.Component { return NewGps() }},
	{"morse.sensors.gyroscope", func() component.Component { return NewGyroscope() }},
	{"morse.sensors.odometry", func() component.Component { return NewOdometry() }},
	{"morse.sensors.pose", func() component.Component { return NewPose() }},
	{"morse.sensors.proximity", func() component.Component { return NewProximity() }},
}

// Register adds every sensor module to reg
func Register(reg *component.Registry) error {
	for _, m := range modules {
		if err := reg.Register(m.module, m.build()); err != nil {
			return err
		}
	}
	return nil
}
