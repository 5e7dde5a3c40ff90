// Package morse lists the compiled-in component modules.
package morse

import (
	"github.com/toyz/morsedoc/internal/morse/actuators"
	"github.com/toyz/morsedoc/internal/morse/sensors"
	"github.com/toyz/morsedoc/pkg/component"
)

// Module registers the components of one component package
type Module struct {
	Name     string
	Register func(*component.Registry) error
}

// Modules is the fixed, ordered list of component modules
var Modules = []Module{
	{Name: "morse.actuators", Register: actuators.Register},
	{Name: "morse.sensors", Register: sensors.Register},
}

// NewRegistry builds a registry holding every component of mods
func NewRegistry(mods ...Module) (*component.Registry, error) {
	reg := component.NewRegistry()
	for _, m := range mods {
		if err := m.Register(reg); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
