package sensors

import "github.com/toyz/morsedoc/pkg/component"

// Battery status values
const (
	BatteryCharged     = "Charged"
	BatteryDischarging = "Discharging"
	BatteryCharging    = "Charging"
)

// Battery simulates the charge of the robot battery
type Battery struct {
	component.SensorBase

	Charge          float64
	Status          string
	DischargingRate float64
}

func NewBattery() *Battery {
	return &Battery{Charge: 100.0, Status: BatteryCharged, DischargingRate: 0.05}
}

// ShortDescription implements component.Described
func (b *Battery) ShortDescription() string {
	return "Battery sensor"
}

// Doc implements component.Documented
func (b *Battery) Doc() string {
	return `
    This sensor emulates the remaining charge of a battery on the robot.
    It is meant to be used only as an informative measure, to be taken in
    consideration by the planning algorithms. It does not prevent the robot
    from working.

    The charge of the battery decreases with time, using a predefined
    **Discharge rate** specified as a property of the Blender object.
    `
}

// DataFields implements component.DataFieldExporter
func (b *Battery) DataFields() []component.DataField {
	return []component.DataField{
		component.Field("charge", 100.0, "float", "Initial battery charge in percentage"),
		component.Field("status", BatteryCharged, "string", "Charging, Discharging or Charged"),
	}
}

// Properties implements component.PropertyExporter
func (b *Battery) Properties() []component.Property {
	return []component.Property{
		component.Param("DischargingRate", 0.05, "float", "Battery discharging rate, in percent per seconds"),
	}
}

// Drain consumes charge for elapsed seconds and updates the status
func (b *Battery) Drain(seconds float64) {
	b.Charge -= b.DischargingRate * seconds
	if b.Charge < 0 {
		b.Charge = 0
	}
	b.Status = BatteryDischarging
}
