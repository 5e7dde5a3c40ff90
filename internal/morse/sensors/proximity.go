package sensors

import "github.com/toyz/morsedoc/pkg/component"

// Proximity detects tagged objects around the robot
type Proximity struct {
	component.SensorBase

	Range float64
	Track string
}

func NewProximity() *Proximity {
	return &Proximity{Range: 100.0, Track: "Robot_Tag"}
}

// ShortDescription implements component.Described
func (p *Proximity) ShortDescription() string {
	return "Distance sensor to detect nearby objects."
}

// Doc implements component.Documented
func (p *Proximity) Doc() string {
	return `
    This sensor can be used to determine which other objects are within a
    certain radius of the sensor. It performs its test based only on
    distance.

    The type of tracked objects can be specified using the **Track**
    property.
    `
}

// DataFields implements component.DataFieldExporter
func (p *Proximity) DataFields() []component.DataField {
	return []component.DataField{
		component.Field("near_objects", map[string]float64{}, "dict",
			"A list of the tracked objects located within the given radius. The keys of the dictionary are the object names, and the values are the distances (in meters) from the sensor."),
	}
}

// Properties implements component.PropertyExporter
func (p *Proximity) Properties() []component.Property {
	return []component.Property{
		component.Param("Range", 100.0, "float", "The distance, in meters beyond which this sensor is unable to locate other robots."),
		component.Param("Track", "Robot_Tag", "string", "The type of tracked objects. This type is looked for as game property of scene objects."),
	}
}

// Services implements component.ServiceExporter
func (p *Proximity) Services() []component.Service {
	return []component.Service{
		component.Sync("set_range", p.SetRange, `
        The service takes a float range as input and sets the sensor range
        to this value.

        :param range: the new detection range, in meters
        `),
		component.Sync("set_tracked_tag", p.SetTrackedTag, `
        The service takes a string as input and sets the tracked tag to
        this value.

        :param tag: the new tracked tag
        `),
	}
}

// SetRange changes the detection radius
func (p *Proximity) SetRange(r float64) {
	p.Range = r
}

// SetTrackedTag changes the tracked game property
func (p *Proximity) SetTrackedTag(tag string) {
	p.Track = tag
}
