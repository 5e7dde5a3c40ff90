package discovery

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/morsedoc/internal/utils"
	"github.com/toyz/morsedoc/pkg/component"
)

type camera struct{ component.SensorBase }

func (camera) ShortDescription() string { return "A camera" }
func (camera) Doc() string              { return "\n    Takes pictures.\n    " }
func (camera) DataFields() []component.DataField {
	return []component.DataField{component.Field("image", nil, "buffer", "")}
}
func (camera) Properties() []component.Property {
	return []component.Property{component.Param("cam_width", 256, "int", "image width")}
}
func (c camera) Services() []component.Service {
	return []component.Service{component.Async("capture", c.capture, "")}
}
func (camera) capture(n int) {}

type arm struct{ component.ActuatorBase }

func (arm) DisplayName() string { return "Kuka arm" }

type bare struct{ component.SensorBase }

func newRegistry(t *testing.T) *component.Registry {
	t.Helper()
	reg := component.NewRegistry()
	require.NoError(t, reg.Register("morse.sensors.video", camera{}))
	require.NoError(t, reg.Register("morse.sensors.accel", bare{}))
	require.NoError(t, reg.Register("morse.actuators.kuka", arm{}))
	return reg
}

func TestDiscover_OrdersActuatorsFirstByModule(t *testing.T) {
	records := NewDiscoverer(nil).Discover(newRegistry(t))
	require.Len(t, records, 3)

	assert.Equal(t, "morse.actuators.kuka", records[0].Module)
	assert.Equal(t, component.CategoryActuator, records[0].Category)
	assert.Equal(t, "morse.sensors.accel", records[1].Module)
	assert.Equal(t, "morse.sensors.video", records[2].Module)
}

func TestDiscover_ExtractsMetadata(t *testing.T) {
	records := NewDiscoverer(nil).Discover(newRegistry(t))

	video := records[2]
	assert.Equal(t, "camera", video.Name)
	assert.Equal(t, "A camera", video.ShortDescription)
	assert.True(t, video.HasShortDescription())
	assert.Equal(t, "\n    Takes pictures.\n    ", video.Doc)
	assert.Equal(t, "video", video.ModuleName())

	require.Len(t, video.DataFields, 1)
	assert.Equal(t, "image", video.DataFields[0].Name)
	assert.Nil(t, video.DataFields[0].Value)
	assert.Equal(t, "buffer", video.DataFields[0].Type)

	require.Len(t, video.Properties, 1)
	assert.Equal(t, 256, video.Properties[0].Value)
	assert.Equal(t, "image width", video.Properties[0].Doc)

	require.Len(t, video.Services, 1)
	assert.Equal(t, "capture", video.Services[0].Name)
	assert.True(t, video.Services[0].Async)
	assert.NotNil(t, video.Services[0].Handler)
}

func TestDiscover_MissingCapabilitiesStayEmpty(t *testing.T) {
	records := NewDiscoverer(nil).Discover(newRegistry(t))

	kuka := records[0]
	assert.Equal(t, "Kuka arm", kuka.Name)
	assert.False(t, kuka.HasShortDescription())
	assert.Empty(t, kuka.Doc)
	assert.Empty(t, kuka.DataFields)
	assert.Empty(t, kuka.Properties)
	assert.Empty(t, kuka.Services)
}

func TestDiscover_EmptyRegistry(t *testing.T) {
	assert.Empty(t, NewDiscoverer(nil).Discover(component.NewRegistry()))
}

func TestDiscover_Narration(t *testing.T) {
	var out bytes.Buffer
	NewDiscoverer(utils.NewBufferedDiagnostics(utils.DiagnosticInfo, &out)).Discover(newRegistry(t))

	log := out.String()
	assert.Contains(t, log, "[Actuators]\n- Found actuator Kuka arm (morse.actuators.kuka)\n")
	assert.Contains(t, log, "[Sensors]\n- Found sensor accel (morse.sensors.accel)\n")
	assert.Contains(t, log, "- Found sensor camera (morse.sensors.video)\n"+
		"  - 1 data fields found in camera\n"+
		"  - 1 properties found in camera\n"+
		"  - service capture found in camera\n")
	assert.Less(t, strings.Index(log, "accel"), strings.Index(log, "video"))
}
