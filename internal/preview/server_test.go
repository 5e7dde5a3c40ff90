package preview

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/morsedoc/internal/models"
	"github.com/toyz/morsedoc/pkg/component"
)

func testRecords() []*models.ComponentRecord {
	return []*models.ComponentRecord{
		{
			Name: "Waypoint", Category: component.CategoryActuator, Module: "morse.actuators.waypoint",
			Services: []models.ServiceDoc{{Name: "goto", Async: true, Doc: "\n    Go.\n"}},
		},
		{
			Name: "GPS", Category: component.CategorySensor, Module: "morse.sensors.gps",
			DataFields: []models.FieldDoc{{Name: "x", Value: 0.0, Type: "float", Doc: "x"}},
		},
	}
}

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sensors"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sensors", "gps.rst"), []byte("GPS\n===\n"), 0o644))
	return NewServer(Config{Root: root, Mode: "test"}, testRecords(), nil), root
}

func TestListComponents(t *testing.T) {
	server, _ := newTestServer(t)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/components", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "Waypoint", body[0]["name"])
	assert.Equal(t, "actuator", body[0]["category"])
	assert.NotContains(t, body[0], "doc")
}

func TestListComponents_FilterByCategory(t *testing.T) {
	server, _ := newTestServer(t)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/components?category=sensor", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "GPS", body[0]["name"])
}

func TestGetComponent(t *testing.T) {
	server, _ := newTestServer(t)

	for _, module := range []string{"gps", "morse.sensors.gps"} {
		w := httptest.NewRecorder()
		server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/components/"+module, nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"module":"morse.sensors.gps"`)
	}

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/components/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStaticPages(t *testing.T) {
	server, _ := newTestServer(t)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sensors/gps.rst", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GPS\n===\n", w.Body.String())

	w = httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sensors/missing.rst", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetRecords(t *testing.T) {
	server, _ := newTestServer(t)
	server.SetRecords(nil)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/components", nil))
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	server, _ := newTestServer(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, listener) }()

	url := "http://" + listener.Addr().String() + "/api/components"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}
