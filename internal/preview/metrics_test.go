package preview

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountRequestsAndComponents(t *testing.T) {
	server, _ := newTestServer(t)
	metrics := server.Metrics()

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Components.WithLabelValues("actuator")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Components.WithLabelValues("sensor")))

	for _, path := range []string{"/api/components", "/api/components", "/sensors/gps.rst"} {
		server.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "/api/components", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "static", "200")))

	server.SetRecords(testRecords()[1:])
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.Components.WithLabelValues("actuator")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CatalogReloads))
}

func TestMetrics_Endpoint(t *testing.T) {
	server, _ := newTestServer(t)
	server.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/components", nil))

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `morsedoc_preview_requests_total{method="GET",route="/api/components",status="200"} 1`)
	assert.Contains(t, w.Body.String(), `morsedoc_components{category="sensor"} 1`)
}
