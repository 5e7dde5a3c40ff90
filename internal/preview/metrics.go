package preview

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics of the preview server
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Components      *prometheus.GaugeVec
	CatalogReloads  prometheus.Counter

	registry *prometheus.Registry
}

// NewMetrics creates the metrics and registers them on a private registry
func NewMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "morsedoc_preview_requests_total",
				Help: "Total number of preview HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "morsedoc_preview_request_duration_seconds",
				Help:    "Preview HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Components: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "morsedoc_components",
				Help: "Number of documented components per category",
			},
			[]string{"category"},
		),
		CatalogReloads: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "morsedoc_catalog_reloads_total",
				Help: "Number of times the catalog was replaced after regeneration",
			},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(m.RequestsTotal, m.RequestDuration, m.Components, m.CatalogReloads)
	return m
}

// Handler exposes the metrics in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRequest records one served request
func (m *Metrics) RecordRequest(method, route string, status int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
