// Package monitoring exposes prometheus metrics for the hub.
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all prometheus collectors.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Error handling metrics
	ErrorsHandled *prometheus.CounterVec

	// Container metrics
	ComponentsCreated *prometheus.CounterVec
	FactoryLookups    *prometheus.CounterVec

	// Document metrics
	DocumentsStored prometheus.Gauge
	PreviewRenders  prometheus.Counter

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time

	registry *prometheus.Registry
}

// NewMetrics creates a metrics collector backed by its own registry so
// multiple instances (tests, embedded use) never collide.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(registry)

	m := &Metrics{
		startTime: time.Now(),
		registry:  registry,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hub_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hub_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		ErrorsHandled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hub_errors_handled_total",
				Help: "Total number of errors routed through the error handler",
			},
			[]string{"category"},
		),

		ComponentsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hub_components_created_total",
				Help: "Total number of components built via factories",
			},
			[]string{"component_type", "factory_id"},
		),
		FactoryLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hub_factory_lookups_total",
				Help: "Factory lookups by outcome",
			},
			[]string{"outcome"},
		),

		DocumentsStored: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hub_documents_stored",
				Help: "Number of documents currently stored",
			},
		),
		PreviewRenders: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "hub_preview_renders_total",
				Help: "Total number of preview renders",
			},
		),

		WSConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hub_ws_connections",
				Help: "Number of active WebSocket connections",
			},
		),
		WSMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hub_ws_messages_total",
				Help: "Total number of WebSocket messages",
			},
			[]string{"direction", "type"},
		),

		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hub_uptime_seconds",
				Help: "Backend uptime in seconds",
			},
		),
	}

	go m.updateUptime()

	return m
}

func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// Handler serves the metrics registry over HTTP.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records an HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordError counts a handled error by category. Implements the error
// handler's Recorder.
func (m *Metrics) RecordError(category string) {
	m.ErrorsHandled.WithLabelValues(category).Inc()
}

// RecordComponentCreated counts a successful factory instantiation.
func (m *Metrics) RecordComponentCreated(componentType, factoryID string) {
	m.ComponentsCreated.WithLabelValues(componentType, factoryID).Inc()
}

// RecordFactoryLookup counts a lookup by outcome ("hit" or "miss").
func (m *Metrics) RecordFactoryLookup(outcome string) {
	m.FactoryLookups.WithLabelValues(outcome).Inc()
}

// SetDocumentsStored sets the stored-document gauge.
func (m *Metrics) SetDocumentsStored(count int) {
	m.DocumentsStored.Set(float64(count))
}

// IncPreviewRenders counts a preview render.
func (m *Metrics) IncPreviewRenders() {
	m.PreviewRenders.Inc()
}

// RecordWSMessage records a WebSocket message.
func (m *Metrics) RecordWSMessage(direction, msgType string) {
	m.WSMessages.WithLabelValues(direction, msgType).Inc()
}

// IncWSConnections increments WebSocket connections.
func (m *Metrics) IncWSConnections() {
	m.WSConnections.Inc()
}

// DecWSConnections decrements WebSocket connections.
func (m *Metrics) DecWSConnections() {
	m.WSConnections.Dec()
}
