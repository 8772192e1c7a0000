package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation outcomes used as the status label.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds the Prometheus collectors of one bigcalc process. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	operations    *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	activeBatches prometheus.Gauge
	handler       http.Handler
}

// NewMetrics creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bigcalc_operations_total",
			Help: "Number of evaluated operations by operation and outcome.",
		}, []string{"op", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bigcalc_operation_duration_seconds",
			Help:    "Latency of evaluated operations.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"op"}),
		activeBatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bigcalc_active_batches",
			Help: "Number of vector batches currently being verified.",
		}),
	}
	reg.MustRegister(
		m.operations,
		m.duration,
		m.activeBatches,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	return m
}

// ObserveOperation records one evaluation of op that took d and failed when
// err is non-nil.
func (m *Metrics) ObserveOperation(op string, d time.Duration, err error) {
	if m == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.operations.WithLabelValues(op, status).Inc()
	m.duration.WithLabelValues(op).Observe(d.Seconds())
}

// BatchStarted increments the active batch gauge.
func (m *Metrics) BatchStarted() {
	if m != nil {
		m.activeBatches.Inc()
	}
}

// BatchFinished decrements the active batch gauge.
func (m *Metrics) BatchFinished() {
	if m != nil {
		m.activeBatches.Dec()
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler returns the HTTP handler serving the metrics in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler { return m.handler }

// WritePrometheus writes the current metrics to w.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
