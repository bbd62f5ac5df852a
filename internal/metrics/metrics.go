// Package metrics exposes Prometheus collectors for the engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	reg *prometheus.Registry

	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	transitions *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	exports     *prometheus.CounterVec
}

// New registers the engine collectors on a fresh registry, alongside the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		reg: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobportal",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "jobportal",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobportal",
			Name:      "session_transitions_total",
			Help:      "Successful session transitions by event type.",
		}, []string{"event"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobportal",
			Name:      "application_rejections_total",
			Help:      "Rejected application submissions by reason.",
		}, []string{"reason"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobportal",
			Name:      "exports_total",
			Help:      "Summary exports by format and result.",
		}, []string{"format", "result"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration, m.transitions, m.rejections, m.exports,
	)
	return m
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(route string, code int, d time.Duration) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(route).Observe(d.Seconds())
}

// Notify counts a session transition; it satisfies session.Notifier.
func (m *Metrics) Notify(typ string, _ map[string]any) {
	m.transitions.WithLabelValues(typ).Inc()
}

func (m *Metrics) Rejected(reason string) {
	m.rejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) Exported(format string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.exports.WithLabelValues(format, result).Inc()
}
