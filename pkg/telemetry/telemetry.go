// Package telemetry exposes Prometheus metrics for the detection engine.
// Metrics are registered once on a dedicated registry so tests can build
// isolated instances without collision panics.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"net/http"
)

// Metrics holds the engine's instrumentation.
type Metrics struct {
	registry *prometheus.Registry

	Evaluations   *prometheus.CounterVec
	RateLimited   prometheus.Counter
	AuditDropped  prometheus.Counter
	EvalDurations prometheus.Histogram
}

// New builds a metrics set on its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: reg,
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "promptward",
			Name:      "evaluations_total",
			Help:      "Evaluations by resulting action.",
		}, []string{"action"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "promptward",
			Name:      "rate_limited_total",
			Help:      "Evaluations rejected by the rate limiter.",
		}),
		AuditDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "promptward",
			Name:      "audit_dropped_total",
			Help:      "Audit events dropped due to queue overflow.",
		}),
		EvalDurations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "promptward",
			Name:      "evaluation_duration_seconds",
			Help:      "Latency of one full pipeline evaluation.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	reg.MustRegister(m.Evaluations, m.RateLimited, m.AuditDropped, m.EvalDurations)
	return m
}

// ObserveEvaluation records one completed evaluation.
func (m *Metrics) ObserveEvaluation(action string, elapsed time.Duration) {
	m.Evaluations.WithLabelValues(action).Inc()
	m.EvalDurations.Observe(elapsed.Seconds())
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
