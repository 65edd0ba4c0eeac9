// Package metrics defines the Prometheus collectors of the feature engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "featuredag"

// Metrics contains the engine-level collectors.
type Metrics struct {
	StepsExecuted     *prometheus.CounterVec
	CacheHits         *prometheus.CounterVec
	StepFailures      *prometheus.CounterVec
	InputsProcessed   *prometheus.CounterVec
	EvaluationSeconds *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates the collectors and registers them on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		StepsExecuted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "steps",
				Name:      "executed_total",
				Help:      "Number of feature callables invoked",
			},
			[]string{"library"},
		),
		CacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "steps",
				Name:      "cache_hits_total",
				Help:      "Number of steps skipped because their value was already stored",
			},
			[]string{"library"},
		),
		StepFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "steps",
				Name:      "failures_total",
				Help:      "Number of feature callables that returned an error or stored nothing",
			},
			[]string{"library"},
		),
		InputsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "inputs",
				Name:      "processed_total",
				Help:      "Number of inputs processed, by outcome",
			},
			[]string{"status"},
		),
		EvaluationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "evaluation",
				Name:      "duration_seconds",
				Help:      "Time spent evaluating one requested feature",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"feature"},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.StepsExecuted,
		m.CacheHits,
		m.StepFailures,
		m.InputsProcessed,
		m.EvaluationSeconds,
	)
	return m
}

// Registry returns the Prometheus registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveEvaluation records how long evaluating feature took.
func (m *Metrics) ObserveEvaluation(feature string, started time.Time) {
	m.EvaluationSeconds.WithLabelValues(feature).Observe(time.Since(started).Seconds())
}
