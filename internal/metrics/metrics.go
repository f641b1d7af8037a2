package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for upstream lookups and searches.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Upstream call latency by category
	LookupLatency *prometheus.HistogramVec

	// Upstream call outcomes by category and outcome (ok, http, empty, transport)
	LookupOutcome *prometheus.CounterVec

	// Searches rejected before reaching the network, by category and reason
	ValidationFailures *prometheus.CounterVec

	// Chained lookups by outcome
	ChainedLookups *prometheus.CounterVec
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LookupLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "infofinder_lookup_duration_seconds",
			Help:    "Duration of upstream lookup requests by category",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"category"}),

		LookupOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "infofinder_lookup_outcomes_total",
			Help: "Total upstream lookups by category and outcome",
		}, []string{"category", "outcome"}),

		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "infofinder_validation_failures_total",
			Help: "Total searches rejected by input validation",
		}, []string{"category", "reason"}),

		ChainedLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "infofinder_chained_lookups_total",
			Help: "Total chained lookups by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveLookup records one upstream call.
func (m *Metrics) ObserveLookup(category, outcome string, d time.Duration) {
	if m != nil {
		m.LookupLatency.WithLabelValues(category).Observe(d.Seconds())
		m.LookupOutcome.WithLabelValues(category, outcome).Inc()
	}
}

// IncrementValidationFailure records a rejected search.
func (m *Metrics) IncrementValidationFailure(category, reason string) {
	if m != nil {
		m.ValidationFailures.WithLabelValues(category, reason).Inc()
	}
}

// IncrementChained records a chained lookup outcome.
func (m *Metrics) IncrementChained(outcome string) {
	if m != nil {
		m.ChainedLookups.WithLabelValues(outcome).Inc()
	}
}
