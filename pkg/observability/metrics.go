package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/avezina/kinetic/pkg/domain"
)

// Metrics collects resolution outcomes and resolved durations.
type Metrics struct {
	resolutions *prometheus.CounterVec
	durations   prometheus.Histogram
	commits     prometheus.Counter
}

// NewMetrics creates and registers the collectors on reg. Pass
// prometheus.DefaultRegisterer for the process-global registry, or a private
// registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kinetic",
			Name:      "resolutions_total",
			Help:      "Property mutations resolved, by outcome.",
		}, []string{"outcome"}),
		durations: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kinetic",
			Name:      "resolved_duration_seconds",
			Help:      "Durations of resolved animations.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}),
		commits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "kinetic",
			Name:      "commits_total",
			Help:      "Transaction commits flushed.",
		}),
	}
}

// ObserveResolve records one resolution outcome.
func (m *Metrics) ObserveResolve(ev *domain.ResolveEvent) {
	m.resolutions.WithLabelValues(string(ev.Outcome)).Inc()
	if ev.Outcome == domain.OutcomeResolved && ev.Animation != nil {
		m.durations.Observe(ev.Animation.Duration)
	}
}

// ObserveCommit records one flushed commit.
func (m *Metrics) ObserveCommit(*domain.CommitEvent) {
	m.commits.Inc()
}
