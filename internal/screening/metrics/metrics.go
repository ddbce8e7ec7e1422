package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the screening module.
type Metrics struct {
	// Signal fetch latencies by detector
	SignalLatency *prometheus.HistogramVec

	// Signals that fired, by detector
	SignalsFired *prometheus.CounterVec

	// Verdicts by severity and pass/fail
	Outcomes *prometheus.CounterVec

	// Overall screening latency including all signal fetches
	EvaluateLatency prometheus.Histogram
}

// New creates a new Metrics instance with all screening metrics registered.
func New() *Metrics {
	return &Metrics{
		SignalLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "permitgate_screening_signal_duration_seconds",
			Help:    "Duration of signal fetches by detector",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"detector"}),

		SignalsFired: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "permitgate_screening_signals_fired_total",
			Help: "Total signals that contributed to a verdict, by detector",
		}, []string{"detector"}),

		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "permitgate_screening_outcomes_total",
			Help: "Total screening verdicts by severity and pass result",
		}, []string{"severity", "passed"}),

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "permitgate_screening_evaluate_duration_seconds",
			Help:    "Duration of full screening evaluation including signal fetches",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// ObserveSignalLatency records the duration of one detector's fetch.
func (m *Metrics) ObserveSignalLatency(detector string, d time.Duration) {
	if m != nil {
		m.SignalLatency.WithLabelValues(detector).Observe(d.Seconds())
	}
}

// IncSignalFired records a detector that contributed to the verdict.
func (m *Metrics) IncSignalFired(detector string) {
	if m != nil {
		m.SignalsFired.WithLabelValues(detector).Inc()
	}
}

// IncOutcome records a verdict.
func (m *Metrics) IncOutcome(severity string, passed bool) {
	if m != nil {
		label := "false"
		if passed {
			label = "true"
		}
		m.Outcomes.WithLabelValues(severity, label).Inc()
	}
}

// ObserveEvaluateLatency records the total screening duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
