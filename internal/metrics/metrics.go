package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Check names used as the "check" label.
const (
	CheckPosthumous   = "posthumous"
	CheckRegistration = "registration"
	CheckDeed         = "deed"
)

// Metrics provides observability for fraud and compliance checks.
type Metrics struct {
	// Verdicts by check and outcome (fraud/clear, void/valid, invalid/warning/valid)
	Verdicts *prometheus.CounterVec

	// Evaluation latency by check
	CheckDuration *prometheus.HistogramVec

	// Checks rejected before producing a verdict
	CheckErrors *prometheus.CounterVec
}

// New creates a Metrics instance registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Verdicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "deedcheck_verdicts_total",
			Help: "Total check verdicts by check and verdict",
		}, []string{"check", "verdict"}),

		CheckDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "deedcheck_check_duration_seconds",
			Help:    "Duration of a single check evaluation",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		}, []string{"check"}),

		CheckErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "deedcheck_check_errors_total",
			Help: "Total checks that failed with an input error",
		}, []string{"check"}),
	}
}

// IncrementVerdict records a verdict for a check.
func (m *Metrics) IncrementVerdict(check, verdict string) {
	if m != nil {
		m.Verdicts.WithLabelValues(check, verdict).Inc()
	}
}

// IncrementError records a check that returned an error.
func (m *Metrics) IncrementError(check string) {
	if m != nil {
		m.CheckErrors.WithLabelValues(check).Inc()
	}
}

// ObserveDuration records how long a check took.
func (m *Metrics) ObserveDuration(check string, d time.Duration) {
	if m != nil {
		m.CheckDuration.WithLabelValues(check).Observe(d.Seconds())
	}
}
