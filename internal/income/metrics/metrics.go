package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the income module.
type Metrics struct {
	Estimates *prometheus.CounterVec
}

// New creates a Metrics instance with all income module metrics registered.
func New() *Metrics {
	return &Metrics{
		Estimates: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "verigate_income_estimates_total",
			Help: "Income estimates by declared-amount consistency",
		}, []string{"consistency"}),
	}
}

// RecordEstimate records one estimate by its consistency outcome.
func (m *Metrics) RecordEstimate(consistency string) {
	if m != nil {
		m.Estimates.WithLabelValues(consistency).Inc()
	}
}
