package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the identity module.
type Metrics struct {
	ProfilesCreated prometheus.Counter
	Results         *prometheus.CounterVec
}

// New creates a Metrics instance with all identity module metrics registered.
func New() *Metrics {
	return &Metrics{
		ProfilesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "verigate_identity_profiles_created_total",
			Help: "Applicant profiles created",
		}),

		Results: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "verigate_identity_results_total",
			Help: "Finalized identity verifications by result",
		}, []string{"result"}),
	}
}

// RecordProfileCreated records one profile creation.
func (m *Metrics) RecordProfileCreated() {
	if m != nil {
		m.ProfilesCreated.Inc()
	}
}

// RecordResult records one finalized verification result.
func (m *Metrics) RecordResult(result string) {
	if m != nil {
		m.Results.WithLabelValues(result).Inc()
	}
}
