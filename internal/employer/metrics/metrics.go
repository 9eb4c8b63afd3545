package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the employer verification module.
type Metrics struct {
	// Per-gate verdicts
	GateVerdicts *prometheus.CounterVec

	// Final pipeline outcomes
	PipelineOutcome *prometheus.CounterVec

	// Full verification latency including the bank feed fetch
	VerifyLatency prometheus.Histogram

	// CEID cache effectiveness
	CEIDCache *prometheus.CounterVec
}

// New creates a Metrics instance with all employer module metrics registered.
func New() *Metrics {
	return &Metrics{
		GateVerdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "verigate_employer_gate_verdicts_total",
			Help: "Gate verdicts by gate and verdict",
		}, []string{"gate", "verdict"}),

		PipelineOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "verigate_employer_pipeline_outcomes_total",
			Help: "Final pipeline outcomes by status and failed gate",
		}, []string{"status", "failed_gate"}),

		VerifyLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "verigate_employer_verify_duration_seconds",
			Help:    "Duration of a full employer verification including evidence gathering",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		CEIDCache: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "verigate_employer_ceid_cache_total",
			Help: "CEID cache lookups by result (hit or miss)",
		}, []string{"result"}),
	}
}

// RecordGateVerdict records one gate's verdict.
func (m *Metrics) RecordGateVerdict(gate, verdict string) {
	if m != nil {
		m.GateVerdicts.WithLabelValues(gate, verdict).Inc()
	}
}

// RecordOutcome records a final pipeline outcome.
func (m *Metrics) RecordOutcome(status, failedGate string) {
	if m != nil {
		m.PipelineOutcome.WithLabelValues(status, failedGate).Inc()
	}
}

// ObserveVerifyLatency records the total verification duration.
func (m *Metrics) ObserveVerifyLatency(d time.Duration) {
	if m != nil {
		m.VerifyLatency.Observe(d.Seconds())
	}
}

// RecordCEIDCacheHit records a CEID cache hit.
func (m *Metrics) RecordCEIDCacheHit() {
	if m != nil {
		m.CEIDCache.WithLabelValues("hit").Inc()
	}
}

// RecordCEIDCacheMiss records a CEID cache miss.
func (m *Metrics) RecordCEIDCacheMiss() {
	if m != nil {
		m.CEIDCache.WithLabelValues("miss").Inc()
	}
}
