// Package audit captures key verification actions as events on a Kafka
// topic. Events are emitted from services, keyed by session so one
// applicant's trail stays ordered.
package audit

import "time"

// Action names the audited operation.
type Action string

const (
	ActionSessionStarted   Action = "session_started"
	ActionEmployerVerified Action = "employer_verified"
	ActionIdentityVerified Action = "identity_verified"
	ActionIncomeEstimated  Action = "income_estimated"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	SessionID string    `json:"session_id,omitempty"`
	// Subject identifies what was evaluated: a CEID for employer
	// verification, a profile ID for identity checks.
	Subject   string `json:"subject,omitempty"`
	Decision  string `json:"decision,omitempty"`
	Reason    string `json:"reason,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
