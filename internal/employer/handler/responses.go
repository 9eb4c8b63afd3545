package handler

import (
	"time"

	"verigate/internal/employer"
)

// VerifyResponse is the HTTP response for POST /employer/verify.
type VerifyResponse struct {
	VerificationID string        `json:"verification_id"`
	CEID           string        `json:"ceid"`
	Gates          GatesResponse `json:"gates"`
	FinalStatus    string        `json:"final_status"`
	FailedGate     string        `json:"failed_gate,omitempty"`
	EvaluatedAt    time.Time     `json:"evaluated_at"`
}

// GatesResponse carries the per-gate verdicts.
type GatesResponse struct {
	Existence string `json:"existence"`
	Linkage   string `json:"linkage"`
	Sanity    string `json:"sanity"`
}

// FromResult converts a domain VerifyResult to an HTTP response.
func FromResult(result *employer.VerifyResult) *VerifyResponse {
	return &VerifyResponse{
		VerificationID: result.VerificationID.String(),
		CEID:           result.Result.CEID,
		Gates: GatesResponse{
			Existence: string(result.Result.Existence),
			Linkage:   string(result.Result.Linkage),
			Sanity:    string(result.Result.Sanity),
		},
		FinalStatus: string(result.Result.FinalStatus),
		FailedGate:  string(result.Result.FailedGate),
		EvaluatedAt: result.EvaluatedAt,
	}
}
