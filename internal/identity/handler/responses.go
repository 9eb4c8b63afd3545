package handler

import (
	"time"

	"verigate/internal/identity"
)

// PersonalInfoResponse is the HTTP response for POST /identity/personal-info.
type PersonalInfoResponse struct {
	ProfileID string `json:"profile_id"`
}

// SuccessResponse acknowledges an operation with no payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// DocumentTypeResponse is the HTTP response for POST /identity/document/type.
type DocumentTypeResponse struct {
	DocumentID string `json:"document_id"`
}

// DocumentUploadResponse is the HTTP response for POST /identity/document/upload.
type DocumentUploadResponse struct {
	FileID string `json:"file_id"`
	Side   string `json:"side"`
}

// DocumentStatusResponse is the HTTP response for GET /identity/document/status.
type DocumentStatusResponse struct {
	Status     string  `json:"status"`
	Confidence float64 `json:"confidence"`
}

// BiometricResponse is the HTTP response for POST /identity/biometric/verify.
type BiometricResponse struct {
	Success       bool    `json:"success"`
	LivenessScore float64 `json:"liveness_score"`
	MatchScore    float64 `json:"match_score"`
}

// StatusResponse is the HTTP response for GET /identity/status.
type StatusResponse struct {
	Result      string    `json:"result"`
	ReferenceID string    `json:"reference_id"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// FromFinalizeResult converts a domain FinalizeResult to an HTTP response.
func FromFinalizeResult(result *identity.FinalizeResult) *StatusResponse {
	return &StatusResponse{
		Result:      string(result.Result),
		ReferenceID: result.ReferenceID,
		EvaluatedAt: result.EvaluatedAt,
	}
}
