// Package providers holds the external KYC collaborators behind interfaces:
// document analysis, biometric matching, and phone OTP delivery. The
// simulated implementations return canned assessments after an artificial
// delay that honors context cancellation.
package providers

import (
	"context"

	"verigate/internal/identity/models"
)

// DocumentAssessment is a document processor's judgement of the captures.
type DocumentAssessment struct {
	Status     string
	Confidence float64
}

const (
	DocumentStatusSuccess = "success"
	DocumentStatusFailed  = "failed"
)

// DocumentProcessor extracts and scores an uploaded identity document.
type DocumentProcessor interface {
	Process(ctx context.Context, documentType models.DocumentType, frontFileID, backFileID string) (DocumentAssessment, error)
}

// BiometricAssessment scores a selfie capture against the document portrait.
type BiometricAssessment struct {
	LivenessScore float64
	MatchScore    float64
}

// BiometricVerifier runs liveness detection and face matching.
type BiometricVerifier interface {
	Verify(ctx context.Context, captureRef string) (BiometricAssessment, error)
}

// OTPProvider delivers and checks phone one-time passcodes.
type OTPProvider interface {
	Send(ctx context.Context, phoneNumber string) error
	Verify(ctx context.Context, phoneNumber, code string) error
}
