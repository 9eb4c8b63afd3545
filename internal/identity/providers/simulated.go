package providers

import (
	"context"
	"time"

	"verigate/internal/identity/models"
)

// Canned scores the simulated providers hand back. Real providers would
// derive these from the captures.
const (
	simulatedDocumentConfidence = 0.97
	simulatedLivenessScore      = 0.98
	simulatedMatchScore         = 0.95
)

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SimulatedDocumentProcessor accepts every document with high confidence.
type SimulatedDocumentProcessor struct {
	delay time.Duration
}

func NewSimulatedDocumentProcessor(delay time.Duration) *SimulatedDocumentProcessor {
	return &SimulatedDocumentProcessor{delay: delay}
}

func (p *SimulatedDocumentProcessor) Process(ctx context.Context, _ models.DocumentType, _, _ string) (DocumentAssessment, error) {
	if err := wait(ctx, p.delay); err != nil {
		return DocumentAssessment{}, err
	}
	return DocumentAssessment{
		Status:     DocumentStatusSuccess,
		Confidence: simulatedDocumentConfidence,
	}, nil
}

// SimulatedBiometricVerifier passes every capture.
type SimulatedBiometricVerifier struct {
	delay time.Duration
}

func NewSimulatedBiometricVerifier(delay time.Duration) *SimulatedBiometricVerifier {
	return &SimulatedBiometricVerifier{delay: delay}
}

func (v *SimulatedBiometricVerifier) Verify(ctx context.Context, _ string) (BiometricAssessment, error) {
	if err := wait(ctx, v.delay); err != nil {
		return BiometricAssessment{}, err
	}
	return BiometricAssessment{
		LivenessScore: simulatedLivenessScore,
		MatchScore:    simulatedMatchScore,
	}, nil
}

// SimulatedOTPProvider delivers nothing and accepts any code.
type SimulatedOTPProvider struct {
	delay time.Duration
}

func NewSimulatedOTPProvider(delay time.Duration) *SimulatedOTPProvider {
	return &SimulatedOTPProvider{delay: delay}
}

func (o *SimulatedOTPProvider) Send(ctx context.Context, _ string) error {
	return wait(ctx, o.delay)
}

func (o *SimulatedOTPProvider) Verify(ctx context.Context, _, _ string) error {
	return wait(ctx, o.delay)
}
