package identity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verigate/internal/identity/models"
	"verigate/internal/identity/providers"
	id "verigate/pkg/domain"
	dErrors "verigate/pkg/domain-errors"
	"verigate/pkg/platform/audit"
	"verigate/pkg/requestcontext"
)

type recordingPublisher struct {
	events []audit.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event audit.Event) error {
	p.events = append(p.events, event)
	return nil
}

type failingBiometrics struct{}

func (failingBiometrics) Verify(context.Context, string) (providers.BiometricAssessment, error) {
	return providers.BiometricAssessment{}, errors.New("matcher offline")
}

func newTestService(publisher audit.Publisher) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(
		NewInMemoryStore(),
		providers.NewSimulatedDocumentProcessor(0),
		providers.NewSimulatedBiometricVerifier(0),
		providers.NewSimulatedOTPProvider(0),
		publisher,
		logger,
		nil,
	)
}

func sessionContext() (context.Context, id.SessionID) {
	sessionID := id.NewSessionID()
	return requestcontext.WithSessionID(context.Background(), sessionID), sessionID
}

func personalInfo() models.PersonalInfo {
	return models.PersonalInfo{
		FullLegalName: "Jordan Wells",
		DateOfBirth:   "1990-04-12",
		StreetAddress: "12 Maple Ave",
		City:          "Toronto",
		Province:      "ON",
		PostalCode:    "M4E 1A1",
		PhoneNumber:   "+14165550100",
		Email:         "jordan@example.com",
	}
}

// runToBiometric walks a profile through every step before finalization.
func runToBiometric(t *testing.T, svc *Service, ctx context.Context) *models.Profile {
	t.Helper()

	profile, err := svc.SubmitPersonalInfo(ctx, personalInfo())
	require.NoError(t, err)

	require.NoError(t, svc.SendOTP(ctx, profile.ID))
	require.NoError(t, svc.VerifyOTP(ctx, profile.ID, "123456"))

	_, err = svc.SelectDocument(ctx, profile.ID, models.DocumentPassport)
	require.NoError(t, err)

	_, err = svc.UploadDocument(ctx, profile.ID, models.SideFront)
	require.NoError(t, err)

	_, err = svc.SubmitBiometric(ctx, profile.ID, "capture-1")
	require.NoError(t, err)

	return profile
}

func TestServiceFullFlow(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := newTestService(publisher)
	ctx, sessionID := sessionContext()
	evaluatedAt := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	ctx = requestcontext.WithTime(ctx, evaluatedAt)

	profile := runToBiometric(t, svc, ctx)

	got, err := svc.Finalize(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ResultVerified, got.Result)
	assert.Equal(t, "REF-1733047200000", got.ReferenceID)
	assert.Equal(t, evaluatedAt, got.EvaluatedAt)

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, audit.ActionIdentityVerified, event.Action)
	assert.Equal(t, sessionID.String(), event.SessionID)
	assert.Equal(t, profile.ID.String(), event.Subject)
	assert.Equal(t, "verified", event.Decision)
}

func TestServiceStepUpWithoutPhoneVerification(t *testing.T) {
	svc := newTestService(&recordingPublisher{})
	ctx, _ := sessionContext()

	profile, err := svc.SubmitPersonalInfo(ctx, personalInfo())
	require.NoError(t, err)

	_, err = svc.SelectDocument(ctx, profile.ID, models.DocumentPassport)
	require.NoError(t, err)
	_, err = svc.UploadDocument(ctx, profile.ID, models.SideFront)
	require.NoError(t, err)
	_, err = svc.SubmitBiometric(ctx, profile.ID, "capture-1")
	require.NoError(t, err)

	got, err := svc.Finalize(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ResultStepUp, got.Result)
}

func TestServiceDocumentRules(t *testing.T) {
	svc := newTestService(&recordingPublisher{})
	ctx, _ := sessionContext()

	profile, err := svc.SubmitPersonalInfo(ctx, personalInfo())
	require.NoError(t, err)

	t.Run("upload before type selection is rejected", func(t *testing.T) {
		_, err := svc.UploadDocument(ctx, profile.ID, models.SideFront)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("passports have no back side", func(t *testing.T) {
		_, err := svc.SelectDocument(ctx, profile.ID, models.DocumentPassport)
		require.NoError(t, err)

		_, err = svc.UploadDocument(ctx, profile.ID, models.SideBack)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("two-sided documents need both captures", func(t *testing.T) {
		_, err := svc.SelectDocument(ctx, profile.ID, models.DocumentDriversLicense)
		require.NoError(t, err)
		_, err = svc.UploadDocument(ctx, profile.ID, models.SideFront)
		require.NoError(t, err)

		_, err = svc.ProcessDocument(ctx, profile.ID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

		_, err = svc.UploadDocument(ctx, profile.ID, models.SideBack)
		require.NoError(t, err)

		assessment, err := svc.ProcessDocument(ctx, profile.ID)
		require.NoError(t, err)
		assert.InDelta(t, 0.97, assessment.Confidence, 0.001)
	})

	t.Run("reselecting a type clears captures", func(t *testing.T) {
		_, err := svc.SelectDocument(ctx, profile.ID, models.DocumentPassport)
		require.NoError(t, err)

		_, err = svc.ProcessDocument(ctx, profile.ID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func TestServiceOwnership(t *testing.T) {
	svc := newTestService(&recordingPublisher{})
	ownerCtx, _ := sessionContext()

	profile, err := svc.SubmitPersonalInfo(ownerCtx, personalInfo())
	require.NoError(t, err)

	t.Run("other sessions see not found", func(t *testing.T) {
		otherCtx, _ := sessionContext()
		err := svc.SendOTP(otherCtx, profile.ID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("anonymous callers are rejected", func(t *testing.T) {
		err := svc.SendOTP(context.Background(), profile.ID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func TestServiceFinalizeRequiresEvidence(t *testing.T) {
	svc := newTestService(&recordingPublisher{})
	ctx, _ := sessionContext()

	profile, err := svc.SubmitPersonalInfo(ctx, personalInfo())
	require.NoError(t, err)
	_, err = svc.SelectDocument(ctx, profile.ID, models.DocumentPassport)
	require.NoError(t, err)
	_, err = svc.UploadDocument(ctx, profile.ID, models.SideFront)
	require.NoError(t, err)

	_, err = svc.Finalize(ctx, profile.ID)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestServiceFinalizeProviderFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(
		NewInMemoryStore(),
		providers.NewSimulatedDocumentProcessor(0),
		failingBiometrics{},
		providers.NewSimulatedOTPProvider(0),
		&recordingPublisher{},
		logger,
		nil,
	)
	ctx, _ := sessionContext()

	profile, err := svc.SubmitPersonalInfo(ctx, personalInfo())
	require.NoError(t, err)
	_, err = svc.SelectDocument(ctx, profile.ID, models.DocumentPassport)
	require.NoError(t, err)
	_, err = svc.UploadDocument(ctx, profile.ID, models.SideFront)
	require.NoError(t, err)
	_, err = svc.SubmitBiometric(ctx, profile.ID, "capture-1")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
}
