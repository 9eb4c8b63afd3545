// Package identity implements the simulated KYC flow: personal info, phone
// OTP, document capture, biometrics, and a final verification decision.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"verigate/internal/identity/metrics"
	"verigate/internal/identity/models"
	"verigate/internal/identity/providers"
	id "verigate/pkg/domain"
	dErrors "verigate/pkg/domain-errors"
	"verigate/pkg/platform/audit"
	"verigate/pkg/platform/sentinel"
	"verigate/pkg/requestcontext"
)

// Evidence thresholds for the final decision. The simulated providers score
// well above these; real providers would not.
const (
	minDocumentConfidence = 0.9
	minLivenessScore      = 0.9
	minMatchScore         = 0.9
)

// Service drives one applicant's profile through the KYC steps.
type Service struct {
	store      Store
	documents  providers.DocumentProcessor
	biometrics providers.BiometricVerifier
	otp        providers.OTPProvider
	audit      audit.Publisher
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func NewService(
	store Store,
	documents providers.DocumentProcessor,
	biometrics providers.BiometricVerifier,
	otp providers.OTPProvider,
	auditPublisher audit.Publisher,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		store:      store,
		documents:  documents,
		biometrics: biometrics,
		otp:        otp,
		audit:      auditPublisher,
		logger:     logger,
		metrics:    m,
	}
}

// SubmitPersonalInfo starts a profile for the session. Resubmitting starts
// over with a fresh profile.
func (s *Service) SubmitPersonalInfo(ctx context.Context, info models.PersonalInfo) (*models.Profile, error) {
	sessionID := requestcontext.SessionID(ctx)
	if sessionID == (id.SessionID{}) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}

	now := requestcontext.Now(ctx)
	profile := &models.Profile{
		ID:        id.NewProfileID(),
		SessionID: sessionID,
		Personal:  info,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, profile); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "create profile", err)
	}
	s.metrics.RecordProfileCreated()
	return profile, nil
}

// SendOTP delivers a one-time passcode to the profile's phone number.
func (s *Service) SendOTP(ctx context.Context, profileID id.ProfileID) error {
	profile, err := s.loadOwned(ctx, profileID)
	if err != nil {
		return err
	}
	if err := s.otp.Send(ctx, profile.Personal.PhoneNumber); err != nil {
		return dErrors.Wrap(dErrors.CodeUnavailable, "otp delivery failed", err)
	}
	return nil
}

// VerifyOTP checks the passcode and marks the phone verified.
func (s *Service) VerifyOTP(ctx context.Context, profileID id.ProfileID, code string) error {
	profile, err := s.loadOwned(ctx, profileID)
	if err != nil {
		return err
	}
	if err := s.otp.Verify(ctx, profile.Personal.PhoneNumber, code); err != nil {
		return dErrors.Wrap(dErrors.CodeValidation, "otp verification failed", err)
	}

	profile.PhoneVerified = true
	return s.save(ctx, profile)
}

// SelectDocument records the document type the applicant will capture and
// issues a document ID for the upload step.
func (s *Service) SelectDocument(ctx context.Context, profileID id.ProfileID, documentType models.DocumentType) (string, error) {
	profile, err := s.loadOwned(ctx, profileID)
	if err != nil {
		return "", err
	}

	profile.DocumentType = documentType
	profile.DocumentID = uuid.NewString()
	// Switching document types invalidates prior captures.
	profile.FrontFileID = ""
	profile.BackFileID = ""

	if err := s.save(ctx, profile); err != nil {
		return "", err
	}
	return profile.DocumentID, nil
}

// UploadDocument registers one captured side and returns its file ID. The
// capture itself is simulated; only the reference is kept.
func (s *Service) UploadDocument(ctx context.Context, profileID id.ProfileID, side models.DocumentSide) (string, error) {
	profile, err := s.loadOwned(ctx, profileID)
	if err != nil {
		return "", err
	}
	if profile.DocumentType == "" {
		return "", dErrors.New(dErrors.CodeValidation, "document type must be selected before upload")
	}

	fileID := uuid.NewString()
	switch side {
	case models.SideFront:
		profile.FrontFileID = fileID
	case models.SideBack:
		if !profile.DocumentType.RequiresBack() {
			return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s has no back side", profile.DocumentType))
		}
		profile.BackFileID = fileID
	default:
		return "", dErrors.New(dErrors.CodeValidation, "side must be front or back")
	}

	if err := s.save(ctx, profile); err != nil {
		return "", err
	}
	return fileID, nil
}

// ProcessDocument runs the document processor over the uploaded captures.
func (s *Service) ProcessDocument(ctx context.Context, profileID id.ProfileID) (providers.DocumentAssessment, error) {
	profile, err := s.loadOwned(ctx, profileID)
	if err != nil {
		return providers.DocumentAssessment{}, err
	}
	if !profile.HasDocumentCaptures() {
		return providers.DocumentAssessment{}, dErrors.New(dErrors.CodeValidation, "document captures are incomplete")
	}

	assessment, err := s.documents.Process(ctx, profile.DocumentType, profile.FrontFileID, profile.BackFileID)
	if err != nil {
		return providers.DocumentAssessment{}, dErrors.Wrap(dErrors.CodeUnavailable, "document processing failed", err)
	}
	return assessment, nil
}

// SubmitBiometric registers a selfie capture and runs liveness and matching.
func (s *Service) SubmitBiometric(ctx context.Context, profileID id.ProfileID, captureRef string) (providers.BiometricAssessment, error) {
	profile, err := s.loadOwned(ctx, profileID)
	if err != nil {
		return providers.BiometricAssessment{}, err
	}

	profile.BiometricCaptureRef = captureRef
	if err := s.save(ctx, profile); err != nil {
		return providers.BiometricAssessment{}, err
	}

	assessment, err := s.biometrics.Verify(ctx, captureRef)
	if err != nil {
		return providers.BiometricAssessment{}, dErrors.Wrap(dErrors.CodeUnavailable, "biometric verification failed", err)
	}
	return assessment, nil
}

// FinalizeResult is the terminal outcome of the identity flow.
type FinalizeResult struct {
	Result      models.VerificationResult
	ReferenceID string
	EvaluatedAt time.Time
}

// Finalize gathers both provider assessments in parallel and renders the
// verification decision.
func (s *Service) Finalize(ctx context.Context, profileID id.ProfileID) (*FinalizeResult, error) {
	profile, err := s.loadOwned(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !profile.HasDocumentCaptures() {
		return nil, dErrors.New(dErrors.CodeValidation, "document captures are incomplete")
	}
	if profile.BiometricCaptureRef == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "biometric capture is required")
	}

	var (
		document  providers.DocumentAssessment
		biometric providers.BiometricAssessment
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		document, err = s.documents.Process(gCtx, profile.DocumentType, profile.FrontFileID, profile.BackFileID)
		return err
	})
	g.Go(func() error {
		var err error
		biometric, err = s.biometrics.Verify(gCtx, profile.BiometricCaptureRef)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "evidence gathering failed", err)
	}

	evaluatedAt := requestcontext.Now(ctx)
	result := classify(profile, document, biometric)

	profile.Result = result
	profile.ReferenceID = fmt.Sprintf("REF-%d", evaluatedAt.UnixMilli())
	if err := s.save(ctx, profile); err != nil {
		return nil, err
	}

	s.metrics.RecordResult(string(result))
	s.publishAudit(ctx, profile, result, evaluatedAt)

	return &FinalizeResult{
		Result:      result,
		ReferenceID: profile.ReferenceID,
		EvaluatedAt: evaluatedAt,
	}, nil
}

func classify(profile *models.Profile, document providers.DocumentAssessment, biometric providers.BiometricAssessment) models.VerificationResult {
	if document.Status != providers.DocumentStatusSuccess {
		return models.ResultFailed
	}
	if !profile.PhoneVerified {
		return models.ResultStepUp
	}
	if document.Confidence >= minDocumentConfidence &&
		biometric.LivenessScore >= minLivenessScore &&
		biometric.MatchScore >= minMatchScore {
		return models.ResultVerified
	}
	return models.ResultUnderReview
}

func (s *Service) loadOwned(ctx context.Context, profileID id.ProfileID) (*models.Profile, error) {
	sessionID := requestcontext.SessionID(ctx)
	if sessionID == (id.SessionID{}) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}

	profile, err := s.store.Get(ctx, profileID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "profile not found")
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "load profile", err)
	}
	// Other sessions' profiles look like they don't exist.
	if profile.SessionID != sessionID {
		return nil, dErrors.New(dErrors.CodeNotFound, "profile not found")
	}
	return profile, nil
}

func (s *Service) save(ctx context.Context, profile *models.Profile) error {
	profile.UpdatedAt = requestcontext.Now(ctx)
	if err := s.store.Update(ctx, profile); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "update profile", err)
	}
	return nil
}

func (s *Service) publishAudit(ctx context.Context, profile *models.Profile, result models.VerificationResult, evaluatedAt time.Time) {
	event := audit.Event{
		Timestamp: evaluatedAt,
		Action:    audit.ActionIdentityVerified,
		SessionID: profile.SessionID.String(),
		Subject:   profile.ID.String(),
		Decision:  string(result),
		RequestID: requestcontext.RequestID(ctx),
	}

	if err := s.audit.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "audit publish failed",
			"action", string(event.Action),
			"error", err,
		)
	}
}
