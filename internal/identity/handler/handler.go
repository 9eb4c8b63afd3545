package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"verigate/internal/identity"
	"verigate/internal/identity/models"
	"verigate/internal/identity/providers"
	id "verigate/pkg/domain"
	dErrors "verigate/pkg/domain-errors"
	"verigate/pkg/platform/httputil"
	"verigate/pkg/requestcontext"
)

// Service defines the interface for identity operations.
type Service interface {
	SubmitPersonalInfo(ctx context.Context, info models.PersonalInfo) (*models.Profile, error)
	SendOTP(ctx context.Context, profileID id.ProfileID) error
	VerifyOTP(ctx context.Context, profileID id.ProfileID, code string) error
	SelectDocument(ctx context.Context, profileID id.ProfileID, documentType models.DocumentType) (string, error)
	UploadDocument(ctx context.Context, profileID id.ProfileID, side models.DocumentSide) (string, error)
	ProcessDocument(ctx context.Context, profileID id.ProfileID) (providers.DocumentAssessment, error)
	SubmitBiometric(ctx context.Context, profileID id.ProfileID, captureRef string) (providers.BiometricAssessment, error)
	Finalize(ctx context.Context, profileID id.ProfileID) (*identity.FinalizeResult, error)
}

// Handler wires identity endpoints to the identity service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an identity handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts identity endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/identity/personal-info", h.HandlePersonalInfo)
	r.Post("/identity/phone/otp/send", h.HandleSendOTP)
	r.Post("/identity/phone/otp/verify", h.HandleVerifyOTP)
	r.Post("/identity/document/type", h.HandleDocumentType)
	r.Post("/identity/document/upload", h.HandleDocumentUpload)
	r.Get("/identity/document/status", h.HandleDocumentStatus)
	r.Post("/identity/biometric/verify", h.HandleBiometric)
	r.Get("/identity/status", h.HandleStatus)
}

// HandlePersonalInfo handles POST /identity/personal-info requests.
func (h *Handler) HandlePersonalInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[PersonalInfoRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	profile, err := h.service.SubmitPersonalInfo(ctx, req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(ctx, "personal info submission failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "profile created",
		"request_id", requestID,
		"profile_id", profile.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, &PersonalInfoResponse{ProfileID: profile.ID.String()})
}

// HandleSendOTP handles POST /identity/phone/otp/send requests.
func (h *Handler) HandleSendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SendOTPRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.SendOTP(ctx, req.ParsedProfileID()); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &SuccessResponse{Success: true})
}

// HandleVerifyOTP handles POST /identity/phone/otp/verify requests.
func (h *Handler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[VerifyOTPRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.VerifyOTP(ctx, req.ParsedProfileID(), req.Code); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &SuccessResponse{Success: true})
}

// HandleDocumentType handles POST /identity/document/type requests.
func (h *Handler) HandleDocumentType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[DocumentTypeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	documentID, err := h.service.SelectDocument(ctx, req.ParsedProfileID(), req.ParsedDocumentType())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &DocumentTypeResponse{DocumentID: documentID})
}

// HandleDocumentUpload handles POST /identity/document/upload requests.
func (h *Handler) HandleDocumentUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[DocumentUploadRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	fileID, err := h.service.UploadDocument(ctx, req.ParsedProfileID(), models.DocumentSide(req.Side))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &DocumentUploadResponse{FileID: fileID, Side: req.Side})
}

// HandleDocumentStatus handles GET /identity/document/status requests.
func (h *Handler) HandleDocumentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profileID, err := profileIDFromQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	assessment, err := h.service.ProcessDocument(ctx, profileID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &DocumentStatusResponse{
		Status:     assessment.Status,
		Confidence: assessment.Confidence,
	})
}

// HandleBiometric handles POST /identity/biometric/verify requests.
func (h *Handler) HandleBiometric(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[BiometricRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	assessment, err := h.service.SubmitBiometric(ctx, req.ParsedProfileID(), req.CaptureRef)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &BiometricResponse{
		Success:       true,
		LivenessScore: assessment.LivenessScore,
		MatchScore:    assessment.MatchScore,
	})
}

// HandleStatus handles GET /identity/status requests.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	profileID, err := profileIDFromQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Finalize(ctx, profileID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "identity finalized",
		"request_id", requestID,
		"profile_id", profileID,
		"result", result.Result,
	)
	httputil.WriteJSON(w, http.StatusOK, FromFinalizeResult(result))
}

func profileIDFromQuery(r *http.Request) (id.ProfileID, error) {
	raw := r.URL.Query().Get("profile_id")
	if raw == "" {
		return id.ProfileID{}, dErrors.New(dErrors.CodeValidation, "profile_id is required")
	}
	return id.ParseProfileID(raw)
}
