package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"verigate/internal/employer"
	id "verigate/pkg/domain"
	dErrors "verigate/pkg/domain-errors"
	"verigate/pkg/platform/httputil"
	"verigate/pkg/requestcontext"
)

// Service defines the interface for employer verification operations.
type Service interface {
	Verify(ctx context.Context, req employer.VerifyRequest) *employer.VerifyResult
}

// Handler wires employer verification endpoints to the employer service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an employer handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts employer endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/employer/verify", h.HandleVerify)
}

// HandleVerify handles POST /employer/verify requests.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	// Require an authenticated session
	sessionID := requestcontext.SessionID(ctx)
	if sessionID == (id.SessionID{}) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[VerifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result := h.service.Verify(ctx, req.ToDomain())

	h.logger.InfoContext(ctx, "employer verified",
		"request_id", requestID,
		"session_id", sessionID,
		"ceid", result.Result.CEID,
		"final_status", result.Result.FinalStatus,
		"failed_gate", result.Result.FailedGate,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
