package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"verigate/internal/income"
	id "verigate/pkg/domain"
	dErrors "verigate/pkg/domain-errors"
	"verigate/pkg/platform/httputil"
	"verigate/pkg/requestcontext"
)

// Service defines the interface for income operations.
type Service interface {
	Estimate(ctx context.Context, req income.EstimateRequest) (*income.EstimateResult, error)
}

// Handler wires income endpoints to the income service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an income handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts income endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/income/estimate", h.HandleEstimate)
}

// HandleEstimate handles POST /income/estimate requests.
func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	sessionID := requestcontext.SessionID(ctx)
	if sessionID == (id.SessionID{}) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[EstimateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Estimate(ctx, req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(ctx, "income estimate failed",
			"request_id", requestID,
			"session_id", sessionID,
			"account_ref", req.AccountRef,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "income estimated",
		"request_id", requestID,
		"session_id", sessionID,
		"consistency", result.Consistency,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
