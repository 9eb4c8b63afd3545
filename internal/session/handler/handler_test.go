package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verigate/internal/session"
	"verigate/pkg/platform/audit"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := session.NewTokenService("test-signing-key", "verigate", "verigate-api")
	svc := session.NewService(tokens, 0, audit.NopPublisher{}, logger)

	handler := New(svc, logger)
	r := chi.NewRouter()
	handler.Register(r)
	return handler
}

func TestHandleStart(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/identity/session/start", nil)
	w := httptest.NewRecorder()
	handler.HandleStart(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp StartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.NotEmpty(t, resp.Token)
	assert.WithinDuration(t, time.Now().Add(session.DefaultTTL), resp.ExpiresAt, time.Minute)
}
