package ratelimit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"verigate/pkg/requestcontext"
)

type failingStore struct{}

func (failingStore) Allow(_ context.Context, _ string, _ int, _ time.Duration) (*Result, error) {
	return nil, errors.New("store down")
}

func newLimitedHandler(store BucketStore, limit int) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewMiddleware(store, logger, limit, time.Minute)
	return mw.Limit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func doRequest(handler http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/identity/session/start", nil)
	req = req.WithContext(requestcontext.WithClientIP(req.Context(), ip))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestMiddlewareLimit(t *testing.T) {
	t.Run("enforces the per-ip limit", func(t *testing.T) {
		handler := newLimitedHandler(NewInMemoryBucketStore(), 2)

		assert.Equal(t, http.StatusOK, doRequest(handler, "1.2.3.4").Code)
		assert.Equal(t, http.StatusOK, doRequest(handler, "1.2.3.4").Code)

		blocked := doRequest(handler, "1.2.3.4")
		assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
		assert.NotEmpty(t, blocked.Header().Get("Retry-After"))
		assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))

		// Other clients are unaffected.
		assert.Equal(t, http.StatusOK, doRequest(handler, "5.6.7.8").Code)
	})

	t.Run("sets informational headers on allowed requests", func(t *testing.T) {
		handler := newLimitedHandler(NewInMemoryBucketStore(), 5)

		w := doRequest(handler, "1.2.3.4")
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("fails open when the store errors", func(t *testing.T) {
		handler := newLimitedHandler(failingStore{}, 1)

		assert.Equal(t, http.StatusOK, doRequest(handler, "1.2.3.4").Code)
		assert.Equal(t, http.StatusOK, doRequest(handler, "1.2.3.4").Code)
	})
}
