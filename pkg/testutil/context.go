package testutil

import (
	"net/http"
	"time"

	id "verigate/pkg/domain"
	"verigate/pkg/requestcontext"
)

// WithSession adds a session ID to the request context, simulating what the
// session middleware does for authenticated requests. Invalid IDs are
// silently ignored.
func WithSession(req *http.Request, sessionID string) *http.Request {
	parsed, err := id.ParseSessionID(sessionID)
	if err != nil {
		return req
	}
	return req.WithContext(requestcontext.WithSessionID(req.Context(), parsed))
}

// WithRequestTime pins the request-scoped clock, as the requesttime
// middleware would.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
