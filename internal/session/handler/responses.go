package handler

import (
	"time"

	"verigate/internal/session"
)

// StartResponse is the HTTP response for POST /identity/session/start.
type StartResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FromSession converts a domain Session to an HTTP response.
func FromSession(sess *session.Session) *StartResponse {
	return &StartResponse{
		SessionID: sess.ID.String(),
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
	}
}
