package session

import (
	"context"
	"log/slog"
	"time"

	id "verigate/pkg/domain"
	dErrors "verigate/pkg/domain-errors"
	"verigate/pkg/platform/audit"
	"verigate/pkg/requestcontext"
)

// DefaultTTL bounds how long an applicant can take to finish the wizard.
const DefaultTTL = 30 * time.Minute

// Session is an issued applicant session.
type Session struct {
	ID        id.SessionID
	Token     string
	ExpiresAt time.Time
}

// Service issues sessions. Sessions are anonymous: the applicant identifies
// themselves through the flows, not at session start.
type Service struct {
	tokens *TokenService
	ttl    time.Duration
	audit  audit.Publisher
	logger *slog.Logger
}

func NewService(tokens *TokenService, ttl time.Duration, auditPublisher audit.Publisher, logger *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		tokens: tokens,
		ttl:    ttl,
		audit:  auditPublisher,
		logger: logger,
	}
}

// Start mints a session and its bearer token.
func (s *Service) Start(ctx context.Context) (*Session, error) {
	sessionID := id.NewSessionID()

	token, expiresAt, err := s.tokens.Generate(sessionID, s.ttl)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "sign session token", err)
	}

	event := audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Action:    audit.ActionSessionStarted,
		SessionID: sessionID.String(),
		RequestID: requestcontext.RequestID(ctx),
	}
	if err := s.audit.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "audit publish failed",
			"action", string(event.Action),
			"error", err,
		)
	}

	return &Session{
		ID:        sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
