package income

import (
	"context"
	"log/slog"
	"time"

	"verigate/internal/bankfeed"
	"verigate/internal/income/metrics"
	id "verigate/pkg/domain"
	dErrors "verigate/pkg/domain-errors"
	"verigate/pkg/platform/audit"
	"verigate/pkg/requestcontext"
)

const defaultFeedTimeout = 5 * time.Second

// Consistency relates a declared monthly amount to the estimated range.
type Consistency string

const (
	// ConsistencyConfirmed means the declared amount falls inside the range.
	ConsistencyConfirmed Consistency = "confirmed"
	// ConsistencyReview means the declared amount falls outside the range.
	ConsistencyReview Consistency = "review"
)

// Service estimates income from a linked account and checks it against the
// declared amount.
type Service struct {
	feed        bankfeed.Feed
	audit       audit.Publisher
	logger      *slog.Logger
	metrics     *metrics.Metrics
	feedTimeout time.Duration
}

func NewService(feed bankfeed.Feed, auditPublisher audit.Publisher, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		feed:        feed,
		audit:       auditPublisher,
		logger:      logger,
		metrics:     m,
		feedTimeout: defaultFeedTimeout,
	}
}

// EstimateRequest carries one estimate's inputs. Amounts are integer cents.
type EstimateRequest struct {
	AccountRef           string
	DeclaredMonthlyCents int64
}

// EstimateResult pairs the derived estimate with the declared-amount check.
type EstimateResult struct {
	Estimate    Estimate
	Consistency Consistency
	EvaluatedAt time.Time
}

// Estimate pulls the linked account's feed, derives the monthly range, and
// classifies the declared amount. Unlike employer verification there is no
// degraded path here: without the feed there is nothing to estimate from.
func (s *Service) Estimate(ctx context.Context, req EstimateRequest) (*EstimateResult, error) {
	feedCtx, cancel := context.WithTimeout(ctx, s.feedTimeout)
	defer cancel()

	transactions, err := s.feed.Transactions(feedCtx, req.AccountRef)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "bank feed unavailable", err)
	}

	estimate := Process(transactions)

	consistency := ConsistencyReview
	if req.DeclaredMonthlyCents >= estimate.MonthlyMinCents && req.DeclaredMonthlyCents <= estimate.MonthlyMaxCents {
		consistency = ConsistencyConfirmed
	}
	s.metrics.RecordEstimate(string(consistency))

	evaluatedAt := requestcontext.Now(ctx)
	s.publishAudit(ctx, consistency, evaluatedAt)

	return &EstimateResult{
		Estimate:    estimate,
		Consistency: consistency,
		EvaluatedAt: evaluatedAt,
	}, nil
}

func (s *Service) publishAudit(ctx context.Context, consistency Consistency, evaluatedAt time.Time) {
	event := audit.Event{
		Timestamp: evaluatedAt,
		Action:    audit.ActionIncomeEstimated,
		Decision:  string(consistency),
		RequestID: requestcontext.RequestID(ctx),
	}
	if sessionID := requestcontext.SessionID(ctx); sessionID != (id.SessionID{}) {
		event.SessionID = sessionID.String()
	}

	if err := s.audit.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "audit publish failed",
			"action", string(event.Action),
			"error", err,
		)
	}
}
