// Package employer runs the employer-reality verification flow: one
// EmployerRecord plus bank-feed evidence through the gate pipeline, with
// metrics, tracing, and an audit trail around the pure engine.
package employer

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"verigate/internal/bankfeed"
	"verigate/internal/employer/engine"
	"verigate/internal/employer/metrics"
	id "verigate/pkg/domain"
	"verigate/pkg/platform/audit"
	"verigate/pkg/requestcontext"
)

const defaultFeedTimeout = 5 * time.Second

// Service coordinates one verification attempt. The engine stays pure; all
// I/O (bank feed, audit, metrics) happens here.
type Service struct {
	pipeline    *engine.Pipeline
	feed        bankfeed.Feed
	audit       audit.Publisher
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
	feedTimeout time.Duration
}

func NewService(
	pipeline *engine.Pipeline,
	feed bankfeed.Feed,
	auditPublisher audit.Publisher,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		pipeline:    pipeline,
		feed:        feed,
		audit:       auditPublisher,
		logger:      logger,
		metrics:     m,
		tracer:      otel.Tracer("verigate/internal/employer"),
		feedTimeout: defaultFeedTimeout,
	}
}

// VerifyRequest carries one attempt's inputs. BankDescriptor, when set,
// is used as-is (the caller already holds bank evidence); otherwise the
// service pulls the feed for AccountRef and reduces it to a descriptor.
type VerifyRequest struct {
	Record         engine.EmployerRecord
	BankDescriptor string
	AccountRef     string
}

// VerifyResult pairs the pipeline result with attempt bookkeeping.
type VerifyResult struct {
	VerificationID id.VerificationID
	Result         engine.Result
	EvaluatedAt    time.Time
}

// Verify never fails: malformed input and unavailable collaborators degrade
// into gate verdicts (unknown address fails existence, missing bank evidence
// reviews linkage), not errors.
func (s *Service) Verify(ctx context.Context, req VerifyRequest) *VerifyResult {
	ctx, span := s.tracer.Start(ctx, "employer.Verify")
	defer span.End()

	start := time.Now()

	descriptor := req.BankDescriptor
	if descriptor == "" && req.AccountRef != "" {
		descriptor = s.fetchDescriptor(ctx, req.AccountRef)
	}

	result := s.pipeline.Run(ctx, req.Record, descriptor)

	span.SetAttributes(
		attribute.String("employer.ceid", result.CEID),
		attribute.String("verdict.existence", string(result.Existence)),
		attribute.String("verdict.linkage", string(result.Linkage)),
		attribute.String("verdict.sanity", string(result.Sanity)),
		attribute.String("verdict.final", string(result.FinalStatus)),
	)

	s.metrics.RecordGateVerdict(string(engine.GateExistence), string(result.Existence))
	s.metrics.RecordGateVerdict(string(engine.GateLinkage), string(result.Linkage))
	s.metrics.RecordGateVerdict(string(engine.GateSanity), string(result.Sanity))
	s.metrics.RecordOutcome(string(result.FinalStatus), string(result.FailedGate))
	s.metrics.ObserveVerifyLatency(time.Since(start))

	evaluatedAt := requestcontext.Now(ctx)
	s.publishAudit(ctx, result, evaluatedAt)

	return &VerifyResult{
		VerificationID: id.NewVerificationID(),
		Result:         result,
		EvaluatedAt:    evaluatedAt,
	}
}

func (s *Service) fetchDescriptor(ctx context.Context, accountRef string) string {
	ctx, cancel := context.WithTimeout(ctx, s.feedTimeout)
	defer cancel()

	transactions, err := s.feed.Transactions(ctx, accountRef)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "bank feed fetch failed, linkage evidence unavailable",
				"account_ref", accountRef,
				"error", err,
			)
		}
		return ""
	}
	return bankfeed.LatestCreditDescriptor(transactions)
}

func (s *Service) publishAudit(ctx context.Context, result engine.Result, evaluatedAt time.Time) {
	event := audit.Event{
		Timestamp: evaluatedAt,
		Action:    audit.ActionEmployerVerified,
		Subject:   result.CEID,
		Decision:  string(result.FinalStatus),
		Reason:    string(result.FailedGate),
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
