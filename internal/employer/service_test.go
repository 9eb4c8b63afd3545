package employer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verigate/internal/bankfeed"
	"verigate/internal/employer/engine"
	"verigate/internal/employer/refdata"
	id "verigate/pkg/domain"
	"verigate/pkg/platform/audit"
	"verigate/pkg/requestcontext"
)

type stubResolver struct{}

func (stubResolver) Resolve(_ context.Context, _, _ string) string { return "ceid-stub" }

type stubFeed struct {
	txns []bankfeed.Transaction
	err  error
}

func (f *stubFeed) Transactions(_ context.Context, _ string) ([]bankfeed.Transaction, error) {
	return f.txns, f.err
}

type recordingPublisher struct {
	events []audit.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event audit.Event) error {
	p.events = append(p.events, event)
	return p.err
}

func newTestService(t *testing.T, feed bankfeed.Feed, publisher audit.Publisher) *Service {
	t.Helper()

	directory := refdata.MustDirectory(refdata.DefaultAddresses())
	pipeline := engine.NewPipeline(
		stubResolver{},
		engine.NewExistenceGate(directory),
		engine.NewLinkageGate(refdata.PayrollProviders()),
		engine.NewSanityGate(directory, refdata.HighInfrastructureRoles(), 0),
	)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(pipeline, feed, publisher, logger, nil)
}

func passingRecord() engine.EmployerRecord {
	return engine.EmployerRecord{
		EmployerName:         "Acme Construction Inc",
		EmployerAddress:      "100 King St, Toronto",
		EmployerPhone:        "4165550100",
		ApplicantHomeAddress: "12 Maple Ave, Toronto",
		JobTitle:             "Site Manager",
		IsRemote:             false,
	}
}

func TestServiceVerify(t *testing.T) {
	t.Run("uses explicit descriptor without touching the feed", func(t *testing.T) {
		publisher := &recordingPublisher{}
		svc := newTestService(t, &stubFeed{err: errors.New("feed must not be called")}, publisher)

		got := svc.Verify(context.Background(), VerifyRequest{
			Record:         passingRecord(),
			BankDescriptor: "ADP PAYROLL - ACME CONSTRUCTION",
		})

		assert.Equal(t, engine.VerdictPass, got.Result.FinalStatus)
		assert.Equal(t, engine.VerdictPass, got.Result.Linkage)
		assert.NotEqual(t, id.VerificationID{}, got.VerificationID)
	})

	t.Run("pulls the feed when only an account reference is given", func(t *testing.T) {
		feed := &stubFeed{txns: []bankfeed.Transaction{
			{Date: time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC), Description: "ADP PAYROLL - ACME CONSTRUCTION", Type: bankfeed.TypeCredit},
		}}
		svc := newTestService(t, feed, &recordingPublisher{})

		got := svc.Verify(context.Background(), VerifyRequest{
			Record:     passingRecord(),
			AccountRef: "acct-1",
		})

		assert.Equal(t, engine.VerdictPass, got.Result.Linkage)
		assert.Equal(t, engine.VerdictPass, got.Result.FinalStatus)
	})

	t.Run("feed failure degrades linkage to review, not an error", func(t *testing.T) {
		svc := newTestService(t, &stubFeed{err: errors.New("aggregator down")}, &recordingPublisher{})

		got := svc.Verify(context.Background(), VerifyRequest{
			Record:     passingRecord(),
			AccountRef: "acct-1",
		})

		assert.Equal(t, engine.VerdictReview, got.Result.Linkage)
		assert.Equal(t, engine.VerdictPass, got.Result.FinalStatus)
	})

	t.Run("publishes an audit event with the decision", func(t *testing.T) {
		publisher := &recordingPublisher{}
		svc := newTestService(t, &stubFeed{}, publisher)

		sessionID := id.NewSessionID()
		evaluatedAt := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
		ctx := requestcontext.WithSessionID(context.Background(), sessionID)
		ctx = requestcontext.WithRequestID(ctx, "req-42")
		ctx = requestcontext.WithTime(ctx, evaluatedAt)

		record := passingRecord()
		record.EmployerAddress = "1 Nowhere Lane"
		got := svc.Verify(ctx, VerifyRequest{Record: record})

		assert.Equal(t, engine.VerdictFail, got.Result.FinalStatus)
		assert.Equal(t, engine.GateExistence, got.Result.FailedGate)
		assert.Equal(t, evaluatedAt, got.EvaluatedAt)

		require.Len(t, publisher.events, 1)
		event := publisher.events[0]
		assert.Equal(t, audit.ActionEmployerVerified, event.Action)
		assert.Equal(t, sessionID.String(), event.SessionID)
		assert.Equal(t, "ceid-stub", event.Subject)
		assert.Equal(t, "FAIL", event.Decision)
		assert.Equal(t, "Existence", event.Reason)
		assert.Equal(t, "req-42", event.RequestID)
		assert.Equal(t, evaluatedAt, event.Timestamp)
	})

	t.Run("audit publish failure does not affect the result", func(t *testing.T) {
		publisher := &recordingPublisher{err: errors.New("broker unavailable")}
		svc := newTestService(t, &stubFeed{}, publisher)

		got := svc.Verify(context.Background(), VerifyRequest{
			Record:         passingRecord(),
			BankDescriptor: "ADP PAYROLL - ACME CONSTRUCTION",
		})

		assert.Equal(t, engine.VerdictPass, got.Result.FinalStatus)
	})
}
