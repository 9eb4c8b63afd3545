package income

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
	dErrors "verigate/pkg/domain-errors"
	"verigate/pkg/platform/audit"
)

type stubFeed struct {
	txns []bankfeed.Transaction
	err  error
}

func (f *stubFeed) Transactions(_ context.Context, _ string) ([]bankfeed.Transaction, error) {
	return f.txns, f.err
}

type recordingPublisher struct {
	events []audit.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event audit.Event) error {
	p.events = append(p.events, event)
	return nil
}

func payrollLedger() []bankfeed.Transaction {
	date := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	var txns []bankfeed.Transaction
	for i := 0; i < 6; i++ {
		txns = append(txns, bankfeed.Transaction{
			Date:        date.AddDate(0, 0, -14*i),
			AmountCents: 250000,
			Description: "ADP PAYROLL - ACME CONSTRUCTION",
			Type:        bankfeed.TypeCredit,
		})
	}
	return txns
}

func newTestService(feed bankfeed.Feed, publisher audit.Publisher) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(feed, publisher, logger, nil)
}

func TestServiceEstimate(t *testing.T) {
	t.Run("confirms a declared amount inside the range", func(t *testing.T) {
		publisher := &recordingPublisher{}
		svc := newTestService(&stubFeed{txns: payrollLedger()}, publisher)

		got, err := svc.Estimate(context.Background(), EstimateRequest{
			AccountRef:           "acct-1",
			DeclaredMonthlyCents: 480000,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(450000), got.Estimate.MonthlyMinCents)
		assert.Equal(t, int64(500000), got.Estimate.MonthlyMaxCents)
		assert.Equal(t, ConsistencyConfirmed, got.Consistency)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, audit.ActionIncomeEstimated, publisher.events[0].Action)
		assert.Equal(t, "confirmed", publisher.events[0].Decision)
	})

	t.Run("flags a declared amount outside the range for review", func(t *testing.T) {
		svc := newTestService(&stubFeed{txns: payrollLedger()}, &recordingPublisher{})

		got, err := svc.Estimate(context.Background(), EstimateRequest{
			AccountRef:           "acct-1",
			DeclaredMonthlyCents: 900000,
		})
		require.NoError(t, err)
		assert.Equal(t, ConsistencyReview, got.Consistency)
	})

	t.Run("feed failure surfaces as service unavailable", func(t *testing.T) {
		svc := newTestService(&stubFeed{err: errors.New("aggregator down")}, &recordingPublisher{})

		_, err := svc.Estimate(context.Background(), EstimateRequest{AccountRef: "acct-1"})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
	})
}
