package bankfeed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestCreditDescriptor(t *testing.T) {
	t.Run("picks most recent credit", func(t *testing.T) {
		txns := []Transaction{
			{Date: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), Description: "OLD EMPLOYER", Type: TypeCredit},
			{Date: time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC), Description: "NEW EMPLOYER", Type: TypeCredit},
			{Date: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), Description: "RENT PAYMENT", Type: TypeDebit},
		}
		assert.Equal(t, "NEW EMPLOYER", LatestCreditDescriptor(txns))
	})

	t.Run("empty for ledgers without credits", func(t *testing.T) {
		txns := []Transaction{
			{Date: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), Description: "RENT PAYMENT", Type: TypeDebit},
		}
		assert.Empty(t, LatestCreditDescriptor(txns))
		assert.Empty(t, LatestCreditDescriptor(nil))
	})
}

func TestMockFeed(t *testing.T) {
	t.Run("returns payroll ledger", func(t *testing.T) {
		feed := NewMockFeed(0)
		txns, err := feed.Transactions(context.Background(), "acct-1")
		require.NoError(t, err)
		require.Len(t, txns, 8)

		descriptor := LatestCreditDescriptor(txns)
		assert.Equal(t, "ADP PAYROLL - ACME CONSTRUCTION", descriptor)
	})

	t.Run("honors context cancellation during the delay", func(t *testing.T) {
		feed := NewMockFeed(5 * time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := feed.Transactions(ctx, "acct-1")
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("callers get their own copy of the ledger", func(t *testing.T) {
		feed := NewMockFeed(0)
		first, err := feed.Transactions(context.Background(), "acct-1")
		require.NoError(t, err)
		first[0].Description = "TAMPERED"

		second, err := feed.Transactions(context.Background(), "acct-1")
		require.NoError(t, err)
		assert.NotEqual(t, "TAMPERED", second[0].Description)
	})
}
