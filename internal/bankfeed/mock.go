package bankfeed

import (
	"context"
	"time"
)

// MockFeed simulates a bank aggregator: a fixed ledger of bi-weekly payroll
// deposits plus household debits, returned after an artificial delay. The
// delay honors context cancellation so callers can impose timeouts.
type MockFeed struct {
	delay  time.Duration
	ledger []Transaction
}

// NewMockFeed builds the simulated feed. A zero delay returns immediately,
// which is what tests want.
func NewMockFeed(delay time.Duration) *MockFeed {
	return &MockFeed{
		delay:  delay,
		ledger: defaultLedger(),
	}
}

// Transactions returns the canned ledger regardless of accountRef. The
// accountRef parameter exists because the real aggregator needs it; the
// simulation does not discriminate.
func (f *MockFeed) Transactions(ctx context.Context, _ string) ([]Transaction, error) {
	if f.delay > 0 {
		timer := time.NewTimer(f.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	ledger := make([]Transaction, len(f.ledger))
	copy(ledger, f.ledger)
	return ledger, nil
}

func defaultLedger() []Transaction {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	const payrollDeposit = "ADP PAYROLL - ACME CONSTRUCTION"
	return []Transaction{
		{Date: day(2024, time.September, 1), AmountCents: 250000, Description: payrollDeposit, Type: TypeCredit},
		{Date: day(2024, time.September, 5), AmountCents: 180000, Description: "RENT PAYMENT", Type: TypeDebit},
		{Date: day(2024, time.September, 15), AmountCents: 250000, Description: payrollDeposit, Type: TypeCredit},
		{Date: day(2024, time.October, 1), AmountCents: 250000, Description: payrollDeposit, Type: TypeCredit},
		{Date: day(2024, time.October, 5), AmountCents: 180000, Description: "RENT PAYMENT", Type: TypeDebit},
		{Date: day(2024, time.October, 15), AmountCents: 250000, Description: payrollDeposit, Type: TypeCredit},
		{Date: day(2024, time.November, 1), AmountCents: 250000, Description: payrollDeposit, Type: TypeCredit},
		{Date: day(2024, time.November, 15), AmountCents: 250000, Description: payrollDeposit, Type: TypeCredit},
	}
}
