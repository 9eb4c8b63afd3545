// Package bankfeed defines the bank-data collaborator that supplies
// transaction evidence to the verification flows. The real aggregator is out
// of scope; the service runs against the simulated feed in mock.go.
package bankfeed

import (
	"context"
	"time"
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// Transaction is one ledger line from the feed. AmountCents keeps money in
// integer cents.
type Transaction struct {
	Date        time.Time
	AmountCents int64
	Description string
	Type        TransactionType
}

// Feed produces the transaction history for an account reference. The
// employer flow reduces it to a payor descriptor; the income flow feeds it
// to the estimator.
type Feed interface {
	Transactions(ctx context.Context, accountRef string) ([]Transaction, error)
}

// LatestCreditDescriptor returns the description of the most recent credit
// transaction, or "" when the ledger holds no credits. An empty return is
// the "insufficient evidence" input to the linkage gate.
func LatestCreditDescriptor(transactions []Transaction) string {
	var latest time.Time
	var payor string
	var found bool
	for _, txn := range transactions {
		if txn.Type != TypeCredit {
			continue
		}
		if !found || txn.Date.After(latest) {
			latest = txn.Date
			payor = txn.Description
			found = true
		}
	}
	return payor
}
