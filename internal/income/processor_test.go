package income

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"verigate/internal/bankfeed"
)

func TestProcess(t *testing.T) {
	date := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)

	t.Run("averages credits over the window", func(t *testing.T) {
		var txns []bankfeed.Transaction
		for i := 0; i < 6; i++ {
			txns = append(txns, bankfeed.Transaction{
				Date:        date.AddDate(0, 0, -14*i),
				AmountCents: 250000,
				Description: "ADP PAYROLL - ACME CONSTRUCTION",
				Type:        bankfeed.TypeCredit,
			})
		}

		got := Process(txns)
		assert.Equal(t, int64(450000), got.MonthlyMinCents)
		assert.Equal(t, int64(500000), got.MonthlyMaxCents)
		assert.Equal(t, PayFrequencyBiWeekly, got.PayFrequency)
		assert.Equal(t, EmploymentTypeSalaried, got.EmploymentType)
	})

	t.Run("ignores debits", func(t *testing.T) {
		txns := []bankfeed.Transaction{
			{Date: date, AmountCents: 300000, Type: bankfeed.TypeCredit},
			{Date: date, AmountCents: 180000, Type: bankfeed.TypeDebit},
		}

		got := Process(txns)
		assert.Equal(t, int64(100000), got.MonthlyMaxCents)
		assert.Equal(t, int64(90000), got.MonthlyMinCents)
	})

	t.Run("rounds fractional averages", func(t *testing.T) {
		txns := []bankfeed.Transaction{
			{Date: date, AmountCents: 100, Type: bankfeed.TypeCredit},
		}

		// 100/3 = 33.33 -> 33; *0.9 = 30
		got := Process(txns)
		assert.Equal(t, int64(33), got.MonthlyMaxCents)
		assert.Equal(t, int64(30), got.MonthlyMinCents)
	})

	t.Run("empty window yields a zero range", func(t *testing.T) {
		got := Process(nil)
		assert.Zero(t, got.MonthlyMinCents)
		assert.Zero(t, got.MonthlyMaxCents)
	})
}
