// Package income estimates an applicant's monthly income from bank-feed
// credits and checks the declared amount against the estimate.
package income

import (
	"math"

	"verigate/internal/bankfeed"
)

// The feed window the estimate averages over.
const windowMonths = 3

const (
	PayFrequencyBiWeekly   = "Bi-Weekly"
	EmploymentTypeSalaried = "Salaried"
)

// Estimate is a monthly income range derived from observed payroll credits.
// Amounts are integer cents.
type Estimate struct {
	MonthlyMinCents int64
	MonthlyMaxCents int64
	PayFrequency    string
	EmploymentType  string
}

// Process reduces a transaction window to an income estimate: credits are
// summed and averaged over the window, the range spans 90-100% of that
// average. Debits are ignored.
func Process(transactions []bankfeed.Transaction) Estimate {
	var totalCents int64
	for _, t := range transactions {
		if t.Type == bankfeed.TypeCredit {
			totalCents += t.AmountCents
		}
	}

	monthlyAverage := float64(totalCents) / windowMonths

	return Estimate{
		MonthlyMinCents: int64(math.Round(monthlyAverage * 0.9)),
		MonthlyMaxCents: int64(math.Round(monthlyAverage)),
		PayFrequency:    PayFrequencyBiWeekly,
		EmploymentType:  EmploymentTypeSalaried,
	}
}
