package engine

import "strings"

// LinkageGate determines whether the source of funds — a bank transaction
// descriptor from the bank feed, never direct user input — plausibly
// originates from the claimed employer.
type LinkageGate struct {
	payrollProviders []string
}

// NewLinkageGate takes the payroll-provider reference list in normalized
// form (see refdata.PayrollProviders).
func NewLinkageGate(payrollProviders []string) *LinkageGate {
	return &LinkageGate{payrollProviders: payrollProviders}
}

// Evaluate classifies the descriptor against the employer name.
//
//	empty descriptor                  -> REVIEW (insufficient evidence)
//	normalized exact match            -> PASS
//	payroll provider in descriptor    -> PASS  (payroll processors pay on the
//	                                            employer's behalf)
//	descriptor reads like a person    -> FAIL  (funds from an individual)
//	anything else                     -> REVIEW
func (g *LinkageGate) Evaluate(employerName, bankDescriptor string) Verdict {
	if bankDescriptor == "" {
		return VerdictReview
	}

	employer := NormalizeEmployerName(employerName)
	payor := NormalizeEmployerName(bankDescriptor)

	if employer == payor {
		return VerdictPass
	}

	for _, provider := range g.payrollProviders {
		if strings.Contains(payor, provider) {
			return VerdictPass
		}
	}

	if LooksLikePersonalPayor(bankDescriptor) {
		return VerdictFail
	}

	return VerdictReview
}
