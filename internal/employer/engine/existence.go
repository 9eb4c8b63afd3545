package engine

import (
	"verigate/internal/employer/refdata"
)

// minPhoneLength is the shortest employer phone accepted as plausible.
// North American numbers are 10 digits; anything shorter cannot be dialed.
const minPhoneLength = 10

// ExistenceGate confirms the employer's claimed address resolves to a known
// location and that a phone number of plausible length was supplied.
//
// This gate never returns REVIEW: either the claims check out or they are
// positively wrong.
type ExistenceGate struct {
	directory *refdata.Directory
}

func NewExistenceGate(directory *refdata.Directory) *ExistenceGate {
	return &ExistenceGate{directory: directory}
}

// Evaluate is deterministic and side-effect free.
func (g *ExistenceGate) Evaluate(record EmployerRecord) Verdict {
	if _, ok := g.directory.Find(record.EmployerAddress); !ok {
		return VerdictFail
	}
	if len(record.EmployerPhone) < minPhoneLength {
		return VerdictFail
	}
	return VerdictPass
}
