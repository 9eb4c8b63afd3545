package engine

// Verdict is the outcome of a single gate evaluation.
//
// REVIEW and FAIL are both non-PASS but carry different signals: REVIEW means
// the gate had insufficient evidence to decide, FAIL means it found a positive
// contradiction. There is no severity ordering between them.
type Verdict string

const (
	VerdictPass   Verdict = "PASS"
	VerdictFail   Verdict = "FAIL"
	VerdictReview Verdict = "REVIEW"
)

// GateName identifies a gate in pipeline results.
type GateName string

const (
	GateExistence GateName = "Existence"
	GateLinkage   GateName = "Linkage"
	GateSanity    GateName = "Sanity"
)
