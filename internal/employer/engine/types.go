package engine

// EmployerRecord carries the employer and applicant facts for one
// verification attempt. Callers construct it per attempt; the pipeline never
// mutates it.
type EmployerRecord struct {
	EmployerName         string
	EmployerAddress      string
	EmployerPhone        string
	ApplicantHomeAddress string
	JobTitle             string
	IsRemote             bool
}

// Result is the assembled outcome of one pipeline run.
//
// Per-gate verdicts are always populated: gates skipped by a short-circuit
// default to REVIEW. FinalStatus is PASS or FAIL only — a terminal REVIEW
// state is deliberately not surfaced here; callers that want to distinguish
// "passed cleanly" from "passed with open reviews" must inspect the per-gate
// verdicts.
type Result struct {
	CEID        string
	Existence   Verdict
	Linkage     Verdict
	Sanity      Verdict
	FinalStatus Verdict
	FailedGate  GateName
}
