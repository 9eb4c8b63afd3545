package engine

import "context"

// CEIDResolver produces a stable canonical employer identifier for a
// name/address pair. Resolution always succeeds; cache problems degrade to
// minting a fresh identifier.
type CEIDResolver interface {
	Resolve(ctx context.Context, employerName, employerAddress string) string
}

// Pipeline sequences the three gates with short-circuit semantics.
//
// FAIL short-circuits: later gates are not evaluated and report REVIEW.
// REVIEW does not short-circuit — a gate that lacked evidence does not stop
// the remaining gates from looking for a contradiction.
type Pipeline struct {
	resolver  CEIDResolver
	existence *ExistenceGate
	linkage   *LinkageGate
	sanity    *SanityGate
}

func NewPipeline(resolver CEIDResolver, existence *ExistenceGate, linkage *LinkageGate, sanity *SanityGate) *Pipeline {
	return &Pipeline{
		resolver:  resolver,
		existence: existence,
		linkage:   linkage,
		sanity:    sanity,
	}
}

// Run evaluates one employer record against one bank transaction descriptor.
//
// The CEID is resolved before any gate runs, regardless of outcome, so a
// failed attempt still pins the employer identity for later attempts. Apart
// from the resolver's cache write, Run is pure: identical inputs against an
// unchanged cache yield identical results.
func (p *Pipeline) Run(ctx context.Context, record EmployerRecord, bankDescriptor string) Result {
	result := Result{
		CEID:      p.resolver.Resolve(ctx, record.EmployerName, record.EmployerAddress),
		Existence: VerdictReview,
		Linkage:   VerdictReview,
		Sanity:    VerdictReview,
	}

	result.Existence = p.existence.Evaluate(record)
	if result.Existence == VerdictFail {
		result.FinalStatus = VerdictFail
		result.FailedGate = GateExistence
		return result
	}

	result.Linkage = p.linkage.Evaluate(record.EmployerName, bankDescriptor)
	if result.Linkage == VerdictFail {
		result.FinalStatus = VerdictFail
		result.FailedGate = GateLinkage
		return result
	}

	result.Sanity = p.sanity.Evaluate(record)
	if result.Sanity == VerdictFail {
		result.FinalStatus = VerdictFail
		result.FailedGate = GateSanity
		return result
	}

	// REVIEW verdicts collapse into a PASS final status here. The per-gate
	// verdicts carry the distinction for callers that need it.
	result.FinalStatus = VerdictPass
	return result
}
