package engine

import (
	"strings"

	"verigate/internal/employer/refdata"
)

// DefaultMaxCommuteKm is the longest commute considered plausible for an
// on-site role.
const DefaultMaxCommuteKm = 150

// SanityGate detects geographically or occupationally implausible
// combinations: commutes no one would make, and heavy-infrastructure roles
// claimed at residentially zoned addresses.
type SanityGate struct {
	directory    *refdata.Directory
	infraRoles   []string
	maxCommuteKm float64
}

// NewSanityGate takes the address directory, the high-infrastructure role
// terms (lowercase), and the commute limit in kilometers (0 means
// DefaultMaxCommuteKm).
func NewSanityGate(directory *refdata.Directory, infraRoles []string, maxCommuteKm float64) *SanityGate {
	if maxCommuteKm <= 0 {
		maxCommuteKm = DefaultMaxCommuteKm
	}
	return &SanityGate{
		directory:    directory,
		infraRoles:   infraRoles,
		maxCommuteKm: maxCommuteKm,
	}
}

// Evaluate is deterministic and side-effect free. Unresolvable addresses
// yield REVIEW: the gate cannot assess what it cannot locate.
func (g *SanityGate) Evaluate(record EmployerRecord) Verdict {
	employer, employerOK := g.directory.Find(record.EmployerAddress)
	applicant, applicantOK := g.directory.Find(record.ApplicantHomeAddress)
	if !employerOK || !applicantOK {
		return VerdictReview
	}

	distance := HaversineKm(applicant.Lat, applicant.Lng, employer.Lat, employer.Lng)
	if !record.IsRemote && distance > g.maxCommuteKm {
		return VerdictFail
	}

	if employer.Zoning == refdata.ZoningResidential && g.requiresInfrastructure(record.JobTitle) {
		return VerdictFail
	}

	return VerdictPass
}

func (g *SanityGate) requiresInfrastructure(jobTitle string) bool {
	title := strings.ToLower(jobTitle)
	for _, role := range g.infraRoles {
		if strings.Contains(title, role) {
			return true
		}
	}
	return false
}
