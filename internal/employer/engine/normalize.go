package engine

import (
	"regexp"
	"strings"
)

// Corporate suffixes and the "#" marker are stripped before comparison.
// Alternation is leftmost-first, so "corporation" is consumed by its "corp"
// prefix and leaves the residue "oration" in the output. CEID keys and
// linkage comparisons both depend on this exact behavior, so it must not be
// "improved" in one place only.
var (
	corporateSuffixes = regexp.MustCompile(`inc|ltd|corp|corporation|store|#`)
	nonAlphanumeric   = regexp.MustCompile(`[^a-z0-9]`)
)

// NormalizeEmployerName collapses an employer name (or bank payor string) to
// a comparable key: lowercase, corporate suffixes removed, everything outside
// [a-z0-9] removed.
//
// Edge cases:
//   - "ACME Construction Ltd" -> "acmeconstruction"
//   - "Corporation" -> "oration" (leftmost-first suffix stripping)
//   - suffixes are stripped anywhere in the name, not only at the end, so
//     "Quin Creations" -> "quincreations" (which happens to contain "inc")
func NormalizeEmployerName(name string) string {
	n := strings.ToLower(name)
	n = corporateSuffixes.ReplaceAllString(n, "")
	n = nonAlphanumeric.ReplaceAllString(n, "")
	return strings.TrimSpace(n)
}

// LooksLikePersonalPayor reports whether a bank transaction descriptor reads
// like an individual's name rather than a business: at most two whitespace
// tokens and none of the corporate markers "inc", "ltd", "corp".
//
// This heuristic is inherently fuzzy. "John Smith" is personal;
// "ACME Holdings Inc" is not; "International Business Machines Payments" is
// neither (too many tokens) and is left for the caller to treat as ambiguous.
func LooksLikePersonalPayor(descriptor string) bool {
	lowered := strings.ToLower(descriptor)
	if len(strings.Fields(lowered)) > 2 {
		return false
	}
	for _, marker := range []string{"inc", "ltd", "corp"} {
		if strings.Contains(lowered, marker) {
			return false
		}
	}
	return true
}
