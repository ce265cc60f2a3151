package prereq

import (
	"regexp"
	"strings"
)

// cleanupRule is one clause-removal pattern applied during normalization.
type cleanupRule struct {
	pattern *regexp.Regexp
	repl    string
}

// cleanupRules strip the natural-language clauses that carry no boolean
// structure: grade minimums, soft recommendations, and equivalency asides.
// Rules run in order; each is chosen so that its own output can never match
// again, which keeps Normalize idempotent.
var cleanupRules = []cleanupRule{
	// "CMPT 225, with a minimum grade of C-" / "all with a minimum grade of B"
	{regexp.MustCompile(`(?i),?\s*(?:(?:all|both)\s+)?with a minimum grade of [A-Z][+-]?`), ""},
	// "MATH 240 is recommended." is advice, not a requirement.
	{regexp.MustCompile(`(?i)[^.;,()]*\bis recommended\b\.?`), ""},
	// Standardized-test equivalencies such as "BC Math 12 (or a passing score ...)".
	{regexp.MustCompile(`(?i)\bBC\s+Math\s+12\b\s*(?:\([^()]*\))?`), ""},
	{regexp.MustCompile(`(?i)\(\s*or\s+equivalent[^()]*\)`), ""},
}

// Normalize strips non-logical clauses from raw prerequisite text and
// collapses whitespace. It is pure and idempotent: running it on its own
// output is a no-op. Any input, including the empty string, is accepted.
func Normalize(raw string) string {
	s := raw
	for _, rule := range cleanupRules {
		s = rule.pattern.ReplaceAllString(s, rule.repl)
	}
	return strings.Join(strings.Fields(s), " ")
}
