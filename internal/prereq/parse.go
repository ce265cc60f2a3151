package prereq

import "strings"

// Parse normalizes raw prerequisite text and builds its boolean expression
// tree. It returns nil when the text contains no recognizable course
// references, which callers treat as "no prerequisites". Parsing never fails:
// malformed input (unbalanced parentheses, free-form prose) falls through to
// atom extraction and, when nothing is recognizable there either, resolves to
// nil rather than an error.
func Parse(raw string) Expr {
	text := Normalize(raw)
	if len(ExtractCourses(text)) == 0 {
		return nil
	}
	expr, _ := parseExpr(text, "")
	return expr
}

// parseExpr is the recursive splitter. dept is the department context in
// effect when the segment begins, used to resolve bare catalog numbers such
// as the "125" in "CMPT 120 or 125"; it is updated whenever a full
// DEPT-NUMBER token is consumed and returned so the caller can thread it
// through subsequent sibling segments.
//
// Split priority, applied at parenthesis depth zero only:
//  1. strip one redundant outer parenthesis pair
//  2. " and " (highest priority, even across unparenthesized comma lists)
//  3. commas alongside " or " read as OR separators: "A, B or C" is (A or B or C)
//  4. " or "
//  5. commas alone read as AND separators
//  6. single atom: course extraction with implicit-department recovery
func parseExpr(text, dept string) (Expr, string) {
	text = strings.TrimSpace(text)

	if inner, ok := stripOuterParens(text); ok {
		return parseExpr(inner, dept)
	}

	if segments := splitTopLevel(text, " and "); len(segments) > 1 {
		return combine(segments, dept, newAnd)
	}

	// The catalog writes "A, B or C" to mean any one of the three, so in the
	// presence of an "or" its commas are list separators for the OR, not ANDs.
	if strings.Contains(text, ",") && strings.Contains(text, " or ") {
		return parseExpr(strings.ReplaceAll(text, ",", " or "), dept)
	}

	if segments := splitTopLevel(text, " or "); len(segments) > 1 {
		return combine(segments, dept, newOr)
	}

	if segments := splitTopLevel(text, ","); len(segments) > 1 {
		return combine(segments, dept, newAnd)
	}

	return parseAtom(text, dept)
}

// parseAtom handles a segment with no top-level connectives. Codes are
// recovered by scanning the whole atom with the inherited department context,
// so a trailing bare number still resolves. Several codes with no connector
// between them read as alternatives.
func parseAtom(text, dept string) (Expr, string) {
	codes, dept := scanCourses(text, dept)
	switch len(codes) {
	case 0:
		return nil, dept
	case 1:
		return Course{Code: codes[0]}, dept
	default:
		children := make([]Expr, len(codes))
		for i, code := range codes {
			children[i] = Course{Code: code}
		}
		return Or{Children: children}, dept
	}
}

func newAnd(children []Expr) Expr { return And{Children: children} }
func newOr(children []Expr) Expr  { return Or{Children: children} }

// combine parses each segment left to right, threading the department
// context, drops segments that resolve to nothing, and joins the survivors
// under the given operator. A single survivor is returned directly.
func combine(segments []string, dept string, join func([]Expr) Expr) (Expr, string) {
	var children []Expr
	for _, segment := range segments {
		child, next := parseExpr(segment, dept)
		dept = next
		if child != nil {
			children = append(children, child)
		}
	}
	switch len(children) {
	case 0:
		return nil, dept
	case 1:
		return children[0], dept
	default:
		return join(children), dept
	}
}

// stripOuterParens removes a parenthesis pair wrapping the entire expression,
// i.e. where the depth opened at the first byte returns to zero only at the
// final byte.
func stripOuterParens(text string) (string, bool) {
	if len(text) < 2 || text[0] != '(' || text[len(text)-1] != ')' {
		return text, false
	}
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(text)-1 {
				return text, false
			}
		}
	}
	if depth != 0 {
		return text, false
	}
	return strings.TrimSpace(text[1 : len(text)-1]), true
}

// splitTopLevel splits text on the delimiter wherever parenthesis depth is
// zero, returning trimmed non-empty segments. Unmatched close parens clamp at
// depth zero so garbled input still splits instead of recursing forever.
func splitTopLevel(text, delim string) []string {
	var segments []string
	depth := 0
	start := 0
	for i := 0; i < len(text); {
		switch {
		case text[i] == '(':
			depth++
			i++
		case text[i] == ')':
			if depth > 0 {
				depth--
			}
			i++
		case depth == 0 && strings.HasPrefix(text[i:], delim):
			segments = append(segments, text[start:i])
			i += len(delim)
			start = i
		default:
			i++
		}
	}
	segments = append(segments, text[start:])

	out := segments[:0]
	for _, segment := range segments {
		if s := strings.TrimSpace(segment); s != "" {
			out = append(out, s)
		}
	}
	return out
}
