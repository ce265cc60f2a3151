package fetch

import (
	"regexp"
	"strings"
)

// Course descriptions embed the prerequisite clause as a labelled sentence,
// e.g. "... Prerequisite: CMPT 125 and MACM 101. Students with credit ...".
var (
	prereqSentence = regexp.MustCompile(`(?is)Prerequisites?:\s*(.+?\.)(?:\s|$)`)
	eitherPrefix   = regexp.MustCompile(`(?i)^Either\s+`)
	programClause  = regexp.MustCompile(`(?i),?\s*for students (?:in|enrolled in) an? [^.;,()]+`)
)

// ExtractPrereqText pulls the prerequisite clause out of a long course
// description. Returns "" when the description carries no prerequisite
// sentence.
func ExtractPrereqText(description string) string {
	m := prereqSentence.FindStringSubmatch(description)
	if m == nil {
		return ""
	}

	text := strings.TrimSpace(m[1])
	text = eitherPrefix.ReplaceAllString(text, "")
	text = programClause.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
