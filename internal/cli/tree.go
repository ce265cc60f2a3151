package cli

import (
	"strings"

	"github.com/coursepath/coursepath/internal/model"
	"github.com/coursepath/coursepath/internal/prereq"
)

// RenderVerdict formats an eligibility verdict as a one-line summary.
func RenderVerdict(code model.CourseCode, verdict model.EligibilityVerdict) string {
	if verdict.Satisfied {
		return FormatSuccess("eligible for " + string(code))
	}
	missing := make([]string, 0, len(verdict.Missing))
	for _, m := range verdict.MissingSet() {
		missing = append(missing, string(m))
	}
	return FormatError("not eligible for " + string(code) + ", missing: " + strings.Join(missing, ", "))
}

// RenderTree renders a prerequisite expression as an indented tree, marking
// each course leaf as completed or missing against the transcript. A nil
// expression renders as a "no prerequisites" note.
func RenderTree(expr prereq.Expr, completed model.Transcript) string {
	if expr == nil {
		return SubtleStyle.Render("(no prerequisites)")
	}
	var b strings.Builder
	renderNode(&b, expr, completed, 0)
	return strings.TrimRight(b.String(), "\n")
}

func renderNode(b *strings.Builder, expr prereq.Expr, completed model.Transcript, depth int) {
	indent := strings.Repeat("  ", depth)

	switch node := expr.(type) {
	case prereq.Course:
		if completed.Contains(node.Code) {
			b.WriteString(indent + SuccessStyle.Render(SuccessIcon+" "+string(node.Code)) + "\n")
		} else {
			b.WriteString(indent + ErrorStyle.Render(ErrorIcon+" "+string(node.Code)) + "\n")
		}
	case prereq.And:
		b.WriteString(indent + SubtleStyle.Render("all of:") + "\n")
		for _, child := range node.Children {
			renderNode(b, child, completed, depth+1)
		}
	case prereq.Or:
		b.WriteString(indent + SubtleStyle.Render("one of:") + "\n")
		for _, child := range node.Children {
			renderNode(b, child, completed, depth+1)
		}
	}
}
