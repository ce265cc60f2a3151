package prereq

import "github.com/coursepath/coursepath/internal/model"

// Evaluate walks a prerequisite expression against a transcript and returns
// the verdict. A nil expression means no prerequisites and is trivially
// satisfied. Missing is populated only on unsatisfied verdicts: And nodes
// concatenate their children's missing lists in child order (duplicates
// preserved), while Or nodes report the missing list of the child closest to
// satisfaction, breaking ties toward the earliest child so the result is the
// stable "easiest remaining path" rather than an arbitrary one.
func Evaluate(expr Expr, completed model.Transcript) model.EligibilityVerdict {
	if expr == nil {
		return model.EligibilityVerdict{Satisfied: true}
	}

	switch node := expr.(type) {
	case Course:
		if completed.Contains(node.Code) {
			return model.EligibilityVerdict{Satisfied: true}
		}
		return model.EligibilityVerdict{Missing: []model.CourseCode{node.Code}}

	case And:
		satisfied := true
		var missing []model.CourseCode
		for _, child := range node.Children {
			verdict := Evaluate(child, completed)
			if !verdict.Satisfied {
				satisfied = false
			}
			missing = append(missing, verdict.Missing...)
		}
		if satisfied {
			return model.EligibilityVerdict{Satisfied: true}
		}
		return model.EligibilityVerdict{Missing: missing}

	case Or:
		var best []model.CourseCode
		for _, child := range node.Children {
			verdict := Evaluate(child, completed)
			if verdict.Satisfied {
				return model.EligibilityVerdict{Satisfied: true}
			}
			if best == nil || len(verdict.Missing) < len(best) {
				best = verdict.Missing
			}
		}
		return model.EligibilityVerdict{Missing: best}
	}

	// Expr has exactly three implementations; reaching here is a bug.
	panic("prereq: unknown expression node")
}
