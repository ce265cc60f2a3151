package model

// EligibilityVerdict is the result of evaluating a prerequisite expression
// against a transcript. Missing is empty exactly when Satisfied is true; when
// unsatisfied it lists the smallest remaining set of courses, in expression
// order, that would make the student eligible.
type EligibilityVerdict struct {
	Missing   []CourseCode
	Satisfied bool
}

// MissingSet returns the missing courses de-duplicated, preserving first
// occurrence order. AND nodes can report the same course more than once;
// display code usually wants each course a single time.
func (v EligibilityVerdict) MissingSet() []CourseCode {
	if len(v.Missing) == 0 {
		return nil
	}
	seen := make(map[CourseCode]struct{}, len(v.Missing))
	out := make([]CourseCode, 0, len(v.Missing))
	for _, code := range v.Missing {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
