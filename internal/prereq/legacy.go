package prereq

import "github.com/coursepath/coursepath/internal/model"

// Requirement is the flat prerequisite shape some catalog feeds publish
// instead of free text: a list of courses that are all required, plus groups
// of alternatives where any one member suffices. It is a restricted form of
// the expression tree, and eligibility goes through the same Evaluate rather
// than a second satisfaction algorithm.
type Requirement struct {
	AndList  []model.CourseCode
	OrGroups [][]model.CourseCode
}

// Expression converts the requirement to its tree form: an And whose children
// are one Course leaf per AndList entry and one Or per group. An empty
// requirement converts to nil, meaning no prerequisites.
func (r Requirement) Expression() Expr {
	var children []Expr
	for _, code := range r.AndList {
		children = append(children, Course{Code: code})
	}
	for _, group := range r.OrGroups {
		if len(group) == 0 {
			continue
		}
		options := make([]Expr, len(group))
		for i, code := range group {
			options[i] = Course{Code: code}
		}
		children = append(children, Or{Children: options})
	}
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	default:
		return And{Children: children}
	}
}

// IsEligible reports whether a student with the given transcript may register
// for the course guarded by this requirement. A course already on the
// transcript is never offered as eligible again.
func (r Requirement) IsEligible(course model.CourseCode, completed model.Transcript) bool {
	if completed.Contains(course) {
		return false
	}
	return Evaluate(r.Expression(), completed).Satisfied
}
