// Package prereq implements the prerequisite logic engine: it normalizes the
// free-form prerequisite text published in course outlines, parses it into a
// boolean expression tree over course codes, and evaluates that tree against a
// student's transcript.
//
// The engine is pure and stateless. Every function is a synchronous transform
// of its inputs, so callers may parse and evaluate across an entire catalog
// concurrently with no coordination.
package prereq

import (
	"strings"

	"github.com/coursepath/coursepath/internal/model"
)

// Expr is a node in a prerequisite expression tree. A nil Expr means the
// course has no prerequisites and is treated as trivially satisfied.
type Expr interface {
	// String renders the expression in human-readable form, parenthesizing
	// sub-expressions whose operator differs from the parent's.
	String() string

	isExpr()
}

// Course is a leaf requiring one specific course.
type Course struct {
	Code model.CourseCode
}

// And requires every child to be satisfied. Built with at least one child.
type And struct {
	Children []Expr
}

// Or requires at least one child to be satisfied. Built with at least one child.
type Or struct {
	Children []Expr
}

func (Course) isExpr() {}
func (And) isExpr()    {}
func (Or) isExpr()     {}

func (c Course) String() string {
	return string(c.Code)
}

func (a And) String() string {
	return joinChildren(a.Children, " and ", func(e Expr) bool {
		_, ok := e.(Or)
		return ok
	})
}

func (o Or) String() string {
	return joinChildren(o.Children, " or ", func(e Expr) bool {
		_, ok := e.(And)
		return ok
	})
}

func joinChildren(children []Expr, sep string, needsParens func(Expr) bool) string {
	parts := make([]string, 0, len(children))
	for _, child := range children {
		s := child.String()
		if needsParens(child) {
			s = "(" + s + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep)
}

// Courses flattens an expression into the de-duplicated list of every course
// it mentions, in first-appearance order. A nil expression yields nil.
func Courses(expr Expr) []model.CourseCode {
	var out []model.CourseCode
	seen := make(map[model.CourseCode]struct{})

	var walk func(Expr)
	walk = func(e Expr) {
		switch node := e.(type) {
		case Course:
			if _, ok := seen[node.Code]; !ok {
				seen[node.Code] = struct{}{}
				out = append(out, node.Code)
			}
		case And:
			for _, child := range node.Children {
				walk(child)
			}
		case Or:
			for _, child := range node.Children {
				walk(child)
			}
		}
	}
	if expr != nil {
		walk(expr)
	}
	return out
}
