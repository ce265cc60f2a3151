// Package catalog answers eligibility questions across the whole course
// catalog: single-course checks, catalog-wide filtering, next-course
// suggestions, and prerequisite graph queries.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/coursepath/coursepath/internal/model"
	"github.com/coursepath/coursepath/internal/prereq"
)

// Store is the slice of the storage layer the advisor needs.
type Store interface {
	GetCourse(ctx context.Context, code model.CourseCode) (*model.Course, error)
	ListCourses(ctx context.Context, dept string) ([]model.Course, error)
}

// Advisor evaluates a student's transcript against the stored catalog.
type Advisor struct {
	store Store
}

// NewAdvisor creates an advisor over the given catalog store.
func NewAdvisor(store Store) *Advisor {
	return &Advisor{store: store}
}

// CheckResult is the outcome of one eligibility check: the catalog entry, its
// parsed prerequisite tree (nil when it has none), and the verdict.
type CheckResult struct {
	Course  *model.Course
	Tree    prereq.Expr
	Verdict model.EligibilityVerdict
}

// Check evaluates one course against the transcript.
func (a *Advisor) Check(ctx context.Context, code model.CourseCode, completed model.Transcript) (*CheckResult, error) {
	course, err := a.store.GetCourse(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", code, err)
	}

	tree := prereq.Parse(course.PrereqRaw)
	return &CheckResult{
		Course:  course,
		Tree:    tree,
		Verdict: prereq.Evaluate(tree, completed),
	}, nil
}

// eligibleWorkers bounds the fan-out for catalog-wide evaluation. Each check
// is independent, so the work is a straight parallel map.
const eligibleWorkers = 8

// Eligible returns every course the student may register for: not already
// completed, prerequisites satisfied. Results keep catalog order. An optional
// dept narrows the scan.
func (a *Advisor) Eligible(ctx context.Context, dept string, completed model.Transcript) ([]CheckResult, error) {
	courses, err := a.store.ListCourses(ctx, dept)
	if err != nil {
		return nil, fmt.Errorf("eligible: %w", err)
	}

	results := a.evaluateAll(courses, completed)

	var eligible []CheckResult
	for _, r := range results {
		if completed.Contains(r.Course.Code) {
			continue
		}
		if r.Verdict.Satisfied {
			eligible = append(eligible, r)
		}
	}

	slog.Debug("catalog eligibility scan",
		"courses", len(courses),
		"eligible", len(eligible))
	return eligible, nil
}

// Suggest returns up to limit courses worth looking at next: those not yet
// completed that are either fully eligible or already have at least one
// prerequisite course on the transcript. Fully eligible courses come first,
// in catalog order.
func (a *Advisor) Suggest(ctx context.Context, completed model.Transcript, limit int) ([]CheckResult, error) {
	courses, err := a.store.ListCourses(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}

	results := a.evaluateAll(courses, completed)

	var ready, partial []CheckResult
	for _, r := range results {
		if completed.Contains(r.Course.Code) {
			continue
		}
		switch {
		case r.Verdict.Satisfied:
			ready = append(ready, r)
		case hasAnyPrereq(r.Tree, completed):
			partial = append(partial, r)
		}
	}

	suggestions := append(ready, partial...)
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

// evaluateAll parses and evaluates every course concurrently, preserving
// input order in the result.
func (a *Advisor) evaluateAll(courses []model.Course, completed model.Transcript) []CheckResult {
	results := make([]CheckResult, len(courses))

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < eligibleWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				course := courses[i]
				tree := prereq.Parse(course.PrereqRaw)
				results[i] = CheckResult{
					Course:  &courses[i],
					Tree:    tree,
					Verdict: prereq.Evaluate(tree, completed),
				}
			}
		}()
	}
	for i := range courses {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}

// hasAnyPrereq reports whether the transcript already covers at least one
// course mentioned anywhere in the expression.
func hasAnyPrereq(expr prereq.Expr, completed model.Transcript) bool {
	for _, code := range prereq.Courses(expr) {
		if completed.Contains(code) {
			return true
		}
	}
	return false
}
