package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/coursepath/coursepath/internal/model"
	"github.com/coursepath/coursepath/internal/prereq"
)

// Graph is the directed prerequisite graph over the catalog: an edge A -> B
// means course A appears somewhere in B's prerequisite expression.
type Graph struct {
	prereqsOf map[model.CourseCode][]model.CourseCode
	unlocks   map[model.CourseCode][]model.CourseCode
}

// Graph builds the prerequisite graph from every stored course.
func (a *Advisor) Graph(ctx context.Context) (*Graph, error) {
	courses, err := a.store.ListCourses(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}

	g := &Graph{
		prereqsOf: make(map[model.CourseCode][]model.CourseCode),
		unlocks:   make(map[model.CourseCode][]model.CourseCode),
	}
	for _, course := range courses {
		for _, dep := range prereq.Courses(prereq.Parse(course.PrereqRaw)) {
			g.prereqsOf[course.Code] = append(g.prereqsOf[course.Code], dep)
			g.unlocks[dep] = append(g.unlocks[dep], course.Code)
		}
	}
	return g, nil
}

// Chain returns every course reachable upstream of code: its prerequisites,
// their prerequisites, and so on, sorted for stable output.
func (g *Graph) Chain(code model.CourseCode) []model.CourseCode {
	return collect(g.prereqsOf, code)
}

// UnlockedBy returns every course downstream of code: all courses whose
// prerequisite chain mentions it, sorted for stable output.
func (g *Graph) UnlockedBy(code model.CourseCode) []model.CourseCode {
	return collect(g.unlocks, code)
}

func collect(edges map[model.CourseCode][]model.CourseCode, start model.CourseCode) []model.CourseCode {
	seen := map[model.CourseCode]struct{}{start: {}}
	var out []model.CourseCode

	stack := append([]model.CourseCode(nil), edges[start]...)
	for len(stack) > 0 {
		code := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
		stack = append(stack, edges[code]...)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
