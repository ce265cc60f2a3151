// Package testutil provides shared test helpers: in-memory databases and
// canned catalog fixtures.
package testutil

import (
	"context"
	"testing"

	"github.com/coursepath/coursepath/internal/model"
	"github.com/coursepath/coursepath/internal/storage"
)

// SetupTestDB creates a migrated in-memory database seeded with the given
// courses, registering cleanup with the test.
func SetupTestDB(t *testing.T, courses ...model.Course) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if len(courses) > 0 {
		if err := store.SaveCourses(ctx, courses); err != nil {
			t.Fatalf("failed to seed courses: %v", err)
		}
	}

	return store
}

// IntroCourses is a small slice of the lower-division catalog with realistic
// prerequisite text, enough to exercise parsing, filtering, and the graph.
func IntroCourses() []model.Course {
	return []model.Course{
		{
			Code: "CMPT-120", Dept: "CMPT", Number: "120", Credits: 3,
			Title: "Introduction to Computing Science and Programming I",
		},
		{
			Code: "CMPT-125", Dept: "CMPT", Number: "125", Credits: 3,
			Title:     "Introduction to Computing Science and Programming II",
			PrereqRaw: "CMPT 120, with a minimum grade of C-.",
		},
		{
			Code: "MACM-101", Dept: "MACM", Number: "101", Credits: 3,
			Title: "Discrete Mathematics I",
		},
		{
			Code: "MATH-151", Dept: "MATH", Number: "151", Credits: 3,
			Title: "Calculus I",
		},
		{
			Code: "CMPT-225", Dept: "CMPT", Number: "225", Credits: 3,
			Title:     "Data Structures and Programming",
			PrereqRaw: "(CMPT 125 or CMPT 135) and MACM 101, all with a minimum grade of C-.",
		},
		{
			Code: "CMPT-276", Dept: "CMPT", Number: "276", Credits: 3,
			Title:     "Introduction to Software Engineering",
			PrereqRaw: "One W course, CMPT 225, and (MACM 101 or ENSC 251).",
		},
	}
}
