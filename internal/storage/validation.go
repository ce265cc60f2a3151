package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coursepath/coursepath/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrEmptySlice    = errors.New("slice cannot be empty")
	ErrInvalidCourse = errors.New("invalid course")
	ErrInvalidCode   = errors.New("invalid course code")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateCode ensures a course code is canonical before it reaches a query.
func validateCode(code model.CourseCode) error {
	if !code.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	return nil
}

// validateCourses validates a slice of courses destined for the catalog.
func validateCourses(courses []model.Course) error {
	if len(courses) == 0 {
		return fmt.Errorf("%w: courses", ErrEmptySlice)
	}
	for i := range courses {
		if err := courses[i].Validate(); err != nil {
			return fmt.Errorf("%w: at index %d: %w", ErrInvalidCourse, i, err)
		}
	}
	return nil
}
