// Package model defines the core domain types shared across the application.
package model

import (
	"fmt"
	"regexp"
	"strings"
)

// CourseCode is a canonical course identifier in DEPT-NUMBER form,
// e.g. "CMPT-120" or "MATH-154". Codes are stored uppercase; comparisons
// elsewhere treat the raw form case-insensitively.
type CourseCode string

var courseCodePattern = regexp.MustCompile(`^[A-Z]{2,4}-\d{3}[A-Z]?$`)

// NewCourseCode builds a canonical code from a department and catalog number.
func NewCourseCode(dept, number string) CourseCode {
	return CourseCode(strings.ToUpper(dept) + "-" + strings.ToUpper(number))
}

// ParseCourseCode canonicalizes a user-supplied course identifier.
// It accepts "CMPT 300", "cmpt300", and "CMPT-300" interchangeably.
func ParseCourseCode(raw string) (CourseCode, error) {
	code := CanonicalCode(raw)
	if !courseCodePattern.MatchString(string(code)) {
		return "", fmt.Errorf("invalid course code %q", raw)
	}
	return code, nil
}

// CanonicalCode uppercases a raw identifier and inserts the hyphen between
// the department and the catalog number if it is missing. It does not
// validate; use ParseCourseCode when rejecting bad input matters.
func CanonicalCode(raw string) CourseCode {
	s := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	if !strings.Contains(s, "-") {
		for i, r := range s {
			if r >= '0' && r <= '9' {
				s = s[:i] + "-" + s[i:]
				break
			}
		}
	}
	return CourseCode(s)
}

// Dept returns the department portion of the code.
func (c CourseCode) Dept() string {
	dept, _, _ := strings.Cut(string(c), "-")
	return dept
}

// Number returns the catalog-number portion of the code.
func (c CourseCode) Number() string {
	_, number, _ := strings.Cut(string(c), "-")
	return number
}

// Valid reports whether the code is in canonical DEPT-NUMBER form.
func (c CourseCode) Valid() bool {
	return courseCodePattern.MatchString(string(c))
}

func (c CourseCode) String() string {
	return string(c)
}

// Course represents one catalog entry.
type Course struct {
	Code        CourseCode
	Dept        string
	Number      string
	Title       string
	Description string
	PrereqRaw   string
	Credits     int
}

// Validate ensures the Course has valid data before it touches storage.
func (c *Course) Validate() error {
	if !c.Code.Valid() {
		return fmt.Errorf("course code %q is not canonical", c.Code)
	}
	if c.Dept == "" || c.Number == "" {
		return fmt.Errorf("course %s is missing dept or number", c.Code)
	}
	if c.Code != NewCourseCode(c.Dept, c.Number) {
		return fmt.Errorf("course code %q does not match dept %q number %q", c.Code, c.Dept, c.Number)
	}
	if c.Credits < 0 {
		return fmt.Errorf("course %s has negative credits", c.Code)
	}
	return nil
}
