package model

import "sort"

// Transcript is the set of courses a student has completed. Membership is
// case-insensitive; entries are canonicalized on the way in.
type Transcript map[CourseCode]struct{}

// NewTranscript builds a transcript from raw course-code strings.
func NewTranscript(codes ...string) Transcript {
	t := make(Transcript, len(codes))
	for _, raw := range codes {
		t[CanonicalCode(raw)] = struct{}{}
	}
	return t
}

// Contains reports whether the course has been completed.
func (t Transcript) Contains(code CourseCode) bool {
	_, ok := t[CanonicalCode(string(code))]
	return ok
}

// Add records a completed course.
func (t Transcript) Add(code CourseCode) {
	t[CanonicalCode(string(code))] = struct{}{}
}

// Codes returns the completed courses in sorted order for stable output.
func (t Transcript) Codes() []CourseCode {
	codes := make([]CourseCode, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
