package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPrereqText(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{
			name: "labelled sentence mid-description",
			description: "Introduction to a variety of practical and important data structures. " +
				"Prerequisite: (CMPT 125 or CMPT 135) and MACM 101. " +
				"Students with credit for CMPT 250 may not take this course.",
			want: "(CMPT 125 or CMPT 135) and MACM 101.",
		},
		{
			name:        "plural label",
			description: "Advanced topics. Prerequisites: CMPT 225 and MATH 151.",
			want:        "CMPT 225 and MATH 151.",
		},
		{
			name:        "mixed case label",
			description: "A survey course. prerequisite: CMPT 120.",
			want:        "CMPT 120.",
		},
		{
			name:        "either prefix stripped",
			description: "Prerequisite: Either CMPT 120 or CMPT 130.",
			want:        "CMPT 120 or CMPT 130.",
		},
		{
			name:        "program qualifier stripped",
			description: "Prerequisite: CMPT 125, for students in an Applied Sciences program.",
			want:        "CMPT 125.",
		},
		{
			name:        "no prerequisite sentence",
			description: "An elementary introduction to computing science and computer programming.",
			want:        "",
		},
		{
			name:        "empty description",
			description: "",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPrereqText(tt.description))
		})
	}
}
