package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCourseCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CourseCode
		wantErr bool
	}{
		{
			name:  "already canonical",
			input: "CMPT-300",
			want:  "CMPT-300",
		},
		{
			name:  "space separator",
			input: "CMPT 300",
			want:  "CMPT-300",
		},
		{
			name:  "lowercase no separator",
			input: "cmpt300",
			want:  "CMPT-300",
		},
		{
			name:  "number with suffix letter",
			input: "math 154w",
			want:  "MATH-154W",
		},
		{
			name:  "two letter department",
			input: "BUS 251",
			want:  "BUS-251",
		},
		{
			name:    "missing number",
			input:   "CMPT",
			wantErr: true,
		},
		{
			name:    "too many digits",
			input:   "CMPT 1200",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCourseCode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCourseCodeParts(t *testing.T) {
	code := NewCourseCode("cmpt", "120")
	assert.Equal(t, CourseCode("CMPT-120"), code)
	assert.Equal(t, "CMPT", code.Dept())
	assert.Equal(t, "120", code.Number())
	assert.True(t, code.Valid())
}

func TestCourseValidate(t *testing.T) {
	valid := Course{
		Code:    "CMPT-120",
		Dept:    "CMPT",
		Number:  "120",
		Title:   "Introduction to Computing Science and Programming I",
		Credits: 3,
	}
	require.NoError(t, valid.Validate())

	mismatched := valid
	mismatched.Number = "125"
	assert.Error(t, mismatched.Validate())

	badCode := valid
	badCode.Code = "CMPT 120"
	assert.Error(t, badCode.Validate())
}

func TestTranscript(t *testing.T) {
	transcript := NewTranscript("cmpt 120", "MATH-151")

	assert.True(t, transcript.Contains("CMPT-120"))
	assert.True(t, transcript.Contains("cmpt-120"), "membership is case-insensitive")
	assert.False(t, transcript.Contains("CMPT-125"))

	transcript.Add("macm 101")
	assert.True(t, transcript.Contains("MACM-101"))

	assert.Equal(t, []CourseCode{"CMPT-120", "MACM-101", "MATH-151"}, transcript.Codes())
}

func TestVerdictMissingSet(t *testing.T) {
	v := EligibilityVerdict{
		Missing: []CourseCode{"CMPT-120", "MACM-101", "CMPT-120"},
	}
	assert.Equal(t, []CourseCode{"CMPT-120", "MACM-101"}, v.MissingSet())

	empty := EligibilityVerdict{Satisfied: true}
	assert.Nil(t, empty.MissingSet())
}
