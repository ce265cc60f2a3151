package prereq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursepath/coursepath/internal/model"
)

func course(code model.CourseCode) Expr { return Course{Code: code} }

func TestParseNoPrerequisites(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"None.",
		"Permission of the instructor.",
		"60 units including two 300-division history courses", // no dept token
	}
	for _, input := range inputs {
		assert.Nil(t, Parse(input), "input %q", input)
	}
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Expr
	}{
		{
			name:  "single course",
			input: "CMPT 120",
			want:  course("CMPT-120"),
		},
		{
			name:  "simple or",
			input: "CMPT 120 or CMPT 125",
			want:  Or{Children: []Expr{course("CMPT-120"), course("CMPT-125")}},
		},
		{
			name:  "simple and",
			input: "MATH 151 and MACM 101",
			want:  And{Children: []Expr{course("MATH-151"), course("MACM-101")}},
		},
		{
			name:  "implicit department across or",
			input: "CMPT 120 or 125",
			want:  Or{Children: []Expr{course("CMPT-120"), course("CMPT-125")}},
		},
		{
			name:  "shorthand or chain",
			input: "MATH 151 or 150 or 154",
			want: Or{Children: []Expr{
				course("MATH-151"), course("MATH-150"), course("MATH-154"),
			}},
		},
		{
			name:  "comma as and",
			input: "CMPT 120, MACM 101",
			want:  And{Children: []Expr{course("CMPT-120"), course("MACM-101")}},
		},
		{
			name:  "comma becomes or when an or is present",
			input: "CMPT 120, 125 or 130",
			want: Or{Children: []Expr{
				course("CMPT-120"), course("CMPT-125"), course("CMPT-130"),
			}},
		},
		{
			name: "and splits before comma",
			// The catalog's flat "A, B and C" reads as (A and B) and C: the
			// "and" split has top priority, then the left segment's comma
			// falls through to the AND rule.
			input: "CMPT 120, MACM 101 and MATH 151",
			want: And{Children: []Expr{
				And{Children: []Expr{course("CMPT-120"), course("MACM-101")}},
				course("MATH-151"),
			}},
		},
		{
			name:  "parenthesized group",
			input: "(CMPT 125 or CMPT 135) and MACM 101",
			want: And{Children: []Expr{
				Or{Children: []Expr{course("CMPT-125"), course("CMPT-135")}},
				course("MACM-101"),
			}},
		},
		{
			name:  "comma before parenthesized group",
			input: "CMPT 120, and (MATH 150 or MATH 151)",
			want: And{Children: []Expr{
				course("CMPT-120"),
				Or{Children: []Expr{course("MATH-150"), course("MATH-151")}},
			}},
		},
		{
			name:  "redundant outer parens stripped",
			input: "(CMPT 120 and MACM 101)",
			want:  And{Children: []Expr{course("CMPT-120"), course("MACM-101")}},
		},
		{
			name:  "grade clause stripped before parsing",
			input: "CMPT 125 and MACM 101, all with a minimum grade of C-.",
			want:  And{Children: []Expr{course("CMPT-125"), course("MACM-101")}},
		},
		{
			name:  "unparseable segment dropped",
			input: "CMPT 300 and permission of the instructor",
			want:  course("CMPT-300"),
		},
		{
			name: "unbalanced parens fail open",
			// No split point ever reaches depth zero, so the whole string is
			// one atom and every recoverable code becomes an alternative.
			input: "((CMPT 120 or 125) and MACM 101",
			want: Or{Children: []Expr{
				course("CMPT-120"), course("CMPT-125"), course("MACM-101"),
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestParseRealCatalogEntries(t *testing.T) {
	// CMPT 210's published prerequisite line.
	expr := Parse("MACM 101, MATH 152, CMPT 125 or CMPT 135, and (MATH 240 or MATH 232)")
	require.NotNil(t, expr)

	assert.Equal(t, []model.CourseCode{
		"MACM-101", "MATH-152", "CMPT-125", "CMPT-135", "MATH-240", "MATH-232",
	}, Courses(expr))

	// The left of the "and" carries an or, so its commas read as OR options;
	// either algebra course completes the right side.
	done := model.NewTranscript("MACM-101", "MATH-240")
	assert.True(t, Evaluate(expr, done).Satisfied)

	missingAlgebra := model.NewTranscript("MACM-101")
	verdict := Evaluate(expr, missingAlgebra)
	assert.False(t, verdict.Satisfied)
}

func TestExprString(t *testing.T) {
	expr := Parse("CMPT 120, and (MATH 150 or MATH 151)")
	require.NotNil(t, expr)
	assert.Equal(t, "CMPT-120 and (MATH-150 or MATH-151)", expr.String())

	nested := Parse("(CMPT 125 or CMPT 135) and MACM 101")
	require.NotNil(t, nested)
	assert.Equal(t, "(CMPT-125 or CMPT-135) and MACM-101", nested.String())
}

func TestSplitTopLevel(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		delim string
		want  []string
	}{
		{
			name:  "plain split",
			text:  "A 100 and B 200",
			delim: " and ",
			want:  []string{"A 100", "B 200"},
		},
		{
			name:  "delimiter inside parens ignored",
			text:  "(A 100 and B 200) and C 300",
			delim: " and ",
			want:  []string{"(A 100 and B 200)", "C 300"},
		},
		{
			name:  "no delimiter",
			text:  "A 100",
			delim: ",",
			want:  []string{"A 100"},
		},
		{
			name:  "trailing delimiter dropped",
			text:  "A 100,",
			delim: ",",
			want:  []string{"A 100"},
		},
		{
			name:  "stray close paren does not underflow",
			text:  "A 100) and B 200",
			delim: " and ",
			want:  []string{"A 100)", "B 200"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitTopLevel(tt.text, tt.delim))
		})
	}
}

func TestStripOuterParens(t *testing.T) {
	inner, ok := stripOuterParens("(CMPT 120 or 125)")
	assert.True(t, ok)
	assert.Equal(t, "CMPT 120 or 125", inner)

	// Depth returns to zero before the end, so this is not one outer pair.
	_, ok = stripOuterParens("(CMPT 120) and (CMPT 125)")
	assert.False(t, ok)

	_, ok = stripOuterParens("(CMPT 120")
	assert.False(t, ok)

	_, ok = stripOuterParens("CMPT 120")
	assert.False(t, ok)
}
