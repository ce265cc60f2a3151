package prereq

import (
	"regexp"

	"github.com/coursepath/coursepath/internal/model"
)

var (
	// A full course reference: 2-4 uppercase letters, then a 3-digit catalog
	// number with an optional trailing letter, e.g. "CMPT 120" or "MATH-154W".
	coursePattern = regexp.MustCompile(`\b([A-Z]{2,4})[\s-](\d{3}[A-Z]?)\b`)

	// A bare catalog number, which inherits its department from context
	// ("CMPT 120 or 125").
	numberPattern = regexp.MustCompile(`\b(\d{3}[A-Z]?)\b`)
)

// ExtractCourses scans normalized text for full DEPT-NUMBER references and
// returns them canonicalized, de-duplicated, in order of first appearance.
// Bare numbers are not resolved here; that requires the department context
// the parser carries while splitting. An empty result is the signal that the
// text holds no recognizable prerequisites.
func ExtractCourses(text string) []model.CourseCode {
	var out []model.CourseCode
	seen := make(map[model.CourseCode]struct{})
	for _, m := range coursePattern.FindAllStringSubmatch(text, -1) {
		code := model.NewCourseCode(m[1], m[2])
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// scanCourses extracts every course reference from text, resolving bare
// catalog numbers against the most recently seen department: first any
// department named earlier in the same text, otherwise the dept carried in
// from the surrounding clause. It returns the codes in reading order plus the
// department in effect after the scan.
func scanCourses(text, dept string) ([]model.CourseCode, string) {
	full := coursePattern.FindAllStringSubmatchIndex(text, -1)
	bare := numberPattern.FindAllStringSubmatchIndex(text, -1)

	var out []model.CourseCode
	seen := make(map[model.CourseCode]struct{})
	add := func(code model.CourseCode) {
		if _, ok := seen[code]; ok {
			return
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}

	fi := 0
	for _, num := range bare {
		// Advance past full matches that end before this number starts.
		for fi < len(full) && full[fi][1] <= num[0] {
			m := full[fi]
			dept = text[m[2]:m[3]]
			add(model.NewCourseCode(dept, text[m[4]:m[5]]))
			fi++
		}
		// Skip numbers that are the tail of a full DEPT-NUMBER match.
		if fi < len(full) && num[0] >= full[fi][0] && num[1] <= full[fi][1] {
			continue
		}
		if dept == "" {
			continue
		}
		add(model.NewCourseCode(dept, text[num[2]:num[3]]))
	}
	for ; fi < len(full); fi++ {
		m := full[fi]
		dept = text[m[2]:m[3]]
		add(model.NewCourseCode(dept, text[m[4]:m[5]]))
	}

	return out, dept
}
