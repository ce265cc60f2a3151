package fetch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursepath/coursepath/internal/common"
)

const outlinePageFixture = `<!DOCTYPE html>
<html>
<body>
  <h1 class="course-title">CMPT 225 - Data Structures &amp; Programming</h1>
  <div class="course-description">
    Introduction to a variety of practical and important data structures.
  </div>
  <table class="course-details">
    <tr><th>Campus</th><td>Burnaby</td></tr>
    <tr><th>Prerequisite</th><td>(CMPT 125 or CMPT 135) &amp; MACM 101</td></tr>
    <tr><th>Units</th><td>3</td></tr>
  </table>
</body>
</html>`

func TestParseOutlinePage(t *testing.T) {
	page, err := ParseOutlinePage(strings.NewReader(outlinePageFixture))
	require.NoError(t, err)

	assert.Equal(t, "CMPT 225 - Data Structures & Programming", page.Title)
	assert.Equal(t, "Introduction to a variety of practical and important data structures.", page.Description)
	assert.Equal(t, "(CMPT 125 or CMPT 135) & MACM 101", page.Prerequisites)
}

func TestParseOutlinePageDescriptionFallback(t *testing.T) {
	const fixture = `<html><body>
	  <h1 class="course-title">CMPT 120 - Introduction to Computing</h1>
	  <div class="course-description">An elementary introduction. Prerequisite: BC Math 12 or equivalent.</div>
	</body></html>`

	page, err := ParseOutlinePage(strings.NewReader(fixture))
	require.NoError(t, err)
	assert.Equal(t, "BC Math 12 or equivalent.", page.Prerequisites)
}

func TestParseOutlinePageEmpty(t *testing.T) {
	_, err := ParseOutlinePage(strings.NewReader("<html><body></body></html>"))
	require.ErrorIs(t, err, common.ErrFetchFailed)
}
