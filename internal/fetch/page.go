package fetch

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/coursepath/coursepath/internal/common"
)

// OutlinePage holds the fields scraped from a rendered course-outline page.
// Used when a course is absent from the JSON API, typically for older terms.
type OutlinePage struct {
	Title         string
	Description   string
	Prerequisites string
}

// ParseOutlinePage scrapes title, description, and prerequisite text from a
// course-outline HTML page. The outline renders course facts as labelled rows
// of a details table.
func ParseOutlinePage(r io.Reader) (*OutlinePage, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrFetchFailed, err)
	}

	page := &OutlinePage{
		Title:       strings.TrimSpace(document.Find("h1.course-title").First().Text()),
		Description: strings.TrimSpace(document.Find("div.course-description").First().Text()),
	}

	document.Find("table.course-details tr").Each(func(_ int, row *goquery.Selection) {
		label := strings.TrimSpace(row.Find("th").First().Text())
		if !strings.HasPrefix(strings.ToLower(label), "prerequisite") {
			return
		}
		cell, err := row.Find("td").First().Html()
		if err != nil {
			return
		}
		page.Prerequisites = strings.TrimSpace(html.UnescapeString(cell))
	})

	// Older outlines fold the prerequisite clause into the description
	// instead of giving it its own row.
	if page.Prerequisites == "" {
		page.Prerequisites = ExtractPrereqText(page.Description)
	}

	if page.Title == "" && page.Description == "" {
		return nil, fmt.Errorf("%w: page has no course content", common.ErrFetchFailed)
	}
	return page, nil
}
