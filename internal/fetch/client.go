// Package fetch retrieves course data from SFU's public course-outlines API
// and extracts prerequisite text from course descriptions.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/coursepath/coursepath/internal/common"
	"github.com/coursepath/coursepath/internal/model"
)

// DefaultBaseURL is SFU's public course-outlines endpoint.
const DefaultBaseURL = "https://www.sfu.ca/bin/wcm/course-outlines"

const defaultUserAgent = "coursepath/1.0 (educational project)"

// Client talks to the course-outlines API. Requests are throttled to stay
// polite with the public endpoint and retried on transient failures.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	delay      time.Duration
	lastReq    time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at an alternate endpoint, primarily for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithDelay sets the minimum pause between requests.
func WithDelay(d time.Duration) Option {
	return func(c *Client) { c.delay = d }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a course-outlines API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    DefaultBaseURL,
		userAgent:  defaultUserAgent,
		delay:      500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// option is one entry of the list responses the API returns at every level
// (terms, departments, course numbers, sections).
type option struct {
	Value string `json:"value"`
	Text  string `json:"text"`
	Title string `json:"title"`
}

// outline is the detailed payload for one course section.
type outline struct {
	Info outlineInfo `json:"info"`
}

type outlineInfo struct {
	Dept          string `json:"dept"`
	Number        string `json:"number"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Prerequisites string `json:"prerequisites"`
	Units         string `json:"units"`
}

// get fetches baseURL?params and decodes the JSON response into v.
func (c *Client) get(ctx context.Context, params string, v any) error {
	if err := c.throttle(ctx); err != nil {
		return err
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: true}
		}
		defer func() { _ = resp.Body.Close() }()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("%s: %w", params, common.ErrRateLimit)
		case resp.StatusCode >= 500:
			return &common.RetryableError{
				Err:       fmt.Errorf("%s: status %d", params, resp.StatusCode),
				Retryable: true,
			}
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("%w: %s: status %d", common.ErrFetchFailed, params, resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: true}
		}
		return json.Unmarshal(body, v)
	}

	return common.WithRetry(ctx, operation, common.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: c.delay,
	})
}

// throttle enforces the inter-request delay.
func (c *Client) throttle(ctx context.Context) error {
	wait := c.delay - time.Since(c.lastReq)
	if wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	c.lastReq = time.Now()
	return nil
}

func values(opts []option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.Value != "" {
			out = append(out, o.Value)
		}
	}
	return out
}

// Terms lists the terms available for a year, e.g. "spring", "fall".
func (c *Client) Terms(ctx context.Context, year string) ([]string, error) {
	var opts []option
	if err := c.get(ctx, year, &opts); err != nil {
		return nil, fmt.Errorf("terms for %s: %w", year, err)
	}
	return values(opts), nil
}

// Departments lists the departments offering courses in a term.
func (c *Client) Departments(ctx context.Context, year, term string) ([]string, error) {
	var opts []option
	if err := c.get(ctx, year+"/"+term, &opts); err != nil {
		return nil, fmt.Errorf("departments for %s/%s: %w", year, term, err)
	}
	return values(opts), nil
}

// CourseNumbers lists the catalog numbers a department offers in a term.
func (c *Client) CourseNumbers(ctx context.Context, year, term, dept string) ([]string, error) {
	var opts []option
	if err := c.get(ctx, year+"/"+term+"/"+dept, &opts); err != nil {
		return nil, fmt.Errorf("courses for %s/%s/%s: %w", year, term, dept, err)
	}
	return values(opts), nil
}

// Sections lists the sections of one course in a term.
func (c *Client) Sections(ctx context.Context, year, term, dept, number string) ([]string, error) {
	var opts []option
	if err := c.get(ctx, year+"/"+term+"/"+dept+"/"+number, &opts); err != nil {
		return nil, fmt.Errorf("sections for %s %s: %w", dept, number, err)
	}
	return values(opts), nil
}

// CourseDetail fetches the outline of one section and maps it to a catalog
// entry. The prerequisite text comes from the outline's own prerequisites
// field when present, otherwise it is extracted from the long description.
func (c *Client) CourseDetail(ctx context.Context, year, term, dept, number, section string) (*model.Course, error) {
	var o outline
	path := year + "/" + term + "/" + dept + "/" + number + "/" + section
	if err := c.get(ctx, path, &o); err != nil {
		return nil, fmt.Errorf("detail for %s %s: %w", dept, number, err)
	}

	if o.Info.Dept == "" || o.Info.Number == "" {
		return nil, fmt.Errorf("%w: %s: outline has no course info", common.ErrFetchFailed, path)
	}

	prereq := o.Info.Prerequisites
	if prereq == "" {
		prereq = ExtractPrereqText(o.Info.Description)
	}

	credits := 3
	if n, err := strconv.Atoi(o.Info.Units); err == nil {
		credits = n
	}

	return &model.Course{
		Code:        model.NewCourseCode(o.Info.Dept, o.Info.Number),
		Dept:        o.Info.Dept,
		Number:      o.Info.Number,
		Title:       o.Info.Title,
		Description: o.Info.Description,
		PrereqRaw:   prereq,
		Credits:     credits,
	}, nil
}

// CrawlDepartment fetches every course a department offers in a term, using
// the first listed section of each course for its outline. onCourse, when
// non-nil, is called once per course fetched, successful or not.
func (c *Client) CrawlDepartment(ctx context.Context, year, term, dept string, onCourse func()) ([]model.Course, error) {
	numbers, err := c.CourseNumbers(ctx, year, term, dept)
	if err != nil {
		return nil, err
	}

	var courses []model.Course
	for _, number := range numbers {
		if onCourse != nil {
			onCourse()
		}

		sections, err := c.Sections(ctx, year, term, dept, number)
		if err != nil || len(sections) == 0 {
			common.LogDebug("skipping course with no sections", common.Fields{
				"dept": dept, "number": number, "error": err,
			})
			continue
		}

		course, err := c.CourseDetail(ctx, year, term, dept, number, sections[0])
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			common.LogError(err, "failed to fetch course detail", common.Fields{
				"dept": dept, "number": number,
			})
			continue
		}
		courses = append(courses, *course)
	}
	return courses, nil
}
