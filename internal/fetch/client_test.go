package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursepath/coursepath/internal/common"
	"github.com/coursepath/coursepath/internal/model"
)

// outlineAPIStub mimics the course-outlines endpoint, keyed by the query
// string the real API uses as a path.
func outlineAPIStub(t *testing.T) *httptest.Server {
	t.Helper()

	responses := map[string]string{
		"2025": `[{"text":"Spring 2025","value":"spring"},{"text":"Fall 2025","value":"fall"}]`,
		"2025/fall": `[{"text":"CMPT","value":"cmpt"},{"text":"MACM","value":"macm"}]`,
		"2025/fall/cmpt": `[{"text":"120","value":"120","title":"Introduction to Computing Science"},
			{"text":"225","value":"225","title":"Data Structures and Programming"}]`,
		"2025/fall/cmpt/120": `[{"text":"D100","value":"d100"}]`,
		"2025/fall/cmpt/225": `[{"text":"D100","value":"d100"},{"text":"D200","value":"d200"}]`,
		"2025/fall/cmpt/120/d100": `{"info":{"dept":"CMPT","number":"120",
			"title":"Introduction to Computing Science and Programming I",
			"description":"An elementary introduction to computing science and computer programming.",
			"prerequisites":"","units":"3"}}`,
		"2025/fall/cmpt/225/d100": `{"info":{"dept":"CMPT","number":"225",
			"title":"Data Structures and Programming",
			"description":"Introduction to a variety of practical and important data structures.",
			"prerequisites":"(CMPT 125 or CMPT 135) and MACM 101, all with a minimum grade of C-.",
			"units":"3"}}`,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.RawQuery]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	return NewClient(
		WithBaseURL(server.URL),
		WithDelay(time.Millisecond),
		WithHTTPClient(server.Client()),
	)
}

func TestClientListings(t *testing.T) {
	server := outlineAPIStub(t)
	client := newTestClient(t, server)
	ctx := context.Background()

	terms, err := client.Terms(ctx, "2025")
	require.NoError(t, err)
	assert.Equal(t, []string{"spring", "fall"}, terms)

	depts, err := client.Departments(ctx, "2025", "fall")
	require.NoError(t, err)
	assert.Equal(t, []string{"cmpt", "macm"}, depts)

	numbers, err := client.CourseNumbers(ctx, "2025", "fall", "cmpt")
	require.NoError(t, err)
	assert.Equal(t, []string{"120", "225"}, numbers)

	sections, err := client.Sections(ctx, "2025", "fall", "cmpt", "225")
	require.NoError(t, err)
	assert.Equal(t, []string{"d100", "d200"}, sections)
}

func TestClientCourseDetail(t *testing.T) {
	server := outlineAPIStub(t)
	client := newTestClient(t, server)

	course, err := client.CourseDetail(context.Background(), "2025", "fall", "cmpt", "225", "d100")
	require.NoError(t, err)

	assert.Equal(t, model.CourseCode("CMPT-225"), course.Code)
	assert.Equal(t, "CMPT", course.Dept)
	assert.Equal(t, "225", course.Number)
	assert.Equal(t, "Data Structures and Programming", course.Title)
	assert.Equal(t, "(CMPT 125 or CMPT 135) and MACM 101, all with a minimum grade of C-.", course.PrereqRaw)
	assert.Equal(t, 3, course.Credits)
}

func TestClientCourseDetailNotFound(t *testing.T) {
	server := outlineAPIStub(t)
	client := newTestClient(t, server)

	_, err := client.CourseDetail(context.Background(), "2025", "fall", "cmpt", "999", "d100")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrFetchFailed)
}

func TestClientCrawlDepartment(t *testing.T) {
	server := outlineAPIStub(t)
	client := newTestClient(t, server)

	var seen atomic.Int32
	courses, err := client.CrawlDepartment(context.Background(), "2025", "fall", "cmpt", func() {
		seen.Add(1)
	})
	require.NoError(t, err)

	require.Len(t, courses, 2)
	assert.Equal(t, model.CourseCode("CMPT-120"), courses[0].Code)
	assert.Equal(t, model.CourseCode("CMPT-225"), courses[1].Code)
	assert.Empty(t, courses[0].PrereqRaw)
	assert.Equal(t, int32(2), seen.Load())
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[{"text":"Fall 2025","value":"fall"}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	terms, err := client.Terms(context.Background(), "2025")
	require.NoError(t, err)
	assert.Equal(t, []string{"fall"}, terms)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientRateLimitExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Terms(context.Background(), "2025")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrRateLimit)
	assert.ErrorIs(t, err, common.ErrMaxRetries)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientHonorsContextCancellation(t *testing.T) {
	server := outlineAPIStub(t)
	client := NewClient(
		WithBaseURL(server.URL),
		WithDelay(time.Minute),
		WithHTTPClient(server.Client()),
	)
	// First request is free; the second waits out the delay and should
	// abort when the context is cancelled.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Terms(ctx, "2025")
	require.NoError(t, err)

	_, err = client.Terms(ctx, "2025")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
