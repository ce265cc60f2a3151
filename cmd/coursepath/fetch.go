package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/coursepath/coursepath/internal/cli"
	"github.com/coursepath/coursepath/internal/fetch"
)

func fetchCmd() *cobra.Command {
	var (
		year  string
		term  string
		depts []string
		delay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch course data from the SFU course-outlines API",
		Long: `Crawl the public course-outlines API for the given term and store the
courses in the local catalog. The crawl is throttled; fetching a large
department takes a few minutes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client := fetch.NewClient(fetch.WithDelay(delay))

			if len(depts) == 0 {
				depts, err = client.Departments(ctx, year, term)
				if err != nil {
					return fmt.Errorf("failed to list departments: %w", err)
				}
			}

			total := 0
			for _, dept := range depts {
				bar := progressbar.NewOptions(-1,
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionShowCount(),
					progressbar.OptionSpinnerType(14),
					progressbar.OptionSetDescription(fmt.Sprintf("Fetching %s %s/%s...", dept, year, term)),
				)

				courses, err := client.CrawlDepartment(ctx, year, term, dept, func() {
					_ = bar.Add(1)
				})
				_ = bar.Finish()
				fmt.Fprintln(os.Stderr)
				if err != nil {
					return fmt.Errorf("failed to fetch %s: %w", dept, err)
				}

				if len(courses) == 0 {
					fmt.Println(cli.FormatWarning(fmt.Sprintf("no courses found for %s", dept)))
					continue
				}

				if err := store.SaveCourses(ctx, courses); err != nil {
					return fmt.Errorf("failed to save %s courses: %w", dept, err)
				}
				total += len(courses)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("fetched %d courses across %d departments", total, len(depts))))

			if count, err := store.CourseCount(ctx); err == nil {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("catalog now holds %d courses", count)))
			}
			return nil
		},
	}

	year, term = currentTerm(time.Now())
	cmd.Flags().StringVar(&year, "year", year, "calendar year to fetch")
	cmd.Flags().StringVar(&term, "term", term, "term to fetch (spring, summer, fall)")
	cmd.Flags().StringSliceVar(&depts, "dept", nil, "departments to fetch (default: all)")
	cmd.Flags().DurationVar(&delay, "delay", 500*time.Millisecond, "pause between API requests")
	return cmd
}

// currentTerm maps a date onto SFU's three-term calendar.
func currentTerm(now time.Time) (year, term string) {
	year = fmt.Sprintf("%d", now.Year())
	switch {
	case now.Month() <= time.April:
		term = "spring"
	case now.Month() <= time.August:
		term = "summer"
	default:
		term = "fall"
	}
	return year, term
}
