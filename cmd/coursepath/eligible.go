package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/coursepath/coursepath/internal/catalog"
	"github.com/coursepath/coursepath/internal/cli"
)

func eligibleCmd() *cobra.Command {
	var (
		dept         string
		extraCourses []string
		suggest      bool
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "eligible",
		Short: "List courses your transcript qualifies you for",
		Long: `Scan the catalog and list every course whose prerequisites your
transcript satisfies, skipping courses you have already taken. With
--suggest, also include near-misses ordered by how close you are.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			completed, err := loadTranscript(ctx, store, extraCourses)
			if err != nil {
				return err
			}

			advisor := catalog.NewAdvisor(store)

			var results []catalog.CheckResult
			if suggest {
				results, err = advisor.Suggest(ctx, completed, limit)
			} else {
				results, err = advisor.Eligible(ctx, dept, completed)
			}
			if err != nil {
				return fmt.Errorf("failed to scan catalog: %w", err)
			}

			if len(results) == 0 {
				fmt.Println(cli.InfoStyle.Render("No courses found. Use 'coursepath fetch' or 'coursepath import' to load a catalog."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				headerStyle.Render("Course"),
				headerStyle.Render("Title"),
				headerStyle.Render("Status"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 40),
				strings.Repeat("-", 20))

			for _, r := range results {
				status := cli.SuccessStyle.Render(cli.SuccessIcon + " ready")
				if !r.Verdict.Satisfied {
					needs := make([]string, 0, len(r.Verdict.Missing))
					for _, m := range r.Verdict.MissingSet() {
						needs = append(needs, string(m))
					}
					status = cli.WarningStyle.Render("needs " + strings.Join(needs, ", "))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Course.Code, r.Course.Title, status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dept, "dept", "", "restrict to one department, e.g. CMPT")
	cmd.Flags().StringSliceVar(&extraCourses, "with", nil, "treat these courses as completed for this scan")
	cmd.Flags().BoolVar(&suggest, "suggest", false, "include near-misses ordered by fewest missing prerequisites")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum suggestions to show (with --suggest)")
	return cmd
}
