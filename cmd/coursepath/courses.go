package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/coursepath/coursepath/internal/cli"
	"github.com/coursepath/coursepath/internal/model"
	"github.com/coursepath/coursepath/internal/prereq"
)

func coursesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse the local course catalog",
	}

	cmd.AddCommand(listCoursesCmd())
	cmd.AddCommand(showCourseCmd())

	return cmd
}

func listCoursesCmd() *cobra.Command {
	var dept string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			courses, err := store.ListCourses(ctx, dept)
			if err != nil {
				return fmt.Errorf("failed to list courses: %w", err)
			}

			if len(courses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No courses found. Use 'coursepath fetch' or 'coursepath import' to load a catalog."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				headerStyle.Render("Course"),
				headerStyle.Render("Title"),
				headerStyle.Render("Prerequisites"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 40),
				strings.Repeat("-", 40))

			for _, course := range courses {
				prereqText := course.PrereqRaw
				if prereqText == "" {
					prereqText = cli.SubtleStyle.Render("(none)")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", course.Code, course.Title, prereqText)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dept, "dept", "", "restrict to one department, e.g. CMPT")
	return cmd
}

func showCourseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <course>",
		Short: "Show one course with its parsed prerequisite tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			code, err := model.ParseCourseCode(args[0])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			course, err := store.GetCourse(ctx, code)
			if err != nil {
				return fmt.Errorf("failed to get course: %w", err)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("%s: %s (%d credits)", course.Code, course.Title, course.Credits)))
			if course.Description != "" {
				fmt.Println(course.Description)
				fmt.Println()
			}

			if course.PrereqRaw == "" {
				fmt.Println(cli.SubtleStyle.Render("No prerequisites."))
				return nil
			}

			fmt.Println(cli.BoldStyle.Render("Prerequisites: ") + course.PrereqRaw)
			fmt.Println(cli.RenderTree(prereq.Parse(course.PrereqRaw), model.NewTranscript()))
			return nil
		},
	}
}
