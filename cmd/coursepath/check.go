package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursepath/coursepath/internal/catalog"
	"github.com/coursepath/coursepath/internal/cli"
	"github.com/coursepath/coursepath/internal/model"
)

func checkCmd() *cobra.Command {
	var extraCourses []string

	cmd := &cobra.Command{
		Use:   "check <course>",
		Short: "Check whether your transcript satisfies a course's prerequisites",
		Long: `Evaluate a course's prerequisite tree against your saved transcript and
report the verdict with any missing courses. Use --with to try hypothetical
transcripts without saving them.`,
		Args: cobra.ExactArgs(1),
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

			completed, err := loadTranscript(ctx, store, extraCourses)
			if err != nil {
				return err
			}

			result, err := catalog.NewAdvisor(store).Check(ctx, code, completed)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", code, err)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("%s: %s", result.Course.Code, result.Course.Title)))
			fmt.Println(cli.RenderTree(result.Tree, completed))
			fmt.Println()
			fmt.Println(cli.RenderVerdict(code, result.Verdict))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&extraCourses, "with", nil, "treat these courses as completed for this check")
	return cmd
}
