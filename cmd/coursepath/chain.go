package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursepath/coursepath/internal/catalog"
	"github.com/coursepath/coursepath/internal/cli"
	"github.com/coursepath/coursepath/internal/model"
)

func chainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chain <course>",
		Short: "Show every course a target transitively depends on",
		Long: `Walk the prerequisite graph backwards from a course and list every
course that appears anywhere in its prerequisite ancestry.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraphCmd(cmd, args[0], func(g *catalog.Graph, code model.CourseCode) []model.CourseCode {
				return g.Chain(code)
			}, "has no prerequisites")
		},
	}
}

func unlockedByCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlocked-by <course>",
		Short: "Show every course a completed course helps unlock",
		Long: `Walk the prerequisite graph forwards from a course and list every
course that requires it, directly or through intermediates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraphCmd(cmd, args[0], func(g *catalog.Graph, code model.CourseCode) []model.CourseCode {
				return g.UnlockedBy(code)
			}, "unlocks nothing in the catalog")
		},
	}
}

func runGraphCmd(cmd *cobra.Command, raw string, walk func(*catalog.Graph, model.CourseCode) []model.CourseCode, emptyNote string) error {
	ctx := cmd.Context()

	code, err := model.ParseCourseCode(raw)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	graph, err := catalog.NewAdvisor(store).Graph(ctx)
	if err != nil {
		return fmt.Errorf("failed to build prerequisite graph: %w", err)
	}

	codes := walk(graph, code)
	if len(codes) == 0 {
		fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("%s %s", code, emptyNote)))
		return nil
	}

	for _, c := range codes {
		fmt.Println(c)
	}
	return nil
}
