package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursepath/coursepath/internal/cli"
	"github.com/coursepath/coursepath/internal/model"
	"github.com/coursepath/coursepath/internal/prereq"
)

func parseCmd() *cobra.Command {
	var showCourses bool

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse prerequisite text into a requirement tree",
		Long: `Normalize a prerequisite sentence and parse it into its AND/OR
requirement tree. Useful for inspecting how catalog text is interpreted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			raw := args[0]

			expr := prereq.Parse(raw)
			if expr == nil {
				fmt.Println(cli.SubtleStyle.Render("(no recognizable prerequisites)"))
				return nil
			}

			fmt.Println(cli.BoldStyle.Render(expr.String()))
			fmt.Println(cli.RenderTree(expr, model.NewTranscript()))

			if showCourses {
				fmt.Println()
				for _, code := range prereq.Courses(expr) {
					fmt.Println(code)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showCourses, "courses", false, "also list the distinct courses referenced")
	return cmd
}
