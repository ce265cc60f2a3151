package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursepath/coursepath/internal/cli"
	"github.com/coursepath/coursepath/internal/common"
	"github.com/coursepath/coursepath/internal/model"
)

func transcriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "Manage your completed courses",
	}

	cmd.AddCommand(listTranscriptCmd())
	cmd.AddCommand(addTranscriptCmd())
	cmd.AddCommand(removeTranscriptCmd())

	return cmd
}

func listTranscriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List completed courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			completed, err := store.GetTranscript(ctx)
			if err != nil {
				return fmt.Errorf("failed to load transcript: %w", err)
			}

			if len(completed) == 0 {
				fmt.Println(cli.InfoStyle.Render("Transcript is empty. Use 'coursepath transcript add' to record a course."))
				return nil
			}

			for _, code := range completed.Codes() {
				fmt.Println(cli.SuccessStyle.Render(cli.SuccessIcon + " " + string(code)))
			}
			return nil
		},
	}
}

func addTranscriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <course>...",
		Short: "Record completed courses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			for _, raw := range args {
				code, err := model.ParseCourseCode(raw)
				if err != nil {
					return err
				}

				switch err := store.AddTranscriptCourse(ctx, code); {
				case errors.Is(err, common.ErrDuplicateEntry):
					fmt.Println(cli.FormatWarning(fmt.Sprintf("%s is already on your transcript", code)))
				case err != nil:
					return fmt.Errorf("failed to add %s: %w", code, err)
				default:
					fmt.Println(cli.FormatSuccess(fmt.Sprintf("added %s", code)))
				}
			}
			return nil
		},
	}
}

func removeTranscriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <course>...",
		Short: "Remove courses from your transcript",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			for _, raw := range args {
				code, err := model.ParseCourseCode(raw)
				if err != nil {
					return err
				}

				switch err := store.RemoveTranscriptCourse(ctx, code); {
				case errors.Is(err, common.ErrNotFound):
					fmt.Println(cli.FormatWarning(fmt.Sprintf("%s is not on your transcript", code)))
				case err != nil:
					return fmt.Errorf("failed to remove %s: %w", code, err)
				default:
					fmt.Println(cli.FormatSuccess(fmt.Sprintf("removed %s", code)))
				}
			}
			return nil
		},
	}
}
