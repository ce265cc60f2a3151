package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/coursepath/coursepath/internal/cli"
	"github.com/coursepath/coursepath/internal/common"
	"github.com/coursepath/coursepath/internal/model"
)

// importedCourse is one entry of an import file: a JSON array of course
// records mirroring the outline API's field names.
type importedCourse struct {
	Dept          string `json:"dept"`
	Number        string `json:"number"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Prerequisites string `json:"prerequisites"`
	Credits       int    `json:"credits"`
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import courses from a JSON file",
		Long: `Load course records from a JSON file into the local catalog. Existing
courses with the same code are updated in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}

			var records []importedCourse
			if err := json.Unmarshal(data, &records); err != nil {
				return common.NewUserError("import file is not a JSON array of courses", err)
			}
			if len(records) == 0 {
				fmt.Println(cli.InfoStyle.Render("Import file contains no courses."))
				return nil
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			bar := progressbar.NewOptions(len(records),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Importing courses..."),
			)

			courses := make([]model.Course, 0, len(records))
			skipped := 0
			for _, rec := range records {
				_ = bar.Add(1)

				course := model.Course{
					Code:        model.NewCourseCode(rec.Dept, rec.Number),
					Dept:        rec.Dept,
					Number:      rec.Number,
					Title:       rec.Title,
					Description: rec.Description,
					PrereqRaw:   rec.Prerequisites,
					Credits:     rec.Credits,
				}
				if err := course.Validate(); err != nil {
					skipped++
					common.LogDebug("skipping invalid course record", common.Fields{
						"dept": rec.Dept, "number": rec.Number, "error": err,
					})
					continue
				}
				courses = append(courses, course)
			}
			fmt.Fprintln(os.Stderr)

			if len(courses) == 0 {
				return common.NewUserError("no valid course records in import file", nil)
			}

			if err := store.SaveCourses(ctx, courses); err != nil {
				return fmt.Errorf("failed to save courses: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("imported %d courses", len(courses))))
			if skipped > 0 {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("skipped %d invalid records", skipped)))
			}
			return nil
		},
	}
}
