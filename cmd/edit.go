package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MuhamadTAH/psychology-sub002/internal/ingest"
	"github.com/MuhamadTAH/psychology-sub002/internal/lessons"
)

var editCmd = &cobra.Command{
	Use:   "edit (--id ID | --number N) [file|-]",
	Short: "Replace a stored lesson",
	Long: "Replace the lesson identified by --id (or --number) with the canonical lesson read from\n" +
		"a file or stdin. The identifier itself cannot be changed.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")
		number, _ := cmd.Flags().GetInt("number")

		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		var updated lessons.Lesson
		if err := json.Unmarshal(data, &updated); err != nil {
			updated = lessons.Lesson{}
			if yerr := yaml.Unmarshal(data, &updated); yerr != nil {
				return fmt.Errorf("decode lesson: %w", err)
			}
		}

		a, err := openApp(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.svc.Edit(cmd.Context(), ingest.EditRequest{
			LessonID:      id,
			LessonNumber:  number,
			UpdatedLesson: &updated,
		})
		if err != nil {
			return fmt.Errorf("edit lesson: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return nil
	},
}

func init() {
	editCmd.Flags().String("id", "", "Lesson identifier, e.g. A1-2")
	editCmd.Flags().Int("number", 0, "Lesson number (used when --id is not set)")
}
