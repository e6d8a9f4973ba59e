package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuhamadTAH/psychology-sub002/internal/ingest"
)

var deleteCmd = &cobra.Command{
	Use:   "delete (--id ID | --number N)",
	Short: "Delete stored lessons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")
		number, _ := cmd.Flags().GetInt("number")

		a, err := openApp(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.svc.Delete(cmd.Context(), ingest.DeleteRequest{LessonID: id, LessonNumber: number})
		if err != nil {
			return fmt.Errorf("delete lesson: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return nil
	},
}

func init() {
	deleteCmd.Flags().String("id", "", "Lesson identifier; removes every lesson with it")
	deleteCmd.Flags().Int("number", 0, "Lesson number (used when --id is not set)")
}
