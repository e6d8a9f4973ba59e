package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuhamadTAH/psychology-sub002/internal/ui/components"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		a, err := openApp(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ls, err := a.svc.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("load lessons: %w", err)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"lessons": ls})
		}
		fmt.Fprintln(out, components.LessonTable(ls))
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("json", false, "Print the lessons as JSON")
}
