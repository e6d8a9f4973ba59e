package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuhamadTAH/psychology-sub002/internal/ingest"
	"github.com/MuhamadTAH/psychology-sub002/internal/ui/components"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>...",
	Short: "Ingest many submissions, one file at a time",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		errOut := cmd.ErrOrStderr()
		res := a.svc.Batch(cmd.Context(), ingest.FileSources(args), func(i, total int, name string) {
			fmt.Fprintln(errOut, components.BatchProgress{Current: i, Total: total, Name: name, Width: 72}.View())
		})

		fmt.Fprintln(cmd.OutOrStdout(), components.BatchReport(res))
		if res.Failed > 0 {
			return fmt.Errorf("%d of %d submissions failed", res.Failed, len(args))
		}
		return nil
	},
}
