package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file|-]",
	Short: "Ingest one lesson submission",
	Long:  "Ingest one submission (JSON or YAML) from a file, or from stdin when the argument is \"-\" or omitted.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.svc.Ingest(cmd.Context(), data)
		if err != nil {
			return fmt.Errorf("add lesson: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, res.Message)
		for _, t := range res.LessonTitles {
			fmt.Fprintln(out, "  -", t)
		}
		return nil
	},
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, nil
}
