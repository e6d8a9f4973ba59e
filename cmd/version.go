package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

const modulePath = "github.com/MuhamadTAH/psychology-sub002"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the resolved store settings",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveConfig(cmd)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "lessonctl", version)
		fmt.Fprintln(out, "module:", modulePath)
		fmt.Fprintln(out, "store: ", cfg.StoreDriver)
		fmt.Fprintln(out, "block: ", cfg.Block)
	},
}
