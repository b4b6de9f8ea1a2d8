package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ontoforge/shaclgen/cli/internal/update"
	"github.com/ontoforge/shaclgen/cli/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE:  runVersion,
}

var versionFull bool

func init() {
	versionCmd.Flags().BoolVar(&versionFull, "full", false, "Print detailed build information")

	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()
	if versionFull {
		fmt.Println(info.FullString())
	} else {
		fmt.Println(info.String())
	}

	return update.CheckForUpdates(info.Version)
}
