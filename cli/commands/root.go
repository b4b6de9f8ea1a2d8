package commands

import (
	"github.com/spf13/cobra"

	"github.com/ontoforge/shaclgen/internal/debug"
)

var rootCmd = &cobra.Command{
	Use:   "shaclgen",
	Short: "Generate Go ontology bindings from SHACL shapes",
	Long: `shaclgen turns a SHACL shapes document into Go source code.

For every class described by a node shape it generates a typed
interface, a lazy graph-backed wrapper, and a constraint-checked
instance builder, plus a fluent DSL for assembling RDF instance data.`,
	SilenceUsage: true,
}

var rootDebug bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		debug.Init(rootDebug)
	}
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
