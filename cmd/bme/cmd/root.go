package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bme",
	Short: "Business Model Executor: run and inspect dataflow graphs",
	Long: `bme loads a visual dataflow/rule-engine graph (spec.md §6 wire JSON)
against a catalog of block kinds and executes it, starting from its
single Start block and following its execution chain.

This is the reference CLI for the engine in this module, built on the
default catalog in package blocks.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
