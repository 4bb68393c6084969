package cmd

import (
	"github.com/spf13/cobra"
)

// Version is the plumec release string, set by build flags the way the
// teacher's cmd/dwscript/cmd/root.go sets Version/GitCommit/BuildDate.
var Version = "0.1.0-dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "plumec",
	Short: "plume compiler front end",
	Long: `plumec lexes, parses, formats and resolves the dependencies of
plume source files.

It implements the core of the plume toolchain: tokenizing, building an AST,
printing that AST back to canonical source, and following a project's
import/export-from graph starting at its project.json entry file. It does
not itself generate machine code; that is left to an external code
generator consuming the resolved Program (see internal/codegen).`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
