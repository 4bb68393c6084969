// Command plumec is the plume compiler front end's command-line entry
// point: lexing, parsing, formatting and dependency resolution for a plume
// project, exposed as cobra subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/plume-lang/plumec/cmd/plumec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
