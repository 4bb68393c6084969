package cmd

import (
	"fmt"
	"os"

	"github.com/plume-lang/plumec/internal/parser"
	"github.com/plume-lang/plumec/internal/printer"
	"github.com/spf13/cobra"
)

var (
	fmtWrite  bool
	fmtCompat bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Format a plume source file",
	Long: `Format plume source code using the AST-driven printer.

By default this emits the corrected rendering (export-from-file nodes
print as "export ... from ..."). Pass --compat to reproduce the reference
formatter's ExportFromFile bug instead, which prints "import ... from
..." for the same node.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the result back to the source file instead of stdout")
	fmtCmd.Flags().BoolVar(&fmtCompat, "compat", false, "reproduce the reference formatter's ExportFromFile bug")
}

func runFmt(cmd *cobra.Command, args []string) error {
	if fmtWrite && len(args) == 0 {
		return fmt.Errorf("-w requires a file argument")
	}

	source, err := readSource(args, "")
	if err != nil {
		return err
	}

	exprs, err := parser.From(source).Parse()
	if err != nil {
		return err
	}

	formatted := printer.Join(exprs, !fmtCompat)

	if fmtWrite {
		return os.WriteFile(args[0], []byte(formatted+"\n"), 0o644)
	}

	fmt.Println(formatted)
	return nil
}
