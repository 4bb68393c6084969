package cmd

import (
	"fmt"

	"github.com/plume-lang/plumec/internal/parser"
	"github.com/plume-lang/plumec/internal/resolver"
	"github.com/spf13/cobra"
)

var (
	parseEval     string
	parseDumpAST  bool
	parseValidate bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a plume file and display its AST",
	Long: `Parse plume source code and report on the resulting top-level
expressions.

By default this prints only the count of top-level expressions parsed.
Use --dump-ast to print each expression's debug representation; use
--validate to additionally run the (currently no-op) source-file
validator; it runs only when a file argument is given, not for -e or
standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse an inline snippet instead of a file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "also run SourceFile.Validate over the parsed file")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(args, parseEval)
	if err != nil {
		return err
	}

	exprs, err := parser.From(source).Parse()
	if err != nil {
		return err
	}

	if parseDumpAST {
		for _, e := range exprs {
			fmt.Println(e.String())
		}
	} else {
		fmt.Printf("%d top-level expression(s)\n", len(exprs))
	}

	if parseValidate && len(args) == 1 {
		file, err := resolver.ParseFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("validate %q: %v\n", file.Path, file.Validate())
	}

	return nil
}
