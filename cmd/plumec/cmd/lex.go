package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/plume-lang/plumec/internal/lexer"
	"github.com/plume-lang/plumec/internal/token"
	"github.com/spf13/cobra"
)

var lexEval string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a plume file and print the resulting tokens",
	Long: `Tokenize a plume source file and print every token the lexer
produces, one per line, as "<Kind> <literal> @line:column".

If no file is given, plumec lex reads from standard input. Use -e to
tokenize an inline snippet instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize an inline snippet instead of a file")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, err := readSource(args, lexEval)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	for {
		tok := l.NextToken()
		fmt.Printf("%-14s %-20q @%d:%d\n", tok.Kind, tok.Literal, tok.Line, tok.Column)
		if tok.Is(token.EOF) {
			break
		}
	}
	return nil
}

// readSource resolves the input for a lex/parse subcommand: an inline
// --eval snippet, a named file, or stdin when neither is given.
func readSource(args []string, eval string) (string, error) {
	if eval != "" {
		return eval, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
