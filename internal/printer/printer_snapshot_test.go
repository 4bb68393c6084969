package printer_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/plume-lang/plumec/internal/parser"
	"github.com/plume-lang/plumec/internal/printer"
)

// TestPrint_Snapshots pins the canonical rendering of a handful of
// representative programs so a regression in render's per-node formatting
// shows up as a diff against internal/printer/__snapshots__.
func TestPrint_Snapshots(t *testing.T) {
	programs := []struct {
		name   string
		source string
	}{
		{
			name: "function_with_args_and_control_flow",
			source: `export function add(a: int, b: int) -> int {
				if (a < b) { return b; } else { return a; }
			}`,
		},
		{
			name:   "variable_declaration_and_loop",
			source: `let total: int = 0; for (let i: int = 0; i < 10; i++) { total += i; }`,
		},
		{
			name:   "import_and_export_from_file",
			source: `import { parse, lex } from "plume.plume" export { add, subtract } from "math.plume"`,
		},
		{
			name:   "numeric_literals",
			source: `1234567; 1234567.891011;`,
		},
	}

	for _, p := range programs {
		t.Run(p.name, func(t *testing.T) {
			exprs, err := parser.From(p.source).Parse()
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			snaps.MatchSnapshot(t, printer.Join(exprs, true))
		})
	}
}
