package printer_test

import (
	"testing"

	"github.com/plume-lang/plumec/internal/ast"
	"github.com/plume-lang/plumec/internal/parser"
	"github.com/plume-lang/plumec/internal/printer"
)

func parseOne(t *testing.T, source string) ast.Expression {
	t.Helper()
	exprs, err := parser.From(source).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(exprs) != 1 {
		t.Fatalf("got %d expressions, want 1", len(exprs))
	}
	return exprs[0]
}

func TestPrint_FunctionRoundTrip(t *testing.T) {
	expr := parseOne(t, `function hello() { "hello!"; }`)
	got := printer.Print(expr)
	want := `function hello() -> void {"hello!"}`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrint_NumberDigitGrouping(t *testing.T) {
	expr := parseOne(t, `123456;`)
	if got, want := printer.Print(expr), "123_456"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrint_DecimalDigitGrouping(t *testing.T) {
	expr := parseOne(t, `123456.789;`)
	if got, want := printer.Print(expr), "123_456.789"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrint_ExportFromFile_ReproducesImportBug(t *testing.T) {
	expr := parseOne(t, `export { add } from "math.plume"`)
	got := printer.Print(expr)
	want := `import {add} from "math.plume"`
	if got != want {
		t.Fatalf("Print() got %q, want %q (bug-compatible rendering)", got, want)
	}
}

func TestPrintCorrected_ExportFromFile_EmitsExport(t *testing.T) {
	expr := parseOne(t, `export { add } from "math.plume"`)
	got := printer.PrintCorrected(expr)
	want := `export {add} from "math.plume"`
	if got != want {
		t.Fatalf("PrintCorrected() got %q, want %q", got, want)
	}
}

func TestPrint_ImportNeverAffectedByCorrection(t *testing.T) {
	expr := parseOne(t, `import * from "util.plume"`)
	if printer.Print(expr) != printer.PrintCorrected(expr) {
		t.Fatal("Import rendering should not depend on the corrected flag")
	}
}

func TestPrint_BinaryOperationSpacing(t *testing.T) {
	expr := parseOne(t, `1 + 2;`)
	if got, want := printer.Print(expr), "1 + 2"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrint_MultilineCommentUsesBlockSyntax(t *testing.T) {
	expr := parseOne(t, "/* line one\nline two */")
	got := printer.Print(expr)
	want := "/* line one\nline two */"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrint_SingleLineCommentUsesSlashSlash(t *testing.T) {
	exprs, err := parser.From("// a note\n1;").Parse()
	if err != nil {
		t.Fatal(err)
	}
	got := printer.Print(exprs[0])
	want := "// a note"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
