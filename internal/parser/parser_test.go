package parser_test

import (
	"testing"

	"github.com/plume-lang/plumec/internal/ast"
	"github.com/plume-lang/plumec/internal/parser"
)

func parseOrFatal(t *testing.T, source string) []ast.Expression {
	t.Helper()
	exprs, err := parser.From(source).Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return exprs
}

func TestParse_FunctionWithStringBody(t *testing.T) {
	exprs := parseOrFatal(t, `function hello() { "hello!"; }`)
	if len(exprs) != 1 {
		t.Fatalf("got %d top-level expressions, want 1", len(exprs))
	}
	fn, ok := exprs[0].(*ast.Function)
	if !ok {
		t.Fatalf("got %T, want *ast.Function", exprs[0])
	}
	if fn.Name != "hello" || fn.Ret != "void" || len(fn.Args) != 0 {
		t.Fatalf("unexpected function shape: %+v", fn)
	}
	body, ok := fn.Body.(*ast.Block)
	if !ok || len(body.Expressions) != 1 {
		t.Fatalf("unexpected body: %+v", fn.Body)
	}
	str, ok := body.Expressions[0].(*ast.String)
	if !ok || str.Value != "hello!" {
		t.Fatalf("unexpected body expression: %+v", body.Expressions[0])
	}
}

func TestParse_ImportSingleIdent(t *testing.T) {
	exprs := parseOrFatal(t, `import { print } from "util.plume"`)
	imp := exprs[0].(*ast.Import)
	if imp.Path != "util.plume" || imp.ImportAll || len(imp.Idents) != 1 || imp.Idents[0] != "print" {
		t.Fatalf("unexpected import: %+v", imp)
	}
}

func TestParse_ImportMultipleIdents(t *testing.T) {
	exprs := parseOrFatal(t, `import { print, hello } from "util.plume"`)
	imp := exprs[0].(*ast.Import)
	if len(imp.Idents) != 2 || imp.Idents[0] != "print" || imp.Idents[1] != "hello" {
		t.Fatalf("unexpected idents: %v", imp.Idents)
	}
}

func TestParse_ImportAll(t *testing.T) {
	exprs := parseOrFatal(t, `import * from "util.plume"`)
	imp := exprs[0].(*ast.Import)
	if !imp.ImportAll || imp.Idents != nil || imp.Path != "util.plume" {
		t.Fatalf("unexpected import: %+v", imp)
	}
}

func TestParse_ExportFromFile(t *testing.T) {
	exprs := parseOrFatal(t, `export { add } from "math.plume"`)
	ex := exprs[0].(*ast.ExportFromFile)
	if ex.ExportAll || len(ex.Idents) != 1 || ex.Idents[0] != "add" || ex.Path != "math.plume" {
		t.Fatalf("unexpected export-from-file: %+v", ex)
	}
}

func TestParse_ExportDeclaration(t *testing.T) {
	exprs := parseOrFatal(t, `export function add(a: int, b: int) -> int { return a + b; }`)
	export := exprs[0].(*ast.Export)
	fn := export.Value.(*ast.Function)
	if fn.Name != "add" || fn.Ret != "int" || len(fn.Args) != 2 {
		t.Fatalf("unexpected function: %+v", fn)
	}
	if fn.Args[0].Name != "a" || fn.Args[0].Type != "int" {
		t.Fatalf("unexpected first arg: %+v", fn.Args[0])
	}
}

func TestParse_NoPrecedenceFoldsRightRecursively(t *testing.T) {
	exprs := parseOrFatal(t, `1 + 2 * 3;`)
	top, ok := exprs[0].(*ast.BinaryOperation)
	if !ok {
		t.Fatalf("got %T, want *ast.BinaryOperation", exprs[0])
	}
	if top.Operator != ast.Add {
		t.Fatalf("outermost operator is %s, want Add: 1 + (2 * 3)", top.Operator)
	}
	rhs, ok := top.Rhs.(*ast.BinaryOperation)
	if !ok || rhs.Operator != ast.Multiply {
		t.Fatalf("rhs is %+v, want a Multiply of 2 and 3", top.Rhs)
	}
}

func TestParse_DeclareVariableRequiresType(t *testing.T) {
	_, err := parser.From(`let x = 1;`).Parse()
	if err == nil {
		t.Fatal("expected an error: variable declarations require a type")
	}
}

func TestParse_VariableDeclarationWithAssignment(t *testing.T) {
	exprs := parseOrFatal(t, `let x: int = 1;`)
	assign := exprs[0].(*ast.BinaryOperation)
	if assign.Operator != ast.Assign {
		t.Fatalf("got operator %s, want Assign", assign.Operator)
	}
	decl := assign.Lhs.(*ast.VariableDeclaration)
	if decl.Name != "x" || decl.Type != "int" || !decl.Mutable {
		t.Fatalf("unexpected decl: %+v", decl)
	}
}

func TestParse_ForLoop(t *testing.T) {
	exprs := parseOrFatal(t, `for (let i: int = 0; i < 10; i++) { print(i); }`)
	loop := exprs[0].(*ast.For)
	if loop.Conditions[0] == nil || loop.Conditions[1] == nil || loop.Conditions[2] == nil {
		t.Fatalf("unexpected for-loop conditions: %+v", loop.Conditions)
	}
}

func TestParse_IfElse(t *testing.T) {
	exprs := parseOrFatal(t, `if (true) { return 1; } else { return 2; }`)
	if len(exprs) != 2 {
		t.Fatalf("got %d expressions, want 2 (If, Else)", len(exprs))
	}
	if _, ok := exprs[0].(*ast.If); !ok {
		t.Fatalf("got %T, want *ast.If", exprs[0])
	}
	if _, ok := exprs[1].(*ast.Else); !ok {
		t.Fatalf("got %T, want *ast.Else", exprs[1])
	}
}

func TestParse_FunctionCallWithArgs(t *testing.T) {
	exprs := parseOrFatal(t, `print(1, "two", three)`)
	call := exprs[0].(*ast.FuncCall)
	if call.Name != "print" || len(call.Args) != 3 {
		t.Fatalf("unexpected call: %+v", call)
	}
}

func TestParse_DeclareFunctionWithoutBody(t *testing.T) {
	exprs := parseOrFatal(t, `declare function puts(s: string) -> void;`)
	decl := exprs[0].(*ast.Declare)
	fn := decl.Value.(*ast.Function)
	if fn.Body != nil {
		t.Fatalf("expected no body for a declare-only function, got %+v", fn.Body)
	}
}

func TestParse_CommentIsPreserved(t *testing.T) {
	exprs := parseOrFatal(t, "// a note\n1;")
	comment, ok := exprs[0].(*ast.Comment)
	if !ok || comment.Text != "a note" {
		t.Fatalf("unexpected comment node: %+v", exprs[0])
	}
}
