// Package ast defines the expression tree plume source parses into.
//
// plume has no statement/expression split: everything — declarations,
// control flow, function bodies — is an Expression, mirroring the
// reference implementation's single `Expression` enum. Each node here is a
// Go struct implementing the Expression interface; String returns a debug
// representation (used by `plumec parse --dump-ast`), not the canonical
// source text produced by internal/printer.
package ast

import (
	"fmt"
	"strings"

	"github.com/plume-lang/plumec/internal/token"
)

// Node is the common interface for every AST node.
type Node interface {
	String() string
}

// Expression is implemented by every node plume's grammar can produce. The
// name matches the reference implementation even though some variants
// (Function, Block, If) would be "statements" in a language that drew that
// distinction.
type Expression interface {
	Node
	expressionNode()
}

// Number is an integer or floating-point literal. plume does not
// distinguish int from float at parse time — Decimal reports which kind of
// literal text it came from (spec §3.3).
type Number struct {
	Tok   token.Token
	Value string
}

func (n *Number) expressionNode() {}
func (n *Number) String() string  { return fmt.Sprintf("Number(%s)", n.Value) }

// Decimal marks a Number literal whose text contained a '.'.
type Decimal struct {
	Tok   token.Token
	Value string
}

func (d *Decimal) expressionNode() {}
func (d *Decimal) String() string  { return fmt.Sprintf("Decimal(%s)", d.Value) }

// String is a quoted string literal, stored without its delimiting quotes
// and without any escape processing.
type String struct {
	Tok   token.Token
	Value string
}

func (s *String) expressionNode() {}
func (s *String) String() string  { return fmt.Sprintf("String(%q)", s.Value) }

// Char is a quoted character literal.
type Char struct {
	Tok   token.Token
	Value string
}

func (c *Char) expressionNode() {}
func (c *Char) String() string  { return fmt.Sprintf("Char(%q)", c.Value) }

// Bool is a `true`/`false` literal.
type Bool struct {
	Tok   token.Token
	Value bool
}

func (b *Bool) expressionNode() {}
func (b *Bool) String() string  { return fmt.Sprintf("Bool(%t)", b.Value) }

// VariableRef is a bare identifier used as an expression (a read of a
// variable, function, or parameter).
type VariableRef struct {
	Tok  token.Token
	Name string
}

func (v *VariableRef) expressionNode() {}
func (v *VariableRef) String() string  { return fmt.Sprintf("VariableRef(%s)", v.Name) }

// Comment carries a trimmed comment body through to the formatter, which
// reproduces it as either a `//` or `/* */` comment depending on whether
// the body spans multiple lines (spec §5).
type Comment struct {
	Tok  token.Token
	Text string
}

func (c *Comment) expressionNode() {}
func (c *Comment) String() string  { return fmt.Sprintf("Comment(%q)", c.Text) }

// Return is `return expr;` or a bare `return;`.
type Return struct {
	Tok   token.Token
	Value Expression // nil for a bare return
}

func (r *Return) expressionNode() {}
func (r *Return) String() string {
	if r.Value == nil {
		return "Return(<none>)"
	}
	return fmt.Sprintf("Return(%s)", r.Value)
}

// FuncCall is `name(arg, arg, ...)`.
type FuncCall struct {
	Tok  token.Token
	Name string
	Args []Expression
}

func (f *FuncCall) expressionNode() {}
func (f *FuncCall) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("FuncCall(%s, [%s])", f.Name, strings.Join(parts, ", "))
}

// Export wraps a top-level declaration (`export` a function, variable, or
// declare statement) for re-export from the containing source file.
type Export struct {
	Tok   token.Token
	Value Expression
}

func (e *Export) expressionNode() {}
func (e *Export) String() string  { return fmt.Sprintf("Export(%s)", e.Value) }

// Declare wraps an ambient declaration (`declare function ...;`) whose body
// is supplied elsewhere (a foreign/host-provided symbol).
type Declare struct {
	Tok   token.Token
	Value Expression
}

func (d *Declare) expressionNode() {}
func (d *Declare) String() string  { return fmt.Sprintf("Declare(%s)", d.Value) }

// Import is `import { a, b } from "path";` or `import * from "path";`.
type Import struct {
	Tok       token.Token
	Idents    []string // nil when ImportAll is true
	ImportAll bool
	Path      string
}

func (i *Import) expressionNode() {}
func (i *Import) String() string {
	if i.ImportAll {
		return fmt.Sprintf("Import(*, %q)", i.Path)
	}
	return fmt.Sprintf("Import(%v, %q)", i.Idents, i.Path)
}

// ExportFromFile is `export { a, b } from "path";` or `export * from
// "path";` — a re-export naming a file the current one depends on.
type ExportFromFile struct {
	Tok       token.Token
	Idents    []string // nil when ExportAll is true
	ExportAll bool
	Path      string
}

func (e *ExportFromFile) expressionNode() {}
func (e *ExportFromFile) String() string {
	if e.ExportAll {
		return fmt.Sprintf("ExportFromFile(*, %q)", e.Path)
	}
	return fmt.Sprintf("ExportFromFile(%v, %q)", e.Idents, e.Path)
}

// FuncArg is a single `name: type` parameter in a Function's parameter
// list.
type FuncArg struct {
	Name string
	Type string
}

// Function is `function name(arg: type, ...) -> ret { body }`. Body is nil
// for a `declare function` signature with no implementation.
type Function struct {
	Tok  token.Token
	Name string
	Ret  string
	Args []FuncArg
	Body Expression // *Block, or nil
}

func (f *Function) expressionNode() {}
func (f *Function) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.Name + ": " + a.Type
	}
	return fmt.Sprintf("Function(%s(%s) -> %s)", f.Name, strings.Join(args, ", "), f.Ret)
}

// Block is a `{ expr; expr; ... }` sequence, used for function bodies and
// control-flow bodies alike.
type Block struct {
	Tok         token.Token
	Expressions []Expression
}

func (b *Block) expressionNode() {}
func (b *Block) String() string {
	parts := make([]string, len(b.Expressions))
	for i, e := range b.Expressions {
		parts[i] = e.String()
	}
	return fmt.Sprintf("Block([%s])", strings.Join(parts, "; "))
}

// VariableDeclaration is `let name: type;` or `const name: type;`.
type VariableDeclaration struct {
	Tok     token.Token
	Name    string
	Type    string
	Mutable bool // true for `let`, false for `const`
}

func (v *VariableDeclaration) expressionNode() {}
func (v *VariableDeclaration) String() string {
	kw := "const"
	if v.Mutable {
		kw = "let"
	}
	return fmt.Sprintf("VariableDeclaration(%s %s: %s)", kw, v.Name, v.Type)
}

// For is `for (init; condition; post) { body }`. Each of the three
// conditions is itself an Expression (possibly a VariableDeclaration,
// BinaryOperation, or UnaryOperation), matching the reference
// implementation's fixed 3-element conditions array.
type For struct {
	Tok        token.Token
	Conditions [3]Expression
	Body       Expression // *Block
}

func (f *For) expressionNode() {}
func (f *For) String() string {
	return fmt.Sprintf("For(%s; %s; %s, %s)", f.Conditions[0], f.Conditions[1], f.Conditions[2], f.Body)
}

// While is `while (condition) { body }`.
type While struct {
	Tok       token.Token
	Condition Expression
	Body      Expression // *Block
}

func (w *While) expressionNode() {}
func (w *While) String() string  { return fmt.Sprintf("While(%s, %s)", w.Condition, w.Body) }

// If is `if (condition) { body }`, optionally paired with a following Else
// by the caller (plume has no `else if` node; it is an If nested inside an
// Else's body, as in the reference implementation).
type If struct {
	Tok       token.Token
	Condition Expression
	Body      Expression // *Block
}

func (i *If) expressionNode() {}
func (i *If) String() string  { return fmt.Sprintf("If(%s, %s)", i.Condition, i.Body) }

// Else is `else { body }`.
type Else struct {
	Tok  token.Token
	Body Expression // *Block
}

func (e *Else) expressionNode() {}
func (e *Else) String() string  { return fmt.Sprintf("Else(%s)", e.Body) }

// UnaryOperation is a prefix or postfix application of a UnaryOperator to a
// single operand.
type UnaryOperation struct {
	Tok      token.Token
	Operator UnaryOperator
	Expr     Expression
	Position OperatorPosition
}

func (u *UnaryOperation) expressionNode() {}
func (u *UnaryOperation) String() string {
	if u.Position == Postfix {
		return fmt.Sprintf("UnaryOperation(%s%s)", u.Expr, u.Operator)
	}
	return fmt.Sprintf("UnaryOperation(%s%s)", u.Operator, u.Expr)
}

// BinaryOperation is `lhs operator rhs`.
type BinaryOperation struct {
	Tok      token.Token
	Operator BinaryOperator
	Lhs      Expression
	Rhs      Expression
}

func (b *BinaryOperation) expressionNode() {}
func (b *BinaryOperation) String() string {
	return fmt.Sprintf("BinaryOperation(%s %s %s)", b.Lhs, b.Operator, b.Rhs)
}
