// Package printer renders an expression tree back to plume source text.
//
// Print reproduces the reference formatter's ExportFromFile bug
// bit-for-bit: an ExportFromFile node is rendered with the `import`
// keyword instead of `export`, because that is what
// _examples/original_source/src/parser/formatter.rs actually emits.
// PrintCorrected renders the same node with the `export` keyword it was
// clearly meant to have. `plumec fmt` defaults to PrintCorrected and
// exposes Print behind a --compat flag (see cmd/plumec).
package printer

import (
	"strings"

	"github.com/plume-lang/plumec/internal/ast"
)

// Print renders expr as canonical plume source, reproducing the reference
// formatter's ExportFromFile/import bug.
func Print(expr ast.Expression) string {
	return render(expr, false)
}

// PrintCorrected renders expr as canonical plume source, emitting `export`
// rather than `import` for an ExportFromFile node.
func PrintCorrected(expr ast.Expression) string {
	return render(expr, true)
}

// Join renders a sequence of top-level expressions one per line, matching
// SourceFile::format in the reference implementation.
func Join(exprs []ast.Expression, corrected bool) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = render(e, corrected)
	}
	return strings.Join(parts, "\n")
}

func render(expr ast.Expression, corrected bool) string {
	switch n := expr.(type) {
	case *ast.VariableRef:
		return n.Name

	case *ast.String:
		return `"` + n.Value + `"`

	case *ast.Char:
		return "'" + n.Value + "'"

	case *ast.Comment:
		if strings.Contains(n.Text, "\n") {
			return "/* " + n.Text + " */"
		}
		return "// " + n.Text

	case *ast.Bool:
		if n.Value {
			return "true"
		}
		return "false"

	case *ast.Declare:
		return "declare " + render(n.Value, corrected)

	case *ast.FuncCall:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = render(a, corrected)
		}
		return n.Name + "(" + strings.Join(args, ", ") + ")"

	case *ast.Number:
		return formatDigits(n.Value)

	case *ast.Decimal:
		return formatDigits(n.Value)

	case *ast.Block:
		parts := make([]string, len(n.Expressions))
		for i, e := range n.Expressions {
			parts[i] = render(e, corrected)
		}
		return "{" + strings.Join(parts, "\n") + "}"

	case *ast.Function:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = a.Name + ": " + a.Type
		}
		bodyStr := ";"
		if n.Body != nil {
			bodyStr = " {" + renderBlockInner(n.Body, corrected) + "}"
		}
		return "function " + n.Name + "(" + strings.Join(args, ",") + ") -> " + n.Ret + bodyStr

	case *ast.Return:
		if n.Value == nil {
			return "return;"
		}
		return "return " + render(n.Value, corrected) + ";"

	case *ast.VariableDeclaration:
		kw := "const"
		if n.Mutable {
			kw = "let"
		}
		return kw + " " + n.Name + ": " + n.Type

	case *ast.For:
		return "for (" + render(n.Conditions[0], corrected) + "; " +
			render(n.Conditions[1], corrected) + "; " +
			render(n.Conditions[2], corrected) + ") " + render(n.Body, corrected)

	case *ast.While:
		return "while (" + render(n.Condition, corrected) + ") " + render(n.Body, corrected)

	case *ast.If:
		return "if (" + render(n.Condition, corrected) + ") " + render(n.Body, corrected)

	case *ast.Else:
		return "else " + render(n.Body, corrected)

	case *ast.Import:
		return "import " + moduleSelector(n.Idents, n.ImportAll) + " from \"" + n.Path + "\""

	case *ast.Export:
		return "export " + render(n.Value, corrected) + ";"

	case *ast.ExportFromFile:
		kw := "import" // reference formatter bug: always prints `import`
		if corrected {
			kw = "export"
		}
		return kw + " " + moduleSelector(n.Idents, n.ExportAll) + " from \"" + n.Path + "\""

	case *ast.UnaryOperation:
		opStr := n.Operator.String()
		exprStr := render(n.Expr, corrected)
		if n.Position == ast.Postfix {
			return exprStr + opStr
		}
		return opStr + exprStr

	case *ast.BinaryOperation:
		return render(n.Lhs, corrected) + " " + binaryOperatorString(n.Operator) + " " + render(n.Rhs, corrected)

	default:
		return ""
	}
}

// renderBlockInner renders a Block's contents without its own braces, since
// Function wraps the body in its own " {...}" with a leading space the
// Block's own brace rendering doesn't add.
func renderBlockInner(body ast.Expression, corrected bool) string {
	block, ok := body.(*ast.Block)
	if !ok {
		return render(body, corrected)
	}
	parts := make([]string, len(block.Expressions))
	for i, e := range block.Expressions {
		parts[i] = render(e, corrected)
	}
	return strings.Join(parts, "\n")
}

func moduleSelector(idents []string, all bool) string {
	if all {
		return "*"
	}
	return "{" + strings.Join(idents, ", ") + "}"
}

// binaryOperatorString mirrors BinaryOperator::as_string in
// formatter.rs, including its BitOR quirk: BitOR prints as "||", the same
// lexeme the lexer reserves for logical-or, even though the operator it
// names is bitwise-or.
func binaryOperatorString(op ast.BinaryOperator) string {
	switch op {
	case ast.Assign:
		return "="
	case ast.Add:
		return "+"
	case ast.Subtract:
		return "-"
	case ast.Multiply:
		return "*"
	case ast.Divide:
		return "/"
	case ast.Modulo:
		return "%"
	case ast.AddAssign:
		return "+="
	case ast.SubtAssign:
		return "-="
	case ast.MultAssign:
		return "*="
	case ast.DivAssign:
		return "/="
	case ast.ModAssign:
		return "%="
	case ast.LeftShiftAssign:
		return "<<="
	case ast.RightShiftAssign:
		return ">>="
	case ast.BitANDAssign:
		return "&="
	case ast.BitXORAssign:
		return "^="
	case ast.BitORAssign:
		return "|="
	case ast.Eq:
		return "=="
	case ast.Ne:
		return "!="
	case ast.Gt:
		return ">"
	case ast.Lt:
		return "<"
	case ast.Ge:
		return ">="
	case ast.Le:
		return "<="
	case ast.BitAND:
		return "&"
	case ast.BitXOR:
		return "^"
	case ast.BitOR:
		return "||"
	case ast.LeftShift:
		return "<<"
	case ast.RightShift:
		return ">>"
	default:
		return "?"
	}
}

// formatDigits inserts '_' every three digits of the integer part, counting
// from the decimal point, leaving the fractional part untouched.
func formatDigits(literal string) string {
	parts := strings.SplitN(literal, ".", 2)
	grouped := groupDigits(parts[0])
	if len(parts) == 1 {
		return grouped
	}
	return grouped + "." + parts[1]
}

func groupDigits(intPart string) string {
	runes := []rune(intPart)
	n := len(runes)
	var result []rune
	for idx := 0; idx < n; idx++ {
		val := runes[n-1-idx]
		if idx != 0 && idx%3 == 0 {
			result = append([]rune{'_'}, result...)
		}
		result = append([]rune{val}, result...)
	}
	return string(result)
}
