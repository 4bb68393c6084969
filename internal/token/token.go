// Package token defines the lexical token model shared by the lexer and
// parser: a closed set of token kinds and the immutable Token record that
// carries a kind, its literal text, and its source position.
package token

import "fmt"

// Kind is the tag of a Token. The set is closed: every lexeme the lexer can
// produce maps to exactly one of these.
type Kind int

const (
	Ident          Kind = iota // identifiers: x, myVar, printLn
	SomeOperator               // ambiguous -, *, & reclassified by the parser
	UnaryOperator              // !  ~  ++  --  (and - / * / & once resolved to prefix-only forms)
	BinaryOperator             // =  ==  +  -  *  /  ...
	Parens                     // ( )
	Braces                     // { }
	Brackets                   // [ ]
	Comma                      // ,
	Colon                      // :
	Semicolon                  // ;
	Keyword                    // declare import export from function return let const if else match for while as
	Comment                    // // line or /* block */, trimmed body
	String                     // "..." body (either quote closes it), no escape processing
	Char                       // '...' body; the parser requires exactly one ASCII character
	Number                     // 123, 123.45, 123_456.789_0 (separators dropped)
	Bool                       // true / false
	ReturnArrow                // ->
	Whitespace                 // unrecognised input, held so the parser can ignore it
	EOF                        // end of input
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "Ident"
	case SomeOperator:
		return "SomeOperator"
	case UnaryOperator:
		return "UnaryOperator"
	case BinaryOperator:
		return "BinaryOperator"
	case Parens:
		return "Parens"
	case Braces:
		return "Braces"
	case Brackets:
		return "Brackets"
	case Comma:
		return "Comma"
	case Colon:
		return "Colon"
	case Semicolon:
		return "Semicolon"
	case Keyword:
		return "Keyword"
	case Comment:
		return "Comment"
	case String:
		return "String"
	case Char:
		return "Char"
	case Number:
		return "Number"
	case Bool:
		return "Bool"
	case ReturnArrow:
		return "ReturnArrow"
	case Whitespace:
		return "Whitespace"
	case EOF:
		return "EOF"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Keywords is the closed set of reserved words. Anything else lexed as an
// identifier-shaped run of characters is an Ident (or Bool, for true/false).
var Keywords = map[string]bool{
	"declare": true,
	"import":  true,
	"export":  true,
	"from":    true,
	"function": true,
	"return":  true,
	"let":     true,
	"const":   true,
	"if":      true,
	"else":    true,
	"match":   true,
	"for":     true,
	"while":   true,
	"as":      true,
}

// Token is an immutable lexical unit. Equality is structural on all four
// fields, so two tokens compare equal only if kind, literal, line, and
// column all match.
type Token struct {
	Kind    Kind
	Literal string
	Line    int
	Column  int
}

// New constructs a Token at the given 1-based line/column.
func New(kind Kind, literal string, line, column int) Token {
	return Token{Kind: kind, Literal: literal, Line: line, Column: column}
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

// IsLit reports whether the token's literal equals the given string.
func (t Token) IsLit(literal string) bool {
	return t.Literal == literal
}

// Cmp reports whether the token matches both the given kind and literal.
func (t Token) Cmp(kind Kind, literal string) bool {
	return t.Kind == kind && t.Literal == literal
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", t.Kind, t.Literal, t.Line, t.Column)
}
