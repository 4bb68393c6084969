// Package parser turns a plume token stream into an expression tree.
//
// The grammar has no statement/expression split and, per spec, no operator
// precedence table: a run of binary operators folds right-recursively, so
// `1 + 2 * 3` parses as `1 + (2 * 3)` and `2 * 3 + 1` as `2 * (3 + 1)`. This mirrors the
// reference implementation's parser exactly (its own precedence stub was
// never wired in).
//
// Unlike github.com/cwbudde/go-dws's Parser, which accumulates
// *ParserError values and keeps going, this parser has no recovery
// strategy: the first structural error it hits aborts the parse and is
// returned to the caller, matching the reference implementation's
// panic/expect-on-failure behavior translated into an idiomatic Go error
// return.
package parser

import (
	"fmt"

	"github.com/plume-lang/plumec/internal/ast"
	"github.com/plume-lang/plumec/internal/errors"
	"github.com/plume-lang/plumec/internal/lexer"
	"github.com/plume-lang/plumec/internal/token"
)

// Parser consumes tokens from a lexer and builds expressions.
type Parser struct {
	lex    *lexer.Lexer
	source string
	file   string
}

// New creates a Parser over source, attributing errors to file (used only
// for diagnostic messages; pass "" when there is none).
func New(source, file string) *Parser {
	return &Parser{lex: lexer.New(source), source: source, file: file}
}

// From creates a Parser with no file attribution, for ad-hoc parsing of a
// source fragment (tests, REPL-style tools).
func From(source string) *Parser {
	return New(source, "")
}

func (p *Parser) fail(tok token.Token, format string, args ...any) error {
	return errors.NewParseError(tok, fmt.Sprintf(format, args...), p.source, p.file)
}

// next consumes and returns the next token; ok is false once the lexer is
// exhausted (mirrors the reference lexer's Iterator returning None).
func (p *Parser) next() (token.Token, bool) {
	tok := p.lex.NextToken()
	if tok.Kind == token.EOF {
		return tok, false
	}
	return tok, true
}

func (p *Parser) peekIsKind(kind token.Kind) bool {
	return p.lex.Peek().Kind == kind
}

func (p *Parser) peekCmp(kind token.Kind, lit string) bool {
	peeked := p.lex.Peek()
	return peeked.Kind == kind && peeked.Literal == lit
}

// Parse consumes the whole token stream and returns every top-level
// expression. A token that legitimately yields no node (a Semicolon, a
// comment-adjacent Whitespace) is silently skipped, not an error.
func (p *Parser) Parse() ([]ast.Expression, error) {
	var program []ast.Expression
	for {
		tok, ok := p.next()
		if !ok {
			return program, nil
		}
		expr, err := p.parseExpression(tok, false)
		if err != nil {
			return nil, err
		}
		if expr != nil {
			program = append(program, expr)
		}
	}
}

// parseExpression is the single dispatch point for every node kind. Order
// matters: operator detection runs before any keyword or literal dispatch,
// exactly as in the reference implementation, except that a keyword is never
// taken as the left operand of a binary operator (so `import * from` and
// `export * from` reach the module-reference parser).
func (p *Parser) parseExpression(tok token.Token, ignoreOp bool) (ast.Expression, error) {
	switch {
	case tok.Kind == token.UnaryOperator || tok.Kind == token.SomeOperator:
		op, ok := ast.UnaryOperatorFromLiteral(tok.Literal)
		if !ok {
			return nil, nil
		}
		nextTok, ok := p.next()
		if !ok {
			return nil, p.fail(tok, "expected expression after unary operator %q", tok.Literal)
		}
		expr, err := p.parseExpression(nextTok, false)
		if err != nil {
			return nil, err
		}
		if expr == nil {
			return nil, p.fail(nextTok, "expected expression after unary operator %q", tok.Literal)
		}
		return &ast.UnaryOperation{Tok: tok, Operator: op, Expr: expr, Position: ast.Prefix}, nil

	case !ignoreOp && p.peekIsKind(token.UnaryOperator):
		lhs, err := p.parseExpression(tok, true)
		if err != nil {
			return nil, err
		}
		if lhs == nil {
			return nil, p.fail(tok, "expected lhs in postfix operation")
		}
		opTok, ok := p.next()
		if !ok {
			return nil, p.fail(tok, "expected a postfix operator")
		}
		op, ok := ast.UnaryOperatorFromLiteral(opTok.Literal)
		if !ok {
			return nil, p.fail(opTok, "invalid operator %q", opTok.Literal)
		}
		return &ast.UnaryOperation{Tok: opTok, Operator: op, Expr: lhs, Position: ast.Postfix}, nil

	case !ignoreOp && tok.Kind != token.Keyword &&
		(p.peekIsKind(token.BinaryOperator) || p.peekIsKind(token.SomeOperator)):
		lhs, err := p.parseExpression(tok, true)
		if err != nil {
			return nil, err
		}
		if lhs == nil {
			return nil, p.fail(tok, "expected lhs in binary operation")
		}
		opTok, ok := p.next()
		if !ok {
			return nil, p.fail(tok, "expected an operator")
		}
		op, ok := ast.BinaryOperatorFromLiteral(opTok.Literal)
		if !ok {
			return nil, p.fail(opTok, "invalid operator %q", opTok.Literal)
		}
		rhsTok, ok := p.next()
		if !ok {
			return nil, p.fail(opTok, "expected rhs in binary operation")
		}
		rhs, err := p.parseExpression(rhsTok, false)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, p.fail(rhsTok, "expected rhs in binary operation")
		}
		return &ast.BinaryOperation{Tok: opTok, Operator: op, Lhs: lhs, Rhs: rhs}, nil

	case tok.Kind == token.Keyword && tok.Literal == "function":
		return p.parseFunction(tok)

	case tok.Kind == token.Keyword && tok.Literal == "import":
		return p.parseModuleReference(tok, true)

	case tok.Kind == token.Keyword && tok.Literal == "export" &&
		(p.peekCmp(token.Braces, "{") || p.peekCmp(token.SomeOperator, "*")):
		return p.parseModuleReference(tok, false)

	case tok.Kind == token.Bool:
		return &ast.Bool{Tok: tok, Value: tok.Literal == "true"}, nil

	case tok.Kind == token.Keyword && tok.Literal == "declare":
		nextTok, ok := p.next()
		if !ok {
			return nil, p.fail(tok, "invalid declare syntax")
		}
		inner, err := p.parseExpression(nextTok, false)
		if err != nil {
			return nil, err
		}
		if inner == nil {
			return nil, p.fail(nextTok, "invalid declare syntax")
		}
		return &ast.Declare{Tok: tok, Value: inner}, nil

	case tok.Kind == token.Keyword && tok.Literal == "export":
		nextTok, ok := p.next()
		if !ok {
			return nil, p.fail(tok, "invalid export syntax")
		}
		inner, err := p.parseExpression(nextTok, false)
		if err != nil {
			return nil, err
		}
		if inner == nil {
			return nil, p.fail(nextTok, "invalid export syntax")
		}
		return &ast.Export{Tok: tok, Value: inner}, nil

	case tok.Kind == token.Keyword && tok.Literal == "return":
		nextTok, ok := p.next()
		if !ok {
			return &ast.Return{Tok: tok}, nil
		}
		value, err := p.parseExpression(nextTok, false)
		if err != nil {
			return nil, err
		}
		return &ast.Return{Tok: tok, Value: value}, nil

	case tok.Kind == token.Keyword && tok.Literal == "for":
		return p.parseForLoop(tok)

	case tok.Kind == token.Keyword && tok.Literal == "while":
		return p.parseControlFlow(tok, "while")

	case tok.Kind == token.Keyword && tok.Literal == "if":
		return p.parseControlFlow(tok, "if")

	case tok.Kind == token.Keyword && tok.Literal == "else":
		nextTok, ok := p.next()
		if !ok {
			return nil, p.fail(tok, "else statements require a body")
		}
		body, err := p.parseExpression(nextTok, false)
		if err != nil {
			return nil, err
		}
		if body == nil {
			return nil, p.fail(nextTok, "else statements require a body")
		}
		return &ast.Else{Tok: tok, Body: body}, nil

	case tok.Kind == token.Keyword && (tok.Literal == "let" || tok.Literal == "const"):
		return p.parseVariableDeclaration(tok)

	case tok.Kind == token.Ident && p.peekCmp(token.Parens, "("):
		return p.parseFuncCall(tok)

	case tok.Kind == token.Ident:
		return &ast.VariableRef{Tok: tok, Name: tok.Literal}, nil

	case tok.Kind == token.Braces && tok.Literal == "{":
		return p.parseBlock(tok)

	case tok.Kind == token.String:
		return &ast.String{Tok: tok, Value: tok.Literal}, nil

	case tok.Kind == token.Char:
		runes := []rune(tok.Literal)
		if len(runes) == 0 {
			return nil, p.fail(tok, "char literal contains no char")
		}
		if len(runes) > 1 || runes[0] > 127 {
			return nil, p.fail(tok, "char literal is larger than one byte")
		}
		return &ast.Char{Tok: tok, Value: tok.Literal}, nil

	case tok.Kind == token.Number && containsDot(tok.Literal):
		return &ast.Decimal{Tok: tok, Value: tok.Literal}, nil

	case tok.Kind == token.Number:
		return &ast.Number{Tok: tok, Value: tok.Literal}, nil

	case tok.Kind == token.Comment:
		return &ast.Comment{Tok: tok, Text: tok.Literal}, nil

	case tok.Kind == token.Semicolon:
		return nil, nil

	default:
		return nil, nil
	}
}

func containsDot(s string) bool {
	for _, r := range s {
		if r == '.' {
			return true
		}
	}
	return false
}

func (p *Parser) parseFunction(funcTok token.Token) (ast.Expression, error) {
	if !p.peekIsKind(token.Ident) {
		return nil, p.fail(funcTok, "invalid function signature: expected an identifier")
	}
	identTok, _ := p.next()

	openParen, ok := p.next()
	if !ok || !openParen.Cmp(token.Parens, "(") {
		return nil, p.fail(funcTok, "invalid function signature: expected open parentheses")
	}

	var args []ast.FuncArg
	for {
		tok, ok := p.next()
		if !ok {
			return nil, p.fail(funcTok, "unterminated function parameter list")
		}
		if tok.Cmp(token.Parens, ")") {
			break
		}
		if tok.Kind == token.Ident {
			colon, ok := p.next()
			if !ok || colon.Kind != token.Colon {
				return nil, p.fail(tok, "expected type signature")
			}
			ty, err := p.parseType()
			if err != nil {
				return nil, err
			}
			args = append(args, ast.FuncArg{Name: tok.Literal, Type: ty})
		} else if tok.Kind != token.Comma {
			return nil, p.fail(tok, "no type identifier")
		}
	}

	retType := "void"
	if p.peekIsKind(token.ReturnArrow) {
		p.next()
		retTok, ok := p.next()
		if !ok || retTok.Kind != token.Ident {
			return nil, p.fail(funcTok, "invalid function signature: no return type specified after arrow")
		}
		retType = retTok.Literal
	}

	var body ast.Expression
	if p.peekCmp(token.Braces, "{") {
		bodyTok, _ := p.next()
		b, err := p.parseExpression(bodyTok, false)
		if err != nil {
			return nil, err
		}
		body = b
	}

	return &ast.Function{Tok: funcTok, Name: identTok.Literal, Ret: retType, Args: args, Body: body}, nil
}

func (p *Parser) parseBlock(openTok token.Token) (ast.Expression, error) {
	var exprs []ast.Expression
	for {
		tok, ok := p.next()
		if !ok {
			return nil, p.fail(openTok, "unterminated block")
		}
		if tok.Cmp(token.Braces, "}") {
			break
		}
		expr, err := p.parseExpression(tok, false)
		if err != nil {
			return nil, err
		}
		if expr != nil {
			exprs = append(exprs, expr)
		}
	}
	return &ast.Block{Tok: openTok, Expressions: exprs}, nil
}

func (p *Parser) parseControlFlow(kwTok token.Token, literal string) (ast.Expression, error) {
	open, ok := p.next()
	if !ok || !open.Cmp(token.Parens, "(") {
		return nil, p.fail(kwTok, "expected parens to start the condition")
	}
	condTok, ok := p.next()
	if !ok {
		return nil, p.fail(kwTok, "expected a condition")
	}
	cond, err := p.parseExpression(condTok, false)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, p.fail(condTok, "expected a condition")
	}
	closeParen, ok := p.next()
	if !ok || !closeParen.Cmp(token.Parens, ")") {
		return nil, p.fail(kwTok, "expected parens to end the condition")
	}
	bodyTok, ok := p.next()
	if !ok {
		return nil, p.fail(kwTok, "expected a body")
	}
	body, err := p.parseExpression(bodyTok, false)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, p.fail(bodyTok, "expected a body")
	}
	switch literal {
	case "if":
		return &ast.If{Tok: kwTok, Condition: cond, Body: body}, nil
	case "while":
		return &ast.While{Tok: kwTok, Condition: cond, Body: body}, nil
	default:
		return nil, p.fail(kwTok, "unknown control flow keyword %q", literal)
	}
}

func (p *Parser) parseForLoop(forTok token.Token) (ast.Expression, error) {
	open, ok := p.next()
	if !ok || !open.Cmp(token.Parens, "(") {
		return nil, p.fail(forTok, "expected parens to start a condition")
	}

	condA, err := p.parseForCondition(forTok)
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(forTok); err != nil {
		return nil, err
	}
	condB, err := p.parseForCondition(forTok)
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(forTok); err != nil {
		return nil, err
	}
	condC, err := p.parseForCondition(forTok)
	if err != nil {
		return nil, err
	}

	closeParen, ok := p.next()
	if !ok || !closeParen.Cmp(token.Parens, ")") {
		return nil, p.fail(forTok, "expected parens to end a condition")
	}

	bodyTok, ok := p.next()
	if !ok {
		return nil, p.fail(forTok, "expected a body for the for loop")
	}
	body, err := p.parseExpression(bodyTok, false)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, p.fail(bodyTok, "expected a body for the for loop")
	}

	return &ast.For{Tok: forTok, Conditions: [3]ast.Expression{condA, condB, condC}, Body: body}, nil
}

func (p *Parser) parseForCondition(forTok token.Token) (ast.Expression, error) {
	tok, ok := p.next()
	if !ok {
		return nil, p.fail(forTok, "expected a condition")
	}
	expr, err := p.parseExpression(tok, false)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, p.fail(tok, "expected a condition")
	}
	return expr, nil
}

func (p *Parser) expectSemicolon(forTok token.Token) error {
	tok, ok := p.next()
	if !ok || tok.Kind != token.Semicolon {
		return p.fail(forTok, "expected semicolon")
	}
	return nil
}

// parseModuleReference parses the shared tail of `import ... from "path"`
// and `export ... from "path"`.
func (p *Parser) parseModuleReference(kwTok token.Token, isImport bool) (ast.Expression, error) {
	var idents []string
	all := false

	switch {
	case p.peekCmp(token.Braces, "{"):
		p.next()
		for {
			tok, ok := p.next()
			if !ok {
				return nil, p.fail(kwTok, "unterminated import list")
			}
			if tok.Cmp(token.Braces, "}") {
				break
			}
			if tok.Kind == token.Ident {
				idents = append(idents, tok.Literal)
			}
		}
	case p.peekCmp(token.SomeOperator, "*"):
		p.next()
		all = true
	}

	fromTok, ok := p.next()
	if !ok || !fromTok.Cmp(token.Keyword, "from") {
		return nil, p.fail(kwTok, "expected 'from' keyword in import")
	}

	pathTok, ok := p.next()
	if !ok || pathTok.Kind != token.String {
		return nil, p.fail(kwTok, "expected path in import")
	}

	if isImport {
		return &ast.Import{Tok: kwTok, Idents: idents, ImportAll: all, Path: pathTok.Literal}, nil
	}
	return &ast.ExportFromFile{Tok: kwTok, Idents: idents, ExportAll: all, Path: pathTok.Literal}, nil
}

func (p *Parser) parseVariableDeclaration(kwTok token.Token) (ast.Expression, error) {
	mutable := kwTok.Literal == "let"
	nameTok, ok := p.next()
	if !ok || nameTok.Kind != token.Ident {
		return nil, p.fail(kwTok, "expected a variable name")
	}
	if !p.peekIsKind(token.Colon) {
		return nil, p.fail(nameTok, "typing is required for variable declarations")
	}
	p.next()
	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}
	decl := &ast.VariableDeclaration{Tok: kwTok, Name: nameTok.Literal, Type: ty, Mutable: mutable}

	if p.peekCmp(token.BinaryOperator, "=") {
		p.next()
		rhsTok, ok := p.next()
		if !ok {
			return nil, p.fail(kwTok, "expected something to be assigned to the variable")
		}
		rhs, err := p.parseExpression(rhsTok, false)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, p.fail(rhsTok, "expected something to be assigned to the variable")
		}
		return &ast.BinaryOperation{Tok: kwTok, Operator: ast.Assign, Lhs: decl, Rhs: rhs}, nil
	}
	return decl, nil
}

func (p *Parser) parseFuncCall(identTok token.Token) (ast.Expression, error) {
	p.next() // consume '('

	var args []ast.Expression
	for {
		tok, ok := p.next()
		if !ok {
			return nil, p.fail(identTok, "unterminated function call")
		}
		if tok.Cmp(token.Parens, ")") {
			break
		}
		if tok.Kind == token.Comma {
			continue
		}
		expr, err := p.parseExpression(tok, false)
		if err != nil {
			return nil, err
		}
		if expr != nil {
			args = append(args, expr)
		}
	}
	return &ast.FuncCall{Tok: identTok, Name: identTok.Literal, Args: args}, nil
}

// parseType reads a type signature: a base identifier optionally followed
// by `*` (pointer) or `[]` (array).
func (p *Parser) parseType() (string, error) {
	baseTok, ok := p.next()
	if !ok || baseTok.Kind != token.Ident {
		return "", p.fail(baseTok, "missing or improper type signature")
	}

	if p.peekCmp(token.SomeOperator, "*") {
		p.next()
		return baseTok.Literal + "*", nil
	}
	if p.peekCmp(token.Brackets, "[") {
		p.next()
		closeBracket, ok := p.next()
		if !ok || !closeBracket.Cmp(token.Brackets, "]") {
			return "", p.fail(baseTok, "invalid array type signature")
		}
		return baseTok.Literal + "[]", nil
	}
	return baseTok.Literal, nil
}
