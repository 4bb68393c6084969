// Package lexer turns plume source text into a stream of tokens.
//
// The lexer holds a character cursor (current index, next index, current
// rune) plus 1-based line/column, and emits exactly one token per call to
// NextToken. Column resets to 1 on a newline; the newline character itself
// belongs to the line it ends, matching the convention used by
// github.com/cwbudde/go-dws's lexer.
//
// Three token kinds are deliberately ambiguous at lex time: '-', '*' and
// '&' are emitted as token.SomeOperator rather than Unary or Binary,
// because whether they are a prefix operator (negation, deref, address-of)
// or an infix one (subtract, multiply, bitwise-and) depends on what came
// before them — something only the parser knows. See internal/parser for
// the disambiguation rule.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/plume-lang/plumec/internal/token"
)

const eof = rune(0)

// Lexer is a one-shot token stream over a string: once NextToken returns
// an EOF token, it keeps returning EOF tokens. It is positioned on the
// first character on construction.
type Lexer struct {
	input        string
	position     int // start of current rune
	readPosition int // start of next rune
	ch           rune
	line         int
	column       int
}

// New creates a Lexer positioned on the first character of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.read()
	return l
}

// read advances the cursor by one rune. On EOF it sets ch to the null
// sentinel. On newline it increments line and resets column to 0, leaving
// the post-increment to the read() call for the character that follows;
// incrementing column on the newline's own read() would leave it sitting
// at column 1 instead of 0, pushing every column on the next line one too
// far right.
func (l *Lexer) read() {
	if l.readPosition >= len(l.input) {
		l.ch = eof
		l.position = l.readPosition
		l.column++
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// PeekChar returns the next character without consuming it.
func (l *Lexer) PeekChar() rune {
	if l.readPosition >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.read()
	}
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// isIdentStart reports whether ch can begin an identifier. Unlike
// isIdentPart, it excludes '_': an identifier must start with a letter.
func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch)
}

// isIdentPart reports whether ch can continue an identifier once started.
func isIdentPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// lexerState is a cheap snapshot used by Peek to restore the cursor after a
// speculative NextToken call.
type lexerState struct {
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

func (l *Lexer) saveState() lexerState {
	return lexerState{l.position, l.readPosition, l.ch, l.line, l.column}
}

func (l *Lexer) restoreState(s lexerState) {
	l.position, l.readPosition, l.ch, l.line, l.column = s.position, s.readPosition, s.ch, s.line, s.column
}

// Peek returns the next token without consuming it. Calling NextToken
// afterward returns the identical token and leaves the lexer exactly where
// NextToken alone would have left it (spec invariant: peek then next
// produces equal tokens and the same post-next state).
func (l *Lexer) Peek() token.Token {
	state := l.saveState()
	tok := l.NextToken()
	l.restoreState(state)
	return tok
}

// NextToken consumes and returns the next token from the input.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	line, col := l.line, l.column

	switch {
	case l.ch == eof:
		return token.New(token.EOF, "", line, col)
	case l.ch == '/' && (l.PeekChar() == '/' || l.PeekChar() == '*'):
		return l.readComment(line, col)
	case l.ch == '\'' || l.ch == '"':
		return l.readStringOrChar(line, col)
	case isIdentStart(l.ch):
		return l.readIdentifier(line, col)
	case isDigit(l.ch):
		return l.readNumber(line, col)
	case l.ch == '-' && l.PeekChar() == '>':
		l.read()
		l.read()
		return token.New(token.ReturnArrow, "->", line, col)
	case l.ch == '~':
		lit := string(l.ch)
		l.read()
		return token.New(token.UnaryOperator, lit, line, col)
	case l.ch == '&':
		lit := string(l.ch)
		l.read()
		return token.New(token.SomeOperator, lit, line, col)
	case l.ch == ',':
		l.read()
		return token.New(token.Comma, ",", line, col)
	case l.ch == ':':
		l.read()
		return token.New(token.Colon, ":", line, col)
	case l.ch == ';':
		l.read()
		return token.New(token.Semicolon, ";", line, col)
	case l.ch == '(' || l.ch == ')':
		lit := string(l.ch)
		l.read()
		return token.New(token.Parens, lit, line, col)
	case l.ch == '[' || l.ch == ']':
		lit := string(l.ch)
		l.read()
		return token.New(token.Brackets, lit, line, col)
	case l.ch == '{' || l.ch == '}':
		lit := string(l.ch)
		l.read()
		return token.New(token.Braces, lit, line, col)
	default:
		return l.readOperator(line, col)
	}
}

// readComment handles "// ..." to end of line and "/* ... */" to the
// closing delimiter. The emitted literal is the body, trimmed, without the
// comment delimiters — matching the original plume lexer's
// buffer.trim() on everything between the opening and closing markers.
func (l *Lexer) readComment(line, col int) token.Token {
	multiline := l.PeekChar() == '*'
	l.read() // consume '/'
	l.read() // consume '/' or '*'

	var body []rune
	for l.ch != eof {
		if multiline && l.ch == '*' && l.PeekChar() == '/' {
			l.read()
			l.read()
			break
		}
		if !multiline && l.ch == '\n' {
			break
		}
		body = append(body, l.ch)
		l.read()
	}
	return token.New(token.Comment, trimSpace(string(body)), line, col)
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isWhitespace(rune(s[start])) {
		start++
	}
	for end > start && isWhitespace(rune(s[end-1])) {
		end--
	}
	return s[start:end]
}

// readStringOrChar reads the body between a pair of matching quotes (either
// kind terminates the other, matching plume's own lexer, which treats ' and
// " interchangeably). No escape processing is performed.
func (l *Lexer) readStringOrChar(line, col int) token.Token {
	isChar := l.ch == '\''
	l.read() // consume opening quote

	var body []rune
	for l.ch != eof && l.ch != '\'' && l.ch != '"' {
		body = append(body, l.ch)
		l.read()
	}
	l.read() // consume closing quote (or EOF, silently truncating)

	kind := token.String
	if isChar {
		kind = token.Char
	}
	return token.New(kind, string(body), line, col)
}

// readIdentifier reads a letter followed by any run of letters, digits and
// '_' (a leading '_' never reaches here), and classifies it as a
// keyword, a bool literal, or a plain identifier.
func (l *Lexer) readIdentifier(line, col int) token.Token {
	start := l.position
	for isIdentPart(l.ch) {
		l.read()
	}
	lit := l.input[start:l.position]

	switch {
	case token.Keywords[lit]:
		return token.New(token.Keyword, lit, line, col)
	case lit == "true" || lit == "false":
		return token.New(token.Bool, lit, line, col)
	default:
		return token.New(token.Ident, lit, line, col)
	}
}

// readNumber reads digits, at most one '.', and silently drops '_'
// separators from the stored literal. A second '.' terminates the token
// (so "1.2.3" lexes as "1.2" followed by a fresh token starting at '.').
func (l *Lexer) readNumber(line, col int) token.Token {
	var lit []byte
	hasDot := false

	for {
		if l.ch == '_' {
			l.read()
			continue
		}
		if isDigit(l.ch) {
			lit = append(lit, byte(l.ch))
			l.read()
			continue
		}
		if l.ch == '.' && !hasDot {
			hasDot = true
			lit = append(lit, '.')
			l.read()
			continue
		}
		break
	}
	return token.New(token.Number, string(lit), line, col)
}

// readOperator handles every multi-character operator lexeme via one
// character of lookahead, dispatching on the leading character. Anything
// left over is an illegal character, reported as Whitespace per spec (the
// parser silently ignores Whitespace tokens).
func (l *Lexer) readOperator(line, col int) token.Token {
	ch := l.ch
	switch ch {
	case '+', '-':
		if l.PeekChar() == ch {
			l.read()
			l.read()
			return token.New(token.UnaryOperator, string(ch)+string(ch), line, col)
		}
		if l.PeekChar() == '=' {
			l.read()
			l.read()
			return token.New(token.BinaryOperator, string(ch)+"=", line, col)
		}
		l.read()
		if ch == '-' {
			return token.New(token.SomeOperator, "-", line, col)
		}
		return token.New(token.BinaryOperator, "+", line, col)

	case '*', '/', '%':
		if l.PeekChar() == '=' {
			l.read()
			l.read()
			return token.New(token.BinaryOperator, string(ch)+"=", line, col)
		}
		l.read()
		if ch == '*' {
			return token.New(token.SomeOperator, "*", line, col)
		}
		return token.New(token.BinaryOperator, string(ch), line, col)

	case '=':
		if l.PeekChar() == '=' {
			l.read()
			l.read()
			return token.New(token.BinaryOperator, "==", line, col)
		}
		l.read()
		return token.New(token.BinaryOperator, "=", line, col)

	case '!':
		if l.PeekChar() == '=' {
			l.read()
			l.read()
			return token.New(token.BinaryOperator, "!=", line, col)
		}
		l.read()
		return token.New(token.UnaryOperator, "!", line, col)

	case '<', '>':
		if l.PeekChar() == ch {
			l.read()
			if l.PeekChar() == '=' {
				l.read()
				l.read()
				return token.New(token.BinaryOperator, string(ch)+string(ch)+"=", line, col)
			}
			l.read()
			return token.New(token.BinaryOperator, string(ch)+string(ch), line, col)
		}
		if l.PeekChar() == '=' {
			l.read()
			l.read()
			return token.New(token.BinaryOperator, string(ch)+"=", line, col)
		}
		l.read()
		return token.New(token.BinaryOperator, string(ch), line, col)

	default:
		lit := string(l.ch)
		l.read()
		return token.New(token.Whitespace, lit, line, col)
	}
}
