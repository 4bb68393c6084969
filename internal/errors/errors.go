// Package errors renders compiler diagnostics with source context: a
// file:line:column header, the offending source line, and a caret pointing
// at the column, the same shape github.com/cwbudde/go-dws's
// internal/errors uses.
package errors

import (
	"fmt"
	"strings"

	"github.com/plume-lang/plumec/internal/token"
)

// CompilerError is a single diagnostic anchored to a source position.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Line    int
	Column  int
}

// NewCompilerError builds a CompilerError at the given token's position.
func NewCompilerError(tok token.Token, message, source, file string) *CompilerError {
	return &CompilerError{
		Message: message,
		Source:  source,
		File:    file,
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the error with a single line of source context. With
// color true, the header and caret use ANSI escapes.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Line, e.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Line, e.Column)
	}

	if line := e.sourceLine(e.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (e *CompilerError) sourceLine(n int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// FormatErrors renders a batch of errors, numbering them when there is more
// than one.
func FormatErrors(errs []*CompilerError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Compilation failed with %d error(s):\n\n", len(errs))
	for i, err := range errs {
		fmt.Fprintf(&sb, "[Error %d of %d]\n", i+1, len(errs))
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// LexError reports a character the lexer could not classify into a
// meaningful token.
type LexError struct {
	*CompilerError
}

func NewLexError(tok token.Token, message, source, file string) *LexError {
	return &LexError{NewCompilerError(tok, message, source, file)}
}

// ParseError reports a structural failure in the token stream — a missing
// delimiter, a keyword used out of place, an unexpected end of input. Per
// spec, the parser has no recovery strategy: the first ParseError aborts
// the whole parse.
type ParseError struct {
	*CompilerError
}

func NewParseError(tok token.Token, message, source, file string) *ParseError {
	return &ParseError{NewCompilerError(tok, message, source, file)}
}

// ManifestError reports a problem loading or reading project.json. It has
// no source position of its own, since a manifest error is usually "file
// not found" or "missing required field" rather than a parse failure.
type ManifestError struct {
	Path    string
	Message string
}

func NewManifestError(path, message string) *ManifestError {
	return &ManifestError{Path: path, Message: message}
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}
