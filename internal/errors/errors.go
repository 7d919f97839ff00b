// Package errors formats Lockjaw's lex, parse, and runtime errors with
// source context — a file:line:column header, the offending source line,
// and a caret pointing at the failure — across Lockjaw's three error
// taxonomies (internal/lexer.Error, internal/parser.Error,
// internal/ast.RuntimeError).
package errors

import (
	"fmt"
	"strings"

	"github.com/cbondurant/lockjaw/internal/ast"
	"github.com/cbondurant/lockjaw/internal/lexer"
	"github.com/cbondurant/lockjaw/internal/parser"
)

// Diagnostic is a single formatted failure: a message, the position it
// occurred at (zero-valued when the underlying error carries none, as
// most runtime errors don't), and enough of the original source to print
// a caret.
type Diagnostic struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// New builds a Diagnostic directly.
func New(pos lexer.Position, message, source, file string) *Diagnostic {
	return &Diagnostic{Pos: pos, Message: message, Source: source, File: file}
}

// FromError builds a Diagnostic from any error Lockjaw produces. Lex and
// parse errors carry a source position; runtime errors do not, since they
// fire mid-evaluation with no single lexeme to blame, so those
// diagnostics render without a source-line/caret block.
func FromError(err error, source, file string) *Diagnostic {
	switch e := err.(type) {
	case *lexer.Error:
		return New(e.Pos, e.Error(), source, file)
	case *parser.Error:
		return New(e.Pos, e.Error(), source, file)
	case *ast.RuntimeError:
		return New(lexer.Position{}, e.Error(), source, file)
	default:
		return New(lexer.Position{}, err.Error(), source, file)
	}
}

// Error implements the error interface.
func (d *Diagnostic) Error() string { return d.Format(false) }

// Format renders the diagnostic: a header, the source line and caret (when
// a position and matching source are available), and the message. When
// color is true, ANSI codes highlight the caret and message.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.File != "" {
		sb.WriteString(fmt.Sprintf("error in %s:%s\n", d.File, d.Pos))
	} else if d.Pos != (lexer.Position{}) {
		sb.WriteString(fmt.Sprintf("error at %s\n", d.Pos))
	} else {
		sb.WriteString("error:\n")
	}

	if line := d.getSourceLine(d.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column-1))
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
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// getSourceLine extracts a 1-indexed line from the diagnostic's source.
func (d *Diagnostic) getSourceLine(lineNum int) string {
	if d.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
