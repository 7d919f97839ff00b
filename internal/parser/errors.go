package parser

import (
	"fmt"

	"github.com/cbondurant/lockjaw/internal/lexer"
)

// ErrorKind tags the shape of a parse failure.
type ErrorKind int

const (
	// ErrInvalidLiteral marks a lexeme that cannot begin an expression.
	ErrInvalidLiteral ErrorKind = iota
	// ErrInvalidStringLiteral marks an unrecognized escape sequence
	// inside a string literal.
	ErrInvalidStringLiteral
	// ErrIntParseFailure marks an Integer lexeme that doesn't fit in an
	// int64 (or is otherwise unparseable, though the lexer's character
	// class guarantees well-formed digit runs).
	ErrIntParseFailure
	// ErrFloatParseFailure marks a Float lexeme that fails to parse.
	ErrFloatParseFailure
	// ErrUnexpectedEOF marks a bracketed form missing its closer, or an
	// empty lexeme slice where an expression was expected.
	ErrUnexpectedEOF
	// ErrLex wraps a lex error encountered before parsing could start.
	ErrLex
)

var kindNames = [...]string{
	ErrInvalidLiteral:      "InvalidLiteral",
	ErrInvalidStringLiteral: "InvalidStringLiteral",
	ErrIntParseFailure:      "IntParseFailure",
	ErrFloatParseFailure:    "FloatParseFailure",
	ErrUnexpectedEOF:        "UnexpectedEof",
	ErrLex:                  "LexError",
}

// String returns the name of a parse ErrorKind.
func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Error is Lockjaw's parse failure type.
type Error struct {
	Kind   ErrorKind
	Pos    lexer.Position
	Escape rune // populated for ErrInvalidStringLiteral
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrInvalidStringLiteral:
		return fmt.Sprintf("invalid escape sequence '\\%c' at %s", e.Escape, e.Pos)
	case ErrLex:
		return fmt.Sprintf("%s", e.Cause)
	default:
		return fmt.Sprintf("%s at %s", e.Kind, e.Pos)
	}
}

// Unwrap exposes the wrapped lex error, if any.
func (e *Error) Unwrap() error { return e.Cause }
