package lexer

import "fmt"

// Position locates a point in the source text. Offset is the byte offset
// used for diagnostics and for re-slicing the original source; Line and
// Column are derived for human-readable error messages.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String renders a Position as "line:column", the form the diagnostic
// formatter in internal/errors embeds in its header.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Kind enumerates the token kinds the lexer recognizes.
type Kind int

const (
	// LParen is '('.
	LParen Kind = iota
	// RParen is ')'.
	RParen
	// LBrace is '{'.
	LBrace
	// RBrace is '}'.
	RBrace
	// Integer is an unsigned decimal integer literal, e.g. "123".
	Integer
	// Float is an unsigned decimal float literal, e.g. "123.45".
	Float
	// RawSymbol is an identifier built from the symbol character class.
	RawSymbol
	// StringLiteral is the raw (escape-undecoded) contents of a quoted string.
	StringLiteral
)

// kindNames backs Kind.String() with a table-driven lookup.
var kindNames = [...]string{
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	Integer:       "Integer",
	Float:         "Float",
	RawSymbol:     "RawSymbol",
	StringLiteral: "StringLiteral",
}

// String returns the human-readable name of a Kind.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Lexeme is one token: its kind, the literal text the lexer matched (the
// textual slice for Integer/Float is deferred parsing), and the source
// position it started at.
type Lexeme struct {
	Kind Kind
	Text string
	Pos  Position
}
