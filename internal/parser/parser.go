// Package parser turns a slice of lexemes into a Lockjaw Expression tree
// by recursive descent. Lockjaw's grammar is small enough that a Pratt
// parser would be overkill for it.
package parser

import (
	"strconv"

	"github.com/cbondurant/lockjaw/internal/ast"
	"github.com/cbondurant/lockjaw/internal/lexer"
	"github.com/cbondurant/lockjaw/internal/numeric"
)

// ParseSource lexes and parses a complete program, returning the top-level
// expression (an implicit S-expression of every form read from source), or
// the first lex/parse error encountered.
func ParseSource(source string) (ast.Expression, error) {
	lexemes, err := lexer.Tokenize(source)
	if err != nil {
		pos := lexer.Position{}
		if lexErr, ok := err.(*lexer.Error); ok {
			pos = lexErr.Pos
		}
		return ast.Expression{}, &Error{Kind: ErrLex, Pos: pos, Cause: err}
	}
	return ParseRoot(lexemes)
}

// ParseRoot parses every top-level form in lexemes and wraps them in an
// implicit S-expression, the way a REPL or `load` treats a whole file as one
// program.
func ParseRoot(lexemes []lexer.Lexeme) (ast.Expression, error) {
	var items []ast.Expression
	idx := 0
	for idx < len(lexemes) {
		expr, err := Parse(lexemes[idx:])
		if err != nil {
			return ast.Expression{}, err
		}
		items = append(items, expr)
		idx += expr.LexemeSpan()
	}
	return ast.NewSExpression(items), nil
}

// Parse parses a single expression from the front of lexemes. The caller
// advances by the returned expression's LexemeSpan() to continue parsing
// siblings, the same accounting the internal/ast package uses to track how
// many lexemes a form consumed.
func Parse(lexemes []lexer.Lexeme) (ast.Expression, error) {
	if len(lexemes) == 0 {
		return ast.Expression{}, &Error{Kind: ErrUnexpectedEOF}
	}

	first := lexemes[0]
	switch first.Kind {
	case lexer.LParen:
		return parseBracketed(lexemes, lexer.RParen, ast.NewSExpression)
	case lexer.LBrace:
		return parseBracketed(lexemes, lexer.RBrace, ast.NewQExpression)
	case lexer.RParen, lexer.RBrace:
		return ast.Expression{}, &Error{Kind: ErrInvalidLiteral, Pos: first.Pos}
	case lexer.Integer:
		n, err := strconv.ParseInt(first.Text, 10, 64)
		if err != nil {
			return ast.Expression{}, &Error{Kind: ErrIntParseFailure, Pos: first.Pos}
		}
		return ast.NewAtom(ast.NumberAtom(numeric.Int(n))), nil
	case lexer.Float:
		f, err := strconv.ParseFloat(first.Text, 64)
		if err != nil {
			return ast.Expression{}, &Error{Kind: ErrFloatParseFailure, Pos: first.Pos}
		}
		return ast.NewAtom(ast.NumberAtom(numeric.Float(f))), nil
	case lexer.RawSymbol:
		switch first.Text {
		case "#t", "true":
			return ast.NewAtom(ast.BoolAtom(true)), nil
		case "#f", "false":
			return ast.NewAtom(ast.BoolAtom(false)), nil
		default:
			return ast.NewAtom(ast.SymbolAtom(first.Text)), nil
		}
	case lexer.StringLiteral:
		decoded, err := decodeString(first.Text, first.Pos)
		if err != nil {
			return ast.Expression{}, err
		}
		return ast.NewAtom(ast.StringAtom(decoded)), nil
	default:
		return ast.Expression{}, &Error{Kind: ErrInvalidLiteral, Pos: first.Pos}
	}
}

// parseBracketed consumes lexemes[0] (the opener) through the matching
// closer, parsing each child expression in between with a recursive call to
// Parse and advancing by that child's LexemeSpan().
func parseBracketed(lexemes []lexer.Lexeme, closer lexer.Kind, wrap func([]ast.Expression) ast.Expression) (ast.Expression, error) {
	open := lexemes[0]
	var items []ast.Expression
	idx := 1
	for {
		if idx >= len(lexemes) {
			return ast.Expression{}, &Error{Kind: ErrUnexpectedEOF, Pos: open.Pos}
		}
		if lexemes[idx].Kind == closer {
			return wrap(items), nil
		}
		child, err := Parse(lexemes[idx:])
		if err != nil {
			return ast.Expression{}, err
		}
		items = append(items, child)
		idx += child.LexemeSpan()
	}
}

// decodeString resolves the backslash escapes in a string lexeme's raw text
// into its final runtime value: \t \n \r \0 \\ \" \' are recognized, any
// other escape is InvalidStringLiteral, and a lone trailing
// backslash is UnexpectedEof (unreachable given the lexer's own escape
// handling, but checked here defensively since decodeString's contract
// doesn't otherwise guarantee it).
func decodeString(text string, pos lexer.Position) (string, error) {
	var b []byte
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' {
			b = append(b, string(r)...)
			continue
		}
		i++
		if i >= len(runes) {
			return "", &Error{Kind: ErrUnexpectedEOF, Pos: pos}
		}
		switch runes[i] {
		case 't':
			b = append(b, '\t')
		case 'n':
			b = append(b, '\n')
		case 'r':
			b = append(b, '\r')
		case '0':
			b = append(b, 0)
		case '\\':
			b = append(b, '\\')
		case '"':
			b = append(b, '"')
		case '\'':
			b = append(b, '\'')
		default:
			return "", &Error{Kind: ErrInvalidStringLiteral, Pos: pos, Escape: runes[i]}
		}
	}
	return string(b), nil
}
