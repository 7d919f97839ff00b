package lexer

import (
	"io"
	"testing"
)

func TestNextLexemeBasic(t *testing.T) {
	input := `(+ 1 2.5 {a b})`
	tests := []struct {
		kind Kind
		text string
	}{
		{LParen, "("},
		{RawSymbol, "+"},
		{Integer, "1"},
		{Float, "2.5"},
		{LBrace, "{"},
		{RawSymbol, "a"},
		{RawSymbol, "b"},
		{RBrace, "}"},
		{RParen, ")"},
	}

	l := New(input)
	for i, tt := range tests {
		lx, err := l.NextLexeme()
		if err != nil {
			t.Fatalf("tests[%d]: unexpected error: %v", i, err)
		}
		if lx.Kind != tt.kind || lx.Text != tt.text {
			t.Fatalf("tests[%d] = {%v %q}, want {%v %q}", i, lx.Kind, lx.Text, tt.kind, tt.text)
		}
	}
	if _, err := l.NextLexeme(); err != io.EOF {
		t.Fatalf("expected io.EOF at end, got %v", err)
	}
}

func TestLineComment(t *testing.T) {
	toks, err := Tokenize("1 ; comment to eol\n2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 || toks[0].Text != "1" || toks[1].Text != "2" {
		t.Fatalf("got %+v", toks)
	}
}

func TestIntegerVsFloat(t *testing.T) {
	toks, err := Tokenize("123 123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != Integer || toks[0].Text != "123" {
		t.Fatalf("toks[0] = %+v", toks[0])
	}
	if toks[1].Kind != Float || toks[1].Text != "123.45" {
		t.Fatalf("toks[1] = %+v", toks[1])
	}
	// "123." has no digit after the dot: Integer "123", then a standalone
	// '.' which is not a valid lexeme start and should error.
	toks2, err := Tokenize("123.")
	if err == nil {
		t.Fatalf("expected an error for trailing bare '.', got tokens %+v", toks2)
	}
}

func TestRawSymbolCharacterClass(t *testing.T) {
	toks, err := Tokenize(`/_+-*\=><!&?#`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != RawSymbol {
		t.Fatalf("got %+v", toks)
	}
}

func TestStringLiteralEscape(t *testing.T) {
	toks, err := Tokenize(`"a\"b"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != StringLiteral {
		t.Fatalf("got %+v", toks)
	}
	if toks[0].Text != `a\"b` {
		t.Fatalf("toks[0].Text = %q", toks[0].Text)
	}
}

func TestStringLiteralSingleQuote(t *testing.T) {
	toks, err := Tokenize(`'hello'`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != StringLiteral || toks[0].Text != "hello" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestUnterminatedStringIsUnexpectedEOF(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	if err == nil {
		t.Fatal("expected an error")
	}
	lexErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if lexErr.Kind != ErrUnexpectedEOF {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", lexErr.Kind)
	}
}

func TestTrailingBackslashIsUnexpectedEOF(t *testing.T) {
	_, err := Tokenize(`"abc\`)
	if err == nil {
		t.Fatal("expected an error")
	}
	if lexErr, ok := err.(*Error); !ok || lexErr.Kind != ErrUnexpectedEOF {
		t.Fatalf("got %v", err)
	}
}

func TestInvalidLiteralFuses(t *testing.T) {
	l := New("@@@")
	_, err := l.NextLexeme()
	if err == nil {
		t.Fatal("expected an error for '@'")
	}
	if _, ok := err.(*Error); !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	// Lexer is fused after an error: further pulls yield io.EOF, not more
	// errors or tokens.
	if _, err2 := l.NextLexeme(); err2 != io.EOF {
		t.Fatalf("expected fused io.EOF, got %v", err2)
	}
}

func TestWhitespaceSkipped(t *testing.T) {
	toks, err := Tokenize("  \t\n  1  \n\t 2  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("got %+v", toks)
	}
}

func TestPositionTracking(t *testing.T) {
	toks, err := Tokenize("1\n22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Pos.Line != 1 {
		t.Fatalf("toks[0].Pos.Line = %d, want 1", toks[0].Pos.Line)
	}
	if toks[1].Pos.Line != 2 {
		t.Fatalf("toks[1].Pos.Line = %d, want 2", toks[1].Pos.Line)
	}
}
