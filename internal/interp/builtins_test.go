package interp

import (
	"testing"

	"github.com/cbondurant/lockjaw/internal/ast"
	"github.com/cbondurant/lockjaw/internal/parser"
)

func TestJoin(t *testing.T) {
	ip := New(nil)
	got := evalAll(t, ip, "join {1 2} {3 4}")
	if got.String() != "{ 1 2 3 4 }" {
		t.Fatalf("got %s", got.String())
	}
}

func TestCarOfEmptyQExpression(t *testing.T) {
	ip := New(nil)
	got := evalAll(t, ip, "car {}")
	if !got.IsNull() {
		t.Fatalf("expected car of an empty Q-expression to be null, got %s", got.String())
	}
}

func TestCdrOfEmptyQExpression(t *testing.T) {
	ip := New(nil)
	got := evalAll(t, ip, "cdr {}")
	if !got.IsNull() {
		t.Fatalf("expected cdr of an empty Q-expression to be null, got %s", got.String())
	}
}

func TestNullQAndAtomQ(t *testing.T) {
	ip := New(nil)
	if got := evalAll(t, ip, "null? {}"); got.String() != "true" {
		t.Fatalf("null? {} = %s, want true", got.String())
	}
	if got := evalAll(t, ip, "null? 5"); got.String() != "false" {
		t.Fatalf("null? 5 = %s, want false", got.String())
	}
	if got := evalAll(t, ip, "atom? 5"); got.String() != "true" {
		t.Fatalf("atom? 5 = %s, want true", got.String())
	}
	if got := evalAll(t, ip, "atom? {1 2}"); got.String() != "false" {
		t.Fatalf("atom? {1 2} = %s, want false", got.String())
	}
}

func TestBooleanTruthTables(t *testing.T) {
	cases := []struct {
		a, b         string
		and, or, xor string
	}{
		{"#t", "#t", "true", "true", "false"},
		{"#t", "#f", "false", "true", "true"},
		{"#f", "#t", "false", "true", "true"},
		{"#f", "#f", "false", "false", "false"},
	}
	for _, tc := range cases {
		ip := New(nil)
		if got := evalAll(t, ip, "and? "+tc.a+" "+tc.b); got.String() != tc.and {
			t.Errorf("and? %s %s = %s, want %s", tc.a, tc.b, got.String(), tc.and)
		}
		if got := evalAll(t, ip, "or? "+tc.a+" "+tc.b); got.String() != tc.or {
			t.Errorf("or? %s %s = %s, want %s", tc.a, tc.b, got.String(), tc.or)
		}
		if got := evalAll(t, ip, "xor? "+tc.a+" "+tc.b); got.String() != tc.xor {
			t.Errorf("xor? %s %s = %s, want %s", tc.a, tc.b, got.String(), tc.xor)
		}
	}
}

func TestNumericComparisons(t *testing.T) {
	ip := New(nil)
	if got := evalAll(t, ip, "gt? 2 1"); got.String() != "true" {
		t.Fatalf("gt? 2 1 = %s", got.String())
	}
	if got := evalAll(t, ip, "lt? 2 1"); got.String() != "false" {
		t.Fatalf("lt? 2 1 = %s", got.String())
	}
	if got := evalAll(t, ip, "eq? 2 2.0"); got.String() != "true" {
		t.Fatalf("eq? 2 2.0 = %s", got.String())
	}
	if got := evalAll(t, ip, "zero? 0"); got.String() != "true" {
		t.Fatalf("zero? 0 = %s", got.String())
	}
}

func TestNumericWidening(t *testing.T) {
	ip := New(nil)
	if got := evalAll(t, ip, "+ 1 2"); got.String() != "3" || !got.Atom.Number.IsInt() {
		t.Fatalf("+ 1 2 = %s, want Int 3", got.String())
	}
	if got := evalAll(t, ip, "+ 1 (+ 2 0.0)"); got.String() != "3" || !got.Atom.Number.IsFloat() {
		t.Fatalf("+ 1 (+ 2 0.0) = %s, want Float 3", got.String())
	}
}

func TestArityMismatchErrors(t *testing.T) {
	ip := New(nil)
	root, err := parser.ParseSource("car {1} {2}")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, evalErr := ip.Evaluate(root)
	rtErr, ok := evalErr.(*ast.RuntimeError)
	if !ok || rtErr.Kind != ast.ErrInvalidArgumentCount {
		t.Fatalf("got %v, want InvalidArgumentCount", evalErr)
	}
}

func TestStringLiteralDecodesEscapes(t *testing.T) {
	ip := New(nil)
	got := evalAll(t, ip, "\"!@#$%^&*()_+<>,.;':\\\"\\n\\t\\r`~😇\"")
	atom, err := got.AsAtom()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "!@#$%^&*()_+<>,.;':\"\n\t\r`~😇"
	if atom.Str != want {
		t.Fatalf("got %q, want %q", atom.Str, want)
	}
}

func TestTypeMismatchIsInvalidArguments(t *testing.T) {
	ip := New(nil)
	root, err := parser.ParseSource(`+ 1 "x"`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, evalErr := ip.Evaluate(root)
	rtErr, ok := evalErr.(*ast.RuntimeError)
	if !ok || rtErr.Kind != ast.ErrInvalidArguments {
		t.Fatalf("got %v, want InvalidArguments", evalErr)
	}
}
