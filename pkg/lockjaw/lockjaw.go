// Package lockjaw is the public facade over Lockjaw's lexer, parser, and
// evaluator — the single entry point REPL, CLI, and embedding callers use.
package lockjaw

import (
	"io"

	"github.com/cbondurant/lockjaw/internal/ast"
	"github.com/cbondurant/lockjaw/internal/interp"
	"github.com/cbondurant/lockjaw/internal/parser"
)

// Engine is a Lockjaw interpreter instance: one environment persists across
// every Eval call, so `def` in one call is visible to the next — the
// behavior a REPL session or a sequence of loaded files both depend on.
type Engine struct {
	interp *interp.Interpreter
}

// New builds an Engine with a fresh global environment pre-populated with
// every builtin and special form. Output is where the engine would write
// any diagnostic/trace output its interpreter produces; pass nil to
// discard it.
func New(output io.Writer) *Engine {
	return &Engine{interp: interp.New(output)}
}

// Parse lexes and parses source into its Expression tree without
// evaluating it.
func (e *Engine) Parse(source string) (ast.Expression, error) {
	return parser.ParseSource(source)
}

// Eval parses source as one implicit S-expression and evaluates it — the
// contract a REPL uses to print one value per line entered: "+ 3 4" is a
// single call yielding 7, and a source holding one parenthesised form
// yields that form's result.
func (e *Engine) Eval(source string) (ast.Expression, error) {
	root, err := parser.ParseSource(source)
	if err != nil {
		return ast.Expression{}, err
	}
	return e.interp.Evaluate(root)
}

// Environment exposes the engine's underlying environment for callers that
// need direct access (e.g. a REPL pre-seeding bindings before the prompt).
func (e *Engine) Environment() *interp.Environment {
	return e.interp.Env
}
