// Package interp is Lockjaw's tree-walking evaluator: a lexically-scoped
// environment stack (environment.go), special-form and function-application
// dispatch (evaluator.go), the primitive library (builtins.go), and the
// `load` special form's file-loading path (load.go).
package interp

import (
	"io"

	"github.com/cbondurant/lockjaw/internal/ast"
)

// Interpreter holds the evaluator's environment and its output sink,
// threading an io.Writer through for REPL/CLI output rather than
// printing directly.
type Interpreter struct {
	Env *Environment
	Out io.Writer
}

// New builds an Interpreter with a fresh global environment pre-populated
// with every builtin and special form.
func New(out io.Writer) *Interpreter {
	ip := &Interpreter{Env: NewEnvironment(), Out: out}
	registerBuiltins(ip.Env)
	return ip
}

// Evaluate dispatches on the outer shape of expr.
func (ip *Interpreter) Evaluate(expr ast.Expression) (ast.Expression, error) {
	switch expr.Kind {
	case ast.ExprAtom:
		if expr.Atom.Kind == ast.AtomSymbol {
			return ip.evaluateSymbol(expr.Atom.Symbol)
		}
		return expr, nil
	case ast.ExprSExpression:
		return ip.resolveSExpression(expr.Items)
	default:
		return expr, nil
	}
}

// evaluateSymbol looks up s in the environment. A Value::Variable binding
// unwraps one level of indirection so the caller sees the bound expression
// directly, not the Variable wrapper; any other binding travels onward as
// Atom(Value(...)) data.
func (ip *Interpreter) evaluateSymbol(s string) (ast.Expression, error) {
	v, ok := ip.Env.Get(s)
	if !ok {
		return ast.Expression{}, ast.ErrUnbound
	}
	if v.Kind == ast.ValueVariable {
		return *v.Variable, nil
	}
	return ast.NewAtom(ast.ValueAtom(v)), nil
}

// resolveSExpression implements the five-step S-expression resolution
// algorithm: the quote short-circuit, left-to-right argument evaluation,
// the unary-expression self-evaluation rule, and dispatch on the resolved
// head value.
func (ip *Interpreter) resolveSExpression(items []ast.Expression) (ast.Expression, error) {
	if len(items) == 0 {
		return ast.Null, nil
	}

	if head := items[0]; head.Kind == ast.ExprAtom && head.Atom.Kind == ast.AtomSymbol && head.Atom.Symbol == "quote" {
		return ast.NewQExpression(items[1:]), nil
	}

	evals := make([]ast.Expression, 0, len(items))
	for _, item := range items {
		v, err := ip.Evaluate(item)
		if err != nil {
			return ast.Expression{}, err
		}
		evals = append(evals, v)
	}

	if len(evals) == 1 {
		return evals[0], nil
	}

	head := evals[0]
	evals = evals[1:]

	atom, err := head.AsAtom()
	if err != nil {
		return ast.Expression{}, ast.NewInvalidFunction("expected a function, got %s", head)
	}
	val, err := atom.AsValue()
	if err != nil {
		return ast.Expression{}, ast.NewInvalidFunction("expected a function, got %s", head)
	}

	switch val.Kind {
	case ast.ValueBuiltin:
		return val.Builtin(evals)
	case ast.ValueEval:
		return ip.evalForm(evals)
	case ast.ValueDef:
		return ip.def(evals)
	case ast.ValueCond:
		return ip.cond(evals)
	case ast.ValueLoad:
		return ip.load(evals)
	case ast.ValueUserDef:
		return ip.applyUserDef(val.UserDef, evals)
	default:
		return ast.Expression{}, ast.NewInvalidFunction("expected a function, got %s", val)
	}
}

// evalForm implements the `eval` special form: its one argument must be a
// Q-expression, whose contents are resolved as an S-expression.
func (ip *Interpreter) evalForm(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 1 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("eval requires exactly one argument")
	}
	items, err := args[0].AsQExpression()
	if err != nil {
		return ast.Expression{}, err
	}
	return ip.resolveSExpression(items)
}

// def binds a Q-expression of symbols followed by one value per symbol
// into the global scope as Value::Variable. Non-symbol entries are
// silently skipped.
func (ip *Interpreter) def(args []ast.Expression) (ast.Expression, error) {
	if len(args) == 0 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("def requires a Q-expression of symbol names")
	}
	symbols, err := args[0].AsQExpression()
	if err != nil {
		return ast.Expression{}, err
	}
	values := args[1:]
	if len(symbols) != len(values) {
		return ast.Expression{}, ast.NewInvalidArgumentCount("def requires one value per variable name")
	}
	for i, symExpr := range symbols {
		symAtom, err := symExpr.AsAtom()
		if err != nil {
			continue
		}
		name, err := symAtom.AsSymbol()
		if err != nil {
			continue
		}
		ip.Env.Def(name, ast.NewVariable(values[i]))
	}
	return ast.Null, nil
}

// cond evaluates each clause: a two-element Q-expression, a query and a
// consequent. The first query that evaluates true returns its
// consequent; if none do, the form fails with CondFailure.
func (ip *Interpreter) cond(args []ast.Expression) (ast.Expression, error) {
	if len(args) == 0 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("cond requires at least one clause")
	}
	for _, clause := range args {
		items, err := clause.AsQExpression()
		if err != nil {
			return ast.Expression{}, err
		}
		if len(items) != 2 {
			return ast.Expression{}, ast.NewInvalidArguments("a cond clause must be a query and a consequent, got %d items", len(items))
		}
		query, err := ip.Evaluate(items[0])
		if err != nil {
			return ast.Expression{}, err
		}
		queryAtom, err := query.AsAtom()
		if err != nil {
			return ast.Expression{}, err
		}
		matched, err := queryAtom.AsBool()
		if err != nil {
			return ast.Expression{}, ast.NewInvalidArguments("a cond query must evaluate to a boolean, got %s", query)
		}
		if matched {
			return ip.Evaluate(items[1])
		}
	}
	return ast.Expression{}, ast.ErrCond
}

// applyUserDef implements curried function application: exact
// application runs the body, partial application returns a new,
// more-bound UserDef, and over-application is an arity error.
func (ip *Interpreter) applyUserDef(u ast.UserDef, evals []ast.Expression) (ast.Expression, error) {
	n := len(u.Formals)
	c := len(u.Curried)
	a := len(evals)

	switch {
	case c+a == n:
		bound := make([]ast.Expression, 0, n)
		bound = append(bound, u.Curried...)
		bound = append(bound, evals...)

		ip.Env.PushEnv()
		defer ip.Env.PopEnv()
		for i, formal := range u.Formals {
			formalAtom, err := formal.AsAtom()
			if err != nil {
				continue
			}
			name, err := formalAtom.AsSymbol()
			if err != nil {
				continue
			}
			ip.Env.Put(name, ast.NewVariable(bound[i]))
		}
		return ip.resolveSExpression(u.Body)
	case c+a < n:
		curried := make([]ast.Expression, 0, c+a)
		curried = append(curried, u.Curried...)
		curried = append(curried, evals...)
		next := ast.UserDef{Formals: u.Formals, Body: u.Body, Curried: curried}
		return ast.NewAtom(ast.ValueAtom(ast.NewUserDef(next))), nil
	default:
		return ast.Expression{}, ast.NewInvalidArgumentCount("function expects %d argument(s), got %d", n, c+a)
	}
}
