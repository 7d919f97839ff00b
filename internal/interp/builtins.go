package interp

import (
	"github.com/cbondurant/lockjaw/internal/ast"
	"github.com/cbondurant/lockjaw/internal/numeric"
)

// registerBuiltins populates env with every primitive and special form,
// plus the pre-bound `else` fallthrough symbol for `cond`.
func registerBuiltins(env *Environment) {
	reg := func(name string, fn ast.BuiltinFunc) { env.Def(name, ast.NewBuiltin(name, fn)) }

	reg("+", builtinAdd)
	reg("-", builtinSub)
	reg("*", builtinMul)
	reg("/", builtinDiv)
	reg("car", builtinCar)
	reg("cdr", builtinCdr)
	reg("join", builtinJoin)
	reg("fun", builtinFun)
	reg("null?", builtinNullQ)
	reg("atom?", builtinAtomQ)
	reg("and?", builtinAndQ)
	reg("or?", builtinOrQ)
	reg("xor?", builtinXorQ)
	reg("gt?", builtinGtQ)
	reg("lt?", builtinLtQ)
	reg("eq?", builtinEqQ)
	reg("zero?", builtinZeroQ)

	env.Def("eval", ast.EvalValue)
	env.Def("def", ast.DefValue)
	env.Def("cond", ast.CondValue)
	env.Def("load", ast.LoadValue)

	env.Def("else", ast.NewVariable(ast.NewAtom(ast.BoolAtom(true))))
}

func argNumber(e ast.Expression) (numeric.Numeric, error) {
	atom, err := e.AsAtom()
	if err != nil {
		return numeric.Numeric{}, err
	}
	return atom.AsNumber()
}

func argBool(e ast.Expression) (bool, error) {
	atom, err := e.AsAtom()
	if err != nil {
		return false, err
	}
	return atom.AsBool()
}

func builtinAdd(args []ast.Expression) (ast.Expression, error) {
	if len(args) == 0 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("+ requires at least one argument")
	}
	acc := numeric.Int(0)
	for _, e := range args {
		n, err := argNumber(e)
		if err != nil {
			return ast.Expression{}, ast.NewInvalidArguments("cannot add a non-number")
		}
		acc = numeric.Add(acc, n)
	}
	return ast.NewAtom(ast.NumberAtom(acc)), nil
}

func builtinSub(args []ast.Expression) (ast.Expression, error) {
	if len(args) == 0 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("- requires at least one argument")
	}
	acc, err := argNumber(args[0])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("cannot negate a non-number")
	}
	if len(args) == 1 {
		return ast.NewAtom(ast.NumberAtom(numeric.Neg(acc))), nil
	}
	for _, e := range args[1:] {
		n, err := argNumber(e)
		if err != nil {
			return ast.Expression{}, ast.NewInvalidArguments("cannot subtract a non-number")
		}
		acc = numeric.Sub(acc, n)
	}
	return ast.NewAtom(ast.NumberAtom(acc)), nil
}

func builtinMul(args []ast.Expression) (ast.Expression, error) {
	if len(args) == 0 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("* requires at least one argument")
	}
	acc, err := argNumber(args[0])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("cannot multiply a non-number")
	}
	for _, e := range args[1:] {
		n, err := argNumber(e)
		if err != nil {
			return ast.Expression{}, ast.NewInvalidArguments("cannot multiply a non-number")
		}
		acc = numeric.Mul(acc, n)
	}
	return ast.NewAtom(ast.NumberAtom(acc)), nil
}

func builtinDiv(args []ast.Expression) (ast.Expression, error) {
	if len(args) == 0 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("/ requires at least one argument")
	}
	acc, err := argNumber(args[0])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("cannot divide a non-number")
	}
	for _, e := range args[1:] {
		n, err := argNumber(e)
		if err != nil {
			return ast.Expression{}, ast.NewInvalidArguments("cannot divide a non-number")
		}
		acc = numeric.Div(acc, n)
	}
	return ast.NewAtom(ast.NumberAtom(acc)), nil
}

func builtinCar(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 1 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("car takes exactly one argument")
	}
	items, err := args[0].AsQExpression()
	if err != nil {
		return ast.Expression{}, err
	}
	if len(items) == 0 {
		return ast.NewQExpression(nil), nil
	}
	return items[0], nil
}

func builtinCdr(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 1 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("cdr takes exactly one argument")
	}
	items, err := args[0].AsQExpression()
	if err != nil {
		return ast.Expression{}, err
	}
	if len(items) == 0 {
		return ast.NewQExpression(nil), nil
	}
	return ast.NewQExpression(items[1:]), nil
}

func builtinJoin(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 2 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("join requires exactly two arguments")
	}
	a, err := args[0].AsQExpression()
	if err != nil {
		return ast.Expression{}, err
	}
	b, err := args[1].AsQExpression()
	if err != nil {
		return ast.Expression{}, err
	}
	joined := make([]ast.Expression, 0, len(a)+len(b))
	joined = append(joined, a...)
	joined = append(joined, b...)
	return ast.NewQExpression(joined), nil
}

func builtinFun(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 2 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("fun requires exactly two arguments: a formal parameter list and a body")
	}
	formals, err := args[0].AsQExpression()
	if err != nil {
		return ast.Expression{}, err
	}
	body, err := args[1].AsQExpression()
	if err != nil {
		return ast.Expression{}, err
	}
	return ast.NewAtom(ast.ValueAtom(ast.NewUserDef(ast.UserDef{Formals: formals, Body: body}))), nil
}

func builtinNullQ(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 1 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("null? takes exactly one argument")
	}
	return ast.NewAtom(ast.BoolAtom(args[0].IsNull())), nil
}

func builtinAtomQ(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 1 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("atom? takes exactly one argument")
	}
	return ast.NewAtom(ast.BoolAtom(args[0].IsAtom())), nil
}

func builtinAndQ(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 2 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("and? takes exactly two arguments")
	}
	a, err := argBool(args[0])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("arguments to and? must be booleans")
	}
	b, err := argBool(args[1])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("arguments to and? must be booleans")
	}
	return ast.NewAtom(ast.BoolAtom(a && b)), nil
}

func builtinOrQ(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 2 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("or? takes exactly two arguments")
	}
	a, err := argBool(args[0])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("arguments to or? must be booleans")
	}
	b, err := argBool(args[1])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("arguments to or? must be booleans")
	}
	return ast.NewAtom(ast.BoolAtom(a || b)), nil
}

func builtinXorQ(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 2 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("xor? takes exactly two arguments")
	}
	a, err := argBool(args[0])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("arguments to xor? must be booleans")
	}
	b, err := argBool(args[1])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("arguments to xor? must be booleans")
	}
	return ast.NewAtom(ast.BoolAtom(a != b)), nil
}

func builtinGtQ(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 2 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("gt? takes exactly two arguments")
	}
	a, err := argNumber(args[0])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("arguments to gt? must be numeric")
	}
	b, err := argNumber(args[1])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("arguments to gt? must be numeric")
	}
	return ast.NewAtom(ast.BoolAtom(numeric.Greater(a, b))), nil
}

func builtinLtQ(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 2 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("lt? takes exactly two arguments")
	}
	a, err := argNumber(args[0])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("arguments to lt? must be numeric")
	}
	b, err := argNumber(args[1])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("arguments to lt? must be numeric")
	}
	return ast.NewAtom(ast.BoolAtom(numeric.Less(a, b))), nil
}

func builtinEqQ(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 2 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("eq? takes exactly two arguments")
	}
	a, err := argNumber(args[0])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("arguments to eq? must be numeric")
	}
	b, err := argNumber(args[1])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("arguments to eq? must be numeric")
	}
	return ast.NewAtom(ast.BoolAtom(numeric.Equal(a, b))), nil
}

func builtinZeroQ(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 1 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("zero? takes exactly one argument")
	}
	n, err := argNumber(args[0])
	if err != nil {
		return ast.Expression{}, ast.NewInvalidArguments("arguments to zero? must be numeric")
	}
	return ast.NewAtom(ast.BoolAtom(numeric.IsZero(n))), nil
}
