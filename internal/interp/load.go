package interp

import (
	"os"

	"github.com/pkg/errors"

	"github.com/cbondurant/lockjaw/internal/ast"
	"github.com/cbondurant/lockjaw/internal/parser"
)

// load implements the `load` special form: its one argument must be a
// string naming a file; a non-string argument silently yields Null
// rather than an error. The file is read, lexed, parsed, and each
// top-level expression is evaluated in source order; the first error
// aborts the remaining expressions.
func (ip *Interpreter) load(args []ast.Expression) (ast.Expression, error) {
	if len(args) != 1 {
		return ast.Expression{}, ast.NewInvalidArgumentCount("load requires exactly one argument")
	}
	atom, err := args[0].AsAtom()
	if err != nil || atom.Kind != ast.AtomString {
		return ast.Null, nil
	}
	return ip.loadFile(atom.Str)
}

func (ip *Interpreter) loadFile(path string) (ast.Expression, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ast.Expression{}, ast.NewFileError(errors.Wrapf(err, "loading %s", path))
	}

	root, err := parser.ParseSource(string(data))
	if err != nil {
		return ast.Expression{}, ast.NewParserError(err)
	}

	for _, expr := range root.Items {
		if _, err := ip.Evaluate(expr); err != nil {
			return ast.Expression{}, err
		}
	}
	return ast.Null, nil
}
