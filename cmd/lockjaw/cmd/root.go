// Package cmd implements the lockjaw command-line interface: a root command
// that runs a file, evaluates an inline expression, or starts the REPL.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cbondurant/lockjaw/internal/errors"
	"github.com/cbondurant/lockjaw/pkg/lockjaw"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	evalExpr     string
	loadToInterp bool
	noHistory    bool
)

var rootCmd = &cobra.Command{
	Use:   "lockjaw [file]",
	Short: "Lockjaw Lisp interpreter",
	Long: `Lockjaw is a small Lisp dialect: integers, floats, strings, booleans,
symbols, S-expressions, and Q-expressions, with curried user-defined
functions and a handful of special forms (eval, def, cond, load).

Run a file and exit:
  lockjaw script.lj

Run a file, then drop into the REPL with its resulting environment:
  lockjaw -l script.lj

Evaluate an expression directly:
  lockjaw -e "+ 3 4"

With no file, the REPL starts directly.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRoot,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate an inline expression instead of a file")
	rootCmd.Flags().BoolVarP(&loadToInterp, "load-to-interpreter", "l", false, "enter the REPL after running the file")
	rootCmd.Flags().BoolVar(&noHistory, "no-history", false, "don't read or write the REPL history file")
}

// Execute runs the root command; its error is the CLI's exit status.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(_ *cobra.Command, args []string) error {
	engine := lockjaw.New(os.Stdout)

	switch {
	case evalExpr != "":
		if err := runSource(engine, evalExpr, "<eval>"); err != nil {
			return err
		}
		if loadToInterp {
			return startREPL(engine)
		}
		return nil

	case len(args) == 1:
		path := args[0]
		if err := runSource(engine, loadForm(path), path); err != nil {
			return err
		}
		if loadToInterp {
			return startREPL(engine)
		}
		return nil

	default:
		return startREPL(engine)
	}
}

// runSource evaluates source through engine, formatting any error as a
// diagnostic on stderr before reporting failure to the caller.
func runSource(engine *lockjaw.Engine, source, file string) error {
	if _, err := engine.Eval(source); err != nil {
		diag := errors.FromError(err, source, file)
		fmt.Fprintln(os.Stderr, diag.Format(true))
		return fmt.Errorf("execution failed")
	}
	return nil
}

// loadForm builds `(load "path")` source text, escaping path the same way
// Lockjaw's own string-literal decoder expects its escapes.
func loadForm(path string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(path)
	return fmt.Sprintf(`(load "%s")`, escaped)
}
