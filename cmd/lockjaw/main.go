// Command lockjaw is the Lockjaw interpreter CLI: point it at a file to run
// it once, or run it bare to drop into the REPL.
package main

import (
	"fmt"
	"os"

	"github.com/cbondurant/lockjaw/cmd/lockjaw/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
