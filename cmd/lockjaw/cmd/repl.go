package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/cbondurant/lockjaw/internal/errors"
	"github.com/cbondurant/lockjaw/pkg/lockjaw"
)

const prompt = "lj> "

// startREPL runs the read-eval-print loop against engine: each non-empty
// line is evaluated and its result printed, a failing line prints a
// diagnostic and the loop continues, and Ctrl-C/EOF exit cleanly. There's
// no line-editing library in the example pack to ground one on (see
// DESIGN.md), so this reads lines with a plain bufio.Scanner.
func startREPL(engine *lockjaw.Engine) error {
	history := loadHistory()
	defer saveHistory(history)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		<-sigCh
		fmt.Println()
		os.Exit(0)
	}()

	fmt.Print(prompt)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			fmt.Print(prompt)
			continue
		}

		history = append(history, line)

		result, err := engine.Eval(trimmed)
		if err != nil {
			diag := errors.FromError(err, trimmed, "")
			fmt.Fprintln(os.Stderr, diag.Format(true))
		} else {
			fmt.Println(result.String())
		}

		fmt.Print(prompt)
	}
	fmt.Println()

	return scanner.Err()
}

// historyPath returns ~/.lockjaw_history, or "" if the home directory
// can't be resolved or --no-history was passed.
func historyPath() string {
	if noHistory {
		return ""
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lockjaw_history")
}

func loadHistory() []string {
	path := historyPath()
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func saveHistory(lines []string) {
	path := historyPath()
	if path == "" || len(lines) == 0 {
		return
	}
	_ = os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}
