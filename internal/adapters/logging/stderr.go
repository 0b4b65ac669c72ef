// Package logging provides ports.Logger implementations for the CLI.
package logging

import (
	"fmt"
	"os"
)

// StderrLogger writes log lines to stderr. Debug lines are emitted only
// when verbose is set, so normal runs keep stdout clean for the report.
type StderrLogger struct {
	verbose bool
}

// NewStderrLogger creates a stderr logger.
func NewStderrLogger(verbose bool) *StderrLogger {
	return &StderrLogger{verbose: verbose}
}

// Debug logs a debug message when verbose mode is on.
func (l *StderrLogger) Debug(msg string) {
	if l.verbose {
		fmt.Fprintf(os.Stderr, "debug: %s\n", msg)
	}
}

// Error logs an error message.
func (l *StderrLogger) Error(msg string) {
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
}

// Noop discards everything.
type Noop struct{}

func (Noop) Debug(string) {}
func (Noop) Error(string) {}
