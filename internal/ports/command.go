// Package ports defines interfaces for the external collaborators of hyperpm:
// the editor CLI process, the executable search path and the logger.
package ports

import (
	"context"
	"strings"
)

// CommandResult represents the result of executing an external command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success returns true if the command exited with code 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// StderrSummary returns stderr trimmed of surrounding whitespace, falling back
// to stdout when the command wrote nothing to stderr.
func (r CommandResult) StderrSummary() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stdout)
}

// CommandCall records a command invocation.
type CommandCall struct {
	Command string
	Args    []string
}

// String renders the call the way it would be typed in a shell.
func (c CommandCall) String() string {
	if len(c.Args) == 0 {
		return c.Command
	}
	return c.Command + " " + strings.Join(c.Args, " ")
}

// CommandRunner executes external commands.
//
// A command that starts and exits non-zero is reported through
// CommandResult.ExitCode with a nil error. Errors are reserved for commands
// that could not be started or were abandoned because ctx expired.
type CommandRunner interface {
	Run(ctx context.Context, command string, args ...string) (CommandResult, error)
}

// ExecutableFinder resolves command names against the execution search path.
type ExecutableFinder interface {
	// LookPath returns the resolved path of name, or an error if it cannot
	// be found.
	LookPath(name string) (string, error)
}
