// Package mocks provides test doubles for the hyperpm ports.
package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/felixgeelhaar/hyperpm/internal/ports"
)

// CommandHandler computes the outcome of a mocked command. It receives the
// context the command was run with so it can honour deadlines.
type CommandHandler func(ctx context.Context) (ports.CommandResult, error)

// CommandRunner is a thread-safe test double for ports.CommandRunner.
type CommandRunner struct {
	mu       sync.RWMutex
	handlers map[string]CommandHandler
	calls    []ports.CommandCall
	budgets  []time.Duration
}

// NewCommandRunner creates a new CommandRunner mock.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{
		handlers: make(map[string]CommandHandler),
	}
}

// AddResult registers an expected command and its result.
func (m *CommandRunner) AddResult(command string, args []string, result ports.CommandResult) {
	m.AddHandler(command, args, func(context.Context) (ports.CommandResult, error) {
		return result, nil
	})
}

// AddError registers an expected command that should return an error.
func (m *CommandRunner) AddError(command string, args []string, err error) {
	m.AddHandler(command, args, func(context.Context) (ports.CommandResult, error) {
		return ports.CommandResult{ExitCode: -1}, err
	})
}

// AddHandler registers a handler for an expected command.
func (m *CommandRunner) AddHandler(command string, args []string, handler CommandHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[buildKey(command, args)] = handler
}

// Run executes a mock command.
func (m *CommandRunner) Run(ctx context.Context, command string, args ...string) (ports.CommandResult, error) {
	var budget time.Duration
	if deadline, ok := ctx.Deadline(); ok {
		budget = time.Until(deadline)
	}

	m.mu.Lock()
	m.calls = append(m.calls, ports.CommandCall{Command: command, Args: args})
	m.budgets = append(m.budgets, budget)
	handler, ok := m.handlers[buildKey(command, args)]
	m.mu.Unlock()

	if !ok {
		return ports.CommandResult{}, fmt.Errorf("no mock result for command: %s %v", command, args)
	}
	return handler(ctx)
}

// Calls returns all recorded command invocations.
func (m *CommandRunner) Calls() []ports.CommandCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]ports.CommandCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallCount returns how many times the exact command line was invoked.
func (m *CommandRunner) CallCount(command string, args ...string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	key := buildKey(command, args)
	n := 0
	for _, c := range m.calls {
		if buildKey(c.Command, c.Args) == key {
			n++
		}
	}
	return n
}

// Budgets returns, per recorded call, the time remaining until the context
// deadline when the call was made. Zero means the call had no deadline.
func (m *CommandRunner) Budgets() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	budgets := make([]time.Duration, len(m.budgets))
	copy(budgets, m.budgets)
	return budgets
}

// Reset clears all registered handlers and recorded calls.
func (m *CommandRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = make(map[string]CommandHandler)
	m.calls = nil
	m.budgets = nil
}

func buildKey(command string, args []string) string {
	return command + "\x00" + strings.Join(args, "\x00")
}

var _ ports.CommandRunner = (*CommandRunner)(nil)
