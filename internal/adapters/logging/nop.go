// Package logging provides implementations of the ports.Logger interface:
// a ConsoleLogger for text or JSON output and a NopLogger that discards
// everything.
package logging

import (
	"context"
	"sync"

	"github.com/felixgeelhaar/hyperpm/internal/ports"
)

// NopLogger drops every entry. It still tracks a level so callers that
// consult Level see the same answer they would from a ConsoleLogger.
type NopLogger struct {
	mu    sync.Mutex
	level ports.Level
}

// NewNopLogger creates a NopLogger at info level.
func NewNopLogger() *NopLogger {
	return &NopLogger{level: ports.LevelInfo}
}

// OrNop returns logger, or a new NopLogger when logger is nil.
func OrNop(logger ports.Logger) ports.Logger {
	if logger == nil {
		return NewNopLogger()
	}
	return logger
}

func (*NopLogger) Debug(context.Context, string, ...ports.Field) {}

func (*NopLogger) Info(context.Context, string, ...ports.Field) {}

func (*NopLogger) Warn(context.Context, string, ...ports.Field) {}

func (*NopLogger) Error(context.Context, string, ...ports.Field) {}

// With returns l unchanged; there is no output to attach fields to.
func (l *NopLogger) With(...ports.Field) ports.Logger {
	return l
}

func (l *NopLogger) Level() ports.Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *NopLogger) SetLevel(level ports.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

var _ ports.Logger = (*NopLogger)(nil)
