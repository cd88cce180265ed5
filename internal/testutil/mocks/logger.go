package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/felixgeelhaar/hyperpm/internal/ports"
)

// LogEntry is a single message captured by Logger.
type LogEntry struct {
	Level   ports.Level
	Message string
	Fields  []ports.Field
}

// Field returns the value of the named field and whether it was present.
func (e LogEntry) Field(key string) (interface{}, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Logger records every message regardless of level.
type Logger struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	fields  []ports.Field
	level   ports.Level
}

// NewLogger creates a recording logger.
func NewLogger() *Logger {
	return &Logger{
		mu:      &sync.Mutex{},
		entries: &[]LogEntry{},
		level:   ports.LevelDebug,
	}
}

// Debug records a debug message.
func (l *Logger) Debug(_ context.Context, msg string, fields ...ports.Field) {
	l.record(ports.LevelDebug, msg, fields)
}

// Info records an info message.
func (l *Logger) Info(_ context.Context, msg string, fields ...ports.Field) {
	l.record(ports.LevelInfo, msg, fields)
}

// Warn records a warning.
func (l *Logger) Warn(_ context.Context, msg string, fields ...ports.Field) {
	l.record(ports.LevelWarn, msg, fields)
}

// Error records an error.
func (l *Logger) Error(_ context.Context, msg string, fields ...ports.Field) {
	l.record(ports.LevelError, msg, fields)
}

// With returns a logger that shares the recorded entries and adds fields.
func (l *Logger) With(fields ...ports.Field) ports.Logger {
	merged := append(append([]ports.Field{}, l.fields...), fields...)
	return &Logger{mu: l.mu, entries: l.entries, fields: merged, level: l.level}
}

// Level returns the configured level. It does not filter recording.
func (l *Logger) Level() ports.Level { return l.level }

// SetLevel sets the reported level.
func (l *Logger) SetLevel(level ports.Level) { l.level = level }

// Entries returns a copy of everything recorded so far.
func (l *Logger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LogEntry, len(*l.entries))
	copy(out, *l.entries)
	return out
}

// Messages returns the recorded messages at the given level.
func (l *Logger) Messages(level ports.Level) []string {
	var out []string
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Contains reports whether any entry at level has a message containing substr.
func (l *Logger) Contains(level ports.Level, substr string) bool {
	for _, msg := range l.Messages(level) {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func (l *Logger) record(level ports.Level, msg string, fields []ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	all := append(append([]ports.Field{}, l.fields...), fields...)
	*l.entries = append(*l.entries, LogEntry{Level: level, Message: msg, Fields: all})
}

var _ ports.Logger = (*Logger)(nil)
