package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/hyperpm/internal/ports"
)

func TestNopLogger_DiscardsAndTracksLevel(t *testing.T) {
	t.Parallel()

	logger := NewNopLogger()
	ctx := context.Background()

	logger.Debug(ctx, "Starting hyperpm_core refresh...")
	logger.Warn(ctx, "VS Code CLI not found in PATH.")
	assert.Same(t, logger, logger.With(ports.F("module", "hyperpm_core")))

	assert.Equal(t, ports.LevelInfo, logger.Level())
	logger.SetLevel(ports.LevelDebug)
	assert.Equal(t, ports.LevelDebug, logger.Level())
}

func TestOrNop(t *testing.T) {
	t.Parallel()

	fallback := OrNop(nil)
	require.NotNil(t, fallback)
	assert.IsType(t, &NopLogger{}, fallback)
	assert.NotPanics(t, func() { fallback.Info(context.Background(), "hello") })

	console := NewConsoleLogger(WithOutput(&bytes.Buffer{}))
	assert.Same(t, console, OrNop(console))
}

func TestConsoleLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithLevel(ports.LevelDebug),
		WithTimestamp(false),
		WithLevelLabel(true),
	)

	logger.Info(context.Background(), "Starting hyperpm_core refresh...")

	assert.Equal(t, "[INFO] Starting hyperpm_core refresh...\n", buf.String())
}

func TestConsoleLogger_TextOutput_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithTimestamp(false),
		WithLevelLabel(false),
	)

	logger.Info(context.Background(), "Found VS Code CLI",
		ports.F("cli", "code"),
		ports.F("exit_code", 0),
		ports.F("stderr", "extension not found"),
	)

	assert.Equal(t, `Found VS Code CLI cli=code exit_code=0 stderr="extension not found"`+"\n", buf.String())
}

func TestConsoleLogger_TextOutput_Timestamp(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithLevelLabel(false),
	)
	logger.now = func() time.Time {
		return time.Date(2026, 3, 1, 9, 5, 7, 0, time.Local)
	}

	logger.Info(context.Background(), "tick")

	assert.Equal(t, "09:05:07 tick\n", buf.String())
}

func TestConsoleLogger_ColorDisabledForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithTimestamp(false),
		WithColor(true),
	)

	logger.Warn(context.Background(), "VS Code CLI not found in PATH.")

	// A bytes.Buffer is not a terminal, so no escape sequences are written.
	assert.Equal(t, "[WARN] VS Code CLI not found in PATH.\n", buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestConsoleLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithLevel(ports.LevelDebug),
		WithJSONFormat(true),
		WithTimestamp(false),
		WithLevelLabel(true),
		WithColor(true),
	)

	logger.Info(context.Background(), "Found VS Code CLI", ports.F("cli", "code"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Found VS Code CLI", entry["msg"])
	assert.Equal(t, "code", entry["cli"])
	assert.NotContains(t, entry, "time")
}

func TestConsoleLogger_JSONOutput_ReservedKeysWin(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithJSONFormat(true),
		WithTimestamp(false),
	)

	logger.Info(context.Background(), "real message", ports.F("msg", "shadow"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "real message", entry["msg"])
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithLevel(ports.LevelWarn),
		WithTimestamp(false),
	)

	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	if buf.Len() > 0 {
		t.Errorf("Debug and Info should be filtered, got %q", buf.String())
	}

	logger.Warn(ctx, "warn message")
	if !strings.Contains(buf.String(), "warn message") {
		t.Errorf("Warn should not be filtered, got %q", buf.String())
	}

	buf.Reset()
	logger.Error(ctx, "error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Errorf("Error should not be filtered, got %q", buf.String())
	}
}

func TestConsoleLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithTimestamp(false),
		WithLevelLabel(false),
	)

	scoped := logger.With(ports.F("module", "hyperpm_core"))
	scoped.Info(context.Background(), "message", ports.F("extra", "field"))

	assert.Equal(t, "message module=hyperpm_core extra=field\n", buf.String())
}

func TestConsoleLogger_With_DoesNotModifyOriginal(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithTimestamp(false),
		WithLevelLabel(false),
	)

	derived := logger.With(ports.F("derived", "yes"))

	ctx := context.Background()
	logger.Info(ctx, "original")
	derived.Info(ctx, "derived")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "original", lines[0])
	assert.Equal(t, "derived derived=yes", lines[1])
}

func TestConsoleLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithLevel(ports.LevelError),
		WithTimestamp(false),
	)

	ctx := context.Background()

	logger.Info(ctx, "info message")
	if buf.Len() > 0 {
		t.Error("Info should be filtered at Error level")
	}

	logger.SetLevel(ports.LevelDebug)
	assert.Equal(t, ports.LevelDebug, logger.Level())

	logger.Info(ctx, "info message")
	if !strings.Contains(buf.String(), "info message") {
		t.Error("Info should pass through at Debug level")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{"code", "code"},
		{42, "42"},
		{nil, "<nil>"},
		{"two words", `"two words"`},
		{"line\nbreak", `"line\nbreak"`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.in))
		})
	}
}
