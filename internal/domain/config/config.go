// Package config holds hyperpm's configuration model, its file loader and
// the user-facing error type shared by the CLI.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/hyperpm/internal/ports"
	"github.com/felixgeelhaar/hyperpm/internal/provider/vscode"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Duration is a time.Duration written as "30s" or "2m" in config files.
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText renders the duration in Go notation.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the complete hyperpm configuration.
type Config struct {
	Refresh RefreshConfig `yaml:"refresh" toml:"refresh"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

// RefreshConfig controls the extension refresh.
type RefreshConfig struct {
	Extension      string   `yaml:"extension" toml:"extension"`
	ListTimeout    Duration `yaml:"list_timeout" toml:"list_timeout"`
	InstallTimeout Duration `yaml:"install_timeout" toml:"install_timeout"`
}

// LogConfig controls console logging.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
	Color  bool   `yaml:"color" toml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Refresh: RefreshConfig{
			Extension:      vscode.KanbnBoardsExtensionID,
			ListTimeout:    Duration(vscode.DefaultListTimeout),
			InstallTimeout: Duration(vscode.DefaultInstallTimeout),
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
			Color:  true,
		},
	}
}

// LogLevel returns the parsed log level. Call Validate first.
func (c *Config) LogLevel() ports.Level {
	level, _ := ports.ParseLevel(c.Log.Level)
	return level
}

// Validate checks every field and returns the first problem as a *UserError.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Refresh.Extension) == "" {
		return NewValidationFailedError("refresh.extension", "must not be empty",
			fmt.Sprintf("Set it to a marketplace ID such as %s.", vscode.KanbnBoardsExtensionID))
	}
	if strings.ContainsAny(c.Refresh.Extension, " \t\n") || !strings.Contains(c.Refresh.Extension, ".") {
		return NewValidationFailedError("refresh.extension",
			fmt.Sprintf("%q is not a publisher.name identifier", c.Refresh.Extension),
			"Extension IDs look like publisher.extension-name.")
	}
	if c.Refresh.ListTimeout <= 0 {
		return NewValidationFailedError("refresh.list_timeout", "must be positive", "Use a duration such as 30s.")
	}
	if c.Refresh.InstallTimeout <= 0 {
		return NewValidationFailedError("refresh.install_timeout", "must be positive", "Use a duration such as 2m.")
	}
	if _, err := ports.ParseLevel(c.Log.Level); err != nil {
		return NewValidationFailedError("log.level", err.Error(), "Use one of: debug, info, warn, error.")
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return NewValidationFailedError("log.format",
			fmt.Sprintf("unknown format %q", c.Log.Format), "Use 'text' or 'json'.")
	}
	return nil
}
