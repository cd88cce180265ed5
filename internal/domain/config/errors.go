package config

import (
	"fmt"
	"strings"
)

// Error codes for categorization.
const (
	ErrCodeConfigNotFound   = "CONFIG_NOT_FOUND"
	ErrCodeConfigRead       = "CONFIG_READ"
	ErrCodeConfigParse      = "CONFIG_PARSE"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeModuleNotFound   = "MODULE_NOT_FOUND"
)

// UserError represents a user-friendly error with actionable suggestions.
type UserError struct {
	Code       string // Error code for categorization (e.g., "CONFIG_NOT_FOUND")
	Message    string // User-friendly error message
	Context    string // File path, field name, or other location context
	Suggestion string // Actionable suggestion to fix the error
	Underlying error  // Wrapped error for error chain
}

// Error returns the message with its context, if any.
func (e *UserError) Error() string {
	if e.Context == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (at %s)", e.Message, e.Context)
}

// Unwrap returns the underlying error for error chain support.
func (e *UserError) Unwrap() error {
	return e.Underlying
}

// Is supports errors.Is() for comparing error codes.
func (e *UserError) Is(target error) bool {
	if t, ok := target.(*UserError); ok {
		return e.Code == t.Code
	}
	return false
}

// Format returns a fully formatted error with all details.
func (e *UserError) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Context != "" {
		fmt.Fprintf(&b, "\n  Location: %s", e.Context)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  Suggestion: %s", e.Suggestion)
	}

	return b.String()
}

// NewConfigNotFoundError creates an error for a missing config file.
func NewConfigNotFoundError(path string) *UserError {
	return &UserError{
		Code:       ErrCodeConfigNotFound,
		Message:    fmt.Sprintf("configuration file not found: %s", path),
		Context:    path,
		Suggestion: "Check the --config path, or omit it to use built-in defaults.",
	}
}

// NewConfigReadError creates an error for a config file that exists but
// could not be read.
func NewConfigReadError(path string, err error) *UserError {
	return &UserError{
		Code:       ErrCodeConfigRead,
		Message:    "failed to read configuration file",
		Context:    path,
		Suggestion: "Check the file permissions.",
		Underlying: err,
	}
}

// NewConfigParseError creates an error for YAML or TOML decoding failures.
func NewConfigParseError(path string, err error) *UserError {
	suggestion := "Check your YAML syntax. Common issues: incorrect indentation, missing colons, or unquoted special characters."
	if isTOML(path) {
		suggestion = "Check your TOML syntax. Tables are written as [refresh] and [log]; strings must be quoted."
	}

	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "not found in type"), strings.Contains(errStr, "strict mode"):
		suggestion = "Remove the unknown key. Supported sections are 'refresh' (extension, list_timeout, install_timeout) and 'log' (level, format, color)."
	case strings.Contains(errStr, "time: "):
		suggestion = "Durations are written like 30s, 2m or 1m30s."
	}

	return &UserError{
		Code:       ErrCodeConfigParse,
		Message:    "failed to parse configuration file",
		Context:    path,
		Suggestion: suggestion,
		Underlying: err,
	}
}

// NewValidationFailedError creates a validation error for a single field.
func NewValidationFailedError(field, message, suggestion string) *UserError {
	return &UserError{
		Code:       ErrCodeValidationFailed,
		Message:    fmt.Sprintf("validation failed for '%s': %s", field, message),
		Context:    field,
		Suggestion: suggestion,
	}
}

// NewModuleNotFoundError creates an error for an unknown refresh module.
func NewModuleNotFoundError(name string, available []string) *UserError {
	suggestion := "No refresh modules are registered."
	if len(available) > 0 {
		suggestion = fmt.Sprintf("Available modules: %s", strings.Join(available, ", "))
	}
	return &UserError{
		Code:       ErrCodeModuleNotFound,
		Message:    fmt.Sprintf("refresh module '%s' not found", name),
		Suggestion: suggestion,
	}
}
