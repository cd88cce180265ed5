// Package commandutil classifies the ways an external command invocation can
// fail so callers can report each one distinctly.
package commandutil

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Failure is the category of a failed command invocation.
type Failure int

const (
	// FailureNone means the error was nil.
	FailureNone Failure = iota
	// FailureNotFound means the executable could not be located.
	FailureNotFound
	// FailureTimeout means the invocation exceeded its deadline.
	FailureTimeout
	// FailureCancelled means the caller cancelled the invocation.
	FailureCancelled
	// FailureOther covers every other spawn or I/O error.
	FailureOther
)

// String returns a short lowercase name for the failure.
func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureNotFound:
		return "not-found"
	case FailureTimeout:
		return "timeout"
	case FailureCancelled:
		return "cancelled"
	default:
		return "other"
	}
}

// Classify returns the Failure category of err.
func Classify(err error) Failure {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, context.DeadlineExceeded):
		return FailureTimeout
	case errors.Is(err, context.Canceled):
		return FailureCancelled
	case IsCommandNotFound(err):
		return FailureNotFound
	default:
		return FailureOther
	}
}

// IsCommandNotFound reports whether an error indicates a missing executable.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	var pathErr *os.PathError
	return errors.As(err, &pathErr) && errors.Is(pathErr.Err, os.ErrNotExist)
}
