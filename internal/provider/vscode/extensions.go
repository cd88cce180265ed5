package vscode

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/felixgeelhaar/hyperpm/internal/ports"
	"github.com/felixgeelhaar/hyperpm/internal/provider/commandutil"
)

// ExtensionManager lists and installs extensions through an editor CLI.
// Every failure is logged as a warning and reported as false; nothing is
// returned as an error.
type ExtensionManager struct {
	runner         ports.CommandRunner
	logger         ports.Logger
	listTimeout    time.Duration
	installTimeout time.Duration
}

// ExtensionManagerOption configures an ExtensionManager.
type ExtensionManagerOption func(*ExtensionManager)

// WithListTimeout bounds the --list-extensions call.
func WithListTimeout(d time.Duration) ExtensionManagerOption {
	return func(m *ExtensionManager) {
		if d > 0 {
			m.listTimeout = d
		}
	}
}

// WithInstallTimeout bounds the --install-extension call.
func WithInstallTimeout(d time.Duration) ExtensionManagerOption {
	return func(m *ExtensionManager) {
		if d > 0 {
			m.installTimeout = d
		}
	}
}

// NewExtensionManager creates an ExtensionManager.
func NewExtensionManager(runner ports.CommandRunner, logger ports.Logger, opts ...ExtensionManagerOption) *ExtensionManager {
	m := &ExtensionManager{
		runner:         runner,
		logger:         logger,
		listTimeout:    DefaultListTimeout,
		installTimeout: DefaultInstallTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// IsInstalled reports whether extensionID appears in the output of
// `<cli> --list-extensions`, ignoring case.
func (m *ExtensionManager) IsInstalled(ctx context.Context, cli, extensionID string) bool {
	ctx, cancel := context.WithTimeout(ctx, m.listTimeout)
	defer cancel()

	result, err := m.runner.Run(ctx, cli, "--list-extensions")
	if err != nil {
		m.logger.Warn(ctx, "Could not list installed extensions",
			ports.F("cli", cli),
			ports.F("reason", commandutil.Classify(err).String()),
			ports.Err(err),
		)
		return false
	}
	if !result.Success() {
		m.logger.Warn(ctx, "Listing extensions returned non-zero",
			ports.F("cli", cli),
			ports.F("exit_code", result.ExitCode),
			ports.F("stderr", result.StderrSummary()),
		)
		return false
	}

	return ContainsExtension(ParseExtensionList(result.Stdout), extensionID)
}

// Install runs `<cli> --install-extension <extensionID>` and reports whether
// it exited successfully.
func (m *ExtensionManager) Install(ctx context.Context, cli, extensionID string) bool {
	ctx, cancel := context.WithTimeout(ctx, m.installTimeout)
	defer cancel()

	result, err := m.runner.Run(ctx, cli, "--install-extension", extensionID)
	if err != nil {
		switch commandutil.Classify(err) {
		case commandutil.FailureTimeout:
			m.logger.Warn(ctx, "Extension installation timed out",
				ports.F("timeout", m.installTimeout.String()),
			)
		case commandutil.FailureCancelled:
			m.logger.Warn(ctx, "Extension installation cancelled")
		default:
			m.logger.Warn(ctx, "Extension installation failed", ports.Err(err))
		}
		return false
	}
	if !result.Success() {
		m.logger.Warn(ctx, "Extension install returned non-zero",
			ports.F("exit_code", result.ExitCode),
			ports.F("stderr", result.StderrSummary()),
		)
		return false
	}
	return true
}

// ParseExtensionList splits `--list-extensions` output into extension IDs,
// dropping blank lines and surrounding whitespace (including CR from
// Windows line endings).
func ParseExtensionList(output string) []string {
	lines := strings.Split(output, "\n")
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if id := strings.TrimSpace(line); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// ContainsExtension reports whether extensionID is in installed, comparing
// with Unicode case folding.
func ContainsExtension(installed []string, extensionID string) bool {
	folder := cases.Fold()
	want := folder.String(strings.TrimSpace(extensionID))
	if want == "" {
		return false
	}
	for _, id := range installed {
		if folder.String(id) == want {
			return true
		}
	}
	return false
}
