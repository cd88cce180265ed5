// Package app wires hyperpm's refresh modules together and runs them.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/hyperpm/internal/adapters/logging"
	"github.com/felixgeelhaar/hyperpm/internal/domain/platform"
	"github.com/felixgeelhaar/hyperpm/internal/ports"
	"github.com/felixgeelhaar/hyperpm/internal/provider/vscode"
)

// Outcome is the result of one refresh run. Refreshes are best-effort, so
// every outcome is a normal completion.
type Outcome string

const (
	// OutcomeCLIMissing means no editor CLI was found and nothing was checked.
	OutcomeCLIMissing Outcome = "cli-missing"
	// OutcomeAlreadyInstalled means the extension was already present.
	OutcomeAlreadyInstalled Outcome = "already-installed"
	// OutcomeInstalled means the extension was installed by this run.
	OutcomeInstalled Outcome = "installed"
	// OutcomeInstallFailed means installation was attempted and failed.
	OutcomeInstallFailed Outcome = "install-failed"
)

// NeedsAttention reports whether the user has to install the extension by hand.
func (o Outcome) NeedsAttention() bool {
	return o == OutcomeCLIMissing || o == OutcomeInstallFailed
}

// Refresher is a named refresh module.
type Refresher interface {
	Name() string
	Run(ctx context.Context) Outcome
}

// ExtensionRefresherOptions configures an ExtensionRefresher.
type ExtensionRefresherOptions struct {
	Module         string
	ExtensionID    string
	Platform       *platform.Platform
	Finder         ports.ExecutableFinder
	Runner         ports.CommandRunner
	Logger         ports.Logger // nil discards output
	ListTimeout    time.Duration
	InstallTimeout time.Duration
}

// ExtensionRefresher ensures a single editor extension is installed.
type ExtensionRefresher struct {
	module      string
	extensionID string
	platform    *platform.Platform
	finder      ports.ExecutableFinder
	extensions  *vscode.ExtensionManager
	logger      ports.Logger
}

// NewExtensionRefresher creates an ExtensionRefresher.
func NewExtensionRefresher(opts ExtensionRefresherOptions) *ExtensionRefresher {
	extensionID := opts.ExtensionID
	if extensionID == "" {
		extensionID = vscode.KanbnBoardsExtensionID
	}
	plat := opts.Platform
	if plat == nil {
		plat = platform.Detect()
	}
	logger := logging.OrNop(opts.Logger)

	return &ExtensionRefresher{
		module:      opts.Module,
		extensionID: extensionID,
		platform:    plat,
		finder:      opts.Finder,
		extensions: vscode.NewExtensionManager(opts.Runner, logger,
			vscode.WithListTimeout(opts.ListTimeout),
			vscode.WithInstallTimeout(opts.InstallTimeout),
		),
		logger: logger,
	}
}

// Name returns the module name.
func (r *ExtensionRefresher) Name() string {
	return r.module
}

// ExtensionID returns the extension this refresher maintains.
func (r *ExtensionRefresher) ExtensionID() string {
	return r.extensionID
}

// Run detects the editor CLI, checks for the extension and installs it when
// missing. It logs its progress and never fails.
func (r *ExtensionRefresher) Run(ctx context.Context) Outcome {
	r.logger.Info(ctx, fmt.Sprintf("Starting %s refresh...", r.module))
	r.logger.Info(ctx, fmt.Sprintf("Detected OS: %s", r.platform.OS().DisplayName()),
		ports.F("platform", r.platform.String()),
	)
	if r.platform.IsWSL() {
		r.logger.Debug(ctx, "Running under WSL; probing the Linux CLI names")
	}

	cli, found := vscode.ResolveCLI(r.platform.OS(), r.finder)
	if !found {
		r.logger.Warn(ctx, fmt.Sprintf(
			"VS Code CLI not found in PATH. Please install VS Code and ensure 'code' command is available. "+
				"Extension '%s' may need manual installation.", r.extensionID),
			ports.F("candidates", vscode.CandidateCommands(r.platform.OS())),
		)
		r.logger.Info(ctx, fmt.Sprintf("%s refresh completed (skipped extension check).", r.module))
		return OutcomeCLIMissing
	}

	r.logger.Info(ctx, fmt.Sprintf("Found VS Code CLI: %s", cli))

	outcome := r.ensureInstalled(ctx, cli)

	r.logger.Info(ctx, fmt.Sprintf("%s refresh completed successfully.", r.module),
		ports.F("outcome", string(outcome)),
	)
	return outcome
}

func (r *ExtensionRefresher) ensureInstalled(ctx context.Context, cli string) Outcome {
	if r.extensions.IsInstalled(ctx, cli, r.extensionID) {
		r.logger.Info(ctx, fmt.Sprintf("Extension '%s' is already installed.", r.extensionID))
		return OutcomeAlreadyInstalled
	}

	r.logger.Info(ctx, fmt.Sprintf("Extension '%s' not found. Installing...", r.extensionID))
	if r.extensions.Install(ctx, cli, r.extensionID) {
		r.logger.Info(ctx, fmt.Sprintf("Extension '%s' installed successfully.", r.extensionID))
		return OutcomeInstalled
	}

	r.logger.Warn(ctx, fmt.Sprintf(
		"Could not install extension '%s'. Please install it manually from VS Code Extensions marketplace.",
		r.extensionID),
		ports.F("url", vscode.MarketplaceURL(r.extensionID)),
	)
	return OutcomeInstallFailed
}

var _ Refresher = (*ExtensionRefresher)(nil)
