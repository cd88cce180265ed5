package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/hyperpm/internal/adapters/command"
	"github.com/felixgeelhaar/hyperpm/internal/adapters/logging"
	"github.com/felixgeelhaar/hyperpm/internal/app"
	"github.com/felixgeelhaar/hyperpm/internal/domain/config"
	"github.com/felixgeelhaar/hyperpm/internal/domain/platform"
	"github.com/felixgeelhaar/hyperpm/internal/ports"
)

var (
	refreshModules   []string
	refreshExtension string
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Ensure the VS Code Kanbn Boards extension is installed",
	Long: `Refresh runs the registered refresh modules.

The hyperpm_core module locates the VS Code CLI (code, code-insiders, or
their .cmd shims on Windows), lists the installed extensions and installs
samgiz.vscode-kanbn-boards when it is missing. Failures are logged as
warnings and the command still exits successfully.`,
	Example: `  hyperpm refresh
  hyperpm refresh --module hyperpm_core
  hyperpm refresh --extension ms-python.python --log-format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if refreshExtension != "" {
			cfg.Refresh.Extension = refreshExtension
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		logger := newLogger(cfg, cmd.ErrOrStderr())
		deps := app.Dependencies{
			Runner:   command.NewRealRunner(),
			Finder:   command.NewPathFinder(),
			Platform: platform.Detect(),
			Logger:   logger,
		}

		_, err = runRefresh(ctx, cfg, deps, refreshModules)
		return err
	},
}

func init() {
	refreshCmd.Flags().StringSliceVarP(&refreshModules, "module", "m", nil, "refresh only the named module (repeatable)")
	refreshCmd.Flags().StringVar(&refreshExtension, "extension", "", "extension ID to ensure (overrides config)")

	_ = refreshCmd.RegisterFlagCompletionFunc("module", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{app.CoreModule}, cobra.ShellCompDirectiveNoFileComp
	})
}

// runRefresh selects and runs the requested modules. Only configuration and
// module-selection problems are returned as errors.
func runRefresh(ctx context.Context, cfg *config.Config, deps app.Dependencies, modules []string) ([]app.Result, error) {
	deps.Logger = deps.Logger.With(ports.F("run_id", uuid.NewString()))

	registry := app.NewDefaultRegistry(deps, cfg)
	refreshers, err := registry.Select(modules)
	if err != nil {
		return nil, err
	}

	results := app.RunAll(ctx, refreshers)
	for _, r := range results {
		if r.Outcome.NeedsAttention() {
			deps.Logger.Debug(ctx, "module needs manual follow-up",
				ports.F("module", r.Module),
				ports.F("outcome", string(r.Outcome)),
			)
		}
	}
	return results, nil
}

// newLogger builds the console logger described by cfg.
func newLogger(cfg *config.Config, out io.Writer) ports.Logger {
	return logging.NewConsoleLogger(
		logging.WithOutput(out),
		logging.WithLevel(cfg.LogLevel()),
		logging.WithJSONFormat(cfg.Log.Format == config.FormatJSON),
		logging.WithColor(cfg.Log.Color),
	)
}
