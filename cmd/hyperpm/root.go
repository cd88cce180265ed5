package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/hyperpm/internal/domain/config"
)

var (
	// Global flags
	cfgFile   string
	verbose   bool
	logFormat string
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "hyperpm",
	Short: "Keep the hyperpm workspace tooling in place",
	Long: `hyperpm maintains the local tooling a hyperpm project relies on.

The refresh command makes sure the VS Code Kanbn Boards extension is
installed, using whichever VS Code CLI is available on PATH. Refreshing is
best-effort: problems are reported as warnings and never fail the run.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: hyperpm.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured log output")

	registerFlagCompletions()

	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and applies global flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewLoader().Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if verbose {
		cfg.Log.Level = "debug"
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if noColor {
		cfg.Log.Color = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the user message and suggestion.
// With verbose=true: shows the error code and location as well, followed by
// the underlying technical error.
func formatError(err error) string {
	var userErr *config.UserError
	if !errors.As(err, &userErr) {
		return err.Error()
	}

	if verbose {
		msg := userErr.Format()
		if userErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", userErr.Underlying)
		}
		return msg
	}

	msg := userErr.Message
	if userErr.Context != "" {
		msg += fmt.Sprintf(" (at %s)", userErr.Context)
	}
	if userErr.Suggestion != "" {
		msg += fmt.Sprintf("\n\nSuggestion: %s", userErr.Suggestion)
	}
	return msg
}

func printError(err error) {
	printErrorTo(os.Stderr, err)
}

func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}

func registerFlagCompletions() {
	_ = rootCmd.RegisterFlagCompletionFunc("config", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml", "toml"}, cobra.ShellCompDirectiveFilterFileExt
	})

	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{
			"text\tHuman-readable lines",
			"json\tOne JSON object per line",
		}, cobra.ShellCompDirectiveNoFileComp
	})
}
