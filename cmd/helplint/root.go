// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for helplint.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"helplint-cli/internal/config"
	"helplint-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// loadedConfig holds the configuration resolved by initRootConfig.
	loadedConfig *config.Config

	// logger writes verbose diagnostics to stderr.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "helplint",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "helplint",
		Short: "A help documentation linter for command modules",
		Long: TitleStyle.Render("helplint") + SubtitleStyle.Render(" - A help documentation linter for command modules") + `

helplint audits the inline help of command modules: every command must
carry a synopsis, a description, input types, and examples; every
declared parameter must be documented, be required or carry a default,
and appear in at least one example. Parameters sharing a name across
commands must share one description.

Modules are declared in 'helpmod.cue' manifests using CUE format, or
inspected directly from a live command tree.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create a helpmod manifest next to your commands
  2. Declare each command and its parameters
  3. Lint with: helplint check <path>

` + SubtitleStyle.Render("Examples:") + `
  helplint check ./modules        Lint every manifest under ./modules
  helplint check --self           Lint helplint's own command tree
  helplint consistency ./modules  Show the parameter description aggregate
  helplint init                   Create a starter manifest
  helplint config show            Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/helplint/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(consistencyCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	cfg, err := config.NewProvider().Load(context.Background(), config.LoadOptions{
		ConfigFilePath: cfgFile,
	})
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	loadedConfig = cfg

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// currentConfig returns the loaded configuration, falling back to defaults
// when loading failed.
func currentConfig() *config.Config {
	if loadedConfig == nil {
		return config.DefaultConfig()
	}
	return loadedConfig
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
