package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/henvdall/internal/cli"
	"github.com/CodexForgeBR/henvdall/internal/config"
	"github.com/CodexForgeBR/henvdall/internal/exitcode"
	"github.com/CodexForgeBR/henvdall/internal/logging"
	sighandler "github.com/CodexForgeBR/henvdall/internal/signal"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.NewDefaultConfig()
	rootCmd := newRootCommand(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := sighandler.SetupSignalHandler(ctx, cancel, func() {
		logging.Warn("Interrupted, finishing with the values accepted so far")
	})
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *exitcode.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				logging.Error(exitErr.Err.Error())
			}
			return exitErr.Code
		}
		logging.Error(err.Error())
		return exitcode.Error
	}
	return exitcode.Success
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "henvdall",
		Short:         "Keep .env in sync with .env.example",
		Long:          "Henvdall compares your .env file with its .env.example template, prompts for missing values, and audits for placeholders.",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Bind shared CLI flags to the config
	cli.BindFlags(rootCmd, cfg)

	rootCmd.AddCommand(
		newSyncCommand(cfg),
		newAuditCommand(cfg),
		newVersionCommand(),
	)

	// Set custom help template
	cli.SetCustomHelp(rootCmd)

	return rootCmd
}

// buildCLIOverrides creates a map of CLI flag overrides from the config.
// Uses cmd.Flags().Changed() to only include flags explicitly set by the user,
// ensuring config file values are not accidentally overridden by default values.
func buildCLIOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	stringFlags := map[string]struct {
		key string
		val string
	}{
		"example": {"example_file", cfg.ExampleFile},
		"env":     {"env_file", cfg.EnvFile},
		"backup":  {"backup_file", cfg.BackupFile},
	}
	for flag, mapping := range stringFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	boolFlags := map[string]struct {
		key string
		val bool
	}{
		"yes":       {"assume_yes", cfg.AssumeYes},
		"strict":    {"strict", cfg.Strict},
		"verbose":   {"verbose", cfg.Verbose},
		"no-color":  {"no_color", cfg.NoColor},
		"no-banner": {"no_banner", cfg.NoBanner},
	}
	for flag, mapping := range boolFlags {
		if cmd.Flags().Changed(flag) {
			if mapping.val {
				overrides[mapping.key] = "true"
			} else {
				overrides[mapping.key] = "false"
			}
		}
	}

	return overrides
}

// loadConfig merges config files and flags, then applies output settings.
func loadConfig(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	if err := cli.ValidateFlags(cmd, cfg); err != nil {
		return nil, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	finalCfg, err := config.LoadWithPrecedence(
		config.GlobalConfigPath(),
		config.ProjectConfigPath(wd),
		cfg.ConfigFile,
		buildCLIOverrides(cmd, cfg),
	)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	finalCfg.ConfigFile = cfg.ConfigFile

	if err := cli.ValidatePaths(finalCfg); err != nil {
		return nil, err
	}

	logging.SetVerbose(finalCfg.Verbose)
	if finalCfg.NoColor {
		color.NoColor = true
	}
	return finalCfg, nil
}
