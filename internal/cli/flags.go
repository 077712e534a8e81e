// Package cli provides flag binding and validation for the henvdall CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/henvdall/internal/config"
)

// BindFlags registers the flags shared by every subcommand on the root
// command. The flags directly modify fields in the provided config pointer.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to an additional config file (.toml or .yaml)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Show debug output, including skipped malformed lines")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&cfg.NoBanner, "no-banner", false, "Do not print the logo")
}

// bindFileFlags registers the template and target path flags.
func bindFileFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	flags.StringVarP(&cfg.ExampleFile, "example", "e", config.DefaultExampleFile, "Path to the template file")
	flags.StringVarP(&cfg.EnvFile, "env", "f", config.DefaultEnvFile, "Path to the env file")
}

// BindSyncFlags registers the flags of the sync subcommand.
func BindSyncFlags(cmd *cobra.Command, cfg *config.Config) {
	bindFileFlags(cmd, cfg)
	flags := cmd.Flags()
	flags.StringVarP(&cfg.BackupFile, "backup", "b", "", "Path for the backup file (default: <env>.bak)")
	flags.BoolVarP(&cfg.AssumeYes, "yes", "y", false, "Do not ask for confirmation before prompting for values")
}

// BindAuditFlags registers the flags of the audit subcommand.
func BindAuditFlags(cmd *cobra.Command, cfg *config.Config) {
	bindFileFlags(cmd, cfg)
	cmd.Flags().BoolVar(&cfg.Strict, "strict", false, "Exit with code 3 when placeholder values are found")
}

// ValidateFlags checks for invalid flag values after parsing.
// Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	for _, name := range []string{"example", "env"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed && f.Value.String() == "" {
			return fmt.Errorf("--%s must not be empty", name)
		}
	}

	return nil
}

// ValidatePaths checks the merged configuration: the template, env and
// backup files must be distinct.
func ValidatePaths(cfg *config.Config) error {
	if cfg.ExampleFile == "" || cfg.EnvFile == "" {
		return fmt.Errorf("template and env file paths must not be empty")
	}

	if samePath(cfg.ExampleFile, cfg.EnvFile) {
		return fmt.Errorf("template and env file must be different files, got %s", cfg.EnvFile)
	}

	if cfg.BackupFile != "" {
		if samePath(cfg.BackupFile, cfg.EnvFile) || samePath(cfg.BackupFile, cfg.ExampleFile) {
			return fmt.Errorf("backup file must not overwrite the env or template file, got %s", cfg.BackupFile)
		}
	}

	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
