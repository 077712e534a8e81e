// Package config defines the henvdall configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < project config file <
// explicit config file < CLI flag overrides.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName names the global config directory.
	AppName = "henvdall"

	// DefaultExampleFile and DefaultEnvFile are resolved against the working
	// directory.
	DefaultExampleFile = ".env.example"
	DefaultEnvFile     = ".env"

	// DefaultAppendHeader is written as a comment above appended entries.
	// An empty append_header in a config file turns it off.
	DefaultAppendHeader = "Added by Henvdall"
)

// ProjectConfigNames are the project config file names, in lookup order.
var ProjectConfigNames = []string{".henvdall.toml", ".henvdall.yaml", ".henvdall.yml"}

// Config holds every configuration field for the henvdall CLI.
type Config struct {
	// File paths.
	ExampleFile string
	EnvFile     string
	BackupFile  string // empty means EnvFile + ".bak"

	// Audit settings.
	Placeholders []string // extra placeholder tokens
	Strict       bool     // audit exits non-zero when findings exist

	// Sync settings.
	AppendHeader string
	AssumeYes    bool

	// Output.
	Verbose  bool
	NoColor  bool
	NoBanner bool

	// CLI-only flags (not loaded from config files).
	ConfigFile string
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		ExampleFile:  DefaultExampleFile,
		EnvFile:      DefaultEnvFile,
		AppendHeader: DefaultAppendHeader,
	}
}

// GlobalConfigPath returns the per-user config file location,
// e.g. ~/.config/henvdall/config.toml.
func GlobalConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// ProjectConfigPath returns the first project config file that exists in
// dir, or "" if there is none.
func ProjectConfigPath(dir string) string {
	for _, name := range ProjectConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
