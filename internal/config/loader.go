package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the settings a config file may carry. Pointer fields
// distinguish an absent key from one explicitly set to its zero value.
type FileConfig struct {
	ExampleFile  *string  `toml:"example_file" yaml:"example_file"`
	EnvFile      *string  `toml:"env_file" yaml:"env_file"`
	BackupFile   *string  `toml:"backup_file" yaml:"backup_file"`
	Placeholders []string `toml:"placeholders" yaml:"placeholders"`
	Strict       *bool    `toml:"strict" yaml:"strict"`
	AppendHeader *string  `toml:"append_header" yaml:"append_header"`
	AssumeYes    *bool    `toml:"assume_yes" yaml:"assume_yes"`
	Verbose      *bool    `toml:"verbose" yaml:"verbose"`
	NoColor      *bool    `toml:"no_color" yaml:"no_color"`
	NoBanner     *bool    `toml:"no_banner" yaml:"no_banner"`
}

// LoadFile parses the config file at path. Files ending in .yaml or .yml are
// read as YAML, everything else as TOML. Unknown keys are silently ignored.
//
// Relative example_file, env_file and backup_file values are resolved against
// the directory containing the config file.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	default:
		if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&fc); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	dir := filepath.Dir(path)
	for _, p := range []*string{fc.ExampleFile, fc.EnvFile, fc.BackupFile} {
		if p != nil && *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	return &fc, nil
}

// LoadWithPrecedence assembles a Config by merging sources in order of
// increasing priority:
//
//  1. Built-in defaults
//  2. Global config file (globalPath)
//  3. Project config file (projectPath)
//  4. Explicit config file (explicitPath)
//  5. CLI overrides (cliOverrides map)
//
// Any path that is empty is silently skipped. Missing global and project
// files are not an error; a missing explicit file is.
func LoadWithPrecedence(globalPath, projectPath, explicitPath string, cliOverrides map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	if globalPath != "" {
		fc, err := LoadFile(globalPath)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("global config: %w", err)
			}
		} else {
			fc.apply(cfg)
		}
	}

	if projectPath != "" {
		fc, err := LoadFile(projectPath)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("project config: %w", err)
			}
		} else {
			fc.apply(cfg)
		}
	}

	if explicitPath != "" {
		fc, err := LoadFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("explicit config: %w", err)
		}
		fc.apply(cfg)
	}

	if len(cliOverrides) > 0 {
		ApplyMapToConfig(cfg, cliOverrides)
	}

	return cfg, nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.ExampleFile, fc.ExampleFile)
	setString(&cfg.EnvFile, fc.EnvFile)
	setString(&cfg.BackupFile, fc.BackupFile)
	setString(&cfg.AppendHeader, fc.AppendHeader)
	setBool(&cfg.Strict, fc.Strict)
	setBool(&cfg.AssumeYes, fc.AssumeYes)
	setBool(&cfg.Verbose, fc.Verbose)
	setBool(&cfg.NoColor, fc.NoColor)
	setBool(&cfg.NoBanner, fc.NoBanner)
	cfg.Placeholders = append(cfg.Placeholders, fc.Placeholders...)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// ApplyMapToConfig sets fields on cfg from the key-value pairs in m.
// Keys use the config file names (e.g., "env_file"). Unknown keys are
// silently ignored. "placeholders" is a comma-separated list that extends
// the current one.
func ApplyMapToConfig(cfg *Config, m map[string]string) {
	for key, value := range m {
		switch key {
		case "example_file":
			cfg.ExampleFile = value
		case "env_file":
			cfg.EnvFile = value
		case "backup_file":
			cfg.BackupFile = value
		case "append_header":
			cfg.AppendHeader = value
		case "placeholders":
			for _, p := range strings.Split(value, ",") {
				if p = strings.TrimSpace(p); p != "" {
					cfg.Placeholders = append(cfg.Placeholders, p)
				}
			}
		case "strict":
			cfg.Strict = parseBool(value)
		case "assume_yes":
			cfg.AssumeYes = parseBool(value)
		case "verbose":
			cfg.Verbose = parseBool(value)
		case "no_color":
			cfg.NoColor = parseBool(value)
		case "no_banner":
			cfg.NoBanner = parseBool(value)
		}
	}
}

// parseBool interprets common boolean representations.
// "true", "1", "yes" (case-insensitive) return true; everything else returns false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
