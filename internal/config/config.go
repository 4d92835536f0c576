// Package config loads the .sortxml.yaml configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// SortOrder lists element names in their canonical order. Names not on
	// the list sort alphabetically after the listed ones.
	SortOrder []string     `yaml:"sort_order"`
	Indent    int          `yaml:"indent"`
	Backup    BackupConfig `yaml:"backup"`
	Verify    VerifyConfig `yaml:"verify"`
}

// BackupConfig holds backup-file settings used when a document is rewritten.
type BackupConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Extension string `yaml:"extension"`
}

// VerifyConfig holds settings for the verify command.
type VerifyConfig struct {
	// OnUnordered is what to do with an unordered document:
	// "warn", "sort" or "stop".
	OnUnordered string `yaml:"on_unordered"`
	// ViolationFile, when set, receives an XML report of each divergence.
	ViolationFile string `yaml:"violation_file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Indent: 2,
		Backup: BackupConfig{
			Enabled:   true,
			Extension: ".bak",
		},
		Verify: VerifyConfig{
			OnUnordered: "warn",
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Indent < 0 || c.Indent > 8 {
		return fmt.Errorf("indent must be between 0 and 8, got %d", c.Indent)
	}
	if c.Backup.Enabled && c.Backup.Extension == "" {
		return fmt.Errorf("backup.extension must not be empty when backups are enabled")
	}
	switch c.Verify.OnUnordered {
	case "warn", "sort", "stop":
	default:
		return fmt.Errorf("verify.on_unordered must be 'warn', 'sort' or 'stop', got %q", c.Verify.OnUnordered)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file, applying defaults for
// unset fields.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
