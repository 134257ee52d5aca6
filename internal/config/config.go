// Package config loads followcheck configuration from an optional YAML file
// and merges CLI flag overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the config file is looked up when no --config
// flag is given.
const DefaultConfigPath = ".followcheck/config.yaml"

// Config represents followcheck configuration options
type Config struct {
	// OutDir is the directory the two output files are written to
	OutDir string `yaml:"out_dir"`

	// Format is the output file format: txt or csv
	Format string `yaml:"format"`

	// LogLevel sets the diagnostic verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		OutDir:   ".",
		Format:   "txt",
		LogLevel: "info",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-empty values from file over the defaults
	if fileCfg.OutDir != "" {
		cfg.OutDir = fileCfg.OutDir
	}
	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .followcheck/config.yaml in the
// specified directory, falling back to defaults when absent.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultConfigPath))
}

// MergeFlags applies CLI flag values over the configuration. Empty flag
// values leave the configured value in place; verbose forces debug-level
// diagnostics.
func (c *Config) MergeFlags(outDir, format string, verbose bool) {
	if outDir != "" {
		c.OutDir = outDir
	}
	if format != "" {
		c.Format = format
	}
	if verbose {
		c.LogLevel = "debug"
	}
}
