// Package config handles the toolset's own configuration file.
//
// A benchsuite.yaml at the benchmarks root can set defaults for quiet
// mode, color, and the results directory; a missing file means defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the toolset configuration.
type Config struct {
	Quiet      *bool  `yaml:"quiet,omitempty"`
	NoColor    *bool  `yaml:"noColor,omitempty"`
	ResultsDir string `yaml:"resultsDir,omitempty"`
}

// ConfigFilenames contains the possible config file names, checked in order.
var ConfigFilenames = []string{
	"benchsuite.yaml",
	"benchsuite.yml",
	".benchsuite.yaml",
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetQuiet returns the quiet setting, defaulting to false
func (c *Config) GetQuiet() bool {
	return getBool(c.Quiet, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetResultsDir returns the results root, defaulting to "results"
func (c *Config) GetResultsDir() string {
	if c.ResultsDir == "" {
		return "results"
	}
	return c.ResultsDir
}

// FindAndLoad searches dir for a config file and parses the first one
// found. Without one it returns defaults.
func FindAndLoad(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadFromFile(configPath)
		}
	}
	return DefaultConfig(), nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}
