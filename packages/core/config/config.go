package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the rfcli configuration
type Config struct {
	Robot      []string `yaml:"robot,omitempty"`      // Command starting robot, e.g. [python3, -m, robot]
	TargetsDir string   `yaml:"targetsDir,omitempty"` // Directory bare target names are looked up in
	OutputDir  string   `yaml:"outputDir,omitempty"`  // Empty selects the public_html/rfcli_output default
	DebugFile  string   `yaml:"debugFile,omitempty"`
	LogLevel   string   `yaml:"logLevel,omitempty"`
	Listeners  []string `yaml:"listeners"`
	PythonPath *bool    `yaml:"pythonpath,omitempty"`
	NoColor    *bool    `yaml:"noColor,omitempty"`
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetPythonPath returns whether PYTHONPATH is set for robot, defaulting to true
func (c *Config) GetPythonPath() bool {
	return getBool(c.PythonPath, true)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".rfcli.yaml",
	"rfcli.yaml",
	".rfcli.yml",
	".rfclirc.json",
}

// LoadConfig loads configuration from the specified path or searches dir
// for a config file.
func LoadConfig(path, dir string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}
	return FindAndLoadConfig(dir)
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file. JSON files
// are read by the same decoder.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	var file Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return DefaultConfig().Merge(&file), nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if len(other.Robot) > 0 {
		result.Robot = other.Robot
	}
	if other.TargetsDir != "" {
		result.TargetsDir = other.TargetsDir
	}
	if other.OutputDir != "" {
		result.OutputDir = other.OutputDir
	}
	if other.DebugFile != "" {
		result.DebugFile = other.DebugFile
	}
	if other.LogLevel != "" {
		result.LogLevel = other.LogLevel
	}

	// An explicit empty list disables the default listeners
	if other.Listeners != nil {
		result.Listeners = other.Listeners
	}

	// Boolean flags - only override if explicitly set in other config
	if other.PythonPath != nil {
		result.PythonPath = other.PythonPath
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	return &result
}
