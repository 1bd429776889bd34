package config

import (
	"os"
	"path/filepath"
)

// Default locations, relative to the user config directory.
const (
	DirName        = "adventofcode"
	FileName       = "2021.yaml"
	LegacyFileName = "2021.json"
	InputDirName   = "input"
	Year           = 2021
)

// Environment variable names.
const (
	EnvSession    = "AOC_SESSION"
	EnvInputFiles = "AOC_INPUT_FILES"
)

// DefaultConfig returns an empty configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if session := os.Getenv(EnvSession); session != "" {
		c.Session = session
	}
	if dir := os.Getenv(EnvInputFiles); dir != "" {
		c.InputFiles = dir
	}
}

// baseDir returns <user config dir>/adventofcode.
func baseDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DirName), nil
}
