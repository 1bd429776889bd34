package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrEmptySession is returned when a session is set to the empty string.
var ErrEmptySession = errors.New("session can't be empty")

// Path returns the default configuration file path.
func Path() (string, error) {
	dir, err := baseDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, FileName), nil
}

// LoadDefault loads the configuration from Path. When that file does not
// exist the older JSON file next to it is tried; JSON is valid YAML. With
// neither present the defaults are returned.
func LoadDefault(ctx context.Context) (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg, err := Load(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		return LoadOrDefault(ctx, filepath.Join(filepath.Dir(path), LegacyFileName))
	}
	return cfg, err
}

// LoadOrDefault is Load, except that a missing file yields the defaults with
// environment overrides applied.
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	cfg, err := Load(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
		cfg.applyEnvironmentOverrides()
		return cfg, nil
	}
	return cfg, err
}

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadFile reads path as stored, without environment overrides, for callers
// that write the configuration back. A missing file falls back to the legacy
// JSON file next to it, then to the defaults.
func LoadFile(_ context.Context, path string) (*Config, error) {
	cfg, err := readFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = readFile(filepath.Join(filepath.Dir(path), LegacyFileName))
	}
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.InputFiles != "" {
		info, err := os.Stat(cfg.InputFiles)
		if err == nil && !info.IsDir() {
			return fmt.Errorf("input_files: %s is not a directory", cfg.InputFiles)
		}
	}
	return nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// SetSession updates the session cookie.
func (c *Config) SetSession(session string) error {
	if session == "" {
		return ErrEmptySession
	}
	c.Session = session
	return nil
}

// SetInputFiles points the input directory at dir, made absolute.
// dir may not exist yet, but must not be a regular file.
func (c *Config) SetInputFiles(dir string) error {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return fmt.Errorf("inputs must be a directory: %s", dir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	c.InputFiles = abs
	return nil
}

// InputDir returns the directory holding puzzle inputs.
func (c *Config) InputDir() string {
	if c.InputFiles != "" {
		return c.InputFiles
	}
	if cwd, err := os.Getwd(); err == nil {
		return filepath.Join(cwd, InputDirName)
	}
	if dir, err := baseDir(); err == nil {
		return filepath.Join(dir, strconv.Itoa(Year))
	}
	return InputDirName
}

// InputFor returns the input file path for a day, e.g. input-07.txt.
func (c *Config) InputFor(day int) string {
	return filepath.Join(c.InputDir(), fmt.Sprintf("input-%02d.txt", day))
}
