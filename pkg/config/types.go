// Package config provides loading and saving of the aoc user configuration.
package config

// Config is the user configuration stored in the config directory.
type Config struct {
	// Session is the adventofcode.com session cookie.
	// Log in to adventofcode.com and inspect the cookies to find it.
	Session string `yaml:"session"`

	// InputFiles is the directory holding puzzle inputs.
	// Defaults to ./input when empty.
	InputFiles string `yaml:"input_files,omitempty"`
}
