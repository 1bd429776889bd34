package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andersquist/aoc2021/pkg/config"
)

// ConfigSetOptions holds command-line options for config set.
type ConfigSetOptions struct {
	Session string
	Inputs  string
}

// NewConfigCommand creates the config command and its subcommands.
func NewConfigCommand(g *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Handle configuration",
		Long: `Inspect and change the user configuration.

The configuration holds the adventofcode.com session cookie and the
directory puzzle inputs are read from. It lives in the user config
directory unless --config is given.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print path to configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := g.configPath()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Display config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := g.configPath()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path) // #nosec G304 -- the user's own config file
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("no configuration at %s (run: aoc config set)", path)
			}
			if err != nil {
				return fmt.Errorf("reading config file: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	opts := &ConfigSetOptions{}
	set := &cobra.Command{
		Use:   "set",
		Short: "Set configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, g, opts)
		},
	}
	set.Flags().StringVarP(&opts.Session, "session", "s", "", "Session id: log in to adventofcode.com and inspect cookies to get this")
	set.Flags().StringVarP(&opts.Inputs, "inputs", "i", "", "Directory holding puzzle input files")
	cmd.AddCommand(set)

	return cmd
}

func runConfigSet(cmd *cobra.Command, g *GlobalOptions, opts *ConfigSetOptions) error {
	path, err := g.configPath()
	if err != nil {
		return err
	}

	// Environment overrides are for this run only and must not be saved.
	cfg, err := config.LoadFile(commandContext(cmd), path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("session") {
		if err := cfg.SetSession(opts.Session); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("inputs") {
		if err := cfg.SetInputFiles(opts.Inputs); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	g.logger().Debug("saved config", zap.String("path", path))
	return nil
}
