// Package cli provides the command-line interface for aoc.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/andersquist/aoc2021/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	g := &commands.GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2021",
		Long: `aoc solves the Advent of Code 2021 puzzles and manages the workspace
around them.

Start with "aoc config set --session <cookie>", then "aoc fetch --day N"
and "aoc solve --day N". New days are created with "aoc init --day N".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(g.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			g.Logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.Logger != nil {
				_ = g.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.ConfigFile, "config", "", "Configuration file (default: <user config dir>/adventofcode/2021.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "Debug logging and detailed output")

	// Add subcommands
	rootCmd.AddCommand(commands.NewConfigCommand(g))
	rootCmd.AddCommand(commands.NewURLCommand())
	rootCmd.AddCommand(commands.NewInitCommand(g))
	rootCmd.AddCommand(commands.NewSolveCommand(g))
	rootCmd.AddCommand(commands.NewFetchCommand(g))
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}

// newLogger builds the stderr logger. Only warnings and errors are shown
// unless verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
