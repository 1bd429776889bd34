package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andersquist/aoc2021/pkg/fetch"
)

// FetchOptions holds command-line options for the fetch command.
type FetchOptions struct {
	Day     int
	Force   bool
	Timeout time.Duration
	BaseURL string
}

// NewFetchCommand creates the fetch command.
func NewFetchCommand(g *GlobalOptions) *cobra.Command {
	opts := &FetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download puzzle input",
		Long: `Download the input for a day into the configured input directory
using the session cookie from the configuration.

An existing input file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, g, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Day, "day", "d", 1, "Puzzle day (1-25)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Replace an existing input file")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", fetch.DefaultTimeout, "HTTP request timeout")
	cmd.Flags().StringVar(&opts.BaseURL, "base-url", fetch.DefaultBaseURL, "Advent of Code site")
	_ = cmd.Flags().MarkHidden("base-url")

	return cmd
}

func runFetch(cmd *cobra.Command, g *GlobalOptions, opts *FetchOptions) error {
	if err := validateDay(opts.Day); err != nil {
		return err
	}

	ctx := commandContext(cmd)
	cfg, err := g.loadConfig(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dest := cfg.InputFor(opts.Day)
	if _, err := os.Stat(dest); err == nil && !opts.Force {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", dest)
		return err
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", dest, err)
	}

	resp := fetch.NewClient(opts.BaseURL).Download(ctx, opts.Day, dest, fetch.Options{
		Session: cfg.Session,
		Timeout: opts.Timeout,
	})
	if !resp.Success() {
		return fmt.Errorf("fetching day %d: %w", opts.Day, resp.Error)
	}

	g.logger().Debug("fetched input",
		zap.Int("day", opts.Day),
		zap.String("path", dest),
		zap.Int64("bytes", resp.Bytes),
		zap.Duration("duration", resp.Duration))

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", filepath.Base(dest), resp.Bytes)
	return err
}
