package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/andersquist/aoc2021/pkg/scaffold"
)

// InitOptions holds command-line options for the init command.
type InitOptions struct {
	Day   int
	Force bool
	Root  string
}

// NewInitCommand creates the init command.
func NewInitCommand(g *GlobalOptions) *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the package for a new day",
		Long: `Create <days_dir>/dayNN from the templates in day-template/, register it
in aoc.yaml and regenerate the package that imports every day.

Run from the workspace root, or point --root at it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, g, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Day, "day", "d", 1, "Puzzle day (1-25)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Force overwrite files")
	cmd.Flags().StringVar(&opts.Root, "root", ".", "Workspace root containing "+scaffold.ManifestFile)

	return cmd
}

func runInit(cmd *cobra.Command, g *GlobalOptions, opts *InitOptions) error {
	if err := validateDay(opts.Day); err != nil {
		return err
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", opts.Root, err)
	}

	err = scaffold.Initialize(commandContext(cmd), scaffold.Options{
		Root:   root,
		Day:    opts.Day,
		Force:  opts.Force,
		Logger: g.logger(),
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", scaffold.DayName(opts.Day))
	return err
}
