package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andersquist/aoc2021/pkg/fetch"
)

// NewURLCommand creates the url command.
func NewURLCommand() *cobra.Command {
	var day int

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Emit the URL to a specified puzzle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateDay(day); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), fetch.PuzzleURL(day))
			return err
		},
	}

	cmd.Flags().IntVarP(&day, "day", "d", 1, "Puzzle day (1-25)")
	return cmd
}
