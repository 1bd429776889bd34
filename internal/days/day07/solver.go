// Package day07 solves "The Treachery of Whales".
package day07

import (
	"context"
	"errors"
	"io"
	"slices"

	"github.com/andersquist/aoc2021/internal/days"
	"github.com/andersquist/aoc2021/pkg/input"
)

func init() {
	days.Register(days.Day{Number: 7, Title: "The Treachery of Whales", Part1: Part1, Part2: Part2})
}

// costFunc returns the fuel a crab at pos spends to move to target.
type costFunc func(pos, target int) int64

func linear(pos, target int) int64 {
	return int64(abs(pos - target))
}

func triangular(pos, target int) int64 {
	d := int64(abs(pos - target))
	return d * (d + 1) / 2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// cheapestAlignment tries every target between the outermost crabs.
func cheapestAlignment(crabs []int, cost costFunc) (int64, error) {
	if len(crabs) == 0 {
		return 0, days.ErrNoSolution
	}

	best := int64(-1)
	for target := slices.Min(crabs); target <= slices.Max(crabs); target++ {
		var total int64
		for _, c := range crabs {
			total += cost(c, target)
		}
		if best < 0 || total < best {
			best = total
		}
	}
	return best, nil
}

func readCrabs(ctx context.Context, path string, opts ...input.Option) ([]int, error) {
	seq, err := input.OpenParagraphs(path, input.Trimmed(input.Separated(",", input.Int)), opts...)
	if err != nil {
		return nil, err
	}
	defer seq.Close()

	crabs, err := seq.Next(ctx)
	if errors.Is(err, io.EOF) {
		return nil, days.ErrNoSolution
	}
	return crabs, err
}

// Part1 finds the cheapest alignment at one fuel per step.
func Part1(ctx context.Context, path string, opts ...input.Option) (int64, error) {
	crabs, err := readCrabs(ctx, path, opts...)
	if err != nil {
		return 0, err
	}
	return cheapestAlignment(crabs, linear)
}

// Part2 finds the cheapest alignment when every step costs one more than the last.
func Part2(ctx context.Context, path string, opts ...input.Option) (int64, error) {
	crabs, err := readCrabs(ctx, path, opts...)
	if err != nil {
		return 0, err
	}
	return cheapestAlignment(crabs, triangular)
}
