// Package day01 solves "Sonar Sweep".
package day01

import (
	"context"

	"github.com/andersquist/aoc2021/internal/days"
	"github.com/andersquist/aoc2021/pkg/input"
)

func init() {
	days.Register(days.Day{Number: 1, Title: "Sonar Sweep", Part1: Part1, Part2: Part2})
}

// Part1 counts depth measurements larger than the previous one.
func Part1(ctx context.Context, path string, opts ...input.Option) (int64, error) {
	depths, err := readDepths(ctx, path, opts...)
	if err != nil {
		return 0, err
	}
	return countIncreases(depths, 1), nil
}

// Part2 counts increases of the three-measurement sliding window sum.
func Part2(ctx context.Context, path string, opts ...input.Option) (int64, error) {
	depths, err := readDepths(ctx, path, opts...)
	if err != nil {
		return 0, err
	}
	return countIncreases(depths, 3), nil
}

func readDepths(ctx context.Context, path string, opts ...input.Option) ([]uint64, error) {
	seq, err := input.OpenLines(path, input.Uint64, opts...)
	if err != nil {
		return nil, err
	}
	return seq.Collect(ctx)
}

func countIncreases(depths []uint64, window int) int64 {
	var count int64
	// Consecutive windows share all but their outer elements.
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			count++
		}
	}
	return count
}
