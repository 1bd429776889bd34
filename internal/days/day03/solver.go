// Package day03 solves "Binary Diagnostic".
package day03

import (
	"context"
	"strconv"

	"github.com/andersquist/aoc2021/internal/days"
	"github.com/andersquist/aoc2021/pkg/input"
)

func init() {
	days.Register(days.Day{Number: 3, Title: "Binary Diagnostic", Part1: Part1, Part2: Part2})
}

const maxWidth = 16

// reading is one line of the diagnostic report.
type reading struct {
	value uint16
	width int
}

// decodeReading rejects readings wider than maxWidth bits.
func decodeReading(record string) (reading, error) {
	v, err := strconv.ParseUint(record, 2, maxWidth)
	if err != nil {
		return reading{}, err
	}
	return reading{value: uint16(v), width: len(record)}, nil
}

type rating int

const (
	oxygen rating = iota
	scrubber
)

type report struct {
	readings []reading
	gamma    uint16
	epsilon  uint16
	width    int
}

func newReport(readings []reading) *report {
	var counts [maxWidth]int
	width := 0
	for _, r := range readings {
		for i := 0; i < maxWidth; i++ {
			if r.value&(1<<i) != 0 {
				counts[i]++
			}
		}
		width = max(width, r.width)
	}

	threshold := len(readings) / 2
	var gamma uint16
	for i, c := range counts {
		if c > threshold {
			gamma |= 1 << i
		}
	}

	epsilon := ^gamma
	for i := width; i < maxWidth; i++ {
		epsilon &^= 1 << i
	}

	return &report{readings: readings, gamma: gamma, epsilon: epsilon, width: width}
}

func (r *report) powerConsumption() int64 {
	return int64(r.gamma) * int64(r.epsilon)
}

func (r *report) rating(kind rating) (int64, error) {
	candidates := append([]reading(nil), r.readings...)

	for pos := r.width - 1; pos >= 0; pos-- {
		ones := 0
		for _, c := range candidates {
			if c.value&(1<<pos) != 0 {
				ones++
			}
		}
		zeros := len(candidates) - ones

		var keep uint16
		switch {
		case kind == oxygen && zeros > ones:
			keep = 0
		case kind == oxygen:
			keep = 1
		case kind == scrubber && zeros <= ones:
			keep = 0
		default:
			keep = 1
		}

		kept := candidates[:0]
		for _, c := range candidates {
			if (c.value>>pos)&1 == keep {
				kept = append(kept, c)
			}
		}
		candidates = kept

		switch len(candidates) {
		case 0:
			return 0, days.ErrNoSolution
		case 1:
			return int64(candidates[0].value), nil
		}
	}
	return 0, days.ErrNoSolution
}

func readReport(ctx context.Context, path string, opts ...input.Option) (*report, error) {
	seq, err := input.OpenLines(path, decodeReading, opts...)
	if err != nil {
		return nil, err
	}
	readings, err := seq.Collect(ctx)
	if err != nil {
		return nil, err
	}
	return newReport(readings), nil
}

// Part1 computes the power consumption, gamma rate times epsilon rate.
func Part1(ctx context.Context, path string, opts ...input.Option) (int64, error) {
	r, err := readReport(ctx, path, opts...)
	if err != nil {
		return 0, err
	}
	return r.powerConsumption(), nil
}

// Part2 computes the life support rating.
func Part2(ctx context.Context, path string, opts ...input.Option) (int64, error) {
	r, err := readReport(ctx, path, opts...)
	if err != nil {
		return 0, err
	}
	generator, err := r.rating(oxygen)
	if err != nil {
		return 0, err
	}
	scrubberRating, err := r.rating(scrubber)
	if err != nil {
		return 0, err
	}
	return generator * scrubberRating, nil
}
