package day03

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/andersquist/aoc2021/internal/days"
	"github.com/andersquist/aoc2021/internal/days/daytest"
	"github.com/andersquist/aoc2021/pkg/input"
)

const example = `
00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
`

func exampleReport(t *testing.T) *report {
	t.Helper()
	readings, err := input.ParseString(example, decodeReading).Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	return newReport(readings)
}

func TestReport_GammaEpsilon(t *testing.T) {
	r := exampleReport(t)
	if r.gamma != 22 {
		t.Errorf("gamma = %d, want 22", r.gamma)
	}
	if r.epsilon != 9 {
		t.Errorf("epsilon = %d, want 9", r.epsilon)
	}
}

func TestReport_GeneratorRating(t *testing.T) {
	got, err := exampleReport(t).rating(oxygen)
	if err != nil {
		t.Fatalf("rating() error = %v", err)
	}
	if got != 23 {
		t.Errorf("rating(oxygen) = %d, want 23", got)
	}
}

func TestReport_ScrubberRating(t *testing.T) {
	got, err := exampleReport(t).rating(scrubber)
	if err != nil {
		t.Fatalf("rating() error = %v", err)
	}
	if got != 10 {
		t.Errorf("rating(scrubber) = %d, want 10", got)
	}
}

func TestReport_RatingDoesNotMutateReadings(t *testing.T) {
	r := exampleReport(t)
	before := append([]reading(nil), r.readings...)
	if _, err := r.rating(oxygen); err != nil {
		t.Fatal(err)
	}
	for i := range before {
		if before[i] != r.readings[i] {
			t.Fatalf("readings[%d] changed from %v to %v", i, before[i], r.readings[i])
		}
	}
}

func TestReport_NoSolution(t *testing.T) {
	r := newReport([]reading{{value: 1, width: 1}, {value: 1, width: 1}})
	if _, err := r.rating(oxygen); !errors.Is(err, days.ErrNoSolution) {
		t.Errorf("rating() error = %v, want ErrNoSolution", err)
	}
}

func TestParts(t *testing.T) {
	path := daytest.WriteInput(t, example)
	ctx := context.Background()

	if got, err := Part1(ctx, path); err != nil || got != 198 {
		t.Errorf("Part1() = %d, %v, want 198", got, err)
	}
	if got, err := Part2(ctx, path); err != nil || got != 230 {
		t.Errorf("Part2() = %d, %v, want 230", got, err)
	}
}

func TestParts_SkipsOverWideReading(t *testing.T) {
	path := daytest.WriteInput(t, "10000000000000001\n"+strings.TrimLeft(example, "\n"))

	var diagnostics bytes.Buffer
	got, err := Part1(context.Background(), path, input.WithDiagnostics(&diagnostics))
	if err != nil || got != 198 {
		t.Errorf("Part1() = %d, %v, want 198", got, err)
	}

	out := diagnostics.String()
	if !strings.HasPrefix(out, "input.txt:1: ") || !strings.Contains(out, `for "10000000000000001"`) {
		t.Errorf("diagnostics = %q, want the 17-bit reading on line 1 reported", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("diagnostics = %q, want exactly one line", out)
	}
}
