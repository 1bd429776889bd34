package day02

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/andersquist/aoc2021/internal/days/daytest"
	"github.com/andersquist/aoc2021/pkg/input"
)

const example = `
forward 5
down 5
forward 8
up 3
down 8
forward 2
`

func TestPart1(t *testing.T) {
	got, err := Part1(context.Background(), daytest.WriteInput(t, example))
	if err != nil {
		t.Fatalf("Part1() error = %v", err)
	}
	if got != 150 {
		t.Errorf("Part1() = %d, want 150", got)
	}
}

func TestPart2(t *testing.T) {
	got, err := Part2(context.Background(), daytest.WriteInput(t, example))
	if err != nil {
		t.Fatalf("Part2() error = %v", err)
	}
	if got != 900 {
		t.Errorf("Part2() = %d, want 900", got)
	}
}

func TestPart1_SkipsUnknownCommand(t *testing.T) {
	var diag bytes.Buffer
	path := daytest.WriteInput(t, "forward 2\nsideways 4\ndown 3\n")

	got, err := Part1(context.Background(), path, input.WithDiagnostics(&diag))
	if err != nil {
		t.Fatalf("Part1() error = %v", err)
	}
	if got != 6 {
		t.Errorf("Part1() = %d, want 6", got)
	}
	if !strings.Contains(diag.String(), `input.txt:2: unknown direction "sideways" for "sideways 4"`) {
		t.Errorf("diagnostics = %q", diag.String())
	}
}

func TestCommand_RoundTrip(t *testing.T) {
	for _, text := range []string{"forward 5", "up 3", "down 8"} {
		var c command
		if err := c.UnmarshalText([]byte(text)); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		out, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}
		if string(out) != text {
			t.Errorf("MarshalText() = %q, want %q", out, text)
		}
	}
}
