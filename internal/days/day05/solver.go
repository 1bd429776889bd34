// Package day05 solves "Hydrothermal Venture".
package day05

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/andersquist/aoc2021/internal/days"
	"github.com/andersquist/aoc2021/pkg/input"
)

func init() {
	days.Register(days.Day{Number: 5, Title: "Hydrothermal Venture", Part1: Part1, Part2: Part2})
}

type point struct {
	x, y int
}

func (p point) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d,%d", p.x, p.y)), nil
}

func (p *point) UnmarshalText(text []byte) error {
	xs, ys, ok := strings.Cut(string(text), ",")
	if !ok {
		return fmt.Errorf("expected \"x,y\", got %q", text)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return err
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return err
	}
	p.x, p.y = x, y
	return nil
}

// segment is a line of vents, "x1,y1 -> x2,y2".
type segment struct {
	start, end point
}

func (s segment) MarshalText() ([]byte, error) {
	start, _ := s.start.MarshalText()
	end, _ := s.end.MarshalText()
	return []byte(string(start) + " -> " + string(end)), nil
}

func (s *segment) UnmarshalText(text []byte) error {
	start, end, ok := strings.Cut(string(text), " -> ")
	if !ok {
		return fmt.Errorf("expected \"<point> -> <point>\"")
	}
	if err := s.start.UnmarshalText([]byte(start)); err != nil {
		return err
	}
	if err := s.end.UnmarshalText([]byte(end)); err != nil {
		return err
	}
	if !s.straight() && abs(s.end.x-s.start.x) != abs(s.end.y-s.start.y) {
		return fmt.Errorf("line is not horizontal, vertical or at 45 degrees")
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (s segment) straight() bool {
	return s.start.x == s.end.x || s.start.y == s.end.y
}

func step(from, to int) int {
	switch {
	case from > to:
		return -1
	case from < to:
		return 1
	default:
		return 0
	}
}

// points walks the segment from start to end, both included. The walk stops
// as soon as it passes the end on either axis.
func (s segment) points() []point {
	dx, dy := step(s.start.x, s.end.x), step(s.start.y, s.end.y)
	var points []point
	for p := s.start; !s.past(p, dx, dy); p = (point{p.x + dx, p.y + dy}) {
		points = append(points, p)
		if p == s.end {
			break
		}
	}
	return points
}

func (s segment) past(p point, dx, dy int) bool {
	return (dx > 0 && p.x > s.end.x) || (dx < 0 && p.x < s.end.x) ||
		(dy > 0 && p.y > s.end.y) || (dy < 0 && p.y < s.end.y)
}

func overlaps(segments []segment) int64 {
	coverage := make(map[point]int)
	for _, s := range segments {
		for _, p := range s.points() {
			coverage[p]++
		}
	}

	var count int64
	for _, n := range coverage {
		if n > 1 {
			count++
		}
	}
	return count
}

func readSegments(ctx context.Context, path string, straightOnly bool, opts ...input.Option) ([]segment, error) {
	seq, err := input.OpenLines(path, input.Text[segment](), opts...)
	if err != nil {
		return nil, err
	}

	var segments []segment
	for s := range seq.All(ctx) {
		if straightOnly && !s.straight() {
			continue
		}
		segments = append(segments, s)
	}
	return segments, seq.Err()
}

// Part1 counts points covered by at least two horizontal or vertical lines.
func Part1(ctx context.Context, path string, opts ...input.Option) (int64, error) {
	segments, err := readSegments(ctx, path, true, opts...)
	if err != nil {
		return 0, err
	}
	return overlaps(segments), nil
}

// Part2 also counts diagonal lines.
func Part2(ctx context.Context, path string, opts ...input.Option) (int64, error) {
	segments, err := readSegments(ctx, path, false, opts...)
	if err != nil {
		return 0, err
	}
	return overlaps(segments), nil
}
