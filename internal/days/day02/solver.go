// Package day02 solves "Dive!".
package day02

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/andersquist/aoc2021/internal/days"
	"github.com/andersquist/aoc2021/pkg/input"
)

func init() {
	days.Register(days.Day{Number: 2, Title: "Dive!", Part1: Part1, Part2: Part2})
}

type direction string

const (
	forward direction = "forward"
	up      direction = "up"
	down    direction = "down"
)

type command struct {
	dir    direction
	amount int64
}

func (c command) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%s %d", c.dir, c.amount)), nil
}

func (c *command) UnmarshalText(text []byte) error {
	dir, amount, ok := strings.Cut(string(text), " ")
	if !ok {
		return fmt.Errorf("expected \"<direction> <amount>\"")
	}
	switch direction(dir) {
	case forward, up, down:
	default:
		return fmt.Errorf("unknown direction %q", dir)
	}
	n, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		return err
	}
	c.dir, c.amount = direction(dir), n
	return nil
}

// Part1 multiplies final depth and horizontal position.
func Part1(ctx context.Context, path string, opts ...input.Option) (int64, error) {
	seq, err := input.OpenLines(path, input.Text[command](), opts...)
	if err != nil {
		return 0, err
	}

	var depth, horizontal int64
	for c := range seq.All(ctx) {
		switch c.dir {
		case forward:
			horizontal += c.amount
		case up:
			depth -= c.amount
		case down:
			depth += c.amount
		}
	}
	if err := seq.Err(); err != nil {
		return 0, err
	}
	return depth * horizontal, nil
}

// Part2 is Part1 with up and down steering the aim instead of the depth.
func Part2(ctx context.Context, path string, opts ...input.Option) (int64, error) {
	seq, err := input.OpenLines(path, input.Text[command](), opts...)
	if err != nil {
		return 0, err
	}

	var depth, horizontal, aim int64
	for c := range seq.All(ctx) {
		switch c.dir {
		case forward:
			horizontal += c.amount
			depth += aim * c.amount
		case up:
			aim -= c.amount
		case down:
			aim += c.amount
		}
	}
	if err := seq.Err(); err != nil {
		return 0, err
	}
	return depth * horizontal, nil
}
