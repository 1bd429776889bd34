// Package day06 solves "Lanternfish".
package day06

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/andersquist/aoc2021/internal/days"
	"github.com/andersquist/aoc2021/pkg/input"
)

func init() {
	days.Register(days.Day{Number: 6, Title: "Lanternfish", Part1: Part1, Part2: Part2})
}

const (
	resetTimer = 6
	newTimer   = 8
)

// school counts fish by internal timer value.
type school [newTimer + 1]int64

func newSchool(timers []int) (school, error) {
	var s school
	for _, t := range timers {
		if t < 0 || t > newTimer {
			return s, fmt.Errorf("timer %d out of range", t)
		}
		s[t]++
	}
	return s, nil
}

func (s school) advance() school {
	var next school
	for timer := 1; timer <= newTimer; timer++ {
		next[timer-1] = s[timer]
	}
	next[resetTimer] += s[0]
	next[newTimer] += s[0]
	return next
}

func (s school) size() int64 {
	var n int64
	for _, c := range s {
		n += c
	}
	return n
}

func simulate(timers []int, daysToRun int) (int64, error) {
	s, err := newSchool(timers)
	if err != nil {
		return 0, err
	}
	for range daysToRun {
		s = s.advance()
	}
	return s.size(), nil
}

func readTimers(ctx context.Context, path string, opts ...input.Option) ([]int, error) {
	seq, err := input.OpenParagraphs(path, input.Trimmed(input.Separated(",", input.Int)), opts...)
	if err != nil {
		return nil, err
	}
	defer seq.Close()

	timers, err := seq.Next(ctx)
	if errors.Is(err, io.EOF) {
		return nil, errors.New("input has no fish")
	}
	return timers, err
}

// Part1 counts fish after 80 days.
func Part1(ctx context.Context, path string, opts ...input.Option) (int64, error) {
	timers, err := readTimers(ctx, path, opts...)
	if err != nil {
		return 0, err
	}
	return simulate(timers, 80)
}

// Part2 counts fish after 256 days.
func Part2(ctx context.Context, path string, opts ...input.Option) (int64, error) {
	timers, err := readTimers(ctx, path, opts...)
	if err != nil {
		return 0, err
	}
	return simulate(timers, 256)
}
