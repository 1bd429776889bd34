// Package days keeps the registry of puzzle solvers.
//
// Every dayNN package registers itself from an init function; import
// internal/days/all to load them all.
package days

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/andersquist/aoc2021/pkg/input"
)

// ErrUnknownDay is returned when no solver is registered for a day.
var ErrUnknownDay = errors.New("no solver registered for day")

// ErrNoSolution is returned by solvers whose input admits no answer.
var ErrNoSolution = errors.New("no solution found")

// PartFunc solves one part of a puzzle for the input file at path.
type PartFunc func(ctx context.Context, path string, opts ...input.Option) (int64, error)

// Day describes the solver for one puzzle day.
type Day struct {
	Number int
	Title  string
	Part1  PartFunc
	Part2  PartFunc
}

// Part returns the solver for part 1 or 2.
func (d Day) Part(n int) (PartFunc, error) {
	switch n {
	case 1:
		if d.Part1 != nil {
			return d.Part1, nil
		}
	case 2:
		if d.Part2 != nil {
			return d.Part2, nil
		}
	default:
		return nil, fmt.Errorf("invalid part %d (must be 1 or 2)", n)
	}
	return nil, fmt.Errorf("day %d part %d is not implemented", d.Number, n)
}

var (
	mu       sync.RWMutex
	registry = make(map[int]Day)
)

// Register adds a day to the registry. It panics if the day number is out of
// range or already registered.
func Register(d Day) {
	mu.Lock()
	defer mu.Unlock()

	if d.Number < 1 || d.Number > 25 {
		panic(fmt.Sprintf("days: invalid day number %d", d.Number))
	}
	if _, dup := registry[d.Number]; dup {
		panic(fmt.Sprintf("days: day %d registered twice", d.Number))
	}
	registry[d.Number] = d
}

// Lookup returns the solver registered for day n.
func Lookup(n int) (Day, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := registry[n]
	if !ok {
		return Day{}, fmt.Errorf("%w %d", ErrUnknownDay, n)
	}
	return d, nil
}

// All returns every registered day ordered by number.
func All() []Day {
	mu.RLock()
	defer mu.RUnlock()

	all := make([]Day, 0, len(registry))
	for _, d := range registry {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Number < all[j].Number })
	return all
}
