// Package day04 solves "Giant Squid" (bingo).
package day04

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andersquist/aoc2021/internal/days"
	"github.com/andersquist/aoc2021/pkg/input"
)

func init() {
	days.Register(days.Day{Number: 4, Title: "Giant Squid", Part1: Part1, Part2: Part2})
}

type cell struct {
	number int
	marked bool
}

type board struct {
	rows [][]cell
}

func parseBoard(block string) (*board, error) {
	b := &board{}
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		var row []cell
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, err
			}
			row = append(row, cell{number: n})
		}
		b.rows = append(b.rows, row)
	}
	if len(b.rows) == 0 || len(b.rows[0]) == 0 {
		return nil, errors.New("empty board")
	}
	return b, nil
}

func (b *board) mark(n int) {
	for _, row := range b.rows {
		for i := range row {
			if row[i].number == n {
				row[i].marked = true
			}
		}
	}
}

func (b *board) won() bool {
	for _, row := range b.rows {
		complete := true
		for _, c := range row {
			complete = complete && c.marked
		}
		if complete {
			return true
		}
	}
	for col := range b.rows[0] {
		complete := true
		for _, row := range b.rows {
			complete = complete && col < len(row) && row[col].marked
		}
		if complete {
			return true
		}
	}
	return false
}

func (b *board) unmarkedSum() int64 {
	var sum int64
	for _, row := range b.rows {
		for _, c := range row {
			if !c.marked {
				sum += int64(c.number)
			}
		}
	}
	return sum
}

type game struct {
	draws  []int
	boards []*board
}

// readGame reads the draw order from the first paragraph and one board per
// following paragraph.
func readGame(ctx context.Context, path string, opts ...input.Option) (*game, error) {
	seq, err := input.OpenParagraphs(path, input.String, opts...)
	if err != nil {
		return nil, err
	}
	defer seq.Close()

	header, err := seq.Next(ctx)
	if errors.Is(err, io.EOF) {
		return nil, errors.New("input has no draw numbers")
	}
	if err != nil {
		return nil, err
	}
	draws, err := input.Trimmed(input.Separated(",", input.Int))(header)
	if err != nil {
		return nil, fmt.Errorf("parsing draw numbers: %w", err)
	}

	g := &game{draws: draws}
	for {
		block, err := seq.Next(ctx)
		if errors.Is(err, io.EOF) {
			return g, nil
		}
		if err != nil {
			return nil, err
		}
		b, err := parseBoard(block)
		if err != nil {
			return nil, fmt.Errorf("parsing board %d: %w", len(g.boards)+1, err)
		}
		g.boards = append(g.boards, b)
	}
}

// firstWinner returns the score of the first board to win.
func (g *game) firstWinner() (int64, error) {
	for _, n := range g.draws {
		for _, b := range g.boards {
			b.mark(n)
			if b.won() {
				return b.unmarkedSum() * int64(n), nil
			}
		}
	}
	return 0, days.ErrNoSolution
}

// lastWinner returns the score of the last board to win.
func (g *game) lastWinner() (int64, error) {
	remaining := append([]*board(nil), g.boards...)
	score, found := int64(0), false

	for _, n := range g.draws {
		playing := remaining[:0]
		for _, b := range remaining {
			b.mark(n)
			if b.won() {
				score, found = b.unmarkedSum()*int64(n), true
				continue
			}
			playing = append(playing, b)
		}
		remaining = playing
	}

	if !found {
		return 0, days.ErrNoSolution
	}
	return score, nil
}

// Part1 scores the first winning board.
func Part1(ctx context.Context, path string, opts ...input.Option) (int64, error) {
	g, err := readGame(ctx, path, opts...)
	if err != nil {
		return 0, err
	}
	return g.firstWinner()
}

// Part2 scores the last winning board.
func Part2(ctx context.Context, path string, opts ...input.Option) (int64, error) {
	g, err := readGame(ctx, path, opts...)
	if err != nil {
		return 0, err
	}
	return g.lastWinner()
}
