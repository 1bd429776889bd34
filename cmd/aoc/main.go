// aoc - Advent of Code 2021
//
// aoc runs the puzzle solvers, downloads inputs and scaffolds new days.
package main

import (
	"os"

	"github.com/andersquist/aoc2021/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
