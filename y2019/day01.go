// Package y2019 has solutions to the 2019 puzzles.
package y2019

import (
	"fmt"
	"strconv"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2019, 1, func(in puzzle.Input) puzzle.Problem { return day01{in} })
}

type day01 struct{ puzzle.Input }

func (d day01) masses() ([]int64, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var masses []int64
	for _, line := range lines {
		if line == "" {
			continue
		}
		m, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad module mass %q", line)
		}
		masses = append(masses, m)
	}
	return masses, nil
}

func fuelFor(mass int64) int64 { return mass/3 - 2 }

func (d day01) Part1() (any, error) {
	masses, err := d.masses()
	if err != nil {
		return nil, err
	}
	var total int64
	for _, m := range masses {
		total += fuelFor(m)
	}
	return total, nil
}

func (d day01) Part2() (any, error) {
	masses, err := d.masses()
	if err != nil {
		return nil, err
	}
	var total int64
	for _, m := range masses {
		for f := fuelFor(m); f > 0; f = fuelFor(f) {
			total += f
		}
	}
	return total, nil
}
