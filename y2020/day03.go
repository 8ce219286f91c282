package y2020

import (
	"errors"
	"fmt"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2020, 3, func(in puzzle.Input) puzzle.Problem { return day03{in} })
}

type day03 struct{ puzzle.Input }

// treeMap is a field of open squares and trees that repeats to the right.
type treeMap []string

func (d day03) trees() (treeMap, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var m treeMap
	for _, line := range lines {
		if line == "" {
			continue
		}
		if len(m) > 0 && len(line) != len(m[0]) {
			return nil, fmt.Errorf("row %d has width %d; want %d", len(m), len(line), len(m[0]))
		}
		m = append(m, line)
	}
	if len(m) == 0 {
		return nil, errors.New("empty map")
	}
	return m, nil
}

func (m treeMap) hits(right, down int) int {
	n := 0
	for x, y := 0, 0; y < len(m); x, y = x+right, y+down {
		if m[y][x%len(m[y])] == '#' {
			n++
		}
	}
	return n
}

func (d day03) Part1() (any, error) {
	m, err := d.trees()
	if err != nil {
		return nil, err
	}
	return m.hits(3, 1), nil
}

func (d day03) Part2() (any, error) {
	m, err := d.trees()
	if err != nil {
		return nil, err
	}
	product := 1
	for _, slope := range [][2]int{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}} {
		product *= m.hits(slope[0], slope[1])
	}
	return product, nil
}
