package y2020

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2020, 6, func(in puzzle.Input) puzzle.Problem { return day06{in} })
}

type day06 struct{ puzzle.Input }

// groups returns, for each group, one bitmask per person of the questions
// they answered yes to.
func (d day06) groups() ([][]uint32, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var groups [][]uint32
	var cur []uint32
	for _, line := range append(lines, "") {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		var mask uint32
		for _, c := range line {
			if c < 'a' || c > 'z' {
				return nil, fmt.Errorf("bad answers %q", line)
			}
			mask |= 1 << (c - 'a')
		}
		cur = append(cur, mask)
	}
	return groups, nil
}

func (d day06) sum(combine func(a, b uint32) uint32) (int, error) {
	groups, err := d.groups()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range groups {
		m := g[0]
		for _, person := range g[1:] {
			m = combine(m, person)
		}
		total += bits.OnesCount32(m)
	}
	return total, nil
}

func (d day06) Part1() (any, error) {
	return d.sum(func(a, b uint32) uint32 { return a | b })
}

func (d day06) Part2() (any, error) {
	return d.sum(func(a, b uint32) uint32 { return a & b })
}
