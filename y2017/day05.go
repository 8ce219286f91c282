package y2017

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2017, 5, func(in puzzle.Input) puzzle.Problem { return day05{in} })
}

type day05 struct{ puzzle.Input }

func (d day05) offsets() ([]int64, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var offs []int64
	for _, line := range lines {
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad jump offset %q", line)
		}
		offs = append(offs, n)
	}
	return offs, nil
}

// escape follows the jumps until one leaves the list and returns the
// number of steps taken. After each jump, the offset just used becomes
// adjust(offset).
func escape(offs []int64, adjust func(int64) int64) int {
	var pc int64
	steps := 0
	for pc >= 0 && pc < int64(len(offs)) {
		off := offs[pc]
		offs[pc] = adjust(off)
		pc += off
		steps++
	}
	return steps
}

func (d day05) Part1() (any, error) {
	offs, err := d.offsets()
	if err != nil {
		return nil, err
	}
	return escape(offs, func(off int64) int64 { return off + 1 }), nil
}

// Part2 makes offsets of three or more decrease instead.
func (d day05) Part2() (any, error) {
	offs, err := d.offsets()
	if err != nil {
		return nil, err
	}
	return escape(offs, func(off int64) int64 {
		if off >= 3 {
			return off - 1
		}
		return off + 1
	}), nil
}
