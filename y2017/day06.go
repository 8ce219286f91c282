package y2017

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2017, 6, func(in puzzle.Input) puzzle.Problem { return day06{in} })
}

type day06 struct{ puzzle.Input }

type memoryBanks []int64

func (m memoryBanks) String() string {
	var b strings.Builder
	for _, numBlocks := range m {
		fmt.Fprintf(&b, "%d,", numBlocks)
	}
	return b.String()
}

// redistribute empties the fullest bank (the first, on ties) and deals its
// blocks out one at a time to the following banks.
func (m memoryBanks) redistribute() {
	j := 0
	for i, numBlocks := range m {
		if numBlocks > m[j] {
			j = i
		}
	}
	blocks := m[j]
	m[j] = 0
	for ; blocks > 0; blocks-- {
		j = (j + 1) % len(m)
		m[j]++
	}
}

// reallocate runs redistribution cycles until a configuration repeats. It
// returns the number of cycles and the length of the loop.
func reallocate(m memoryBanks) (cycles, loop int) {
	seen := map[string]int{m.String(): 0}
	for i := 1; ; i++ {
		m.redistribute()
		s := m.String()
		if first, ok := seen[s]; ok {
			return i, i - first
		}
		seen[s] = i
	}
}

func (d day06) banks() (memoryBanks, error) {
	s, err := d.Raw()
	if err != nil {
		return nil, err
	}
	var m memoryBanks
	for _, f := range strings.Fields(s) {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad block count %q", f)
		}
		m = append(m, n)
	}
	if len(m) == 0 {
		return nil, errors.New("no memory banks")
	}
	return m, nil
}

func (d day06) Part1() (any, error) {
	m, err := d.banks()
	if err != nil {
		return nil, err
	}
	cycles, _ := reallocate(m)
	return cycles, nil
}

func (d day06) Part2() (any, error) {
	m, err := d.banks()
	if err != nil {
		return nil, err
	}
	_, loop := reallocate(m)
	return loop, nil
}
