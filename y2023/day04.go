package y2023

import (
	"fmt"

	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/strview"
)

func init() {
	puzzle.Register(2023, 4, func(in puzzle.Input) puzzle.Problem { return day04{in} })
}

type day04 struct{ puzzle.Input }

// cardMatches parses a scratchcard like
//
//	Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
//
// and returns how many of the numbers you have are winning numbers.
func cardMatches(line string) (int, error) {
	v := strview.New(line)
	if !v.StartsWith("Card") {
		return 0, fmt.Errorf("bad scratchcard %q", line)
	}
	v.ChopByDelim(':')
	winning := v.ChopByDelim('|')
	if v.Empty() {
		return 0, fmt.Errorf("bad scratchcard %q", line)
	}
	wins, err := parseInts(winning)
	if err != nil {
		return 0, fmt.Errorf("bad scratchcard %q: %s", line, err)
	}
	have, err := parseInts(v)
	if err != nil {
		return 0, fmt.Errorf("bad scratchcard %q: %s", line, err)
	}
	win := make(map[int64]bool)
	for _, w := range wins {
		win[w] = true
	}
	n := 0
	for _, h := range have {
		if win[h] {
			n++
		}
	}
	return n, nil
}

func (d day04) matches() ([]int, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var ms []int
	for _, line := range lines {
		if line == "" {
			continue
		}
		n, err := cardMatches(line)
		if err != nil {
			return nil, err
		}
		ms = append(ms, n)
	}
	return ms, nil
}

func (d day04) Part1() (any, error) {
	ms, err := d.matches()
	if err != nil {
		return nil, err
	}
	points := 0
	for _, n := range ms {
		if n > 0 {
			points += 1 << (n - 1)
		}
	}
	return points, nil
}

// Part2 counts cards after each card wins copies of the cards below it.
func (d day04) Part2() (any, error) {
	ms, err := d.matches()
	if err != nil {
		return nil, err
	}
	copies := make([]int, len(ms))
	total := 0
	for i, n := range ms {
		copies[i]++
		total += copies[i]
		for j := i + 1; j <= i+n && j < len(ms); j++ {
			copies[j] += copies[i]
		}
	}
	return total, nil
}
