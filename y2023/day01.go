package y2023

import (
	"fmt"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2023, 1, func(in puzzle.Input) puzzle.Problem { return day01{in} })
}

type day01 struct{ puzzle.Input }

var digitNames = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit at the start of s. Spelled-out names count
// when spelled is set.
func digitAt(s string, spelled bool) (int, bool) {
	if c := s[0]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if spelled {
		for i, name := range digitNames {
			if strings.HasPrefix(s, name) {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// calibration combines the first and last digits in line. Names may
// overlap, as in "eightwo".
func calibration(line string, spelled bool) (int, error) {
	first, last := -1, -1
	for i := range line {
		if d, ok := digitAt(line[i:], spelled); ok {
			if first < 0 {
				first = d
			}
			last = d
		}
	}
	if first < 0 {
		return 0, fmt.Errorf("no digits in %q", line)
	}
	return 10*first + last, nil
}

func (d day01) sum(spelled bool) (int, error) {
	lines, err := d.Lines()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		n, err := calibration(line, spelled)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (d day01) Part1() (any, error) { return d.sum(false) }
func (d day01) Part2() (any, error) { return d.sum(true) }
