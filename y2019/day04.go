package y2019

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2019, 4, func(in puzzle.Input) puzzle.Problem { return day04{in} })
}

type day04 struct{ puzzle.Input }

func (d day04) bounds() (lo, hi int, err error) {
	raw, err := d.Raw()
	if err != nil {
		return 0, 0, err
	}
	s := strings.TrimSpace(raw)
	los, his, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("bad password range %q", s)
	}
	lo, err1 := strconv.Atoi(los)
	hi, err2 := strconv.Atoi(his)
	if err1 != nil || err2 != nil || lo > hi {
		return 0, 0, fmt.Errorf("bad password range %q", s)
	}
	return lo, hi, nil
}

// passwordRuns reports whether the six digits of n never decrease, and
// returns the lengths of its runs of repeated digits.
func passwordRuns(n int) (ok bool, runs []int) {
	s := strconv.Itoa(n)
	if len(s) != 6 {
		return false, nil
	}
	run := 1
	for i := 1; i < len(s); i++ {
		switch {
		case s[i] < s[i-1]:
			return false, nil
		case s[i] == s[i-1]:
			run++
		default:
			runs = append(runs, run)
			run = 1
		}
	}
	return true, append(runs, run)
}

func (d day04) count(valid func(runs []int) bool) (int, error) {
	lo, hi, err := d.bounds()
	if err != nil {
		return 0, err
	}
	var count int
	for n := lo; n <= hi; n++ {
		if ok, runs := passwordRuns(n); ok && valid(runs) {
			count++
		}
	}
	return count, nil
}

func (d day04) Part1() (any, error) {
	return d.count(func(runs []int) bool {
		for _, r := range runs {
			if r >= 2 {
				return true
			}
		}
		return false
	})
}

func (d day04) Part2() (any, error) {
	return d.count(func(runs []int) bool {
		for _, r := range runs {
			if r == 2 {
				return true
			}
		}
		return false
	})
}
