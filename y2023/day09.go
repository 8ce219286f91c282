package y2023

import (
	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/strview"
)

func init() {
	puzzle.Register(2023, 9, func(in puzzle.Input) puzzle.Problem { return day09{in} })
}

type day09 struct{ puzzle.Input }

// extrapolate returns the values just before and just after seq, found
// by repeatedly taking differences until they are all zero.
func extrapolate(seq []int64) (prev, next int64) {
	if len(seq) == 0 {
		return 0, 0
	}
	var firsts, lasts []int64
	for {
		firsts = append(firsts, seq[0])
		lasts = append(lasts, seq[len(seq)-1])
		allZero := true
		diff := make([]int64, len(seq)-1)
		for i := range diff {
			diff[i] = seq[i+1] - seq[i]
			if diff[i] != 0 {
				allZero = false
			}
		}
		if allZero {
			break
		}
		seq = diff
	}
	for i := len(firsts) - 1; i >= 0; i-- {
		prev = firsts[i] - prev
		next += lasts[i]
	}
	return prev, next
}

func (d day09) sums() (prevSum, nextSum int64, err error) {
	lines, err := d.Lines()
	if err != nil {
		return 0, 0, err
	}
	for _, line := range lines {
		seq, err := parseInts(strview.New(line))
		if err != nil {
			return 0, 0, err
		}
		if len(seq) == 0 {
			continue
		}
		prev, next := extrapolate(seq)
		prevSum += prev
		nextSum += next
	}
	return prevSum, nextSum, nil
}

func (d day09) Part1() (any, error) {
	_, next, err := d.sums()
	return next, err
}

func (d day09) Part2() (any, error) {
	prev, _, err := d.sums()
	return prev, err
}
