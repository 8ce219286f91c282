// Package y2020 has solutions to the 2020 puzzles.
package y2020

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2020, 1, func(in puzzle.Input) puzzle.Problem { return day01{in} })
}

type day01 struct{ puzzle.Input }

const expenseTarget = 2020

func (d day01) expenses() ([]int, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var nums []int
	for _, line := range lines {
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("bad expense %q", line)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// pairSum finds two distinct entries of nums, other than skip, that sum to
// target.
func pairSum(nums []int, skip, target int) (a, b int, ok bool) {
	seen := make(map[int]bool)
	for i, n := range nums {
		if i == skip {
			continue
		}
		if seen[target-n] {
			return target - n, n, true
		}
		seen[n] = true
	}
	return 0, 0, false
}

func (d day01) Part1() (any, error) {
	nums, err := d.expenses()
	if err != nil {
		return nil, err
	}
	a, b, ok := pairSum(nums, -1, expenseTarget)
	if !ok {
		return nil, errors.New("no two entries sum to 2020")
	}
	return a * b, nil
}

func (d day01) Part2() (any, error) {
	nums, err := d.expenses()
	if err != nil {
		return nil, err
	}
	for i, n := range nums {
		if a, b, ok := pairSum(nums, i, expenseTarget-n); ok {
			return a * b * n, nil
		}
	}
	return nil, errors.New("no three entries sum to 2020")
}
