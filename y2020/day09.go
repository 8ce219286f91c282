package y2020

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2020, 9, func(in puzzle.Input) puzzle.Problem {
		return day09{Input: in, preamble: 25}
	})
}

type day09 struct {
	puzzle.Input
	preamble int
}

func (d day09) numbers() ([]int64, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var nums []int64
	for _, line := range lines {
		if line == "" {
			continue
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad XMAS number %q", line)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

func sumOfTwo(window []int64, target int64) bool {
	for i, a := range window {
		for _, b := range window[i+1:] {
			if a != b && a+b == target {
				return true
			}
		}
	}
	return false
}

// firstInvalid returns the first number after the preamble that isn't the
// sum of two different numbers among the preamble-many before it.
func (d day09) firstInvalid(nums []int64) (int64, error) {
	for i := d.preamble; i < len(nums); i++ {
		if !sumOfTwo(nums[i-d.preamble:i], nums[i]) {
			return nums[i], nil
		}
	}
	return 0, errors.New("every number is valid")
}

func (d day09) Part1() (any, error) {
	nums, err := d.numbers()
	if err != nil {
		return nil, err
	}
	return d.firstInvalid(nums)
}

func (d day09) Part2() (any, error) {
	nums, err := d.numbers()
	if err != nil {
		return nil, err
	}
	target, err := d.firstInvalid(nums)
	if err != nil {
		return nil, err
	}
	// Slide a window over nums, growing it on the right while the sum is
	// too small and shrinking it on the left while it's too large.
	var sum int64
	lo := 0
	for hi := 0; hi < len(nums); hi++ {
		sum += nums[hi]
		for sum > target && lo < hi {
			sum -= nums[lo]
			lo++
		}
		if sum == target && hi > lo {
			run := nums[lo : hi+1]
			return slices.Min(run) + slices.Max(run), nil
		}
	}
	return nil, fmt.Errorf("no contiguous run sums to %d", target)
}
