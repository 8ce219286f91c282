package y2020

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2020, 10, func(in puzzle.Input) puzzle.Problem { return day10{in} })
}

type day10 struct{ puzzle.Input }

// chain returns the joltages of the outlet, every adapter in order, and
// the device.
func (d day10) chain() ([]int, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	js := []int{0}
	for _, line := range lines {
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("bad adapter %q", line)
		}
		js = append(js, n)
	}
	slices.Sort(js)
	return append(js, js[len(js)-1]+3), nil
}

func (d day10) Part1() (any, error) {
	js, err := d.chain()
	if err != nil {
		return nil, err
	}
	var diffs [4]int
	for i := 1; i < len(js); i++ {
		diff := js[i] - js[i-1]
		if diff < 1 || diff > 3 {
			return nil, fmt.Errorf("can't connect %d jolts to %d jolts", js[i-1], js[i])
		}
		diffs[diff]++
	}
	return diffs[1] * diffs[3], nil
}

// Part2 counts the paths from the outlet to the device. Each adapter can be
// reached from any of the (at most three) lower adapters within 3 jolts.
func (d day10) Part2() (any, error) {
	js, err := d.chain()
	if err != nil {
		return nil, err
	}
	ways := make([]int64, len(js))
	ways[0] = 1
	for i := 1; i < len(js); i++ {
		for j := i - 1; j >= 0 && js[i]-js[j] <= 3; j-- {
			ways[i] += ways[j]
		}
	}
	return ways[len(js)-1], nil
}
