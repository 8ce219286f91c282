package y2020

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2020, 15, func(in puzzle.Input) puzzle.Problem { return day15{in} })
}

type day15 struct{ puzzle.Input }

func (d day15) starting() ([]int, error) {
	raw, err := d.Raw()
	if err != nil {
		return nil, err
	}
	var nums []int
	for _, f := range strings.Split(strings.TrimSpace(raw), ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad starting number %q", f)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// spoken plays the memory game and returns the nth number spoken.
func spoken(start []int, nth int) (int, error) {
	if len(start) == 0 {
		return 0, errors.New("no starting numbers")
	}
	if nth <= len(start) {
		return start[nth-1], nil
	}
	// lastSeen[n] is the 1-based turn on which n was last spoken,
	// not counting the most recent turn, or 0 if never.
	// Every spoken number after the start is smaller than nth.
	size := nth
	for _, n := range start {
		size = max(size, n+1)
	}
	lastSeen := make([]int32, size)
	for i, n := range start[:len(start)-1] {
		lastSeen[n] = int32(i + 1)
	}
	cur := start[len(start)-1]
	for turn := len(start); turn < nth; turn++ {
		next := 0
		if prev := lastSeen[cur]; prev != 0 {
			next = turn - int(prev)
		}
		lastSeen[cur] = int32(turn)
		cur = next
	}
	return cur, nil
}

func (d day15) play(nth int) (any, error) {
	start, err := d.starting()
	if err != nil {
		return nil, err
	}
	return spoken(start, nth)
}

func (d day15) Part1() (any, error) { return d.play(2020) }
func (d day15) Part2() (any, error) { return d.play(30_000_000) }
