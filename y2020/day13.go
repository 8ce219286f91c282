package y2020

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/aoc/i128"
	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/xmath"
)

func init() {
	puzzle.Register(2020, 13, func(in puzzle.Input) puzzle.Problem { return day13{in} })
}

type day13 struct{ puzzle.Input }

type schedule struct {
	earliest int64
	// buses maps the position in the list to the bus ID.
	// Positions marked x are absent.
	buses map[int]int64
	order []int
}

func parseSchedule(lines []string) (schedule, error) {
	var s schedule
	if len(lines) < 2 {
		return s, errors.New("schedule needs two lines")
	}
	var err error
	if s.earliest, err = strconv.ParseInt(strings.TrimSpace(lines[0]), 10, 64); err != nil {
		return s, fmt.Errorf("bad timestamp %q", lines[0])
	}
	s.buses = make(map[int]int64)
	for i, f := range strings.Split(strings.TrimSpace(lines[1]), ",") {
		if f == "x" {
			continue
		}
		id, err := strconv.ParseInt(f, 10, 64)
		if err != nil || id <= 0 {
			return s, fmt.Errorf("bad bus ID %q", f)
		}
		s.buses[i] = id
		s.order = append(s.order, i)
	}
	if len(s.buses) == 0 {
		return s, errors.New("no buses in service")
	}
	return s, nil
}

func (d day13) schedule() (schedule, error) {
	lines, err := d.Lines()
	if err != nil {
		return schedule{}, err
	}
	return parseSchedule(lines)
}

func (d day13) Part1() (any, error) {
	s, err := d.schedule()
	if err != nil {
		return nil, err
	}
	var bestID, bestWait int64 = 0, -1
	for _, i := range s.order {
		id := s.buses[i]
		wait := xmath.Mod(-s.earliest, id)
		if bestWait < 0 || wait < bestWait {
			bestID, bestWait = id, wait
		}
	}
	return bestID * bestWait, nil
}

// inverse returns x such that a*x ≡ 1 (mod m), for coprime a and m.
func inverse(a, m int64) int64 {
	oldR, r := xmath.Mod(a, m), m
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	return xmath.Mod(oldS, m)
}

// crt finds the smallest t >= 0 with t ≡ rems[i] (mod mods[i]) for all i.
// The moduli must be pairwise coprime and their product must fit in an
// int64.
func crt(rems, mods []int64) (int64, error) {
	n := i128.FromInt64(1)
	for i, m := range mods {
		for _, m1 := range mods[:i] {
			if g := xmath.GCD(m, m1); g != 1 {
				return 0, fmt.Errorf("bus IDs %d and %d share the factor %d", m, m1, g)
			}
		}
		n = n.Mul(i128.FromInt64(m))
		if !n.IsInt64() {
			return 0, errors.New("product of bus IDs overflows")
		}
	}
	N := n.Int64()
	var t int64
	for i, m := range mods {
		ni := N / m
		term := i128.MulMod(i128.MulMod(rems[i], ni, N), inverse(ni, m), N)
		t = i128.FromInt64(t).Add(i128.FromInt64(term)).Mod64(N)
	}
	return t, nil
}

// Part2 finds the earliest t at which the bus in position i departs at t+i,
// for every listed bus.
func (d day13) Part2() (any, error) {
	s, err := d.schedule()
	if err != nil {
		return nil, err
	}
	var rems, mods []int64
	for _, i := range s.order {
		id := s.buses[i]
		rems = append(rems, xmath.Mod(-int64(i), id))
		mods = append(mods, id)
	}
	return crt(rems, mods)
}
