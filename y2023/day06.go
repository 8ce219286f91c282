package y2023

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/strview"
)

func init() {
	puzzle.Register(2023, 6, func(in puzzle.Input) puzzle.Problem { return day06{in} })
}

type day06 struct{ puzzle.Input }

type boatRace struct {
	time, record int64
}

// winCount returns the number of ways to hold the button for h ms such
// that h*(time-h) beats the record. The float estimate of the smallest
// winning h is nudged into place with exact integer checks.
func (r boatRace) winCount() int64 {
	t, d := r.time, r.record
	beats := func(h int64) bool { return h*(t-h) > d }
	var lo int64
	if disc := t*t - 4*d; disc > 0 {
		lo = int64((float64(t) - math.Sqrt(float64(disc))) / 2)
	}
	lo = max(0, min(lo, t/2))
	for lo > 0 && beats(lo-1) {
		lo--
	}
	for lo <= t/2 && !beats(lo) {
		lo++
	}
	if lo > t/2 {
		return 0
	}
	return t - 2*lo + 1
}

// raceLine returns the part of a "Time:" or "Distance:" line after the
// label.
func raceLine(line, label string) (strview.View, error) {
	v := strview.New(line)
	if !v.StartsWith(label + ":") {
		return v, fmt.Errorf("bad race line %q", line)
	}
	v.ForwardMut(len(label) + 1)
	return v, nil
}

func (d day06) lines() (times, dists strview.View, err error) {
	lines, err := d.Lines()
	if err != nil {
		return times, dists, err
	}
	if len(lines) < 2 {
		return times, dists, errors.New("race sheet needs two lines")
	}
	if times, err = raceLine(lines[0], "Time"); err != nil {
		return times, dists, err
	}
	dists, err = raceLine(lines[1], "Distance")
	return times, dists, err
}

func (d day06) Part1() (any, error) {
	tv, dv, err := d.lines()
	if err != nil {
		return nil, err
	}
	times, err := parseInts(tv)
	if err != nil {
		return nil, err
	}
	dists, err := parseInts(dv)
	if err != nil {
		return nil, err
	}
	if len(times) != len(dists) {
		return nil, fmt.Errorf("%d times but %d distances", len(times), len(dists))
	}
	product := int64(1)
	for i := range times {
		product *= boatRace{times[i], dists[i]}.winCount()
	}
	return product, nil
}

// unkern joins all the digits in v into one number.
func unkern(v strview.View) (int64, error) {
	s := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, v.String())
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad kerned number %q", v)
	}
	return n, nil
}

// Part2 reads each line as a single number with bad kerning.
func (d day06) Part2() (any, error) {
	tv, dv, err := d.lines()
	if err != nil {
		return nil, err
	}
	var r boatRace
	if r.time, err = unkern(tv); err != nil {
		return nil, err
	}
	if r.record, err = unkern(dv); err != nil {
		return nil, err
	}
	return r.winCount(), nil
}
