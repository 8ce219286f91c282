package y2023

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/strview"
)

func init() {
	puzzle.Register(2023, 5, func(in puzzle.Input) puzzle.Problem { return day05{in} })
}

type day05 struct{ puzzle.Input }

type almanacRange struct {
	dst, src, n int64
}

type almanac struct {
	seeds []int64
	// maps are applied in order; each is a list of non-overlapping
	// source ranges.
	maps [][]almanacRange
}

// span is the half-open interval [lo, hi).
type span struct {
	lo, hi int64
}

func parseAlmanac(text string) (*almanac, error) {
	v := strview.New(strings.TrimSpace(text))
	seeds := v.ChopBySV("\n\n")
	if !seeds.StartsWith("seeds:") {
		return nil, fmt.Errorf("bad seeds line %q", seeds)
	}
	seeds.ForwardMut(len("seeds:"))
	a := new(almanac)
	var err error
	if a.seeds, err = parseInts(seeds); err != nil {
		return nil, fmt.Errorf("bad seeds: %s", err)
	}
	for !v.Empty() {
		block := v.ChopBySV("\n\n")
		desc := block.ChopByDelim('\n')
		if !desc.EndsWith("map:") {
			return nil, fmt.Errorf("bad map header %q", desc)
		}
		var m []almanacRange
		for !block.Empty() {
			line := block.ChopByDelim('\n')
			ns, err := parseInts(line)
			if err != nil || len(ns) != 3 || ns[2] < 0 {
				return nil, fmt.Errorf("bad range %q in %s", line, desc)
			}
			m = append(m, almanacRange{dst: ns[0], src: ns[1], n: ns[2]})
		}
		slices.SortFunc(m, func(r0, r1 almanacRange) int { return cmp.Compare(r0.src, r1.src) })
		for i := 1; i < len(m); i++ {
			if m[i].src < m[i-1].src+m[i-1].n {
				return nil, fmt.Errorf("overlapping ranges in %s", desc)
			}
		}
		a.maps = append(a.maps, m)
	}
	return a, nil
}

// translate maps each span through m, splitting spans that straddle
// range boundaries. Parts not covered by any range map to themselves.
func translate(m []almanacRange, spans []span) []span {
	var out []span
	for _, s := range spans {
		for _, r := range m {
			if s.lo >= s.hi {
				break
			}
			end := r.src + r.n
			if end <= s.lo {
				continue
			}
			if r.src >= s.hi {
				break
			}
			if s.lo < r.src {
				out = append(out, span{s.lo, r.src})
				s.lo = r.src
			}
			hi := min(s.hi, end)
			out = append(out, span{s.lo - r.src + r.dst, hi - r.src + r.dst})
			s.lo = hi
		}
		if s.lo < s.hi {
			out = append(out, s)
		}
	}
	return out
}

func (a *almanac) lowestLocation(spans []span) (int64, error) {
	for _, m := range a.maps {
		spans = translate(m, spans)
	}
	if len(spans) == 0 {
		return 0, errors.New("no seeds")
	}
	lowest := spans[0].lo
	for _, s := range spans[1:] {
		lowest = min(lowest, s.lo)
	}
	return lowest, nil
}

func (d day05) almanac() (*almanac, error) {
	text, err := d.Raw()
	if err != nil {
		return nil, err
	}
	return parseAlmanac(text)
}

func (d day05) Part1() (any, error) {
	a, err := d.almanac()
	if err != nil {
		return nil, err
	}
	var spans []span
	for _, s := range a.seeds {
		spans = append(spans, span{s, s + 1})
	}
	return a.lowestLocation(spans)
}

// Part2 reads the seeds as (start, length) pairs.
func (d day05) Part2() (any, error) {
	a, err := d.almanac()
	if err != nil {
		return nil, err
	}
	if len(a.seeds)%2 != 0 {
		return nil, errors.New("odd number of seed values")
	}
	var spans []span
	for i := 0; i < len(a.seeds); i += 2 {
		spans = append(spans, span{a.seeds[i], a.seeds[i] + a.seeds[i+1]})
	}
	return a.lowestLocation(spans)
}
