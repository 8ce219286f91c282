package y2019

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/aoc/geom"
	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/strview"
)

func init() {
	puzzle.Register(2019, 3, func(in puzzle.Input) puzzle.Problem { return day03{in} })
}

type day03 struct{ puzzle.Input }

var wireDirs = map[byte]geom.Pt{
	'U': geom.North,
	'D': geom.South,
	'L': geom.West,
	'R': geom.East,
}

// traceWire returns the number of steps the wire takes to first reach each
// point it visits.
func traceWire(path string) (map[geom.Pt]int, error) {
	steps := make(map[geom.Pt]int)
	var p geom.Pt
	n := 0
	v := strview.New(path)
	for !v.Empty() {
		seg := v.ChopByDelim(',')
		seg.TrimLeftMut()
		if seg.Empty() {
			return nil, fmt.Errorf("bad wire path %q", path)
		}
		dir, ok := wireDirs[seg.At(0)]
		if !ok {
			return nil, fmt.Errorf("bad wire segment %q", seg)
		}
		dist := seg.Forward(1)
		if dist.Empty() {
			return nil, fmt.Errorf("bad wire segment %q", seg)
		}
		for i := dist.ToUint(); i > 0; i-- {
			p = p.Add(dir)
			n++
			if _, ok := steps[p]; !ok {
				steps[p] = n
			}
		}
	}
	return steps, nil
}

// crossings calls f for each point both wires pass through.
func (d day03) crossings(f func(p geom.Pt, steps0, steps1 int)) error {
	lines, err := d.Lines()
	if err != nil {
		return err
	}
	var paths []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			paths = append(paths, line)
		}
	}
	if len(paths) != 2 {
		return fmt.Errorf("got %d wires; want 2", len(paths))
	}
	w0, err := traceWire(paths[0])
	if err != nil {
		return err
	}
	w1, err := traceWire(paths[1])
	if err != nil {
		return err
	}
	for p, s0 := range w0 {
		if s1, ok := w1[p]; ok {
			f(p, s0, s1)
		}
	}
	return nil
}

func (d day03) Part1() (any, error) {
	best := -1
	err := d.crossings(func(p geom.Pt, _, _ int) {
		if dist := p.MDist(geom.Pt{}); best < 0 || dist < best {
			best = dist
		}
	})
	if err != nil {
		return nil, err
	}
	if best < 0 {
		return nil, errors.New("wires never cross")
	}
	return best, nil
}

func (d day03) Part2() (any, error) {
	best := -1
	err := d.crossings(func(_ geom.Pt, s0, s1 int) {
		if best < 0 || s0+s1 < best {
			best = s0 + s1
		}
	})
	if err != nil {
		return nil, err
	}
	if best < 0 {
		return nil, errors.New("wires never cross")
	}
	return best, nil
}
