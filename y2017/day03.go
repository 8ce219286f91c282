package y2017

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/aoc/geom"
	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2017, 3, func(in puzzle.Input) puzzle.Problem { return day03{in} })
}

type day03 struct{ puzzle.Input }

// A spiral walks the squares of the spiral memory grid in order, starting
// from square 1 at the origin.
type spiral struct {
	p    geom.Pt
	dir  int // index into spiralDirs
	leg  int // length of the current side
	left int // steps left on the current side
	legs int // sides completed
}

var spiralDirs = []geom.Pt{geom.East, geom.North, geom.West, geom.South}

func newSpiral() *spiral { return &spiral{leg: 1, left: 1} }

// next moves to the following square and returns its position.
func (s *spiral) next() geom.Pt {
	s.p = s.p.Add(spiralDirs[s.dir])
	s.left--
	if s.left == 0 {
		s.dir = (s.dir + 1) % len(spiralDirs)
		s.legs++
		if s.legs%2 == 0 {
			s.leg++
		}
		s.left = s.leg
	}
	return s.p
}

// spiralPos returns the position of square n.
func spiralPos(n int) geom.Pt {
	s := newSpiral()
	for i := 1; i < n; i++ {
		s.next()
	}
	return s.p
}

// stressTest returns the first value written that is larger than n, where
// each square gets the sum of its already-filled neighbors.
func stressTest(n int) int {
	if n < 1 {
		return 1
	}
	vals := map[geom.Pt]int{{}: 1}
	s := newSpiral()
	for {
		p := s.next()
		var sum int
		p.ForNeighbors(func(q geom.Pt) bool {
			sum += vals[q]
			return true
		})
		if sum > n {
			return sum
		}
		vals[p] = sum
	}
}

func (d day03) square() (int, error) {
	s, err := d.Raw()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("bad square %q", strings.TrimSpace(s))
	}
	return n, nil
}

func (d day03) Part1() (any, error) {
	n, err := d.square()
	if err != nil {
		return nil, err
	}
	return spiralPos(n).MDist(geom.Pt{}), nil
}

func (d day03) Part2() (any, error) {
	n, err := d.square()
	if err != nil {
		return nil, err
	}
	return stressTest(n), nil
}
