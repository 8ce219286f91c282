package y2020

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cespare/aoc/geom"
	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2020, 11, func(in puzzle.Input) puzzle.Problem { return day11{in} })
}

type day11 struct{ puzzle.Input }

const (
	seatFloor = '.'
	seatEmpty = 'L'
	seatTaken = '#'
)

type seating struct {
	w, h  int
	cells [][]byte
}

func (d day11) seating() (*seating, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	s := new(seating)
	for _, line := range lines {
		if line == "" {
			continue
		}
		if s.h > 0 && len(line) != s.w {
			return nil, fmt.Errorf("row %d has width %d; want %d", s.h, len(line), s.w)
		}
		if i := bytes.IndexFunc([]byte(line), func(r rune) bool {
			return r != seatFloor && r != seatEmpty && r != seatTaken
		}); i >= 0 {
			return nil, fmt.Errorf("bad seat %q in row %d", line[i], s.h)
		}
		s.w = len(line)
		s.h++
		s.cells = append(s.cells, []byte(line))
	}
	if s.h == 0 {
		return nil, errors.New("empty seating layout")
	}
	return s, nil
}

func (s *seating) at(p geom.Pt) byte {
	if !p.In(s.w, s.h) {
		return seatFloor
	}
	return s.cells[p.Y][p.X]
}

// occupiedNear counts occupied seats adjacent to p.
func (s *seating) occupiedNear(p geom.Pt) int {
	n := 0
	p.ForNeighbors(func(q geom.Pt) bool {
		if s.at(q) == seatTaken {
			n++
		}
		return true
	})
	return n
}

// occupiedVisible counts the directions in which the first seat seen from p
// is occupied.
func (s *seating) occupiedVisible(p geom.Pt) int {
	n := 0
	geom.Pt{}.ForNeighbors(func(dir geom.Pt) bool {
		for q := p.Add(dir); q.In(s.w, s.h); q = q.Add(dir) {
			if c := s.at(q); c != seatFloor {
				if c == seatTaken {
					n++
				}
				break
			}
		}
		return true
	})
	return n
}

// settle applies the seating rules until nobody moves and returns the
// number of occupied seats.
func (s *seating) settle(count func(geom.Pt) int, tolerance int) int {
	next := make([][]byte, s.h)
	for y := range next {
		next[y] = make([]byte, s.w)
	}
	for {
		changed := false
		for y, row := range s.cells {
			for x, c := range row {
				p := geom.Pt{X: x, Y: y}
				switch {
				case c == seatEmpty && count(p) == 0:
					c = seatTaken
					changed = true
				case c == seatTaken && count(p) >= tolerance:
					c = seatEmpty
					changed = true
				}
				next[y][x] = c
			}
		}
		s.cells, next = next, s.cells
		if !changed {
			break
		}
	}
	n := 0
	for _, row := range s.cells {
		n += bytes.Count(row, []byte{seatTaken})
	}
	return n
}

func (d day11) Part1() (any, error) {
	s, err := d.seating()
	if err != nil {
		return nil, err
	}
	return s.settle(s.occupiedNear, 4), nil
}

func (d day11) Part2() (any, error) {
	s, err := d.seating()
	if err != nil {
		return nil, err
	}
	return s.settle(s.occupiedVisible, 5), nil
}
