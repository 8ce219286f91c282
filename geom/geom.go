// Package geom has a small point type for grid puzzles.
//
// Coordinates follow the screen convention: X grows to the east and Y grows
// to the south, so North decreases Y.
package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/cespare/aoc/xmath"
)

type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt = Pt2[int]

func (p Pt2[T]) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X + q.X, p.Y + q.Y} }
func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X - q.X, p.Y - q.Y} }
func (p Pt2[T]) Scale(k T) Pt2[T]    { return Pt2[T]{p.X * k, p.Y * k} }

// MDist returns the manhattan distance between p and q.
func (p Pt2[T]) MDist(q Pt2[T]) T {
	return xmath.AbsDiff(p.X, q.X) + xmath.AbsDiff(p.Y, q.Y)
}

func (p Pt2[T]) North() Pt2[T] { return Pt2[T]{p.X, p.Y - 1} }
func (p Pt2[T]) South() Pt2[T] { return Pt2[T]{p.X, p.Y + 1} }
func (p Pt2[T]) West() Pt2[T]  { return Pt2[T]{p.X - 1, p.Y} }
func (p Pt2[T]) East() Pt2[T]  { return Pt2[T]{p.X + 1, p.Y} }

// ForNeighbors calls f with each of the eight points around p until f
// returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// Turn rotates p, taken as a vector, by quarter turns about the origin.
// Positive turns are clockwise (north becomes east), negative turns are
// counterclockwise.
func (p Pt2[T]) Turn(quarters int) Pt2[T] {
	switch xmath.Mod(quarters, 4) {
	case 1:
		return Pt2[T]{-p.Y, p.X}
	case 2:
		return Pt2[T]{-p.X, -p.Y}
	case 3:
		return Pt2[T]{p.Y, -p.X}
	}
	return p
}

// In reports whether p lies in the rectangle [0, w) x [0, h).
func (p Pt2[T]) In(w, h T) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h
}

var (
	North = Pt{0, -1}
	South = Pt{0, 1}
	East  = Pt{1, 0}
	West  = Pt{-1, 0}
)

// Dirs4 lists the unit vectors clockwise from north.
var Dirs4 = []Pt{North, East, South, West}
