package y2019

import (
	"errors"
	"fmt"
	"math"

	"github.com/cespare/aoc/geom"
	"github.com/cespare/aoc/paramheap"
	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/xmath"
)

func init() {
	puzzle.Register(2019, 10, func(in puzzle.Input) puzzle.Problem {
		return day10{Input: in, nth: 200}
	})
}

type day10 struct {
	puzzle.Input
	nth int // which vaporized asteroid part 2 asks for
}

func (d day10) asteroids() ([]geom.Pt, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var asteroids []geom.Pt
	for y, line := range lines {
		for x, c := range line {
			switch c {
			case '#':
				asteroids = append(asteroids, geom.Pt{X: x, Y: y})
			case '.':
			default:
				return nil, fmt.Errorf("bad map character %q at %d,%d", c, x, y)
			}
		}
	}
	if len(asteroids) < 2 {
		return nil, errors.New("map has fewer than two asteroids")
	}
	return asteroids, nil
}

// lineOfSight reduces the vector from p to q to its smallest integer step.
// Asteroids that share a step from p are hidden behind one another.
func lineOfSight(p, q geom.Pt) geom.Pt {
	v := q.Sub(p)
	g := xmath.GCD(v.X, v.Y)
	return geom.Pt{X: v.X / g, Y: v.Y / g}
}

// bestStation finds the asteroid that can see the most other asteroids.
func bestStation(asteroids []geom.Pt) (station geom.Pt, visible int) {
	for _, p := range asteroids {
		dirs := make(map[geom.Pt]struct{})
		for _, q := range asteroids {
			if q != p {
				dirs[lineOfSight(p, q)] = struct{}{}
			}
		}
		if len(dirs) > visible {
			station, visible = p, len(dirs)
		}
	}
	return station, visible
}

func (d day10) Part1() (any, error) {
	asteroids, err := d.asteroids()
	if err != nil {
		return nil, err
	}
	_, visible := bestStation(asteroids)
	return visible, nil
}

type target struct {
	p     geom.Pt
	sweep int     // how many rotations pass before the laser reaches p
	angle float64 // clockwise from up, in [0, 2π)
}

func (t target) less(t1 target) bool {
	if t.sweep != t1.sweep {
		return t.sweep < t1.sweep
	}
	return t.angle < t1.angle
}

func (d day10) Part2() (any, error) {
	asteroids, err := d.asteroids()
	if err != nil {
		return nil, err
	}
	station, _ := bestStation(asteroids)
	if d.nth > len(asteroids)-1 {
		return nil, fmt.Errorf("only %d asteroids to vaporize", len(asteroids)-1)
	}

	// Within each line of sight, nearer asteroids shield farther ones
	// for one more turn of the laser.
	byLine := make(map[geom.Pt][]geom.Pt)
	for _, q := range asteroids {
		if q != station {
			dir := lineOfSight(station, q)
			byLine[dir] = append(byLine[dir], q)
		}
	}
	h := paramheap.New(target.less)
	for dir, qs := range byLine {
		angle := math.Atan2(float64(dir.X), float64(-dir.Y))
		if angle < 0 {
			angle += 2 * math.Pi
		}
		for _, q := range qs {
			sweep := 0
			for _, other := range qs {
				if other.MDist(station) < q.MDist(station) {
					sweep++
				}
			}
			h.Push(target{p: q, sweep: sweep, angle: angle})
		}
	}
	var t target
	for i := 0; i < d.nth; i++ {
		t = h.Pop()
	}
	return t.p.X*100 + t.p.Y, nil
}
