package y2019

import (
	"errors"
	"fmt"

	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/strview"
)

func init() {
	puzzle.Register(2019, 6, func(in puzzle.Input) puzzle.Problem { return day06{in} })
}

type day06 struct{ puzzle.Input }

// orbitMap maps each object to the object it orbits.
type orbitMap map[string]string

func (d day06) orbits() (orbitMap, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	orbits := make(orbitMap)
	for _, line := range lines {
		if line == "" {
			continue
		}
		v := strview.New(line)
		center := v.ChopByDelim(')')
		if center.Empty() || v.Empty() {
			return nil, fmt.Errorf("bad orbit %q", line)
		}
		if prev, ok := orbits[v.String()]; ok {
			return nil, fmt.Errorf("%s orbits both %s and %s", v, prev, center)
		}
		orbits[v.String()] = center.String()
	}
	return orbits, nil
}

// path returns the objects from obj's center out to the root, in order.
func (m orbitMap) path(obj string) []string {
	var p []string
	for {
		c, ok := m[obj]
		if !ok {
			return p
		}
		p = append(p, c)
		obj = c
	}
}

func (d day06) Part1() (any, error) {
	orbits, err := d.orbits()
	if err != nil {
		return nil, err
	}
	depth := make(map[string]int)
	var depthOf func(string) int
	depthOf = func(obj string) int {
		c, ok := orbits[obj]
		if !ok {
			return 0
		}
		if n, ok := depth[obj]; ok {
			return n
		}
		n := depthOf(c) + 1
		depth[obj] = n
		return n
	}
	total := 0
	for obj := range orbits {
		total += depthOf(obj)
	}
	return total, nil
}

func (d day06) Part2() (any, error) {
	orbits, err := d.orbits()
	if err != nil {
		return nil, err
	}
	for _, obj := range []string{"YOU", "SAN"} {
		if _, ok := orbits[obj]; !ok {
			return nil, fmt.Errorf("%s isn't orbiting anything", obj)
		}
	}
	you := orbits.path("YOU")
	san := orbits.path("SAN")
	dist := make(map[string]int)
	for i, obj := range you {
		dist[obj] = i
	}
	for i, obj := range san {
		if j, ok := dist[obj]; ok {
			return i + j, nil
		}
	}
	return nil, errors.New("YOU and SAN are not in the same system")
}
