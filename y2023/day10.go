package y2023

import (
	"errors"
	"fmt"

	"github.com/cespare/aoc/geom"
	"github.com/cespare/aoc/paramheap"
	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/xmath"
)

func init() {
	puzzle.Register(2023, 10, func(in puzzle.Input) puzzle.Problem { return day10{in} })
}

type day10 struct{ puzzle.Input }

// pipeEnds gives the two directions each pipe connects.
var pipeEnds = map[byte][2]geom.Pt{
	'|': {geom.North, geom.South},
	'-': {geom.East, geom.West},
	'L': {geom.North, geom.East},
	'J': {geom.North, geom.West},
	'7': {geom.South, geom.West},
	'F': {geom.South, geom.East},
}

type pipeMaze struct {
	rows  []string
	start geom.Pt
	// startEnds are the directions S connects, decided by which
	// pair of neighbors closes a loop through it.
	startEnds [2]geom.Pt
}

func (m *pipeMaze) at(p geom.Pt) byte {
	if p.Y < 0 || p.Y >= len(m.rows) || p.X < 0 || p.X >= len(m.rows[p.Y]) {
		return '.'
	}
	return m.rows[p.Y][p.X]
}

func (m *pipeMaze) ends(p geom.Pt) ([2]geom.Pt, bool) {
	if p == m.start {
		return m.startEnds, true
	}
	e, ok := pipeEnds[m.at(p)]
	return e, ok
}

func connects(ends [2]geom.Pt, dir geom.Pt) bool {
	return ends[0] == dir || ends[1] == dir
}

func parsePipeMaze(rows []string) (*pipeMaze, error) {
	m := &pipeMaze{rows: rows}
	found := false
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] != 'S' {
				continue
			}
			if found {
				return nil, errors.New("more than one S in maze")
			}
			found = true
			m.start = geom.Pt{X: x, Y: y}
		}
	}
	if !found {
		return nil, errors.New("no S in maze")
	}
	var cands []geom.Pt
	for _, dir := range geom.Dirs4 {
		e, ok := pipeEnds[m.at(m.start.Add(dir))]
		if ok && connects(e, dir.Scale(-1)) {
			cands = append(cands, dir)
		}
	}
	if len(cands) < 2 {
		return nil, fmt.Errorf("S at %s connects to %d pipes; want 2", m.start, len(cands))
	}
	// Neighbors may point at S without being on its loop. S's ends are
	// the first pair that closes a loop.
	for i, a := range cands {
		for _, b := range cands[i+1:] {
			m.startEnds = [2]geom.Pt{a, b}
			if _, err := m.loop(); err == nil {
				return m, nil
			}
		}
	}
	return nil, fmt.Errorf("no loop runs through S at %s", m.start)
}

// next returns the tiles p's pipe leads to, if they lead back to p.
func (m *pipeMaze) next(p geom.Pt, f func(geom.Pt)) {
	ends, ok := m.ends(p)
	if !ok {
		return
	}
	for _, dir := range ends {
		q := p.Add(dir)
		if e, ok := m.ends(q); ok && connects(e, dir.Scale(-1)) {
			f(q)
		}
	}
}

type mazeStep struct {
	p    geom.Pt
	dist int
}

// distances finds the shortest distance along the pipes from S to every
// tile of its loop.
func (m *pipeMaze) distances() map[geom.Pt]int {
	dist := map[geom.Pt]int{m.start: 0}
	q := paramheap.New(func(a, b mazeStep) bool { return a.dist < b.dist })
	q.Push(mazeStep{m.start, 0})
	for q.Len() > 0 {
		s := q.Pop()
		if s.dist > dist[s.p] {
			continue
		}
		m.next(s.p, func(n geom.Pt) {
			if d, ok := dist[n]; !ok || s.dist+1 < d {
				dist[n] = s.dist + 1
				q.Push(mazeStep{n, s.dist + 1})
			}
		})
	}
	return dist
}

// loop returns the tiles of the loop in order, starting at S.
func (m *pipeMaze) loop() ([]geom.Pt, error) {
	tiles := 0
	for _, row := range m.rows {
		tiles += len(row)
	}
	path := []geom.Pt{m.start}
	prev, cur := m.start, m.start.Add(m.startEnds[0])
	for cur != m.start {
		path = append(path, cur)
		ends, ok := m.ends(cur)
		if !ok || !connects(ends, prev.Sub(cur)) {
			return nil, fmt.Errorf("loop is broken at %s", cur)
		}
		next := cur.Add(ends[0])
		if next == prev {
			next = cur.Add(ends[1])
		}
		prev, cur = cur, next
		if len(path) > tiles {
			return nil, errors.New("loop never returns to S")
		}
	}
	if prev != m.start.Add(m.startEnds[1]) {
		return nil, fmt.Errorf("loop returns to S from %s", prev)
	}
	return path, nil
}

func (d day10) maze() (*pipeMaze, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	return parsePipeMaze(lines)
}

func (d day10) Part1() (any, error) {
	m, err := d.maze()
	if err != nil {
		return nil, err
	}
	farthest := 0
	for _, n := range m.distances() {
		farthest = max(farthest, n)
	}
	return farthest, nil
}

// Part2 counts the tiles enclosed by the loop. The shoelace formula gives
// the loop's area and Pick's theorem turns that into interior points.
func (d day10) Part2() (any, error) {
	m, err := d.maze()
	if err != nil {
		return nil, err
	}
	path, err := m.loop()
	if err != nil {
		return nil, err
	}
	area2 := 0
	for i, p := range path {
		q := path[(i+1)%len(path)]
		area2 += p.X*q.Y - q.X*p.Y
	}
	area2 = xmath.Abs(area2)
	return (area2-len(path))/2 + 1, nil
}
