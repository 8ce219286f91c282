package y2023

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/aoc/i128"
	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/strview"
	"github.com/cespare/aoc/xmath"
)

func init() {
	puzzle.Register(2023, 8, func(in puzzle.Input) puzzle.Problem { return day08{in} })
}

type day08 struct{ puzzle.Input }

type desertMap struct {
	turns string // L and R
	names []string
	index map[string]int
	left  []int
	right []int
}

func parseDesertMap(text string) (*desertMap, error) {
	v := strview.New(strings.TrimSpace(text))
	m := &desertMap{
		turns: strings.TrimSpace(v.ChopByDelim('\n').String()),
		index: make(map[string]int),
	}
	if m.turns == "" || strings.Trim(m.turns, "LR") != "" {
		return nil, fmt.Errorf("bad instructions %q", m.turns)
	}
	id := func(name string) int {
		if i, ok := m.index[name]; ok {
			return i
		}
		i := len(m.names)
		m.index[name] = i
		m.names = append(m.names, name)
		m.left = append(m.left, -1)
		m.right = append(m.right, -1)
		return i
	}
	for !v.Empty() {
		line := v.ChopByDelim('\n')
		if line.Empty() {
			continue
		}
		orig := line
		name := strings.TrimSpace(line.ChopByDelim('=').String())
		line.TrimLeftMut()
		if name == "" || !line.StartsWith("(") || !line.EndsWith(")") {
			return nil, fmt.Errorf("bad node %q", orig)
		}
		line = line.Substr(1, line.Len()-1)
		l := strings.TrimSpace(line.ChopByDelim(',').String())
		r := strings.TrimSpace(line.String())
		if l == "" || r == "" {
			return nil, fmt.Errorf("bad node %q", orig)
		}
		i := id(name)
		if m.left[i] >= 0 {
			return nil, fmt.Errorf("node %s defined twice", name)
		}
		m.left[i], m.right[i] = id(l), id(r)
	}
	for i, name := range m.names {
		if m.left[i] < 0 {
			return nil, fmt.Errorf("node %s is never defined", name)
		}
	}
	return m, nil
}

func (m *desertMap) step(node int, t int64) int {
	if m.turns[t%int64(len(m.turns))] == 'L' {
		return m.left[node]
	}
	return m.right[node]
}

func (d day08) desertMap() (*desertMap, error) {
	text, err := d.Raw()
	if err != nil {
		return nil, err
	}
	return parseDesertMap(text)
}

func (d day08) Part1() (any, error) {
	m, err := d.desertMap()
	if err != nil {
		return nil, err
	}
	start, ok := m.index["AAA"]
	if !ok {
		return nil, errors.New("no node AAA")
	}
	end, ok := m.index["ZZZ"]
	if !ok {
		return nil, errors.New("no node ZZZ")
	}
	// Past this many steps some (node, turn) state has repeated.
	limit := int64(len(m.names)) * int64(len(m.turns))
	node := start
	for t := int64(0); t <= limit; t++ {
		if node == end {
			return t, nil
		}
		node = m.step(node, t)
	}
	return nil, errors.New("ZZZ is unreachable from AAA")
}

// A ghostCycle describes when a ghost stands on a Z node. After mu steps
// the ghost's (node, turn) state repeats with period lambda.
type ghostCycle struct {
	mu, lambda int64
	before     map[int64]bool // Z times before mu
	residues   []int64        // Z times at or after mu, mod lambda
}

func (m *desertMap) ghostCycle(start int) ghostCycle {
	nt := int64(len(m.turns))
	seen := make(map[int64]int64) // (node, turn) -> first time
	var zs []int64
	node := start
	for t := int64(0); ; t++ {
		state := int64(node)*nt + t%nt
		if first, ok := seen[state]; ok {
			c := ghostCycle{mu: first, lambda: t - first, before: make(map[int64]bool)}
			for _, z := range zs {
				if z < first {
					c.before[z] = true
				} else {
					c.residues = append(c.residues, z%c.lambda)
				}
			}
			return c
		}
		seen[state] = t
		if strings.HasSuffix(m.names[node], "Z") {
			zs = append(zs, t)
		}
		node = m.step(node, t)
	}
}

func (c ghostCycle) onZ(t int64) bool {
	if t < c.mu {
		return c.before[t]
	}
	r := t % c.lambda
	for _, x := range c.residues {
		if x == r {
			return true
		}
	}
	return false
}

// modInverse returns x with a*x ≡ 1 (mod m) for coprime a and m.
func modInverse(a, m int64) int64 {
	oldR, r := xmath.Mod(a, m), m
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	return xmath.Mod(oldS, m)
}

var errLCMOverflow = errors.New("cycle lengths have an lcm too large for int64")

// combine merges x ≡ r1 (mod m1) and x ≡ r2 (mod m2), where the moduli
// need not be coprime. It reports false if the two are inconsistent.
func combine(r1, m1, r2, m2 int64) (r, m int64, ok bool, err error) {
	g := xmath.GCD(m1, m2)
	if (r2-r1)%g != 0 {
		return 0, 0, false, nil
	}
	lcm := i128.FromInt64(m1 / g).Mul(i128.FromInt64(m2))
	if !lcm.IsInt64() {
		return 0, 0, false, errLCMOverflow
	}
	m = lcm.Int64()
	n := m2 / g
	k := i128.MulMod(xmath.Mod((r2-r1)/g, n), modInverse(m1/g, n), n)
	return r1 + m1*k, m, true, nil
}

// Part2 moves every ghost from its A node at once and counts the steps
// until all of them stand on Z nodes together.
func (d day08) Part2() (any, error) {
	m, err := d.desertMap()
	if err != nil {
		return nil, err
	}
	var cycles []ghostCycle
	var start int64 // every ghost is in its cycle from here on
	for i, name := range m.names {
		if strings.HasSuffix(name, "A") {
			c := m.ghostCycle(i)
			cycles = append(cycles, c)
			start = max(start, c.mu)
		}
	}
	if len(cycles) == 0 {
		return nil, errors.New("no ghost starting nodes")
	}
	for t := int64(0); t < start; t++ {
		all := true
		for _, c := range cycles {
			if !c.onZ(t) {
				all = false
				break
			}
		}
		if all {
			return t, nil
		}
	}

	best := int64(-1)
	var search func(i int, r, mod int64) error
	search = func(i int, r, mod int64) error {
		if i == len(cycles) {
			t := r
			if t < start {
				t += (start - r + mod - 1) / mod * mod
			}
			if best < 0 || t < best {
				best = t
			}
			return nil
		}
		c := cycles[i]
		for _, x := range c.residues {
			r1, m1, ok, err := combine(r, mod, x, c.lambda)
			if err != nil {
				return err
			}
			if ok {
				if err := search(i+1, r1, m1); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := search(0, 0, 1); err != nil {
		return nil, err
	}
	if best < 0 {
		return nil, errors.New("the ghosts never all reach Z nodes together")
	}
	return best, nil
}
