package y2020

import (
	"fmt"
	"strings"

	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/strview"
)

func init() {
	puzzle.Register(2020, 2, func(in puzzle.Input) puzzle.Problem { return day02{in} })
}

type day02 struct{ puzzle.Input }

type passwordPolicy struct {
	lo, hi int
	c      byte
	pw     string
}

// parsePasswordPolicy parses lines like "1-3 a: abcde".
func parsePasswordPolicy(line string) (passwordPolicy, error) {
	var p passwordPolicy
	v := strview.New(line)
	p.lo = int(v.ChopUint())
	if !v.StartsWith("-") {
		return p, fmt.Errorf("bad password line %q", line)
	}
	v.ForwardMut(1)
	p.hi = int(v.ChopUint())
	v.TrimLeftMut()
	letter := v.ChopBySV(": ")
	if letter.Len() != 1 || v.Empty() || p.lo < 1 || p.lo > p.hi {
		return p, fmt.Errorf("bad password line %q", line)
	}
	p.c = letter.At(0)
	p.pw = v.String()
	return p, nil
}

func (d day02) countValid(valid func(passwordPolicy) bool) (int, error) {
	lines, err := d.Lines()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		p, err := parsePasswordPolicy(line)
		if err != nil {
			return 0, err
		}
		if valid(p) {
			n++
		}
	}
	return n, nil
}

func (d day02) Part1() (any, error) {
	return d.countValid(func(p passwordPolicy) bool {
		n := strings.Count(p.pw, string(p.c))
		return n >= p.lo && n <= p.hi
	})
}

func (d day02) Part2() (any, error) {
	return d.countValid(func(p passwordPolicy) bool {
		at := func(i int) bool { return i <= len(p.pw) && p.pw[i-1] == p.c }
		return at(p.lo) != at(p.hi)
	})
}
