package y2017

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2017, 7, func(in puzzle.Input) puzzle.Problem { return day07{in} })
}

type day07 struct{ puzzle.Input }

type towerProg struct {
	name       string
	weight     int
	treeWeight int // -1 until computed
	children   []string
	refs       []*towerProg
}

// parseTowerProg parses lines like
//
//	fwft (72) -> ktlj, cntj, xhth
func parseTowerProg(s string) (towerProg, error) {
	var prog towerProg
	prog.treeWeight = -1
	self, kids, hasKids := strings.Cut(s, "->")
	selfParts := strings.Fields(self)
	if len(selfParts) != 2 {
		return prog, fmt.Errorf("bad self part %q", self)
	}
	prog.name = selfParts[0]
	weightStr := selfParts[1]
	if len(weightStr) < 3 || weightStr[0] != '(' || weightStr[len(weightStr)-1] != ')' {
		return prog, fmt.Errorf("bad weight part %q", weightStr)
	}
	var err error
	prog.weight, err = strconv.Atoi(weightStr[1 : len(weightStr)-1])
	if err != nil {
		return prog, fmt.Errorf("bad weight part %q", weightStr)
	}
	if hasKids {
		for _, name := range strings.Split(kids, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				return prog, fmt.Errorf("bad child list %q", kids)
			}
			prog.children = append(prog.children, name)
		}
	}
	return prog, nil
}

// A tower is the linked tree of programs.
type tower struct {
	root *towerProg
}

func (d day07) tower() (*tower, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var progs []towerProg
	for _, line := range lines {
		prog, err := parseTowerProg(line)
		if err != nil {
			return nil, err
		}
		progs = append(progs, prog)
	}
	return buildTower(progs)
}

func buildTower(progs []towerProg) (*tower, error) {
	byName := make(map[string]*towerProg)
	hasParent := make(map[string]bool)
	for i := range progs {
		prog := &progs[i]
		byName[prog.name] = prog
		for _, name := range prog.children {
			hasParent[name] = true
		}
	}
	var roots []*towerProg
	for i := range progs {
		if !hasParent[progs[i].name] {
			roots = append(roots, &progs[i])
		}
	}
	if len(roots) != 1 {
		return nil, fmt.Errorf("found %d programs with no parent", len(roots))
	}
	for i := range progs {
		prog := &progs[i]
		prog.refs = make([]*towerProg, len(prog.children))
		for j, child := range prog.children {
			ref, ok := byName[child]
			if !ok {
				return nil, fmt.Errorf("%s holds unknown program %s", prog.name, child)
			}
			prog.refs[j] = ref
		}
	}
	return &tower{root: roots[0]}, nil
}

func (p *towerProg) totalWeight() int {
	if p.treeWeight < 0 {
		w := p.weight
		for _, child := range p.refs {
			w += child.totalWeight()
		}
		p.treeWeight = w
	}
	return p.treeWeight
}

// oddOneOut finds the weight that differs from the rest. It returns the
// index of the odd one and the common weight; the index is -1 if the
// weights are all the same and -2 if there are only two and they differ.
func oddOneOut(weights []int) (int, int, error) {
	if len(weights) < 2 {
		return -1, 0, nil
	}
	if len(weights) == 2 {
		if weights[0] == weights[1] {
			return -1, 0, nil
		}
		return -2, 0, nil
	}
	w0, w1, w2 := weights[0], weights[1], weights[2]
	var w int
	switch {
	case w0 == w1, w0 == w2:
		w = w0
	case w1 == w2:
		w = w1
	default:
		return 0, 0, errors.New("three different child weights")
	}
	for i, ww := range weights {
		if ww != w {
			return i, w, nil
		}
	}
	return -1, 0, nil
}

var errBalanced = errors.New("tower is balanced")

// correctWeight returns the weight p would need for the subtree to weigh
// target, descending into whichever child is off. A negative target means
// p's own total is unknown. The bool reports whether the fix is to p
// itself.
func (p *towerProg) correctWeight(target int) (int, bool, error) {
	weights := make([]int, len(p.refs))
	var childSum int
	for i, ref := range p.refs {
		weights[i] = ref.totalWeight()
		childSum += weights[i]
	}
	odd, w, err := oddOneOut(weights)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %s", p.name, err)
	}
	switch odd {
	case -1:
		if target < 0 || target-childSum == p.weight {
			return 0, false, errBalanced
		}
		return target - childSum, true, nil
	case -2:
		// Only the child whose own children are off can hold the wrong
		// weight.
		fixed0, self0, err := p.refs[0].correctWeight(weights[1])
		if err != nil {
			return 0, false, err
		}
		fixed1, self1, err := p.refs[1].correctWeight(weights[0])
		if err != nil {
			return 0, false, err
		}
		switch {
		case self0 && self1:
			return 0, false, fmt.Errorf("%s: can't tell which of two children is off", p.name)
		case !self0 && !self1:
			return 0, false, fmt.Errorf("%s: more than one weight is wrong", p.name)
		case self0:
			return fixed1, false, nil
		}
		return fixed0, false, nil
	}
	fixed, _, err := p.refs[odd].correctWeight(w)
	return fixed, false, err
}

func (d day07) Part1() (any, error) {
	t, err := d.tower()
	if err != nil {
		return nil, err
	}
	return t.root.name, nil
}

// Part2 finds the weight the one mis-weighted program should have.
func (d day07) Part2() (any, error) {
	t, err := d.tower()
	if err != nil {
		return nil, err
	}
	fixed, _, err := t.root.correctWeight(-1)
	return fixed, err
}
