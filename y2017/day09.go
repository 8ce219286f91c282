package y2017

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2017, 9, func(in puzzle.Input) puzzle.Problem { return day09{in} })
}

type day09 struct{ puzzle.Input }

type streamState int

const (
	stateOuter streamState = iota
	stateClosed
	stateGarbage
	stateEscaped
)

type group struct {
	children []*group
	garbage  int // non-cancelled characters of garbage directly inside
}

func (g *group) score(depth int) int {
	score := depth
	for _, child := range g.children {
		score += child.score(depth + 1)
	}
	return score
}

func (g *group) garbageCount() int {
	n := g.garbage
	for _, child := range g.children {
		n += child.garbageCount()
	}
	return n
}

// parseStream parses a stream that must consist of a single group.
func parseStream(s string) (*group, error) {
	s = strings.TrimRight(s, "\n")
	state := stateOuter
	var stack []*group
	var g *group
	complete := false
	// closeGroup ends g and moves back up to its parent.
	closeGroup := func() {
		if len(stack) == 0 {
			complete = true
			return
		}
		parent := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parent.children = append(parent.children, g)
		g = parent
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if complete {
			return nil, errors.New("stream must contain a single group")
		}
		switch state {
		case stateOuter:
			switch c {
			case '{':
				if g != nil {
					stack = append(stack, g)
				}
				g = new(group)
			case '<':
				if g == nil {
					return nil, errors.New("stream must be a group")
				}
				state = stateGarbage
			case '}':
				if g == nil {
					return nil, errors.New("stream starts with }")
				}
				closeGroup()
				state = stateClosed
			default:
				return nil, fmt.Errorf("unexpected %q at pos %d", c, i)
			}
		case stateClosed:
			switch c {
			case ',':
				state = stateOuter
			case '}':
				closeGroup()
			default:
				return nil, fmt.Errorf("unexpected %q at pos %d", c, i)
			}
		case stateGarbage:
			switch c {
			case '!':
				state = stateEscaped
			case '>':
				state = stateClosed
			default:
				g.garbage++
			}
		case stateEscaped:
			state = stateGarbage
		}
	}
	if g == nil {
		return nil, errors.New("empty stream")
	}
	if !complete {
		return nil, errors.New("unexpected end of stream")
	}
	return g, nil
}

func (d day09) stream() (*group, error) {
	s, err := d.Raw()
	if err != nil {
		return nil, err
	}
	return parseStream(s)
}

func (d day09) Part1() (any, error) {
	g, err := d.stream()
	if err != nil {
		return nil, err
	}
	return g.score(1), nil
}

func (d day09) Part2() (any, error) {
	g, err := d.stream()
	if err != nil {
		return nil, err
	}
	return g.garbageCount(), nil
}
