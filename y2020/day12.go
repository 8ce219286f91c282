package y2020

import (
	"fmt"

	"github.com/cespare/aoc/geom"
	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/strview"
)

func init() {
	puzzle.Register(2020, 12, func(in puzzle.Input) puzzle.Problem { return day12{in} })
}

type day12 struct{ puzzle.Input }

type navInstr struct {
	action byte
	value  int
}

var compass = map[byte]geom.Pt{
	'N': geom.North,
	'S': geom.South,
	'E': geom.East,
	'W': geom.West,
}

func (d day12) instructions() ([]navInstr, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var instrs []navInstr
	for _, line := range lines {
		if line == "" {
			continue
		}
		v := strview.New(line)
		action := v.TakeMut(1).At(0)
		if v.Empty() {
			return nil, fmt.Errorf("bad navigation instruction %q", line)
		}
		value := int(v.ChopUint())
		switch action {
		case 'N', 'S', 'E', 'W', 'F':
		case 'L', 'R':
			if value%90 != 0 {
				return nil, fmt.Errorf("can't turn %d degrees", value)
			}
		default:
			return nil, fmt.Errorf("bad navigation instruction %q", line)
		}
		instrs = append(instrs, navInstr{action, value})
	}
	return instrs, nil
}

// quarters converts a turn instruction to clockwise quarter turns.
func (in navInstr) quarters() int {
	if in.action == 'L' {
		return -in.value / 90
	}
	return in.value / 90
}

// navigate moves the ship. If waypoint is false, compass actions move the
// ship itself and v is its heading; otherwise they move the waypoint v.
func navigate(instrs []navInstr, v geom.Pt, waypoint bool) int {
	var ship geom.Pt
	for _, in := range instrs {
		switch in.action {
		case 'L', 'R':
			v = v.Turn(in.quarters())
		case 'F':
			ship = ship.Add(v.Scale(in.value))
		default:
			move := compass[in.action].Scale(in.value)
			if waypoint {
				v = v.Add(move)
			} else {
				ship = ship.Add(move)
			}
		}
	}
	return ship.MDist(geom.Pt{})
}

func (d day12) Part1() (any, error) {
	instrs, err := d.instructions()
	if err != nil {
		return nil, err
	}
	return navigate(instrs, geom.East, false), nil
}

func (d day12) Part2() (any, error) {
	instrs, err := d.instructions()
	if err != nil {
		return nil, err
	}
	return navigate(instrs, geom.Pt{X: 10, Y: -1}, true), nil
}
