package y2019

import (
	"errors"
	"fmt"

	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/y2019/intcode"
)

func init() {
	puzzle.Register(2019, 9, func(in puzzle.Input) puzzle.Problem { return day09{in} })
}

type day09 struct{ puzzle.Input }

// boost runs the BOOST program in the given mode. A correct Intcode
// implementation makes it print a single value; otherwise it prints the
// opcodes it thinks are broken.
func (d day09) boost(mode int64) (int64, error) {
	raw, err := d.Raw()
	if err != nil {
		return 0, err
	}
	prog, err := intcode.Parse(raw)
	if err != nil {
		return 0, err
	}
	out, err := intcode.New(prog).RunIO(mode)
	if err != nil {
		return 0, err
	}
	switch len(out) {
	case 0:
		return 0, errors.New("BOOST produced no output")
	case 1:
		return out[0], nil
	}
	return 0, fmt.Errorf("BOOST reports malfunctioning opcodes: %v", out)
}

func (d day09) Part1() (any, error) { return d.boost(1) }
func (d day09) Part2() (any, error) { return d.boost(2) }
