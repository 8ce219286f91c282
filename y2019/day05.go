package y2019

import (
	"errors"
	"fmt"

	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/y2019/intcode"
)

func init() {
	puzzle.Register(2019, 5, func(in puzzle.Input) puzzle.Problem { return day05{in} })
}

type day05 struct{ puzzle.Input }

// diagnose runs the TEST program for the given system ID and returns the
// diagnostic code, which is the final output. Every earlier output is a
// test result and must be zero.
func (d day05) diagnose(system int64) (int64, error) {
	raw, err := d.Raw()
	if err != nil {
		return 0, err
	}
	prog, err := intcode.Parse(raw)
	if err != nil {
		return 0, err
	}
	out, err := intcode.New(prog).RunIO(system)
	if err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, errors.New("diagnostic program produced no output")
	}
	for i, v := range out[:len(out)-1] {
		if v != 0 {
			return 0, fmt.Errorf("diagnostic test %d failed with %d", i, v)
		}
	}
	return out[len(out)-1], nil
}

func (d day05) Part1() (any, error) { return d.diagnose(1) }
func (d day05) Part2() (any, error) { return d.diagnose(5) }
