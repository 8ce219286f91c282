package y2019

import (
	"errors"

	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/y2019/intcode"
)

func init() {
	puzzle.Register(2019, 2, func(in puzzle.Input) puzzle.Problem {
		return day02{Input: in, target: 19690720}
	})
}

type day02 struct {
	puzzle.Input
	target int64
}

func (d day02) program() ([]int64, error) {
	raw, err := d.Raw()
	if err != nil {
		return nil, err
	}
	return intcode.Parse(raw)
}

// runGravityAssist runs prog with the given noun and verb and returns the
// value left at address 0.
func runGravityAssist(prog []int64, noun, verb int64) (int64, error) {
	m := intcode.New(prog)
	if err := m.SetMem(1, noun); err != nil {
		return 0, err
	}
	if err := m.SetMem(2, verb); err != nil {
		return 0, err
	}
	if _, err := m.RunIO(); err != nil {
		return 0, err
	}
	return m.Mem(0), nil
}

func (d day02) Part1() (any, error) {
	prog, err := d.program()
	if err != nil {
		return nil, err
	}
	return runGravityAssist(prog, 12, 2)
}

func (d day02) Part2() (any, error) {
	prog, err := d.program()
	if err != nil {
		return nil, err
	}
	for noun := int64(0); noun <= 99; noun++ {
		for verb := int64(0); verb <= 99; verb++ {
			v, err := runGravityAssist(prog, noun, verb)
			if err != nil {
				// Some inputs send the program off the rails.
				continue
			}
			if v == d.target {
				return 100*noun + verb, nil
			}
		}
	}
	return nil, errors.New("no noun and verb produce the target output")
}
