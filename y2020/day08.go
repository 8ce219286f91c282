package y2020

import (
	"errors"
	"fmt"

	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/strview"
)

func init() {
	puzzle.Register(2020, 8, func(in puzzle.Input) puzzle.Problem { return day08{in} })
}

type day08 struct{ puzzle.Input }

type bootInstr struct {
	op  string
	arg int
}

func (d day08) program() ([]bootInstr, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var prog []bootInstr
	for _, line := range lines {
		if line == "" {
			continue
		}
		v := strview.New(line)
		op := v.ChopByDelim(' ').String()
		switch op {
		case "acc", "jmp", "nop":
		default:
			return nil, fmt.Errorf("bad instruction %q", line)
		}
		if v.Empty() {
			return nil, fmt.Errorf("bad instruction %q", line)
		}
		prog = append(prog, bootInstr{op, int(v.ChopInt())})
	}
	return prog, nil
}

// execute runs prog until an instruction is about to run a second time or
// the program counter moves just past the end. It returns the accumulator
// and whether the program terminated.
func execute(prog []bootInstr) (acc int, terminated bool) {
	seen := make([]bool, len(prog))
	pc := 0
	for pc >= 0 && pc < len(prog) && !seen[pc] {
		seen[pc] = true
		switch in := prog[pc]; in.op {
		case "acc":
			acc += in.arg
			pc++
		case "jmp":
			pc += in.arg
		default:
			pc++
		}
	}
	return acc, pc == len(prog)
}

func (d day08) Part1() (any, error) {
	prog, err := d.program()
	if err != nil {
		return nil, err
	}
	acc, _ := execute(prog)
	return acc, nil
}

func (d day08) Part2() (any, error) {
	prog, err := d.program()
	if err != nil {
		return nil, err
	}
	swap := map[string]string{"jmp": "nop", "nop": "jmp"}
	for i, in := range prog {
		other, ok := swap[in.op]
		if !ok {
			continue
		}
		prog[i].op = other
		acc, ok := execute(prog)
		prog[i].op = in.op
		if ok {
			return acc, nil
		}
	}
	return nil, errors.New("no single change makes the program terminate")
}
