package y2017

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2017, 8, func(in puzzle.Input) puzzle.Problem { return day08{in} })
}

type day08 struct{ puzzle.Input }

type regInstr struct {
	reg   string
	delta int64
	cond  struct {
		reg string
		op  string
		val int64
	}
}

// parseRegInstr parses lines like
//
//	b inc 5 if a > 1
func parseRegInstr(s string) (regInstr, error) {
	var insn regInstr
	parts := strings.Fields(s)
	if len(parts) != 7 || parts[3] != "if" {
		return insn, fmt.Errorf("bad instruction %q", s)
	}
	insn.reg = parts[0]
	var err error
	if insn.delta, err = strconv.ParseInt(parts[2], 10, 64); err != nil {
		return insn, fmt.Errorf("bad amount in instruction %q", s)
	}
	switch parts[1] {
	case "inc":
	case "dec":
		insn.delta = -insn.delta
	default:
		return insn, fmt.Errorf("bad operation in instruction %q", s)
	}
	insn.cond.reg = parts[4]
	insn.cond.op = parts[5]
	switch insn.cond.op {
	case "==", "!=", "<", "<=", ">", ">=":
	default:
		return insn, fmt.Errorf("bad comparison in instruction %q", s)
	}
	if insn.cond.val, err = strconv.ParseInt(parts[6], 10, 64); err != nil {
		return insn, fmt.Errorf("bad comparison value in instruction %q", s)
	}
	return insn, nil
}

// A regCPU runs register instructions, tracking the largest value ever
// held by any register.
type regCPU struct {
	regs    map[string]int64
	highest int64
}

func newRegCPU() *regCPU {
	return &regCPU{regs: make(map[string]int64)}
}

func (c *regCPU) run(insn regInstr) {
	cv := c.regs[insn.cond.reg]
	var cond bool
	switch insn.cond.op {
	case "==":
		cond = cv == insn.cond.val
	case "!=":
		cond = cv != insn.cond.val
	case "<":
		cond = cv < insn.cond.val
	case "<=":
		cond = cv <= insn.cond.val
	case ">":
		cond = cv > insn.cond.val
	case ">=":
		cond = cv >= insn.cond.val
	}
	if cond {
		v := c.regs[insn.reg] + insn.delta
		c.highest = max(c.highest, v)
		c.regs[insn.reg] = v
	}
}

func (d day08) run() (*regCPU, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	c := newRegCPU()
	for _, line := range lines {
		insn, err := parseRegInstr(line)
		if err != nil {
			return nil, err
		}
		c.run(insn)
	}
	return c, nil
}

// Part1 is the largest register value at the end. Registers start at 0.
func (d day08) Part1() (any, error) {
	c, err := d.run()
	if err != nil {
		return nil, err
	}
	var largest int64
	for _, v := range c.regs {
		largest = max(largest, v)
	}
	return largest, nil
}

func (d day08) Part2() (any, error) {
	c, err := d.run()
	if err != nil {
		return nil, err
	}
	return c.highest, nil
}
