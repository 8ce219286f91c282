package y2020

import (
	"fmt"
	"strings"

	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/strview"
)

func init() {
	puzzle.Register(2020, 14, func(in puzzle.Input) puzzle.Problem { return day14{in} })
}

type day14 struct{ puzzle.Input }

const addrBits = 36

// bitmask is a decoded "mask = ..." line. Each of the 36 positions is in
// exactly one of the three sets.
type bitmask struct {
	ones, zeros, floating uint64
}

func parseBitmask(s string) (bitmask, error) {
	var m bitmask
	if len(s) != addrBits {
		return m, fmt.Errorf("bad mask %q", s)
	}
	for i := 0; i < addrBits; i++ {
		bit := uint64(1) << (addrBits - 1 - i)
		switch s[i] {
		case '1':
			m.ones |= bit
		case '0':
			m.zeros |= bit
		case 'X':
			m.floating |= bit
		default:
			return m, fmt.Errorf("bad mask %q", s)
		}
	}
	return m, nil
}

// dockingInstr is either a mask update (isMask) or a write of val to addr.
type dockingInstr struct {
	isMask    bool
	mask      bitmask
	addr, val uint64
}

func (d day14) program() ([]dockingInstr, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var prog []dockingInstr
	for _, line := range lines {
		if line == "" {
			continue
		}
		if s, ok := strings.CutPrefix(line, "mask = "); ok {
			m, err := parseBitmask(s)
			if err != nil {
				return nil, err
			}
			prog = append(prog, dockingInstr{isMask: true, mask: m})
			continue
		}
		// mem[8] = 11
		v := strview.New(line)
		if !v.StartsWith("mem[") {
			return nil, fmt.Errorf("bad instruction %q", line)
		}
		v.ForwardMut(len("mem["))
		addr := v.ChopUint()
		if !v.StartsWith("] = ") {
			return nil, fmt.Errorf("bad instruction %q", line)
		}
		v.ForwardMut(len("] = "))
		prog = append(prog, dockingInstr{addr: addr, val: v.ChopUint()})
	}
	if len(prog) > 0 && !prog[0].isMask {
		return nil, fmt.Errorf("program writes memory before setting a mask")
	}
	return prog, nil
}

func (d day14) run(write func(mem map[uint64]uint64, m bitmask, addr, val uint64)) (uint64, error) {
	prog, err := d.program()
	if err != nil {
		return 0, err
	}
	mem := make(map[uint64]uint64)
	var m bitmask
	for _, in := range prog {
		if in.isMask {
			m = in.mask
			continue
		}
		write(mem, m, in.addr, in.val)
	}
	var sum uint64
	for _, v := range mem {
		sum += v
	}
	return sum, nil
}

func (d day14) Part1() (any, error) {
	return d.run(func(mem map[uint64]uint64, m bitmask, addr, val uint64) {
		mem[addr] = val&^m.zeros | m.ones
	})
}

// Part2 treats the mask as a decoder for the address. Floating bits take
// every combination of values, which is every submask of m.floating.
func (d day14) Part2() (any, error) {
	return d.run(func(mem map[uint64]uint64, m bitmask, addr, val uint64) {
		base := (addr | m.ones) &^ m.floating
		for sub := m.floating; ; sub = (sub - 1) & m.floating {
			mem[base|sub] = val
			if sub == 0 {
				break
			}
		}
	})
}
