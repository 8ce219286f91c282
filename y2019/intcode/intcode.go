// Package intcode implements the Intcode computer used by several of the
// 2019 puzzles.
package intcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a comma-separated Intcode program.
func Parse(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty program")
	}
	fields := strings.Split(s, ",")
	prog := make([]int64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad program value %q at position %d", f, i)
		}
		prog[i] = n
	}
	return prog, nil
}

// ErrNoInput is returned when the program asks for input that doesn't come:
// RunIO has run out of inputs, or Run's input channel was closed.
var ErrNoInput = errors.New("intcode: input exhausted")

// ErrStopped is returned by Run when its quit channel is closed.
var ErrStopped = errors.New("intcode: stopped")

// A Machine is an Intcode computer with its own copy of a program.
type Machine struct {
	mem     []int64
	pc      int64
	relBase int64
	halted  bool
}

// New returns a machine loaded with a copy of prog.
func New(prog []int64) *Machine {
	return &Machine{mem: append([]int64(nil), prog...)}
}

// Mem returns the value at addr. Addresses past the end of memory read as 0.
func (m *Machine) Mem(addr int64) int64 {
	v, _ := m.load(addr)
	return v
}

// SetMem stores v at addr, growing memory if needed.
func (m *Machine) SetMem(addr, v int64) error {
	return m.store(addr, v)
}

// Halted reports whether the machine has executed a halt instruction.
func (m *Machine) Halted() bool { return m.halted }

func (m *Machine) load(addr int64) (int64, error) {
	if addr < 0 {
		return 0, fmt.Errorf("intcode: read of negative address %d at pc %d", addr, m.pc)
	}
	if addr >= int64(len(m.mem)) {
		return 0, nil
	}
	return m.mem[addr], nil
}

func (m *Machine) store(addr, v int64) error {
	if addr < 0 {
		return fmt.Errorf("intcode: write to negative address %d at pc %d", addr, m.pc)
	}
	if addr >= int64(len(m.mem)) {
		m.mem = append(m.mem, make([]int64, addr-int64(len(m.mem))+1)...)
	}
	m.mem[addr] = v
	return nil
}

var modeDiv = [...]int64{1, 100, 1000, 10000}

// addr returns the address that parameter i (1-based) of the current
// instruction refers to. An immediate parameter refers to its own slot.
func (m *Machine) addr(instr int64, i int) (int64, error) {
	p := m.pc + int64(i)
	switch mode := instr / modeDiv[i] % 10; mode {
	case 0:
		return m.load(p)
	case 1:
		return p, nil
	case 2:
		off, err := m.load(p)
		return m.relBase + off, err
	default:
		return 0, fmt.Errorf("intcode: bad mode %d in instruction %d at pc %d", mode, instr, m.pc)
	}
}

func (m *Machine) param(instr int64, i int) (int64, error) {
	a, err := m.addr(instr, i)
	if err != nil {
		return 0, err
	}
	return m.load(a)
}

func (m *Machine) dest(instr int64, i int) (int64, error) {
	if instr/modeDiv[i]%10 == 1 {
		return 0, fmt.Errorf("intcode: immediate-mode write in instruction %d at pc %d", instr, m.pc)
	}
	return m.addr(instr, i)
}

// params loads the first n parameters of the current instruction.
func (m *Machine) params(instr int64, n int) (a, b int64, err error) {
	if a, err = m.param(instr, 1); err != nil || n == 1 {
		return a, 0, err
	}
	b, err = m.param(instr, 2)
	return a, b, err
}

// run executes instructions until the program halts or an error occurs.
func (m *Machine) run(read func() (int64, error), write func(int64) error) error {
	for !m.halted {
		instr, err := m.load(m.pc)
		if err != nil {
			return err
		}
		switch op := instr % 100; op {
		case 1, 2, 7, 8:
			a, b, err := m.params(instr, 2)
			if err != nil {
				return err
			}
			d, err := m.dest(instr, 3)
			if err != nil {
				return err
			}
			var v int64
			switch op {
			case 1:
				v = a + b
			case 2:
				v = a * b
			case 7:
				if a < b {
					v = 1
				}
			case 8:
				if a == b {
					v = 1
				}
			}
			if err := m.store(d, v); err != nil {
				return err
			}
			m.pc += 4
		case 3:
			d, err := m.dest(instr, 1)
			if err != nil {
				return err
			}
			v, err := read()
			if err != nil {
				return err
			}
			if err := m.store(d, v); err != nil {
				return err
			}
			m.pc += 2
		case 4:
			a, _, err := m.params(instr, 1)
			if err != nil {
				return err
			}
			if err := write(a); err != nil {
				return err
			}
			m.pc += 2
		case 5, 6:
			a, b, err := m.params(instr, 2)
			if err != nil {
				return err
			}
			if (a != 0) == (op == 5) {
				m.pc = b
			} else {
				m.pc += 3
			}
		case 9:
			a, _, err := m.params(instr, 1)
			if err != nil {
				return err
			}
			m.relBase += a
			m.pc += 2
		case 99:
			m.halted = true
		default:
			return fmt.Errorf("intcode: unknown opcode %d at pc %d", op, m.pc)
		}
	}
	return nil
}

// RunIO runs the machine to completion, feeding it inputs in order, and
// returns everything it output. If the machine stops early because of an
// error, the outputs produced so far are returned along with the error.
func (m *Machine) RunIO(inputs ...int64) ([]int64, error) {
	var outputs []int64
	read := func() (int64, error) {
		if len(inputs) == 0 {
			return 0, ErrNoInput
		}
		v := inputs[0]
		inputs = inputs[1:]
		return v, nil
	}
	write := func(v int64) error {
		outputs = append(outputs, v)
		return nil
	}
	err := m.run(read, write)
	return outputs, err
}

// Run runs the machine to completion, receiving input from in and sending
// output to out. It gives up with ErrStopped as soon as quit is closed,
// which lets a group of connected machines be torn down when one fails.
// Run does not close out.
func (m *Machine) Run(quit <-chan struct{}, in <-chan int64, out chan<- int64) error {
	read := func() (int64, error) {
		select {
		case v, ok := <-in:
			if !ok {
				return 0, ErrNoInput
			}
			return v, nil
		case <-quit:
			return 0, ErrStopped
		}
	}
	write := func(v int64) error {
		select {
		case out <- v:
			return nil
		case <-quit:
			return ErrStopped
		}
	}
	return m.run(read, write)
}
