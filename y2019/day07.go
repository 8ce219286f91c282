package y2019

import (
	"errors"
	"fmt"

	"github.com/cespare/wait"

	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/y2019/intcode"
)

func init() {
	puzzle.Register(2019, 7, func(in puzzle.Input) puzzle.Problem { return day07{in} })
}

type day07 struct{ puzzle.Input }

func (d day07) program() ([]int64, error) {
	raw, err := d.Raw()
	if err != nil {
		return nil, err
	}
	return intcode.Parse(raw)
}

// permute calls f with every ordering of s. The slice passed to f is reused
// between calls.
func permute(s []int64, f func([]int64) error) error {
	var rec func(k int) error
	rec = func(k int) error {
		if k == len(s) {
			return f(s)
		}
		for i := k; i < len(s); i++ {
			s[k], s[i] = s[i], s[k]
			if err := rec(k + 1); err != nil {
				return err
			}
			s[k], s[i] = s[i], s[k]
		}
		return nil
	}
	return rec(0)
}

func maxSignal(phases []int64, run func([]int64) (int64, error)) (int64, error) {
	best := int64(-1 << 63)
	err := permute(phases, func(p []int64) error {
		sig, err := run(p)
		if err != nil {
			return fmt.Errorf("phases %v: %s", p, err)
		}
		best = max(best, sig)
		return nil
	})
	return best, err
}

// runSeries passes the signal through each amplifier once.
func runSeries(prog, phases []int64) (int64, error) {
	var sig int64
	for _, phase := range phases {
		out, err := intcode.New(prog).RunIO(phase, sig)
		if err != nil {
			return 0, err
		}
		if len(out) != 1 {
			return 0, fmt.Errorf("amplifier produced %d outputs", len(out))
		}
		sig = out[0]
	}
	return sig, nil
}

// runFeedback connects the amplifiers in a loop, each running in its own
// goroutine, and returns the last signal the final amplifier sends.
func runFeedback(prog, phases []int64) (int64, error) {
	n := len(phases)
	chans := make([]chan int64, n)
	for i, phase := range phases {
		// Room for the phase setting plus one signal in flight.
		chans[i] = make(chan int64, 2)
		chans[i] <- phase
	}
	chans[0] <- 0

	var wg wait.Group
	for i := range phases {
		m := intcode.New(prog)
		in, out := chans[i], chans[(i+1)%n]
		wg.Go(func(quit <-chan struct{}) error {
			// A halted amplifier leaves the next one without input.
			defer close(out)
			return m.Run(quit, in, out)
		})
	}
	if err := wg.Wait(); err != nil {
		return 0, err
	}
	sig, ok := <-chans[0]
	if !ok {
		return 0, errors.New("final amplifier sent no signal")
	}
	return sig, nil
}

func (d day07) Part1() (any, error) {
	prog, err := d.program()
	if err != nil {
		return nil, err
	}
	return maxSignal([]int64{0, 1, 2, 3, 4}, func(p []int64) (int64, error) {
		return runSeries(prog, p)
	})
}

func (d day07) Part2() (any, error) {
	prog, err := d.program()
	if err != nil {
		return nil, err
	}
	return maxSignal([]int64{5, 6, 7, 8, 9}, func(p []int64) (int64, error) {
		return runFeedback(prog, p)
	})
}
