// Package y2017 has solutions to the first 2017 puzzles.
package y2017

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2017, 1, func(in puzzle.Input) puzzle.Problem { return day01{in} })
}

type day01 struct{ puzzle.Input }

func (d day01) digits() (string, error) {
	s, err := d.Raw()
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			return "", fmt.Errorf("input contained non-digit %q", c)
		}
	}
	return s, nil
}

// captcha sums the digits that match the digit off places ahead, wrapping
// around the end.
func captcha(digits string, off int) int {
	var sum int
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c == digits[(i+off)%len(digits)] {
			sum += int(c - '0')
		}
	}
	return sum
}

func (d day01) Part1() (any, error) {
	digits, err := d.digits()
	if err != nil {
		return nil, err
	}
	return captcha(digits, 1), nil
}

func (d day01) Part2() (any, error) {
	digits, err := d.digits()
	if err != nil {
		return nil, err
	}
	if len(digits)%2 != 0 {
		return nil, errors.New("need even number of digits")
	}
	return captcha(digits, len(digits)/2), nil
}
