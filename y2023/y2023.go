// Package y2023 has solutions to the 2023 puzzles.
package y2023

import (
	"fmt"

	"github.com/cespare/aoc/strview"
)

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseInts parses a run of space-separated, optionally signed integers.
func parseInts(v strview.View) ([]int64, error) {
	var ns []int64
	for v.TrimLeftMut(); !v.Empty(); v.TrimLeftMut() {
		start := v
		neg := v.StartsWith("-")
		if neg {
			v.ForwardMut(1)
		}
		if v.Empty() || !isDigit(v.At(0)) {
			return nil, fmt.Errorf("bad number at %q", start)
		}
		n := int64(v.ChopUint())
		if neg {
			n = -n
		}
		if !v.Empty() && v.At(0) != ' ' && v.At(0) != '\t' {
			return nil, fmt.Errorf("bad number at %q", start)
		}
		ns = append(ns, n)
	}
	return ns, nil
}
