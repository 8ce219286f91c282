package y2017

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2017, 2, func(in puzzle.Input) puzzle.Problem { return day02{in} })
}

type day02 struct{ puzzle.Input }

func (d day02) matrix() ([][]int64, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var mat [][]int64
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, errors.New("empty row")
		}
		row := make([]int64, len(fields))
		for i, field := range fields {
			n, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad spreadsheet value %q", field)
			}
			row[i] = n
		}
		mat = append(mat, row)
	}
	return mat, nil
}

func (d day02) Part1() (any, error) {
	mat, err := d.matrix()
	if err != nil {
		return nil, err
	}
	var checksum int64
	for _, row := range mat {
		lo, hi := row[0], row[0]
		for _, n := range row {
			lo = min(lo, n)
			hi = max(hi, n)
		}
		checksum += hi - lo
	}
	return checksum, nil
}

// evenQuotient finds the only two values in row where one divides the
// other.
func evenQuotient(row []int64) (int64, bool) {
	for i := 0; i < len(row); i++ {
		for j := i + 1; j < len(row); j++ {
			n0, n1 := row[i], row[j]
			if n0 > n1 {
				n0, n1 = n1, n0
			}
			if n0 != 0 && n1%n0 == 0 {
				return n1 / n0, true
			}
		}
	}
	return 0, false
}

func (d day02) Part2() (any, error) {
	mat, err := d.matrix()
	if err != nil {
		return nil, err
	}
	var sum int64
	for i, row := range mat {
		q, ok := evenQuotient(row)
		if !ok {
			return nil, fmt.Errorf("row %d has no evenly divisible values", i+1)
		}
		sum += q
	}
	return sum, nil
}
