package y2020

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2020, 5, func(in puzzle.Input) puzzle.Problem { return day05{in} })
}

type day05 struct{ puzzle.Input }

// seatID decodes a boarding pass. The ten letters are the bits of
// row*8+col, with B and R as ones.
func seatID(pass string) (int, error) {
	if len(pass) != 10 {
		return 0, fmt.Errorf("bad boarding pass %q", pass)
	}
	id := 0
	for i := 0; i < len(pass); i++ {
		id <<= 1
		switch c := pass[i]; {
		case i < 7 && c == 'B', i >= 7 && c == 'R':
			id |= 1
		case i < 7 && c == 'F', i >= 7 && c == 'L':
		default:
			return 0, fmt.Errorf("bad boarding pass %q", pass)
		}
	}
	return id, nil
}

func (d day05) seatIDs() ([]int, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var ids []int
	for _, line := range lines {
		if line == "" {
			continue
		}
		id, err := seatID(line)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, errors.New("no boarding passes")
	}
	return ids, nil
}

func (d day05) Part1() (any, error) {
	ids, err := d.seatIDs()
	if err != nil {
		return nil, err
	}
	return slices.Max(ids), nil
}

func (d day05) Part2() (any, error) {
	ids, err := d.seatIDs()
	if err != nil {
		return nil, err
	}
	slices.Sort(ids)
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1]+2 {
			return ids[i] - 1, nil
		}
	}
	return nil, errors.New("no free seat between two taken ones")
}
