package y2023

import (
	"github.com/cespare/aoc/geom"
	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2023, 3, func(in puzzle.Input) puzzle.Problem { return day03{in} })
}

type day03 struct{ puzzle.Input }

type partNumber struct {
	n       int
	symbols []geom.Pt // adjacent symbols
}

// partNumbers finds each number in the schematic along with the symbols
// around it. Every character other than a digit or '.' is a symbol.
func (d day03) partNumbers() (nums []partNumber, schematic []string, err error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, nil, err
	}
	at := func(p geom.Pt) byte {
		if p.Y < 0 || p.Y >= len(lines) || p.X < 0 || p.X >= len(lines[p.Y]) {
			return '.'
		}
		return lines[p.Y][p.X]
	}
	for y, line := range lines {
		for x := 0; x < len(line); {
			if !isDigit(line[x]) {
				x++
				continue
			}
			var pn partNumber
			seen := make(map[geom.Pt]bool)
			for ; x < len(line) && isDigit(line[x]); x++ {
				pn.n = pn.n*10 + int(line[x]-'0')
				geom.Pt{X: x, Y: y}.ForNeighbors(func(q geom.Pt) bool {
					if c := at(q); c != '.' && !isDigit(c) && !seen[q] {
						seen[q] = true
						pn.symbols = append(pn.symbols, q)
					}
					return true
				})
			}
			nums = append(nums, pn)
		}
	}
	return nums, lines, nil
}

func (d day03) Part1() (any, error) {
	nums, _, err := d.partNumbers()
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, pn := range nums {
		if len(pn.symbols) > 0 {
			sum += pn.n
		}
	}
	return sum, nil
}

func (d day03) Part2() (any, error) {
	nums, schematic, err := d.partNumbers()
	if err != nil {
		return nil, err
	}
	gears := make(map[geom.Pt][]int)
	for _, pn := range nums {
		for _, s := range pn.symbols {
			if schematic[s.Y][s.X] == '*' {
				gears[s] = append(gears[s], pn.n)
			}
		}
	}
	sum := 0
	for _, ns := range gears {
		if len(ns) == 2 {
			sum += ns[0] * ns[1]
		}
	}
	return sum, nil
}
