package y2017

import (
	"slices"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2017, 4, func(in puzzle.Input) puzzle.Problem { return day04{in} })
}

type day04 struct{ puzzle.Input }

// validPassphrase reports whether no two words of phrase have the same key.
func validPassphrase(phrase string, key func(string) string) bool {
	seen := make(map[string]struct{})
	for _, word := range strings.Fields(phrase) {
		k := key(word)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
	}
	return true
}

func sortLetters(word string) string {
	b := []byte(word)
	slices.Sort(b)
	return string(b)
}

func (d day04) count(key func(string) string) (int, error) {
	lines, err := d.Lines()
	if err != nil {
		return 0, err
	}
	var numValid int
	for _, line := range lines {
		if validPassphrase(line, key) {
			numValid++
		}
	}
	return numValid, nil
}

func (d day04) Part1() (any, error) {
	return d.count(func(w string) string { return w })
}

// Part2 also rejects anagrams.
func (d day04) Part2() (any, error) {
	return d.count(sortLetters)
}
