package y2020

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2020, 4, func(in puzzle.Input) puzzle.Problem { return day04{in} })
}

type day04 struct{ puzzle.Input }

type passport map[string]string

// passports parses the batch file: key:value fields separated by
// whitespace, with a blank line between passports.
func (d day04) passports() ([]passport, error) {
	raw, err := d.Raw()
	if err != nil {
		return nil, err
	}
	var ps []passport
	for _, block := range strings.Split(raw, "\n\n") {
		fields := strings.Fields(block)
		if len(fields) == 0 {
			continue
		}
		p := make(passport)
		for _, f := range fields {
			k, v, ok := strings.Cut(f, ":")
			if !ok {
				return nil, fmt.Errorf("bad passport field %q", f)
			}
			p[k] = v
		}
		ps = append(ps, p)
	}
	return ps, nil
}

var passportRules = map[string]func(string) bool{
	"byr": func(v string) bool { return digitsInRange(v, 4, 1920, 2002) },
	"iyr": func(v string) bool { return digitsInRange(v, 4, 2010, 2020) },
	"eyr": func(v string) bool { return digitsInRange(v, 4, 2020, 2030) },
	"hgt": func(v string) bool {
		if n, ok := strings.CutSuffix(v, "cm"); ok {
			return digitsInRange(n, 3, 150, 193)
		}
		if n, ok := strings.CutSuffix(v, "in"); ok {
			return digitsInRange(n, 2, 59, 76)
		}
		return false
	},
	"hcl": func(v string) bool {
		hex, ok := strings.CutPrefix(v, "#")
		return ok && len(hex) == 6 && strings.Trim(hex, "0123456789abcdef") == ""
	},
	"ecl": func(v string) bool {
		switch v {
		case "amb", "blu", "brn", "gry", "grn", "hzl", "oth":
			return true
		}
		return false
	},
	"pid": func(v string) bool { return digitsInRange(v, 9, 0, 999999999) },
}

func digitsInRange(s string, digits, lo, hi int) bool {
	if len(s) != digits || strings.Trim(s, "0123456789") != "" {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= lo && n <= hi
}

func (p passport) complete() bool {
	for k := range passportRules {
		if _, ok := p[k]; !ok {
			return false
		}
	}
	return true
}

func (p passport) valid() bool {
	for k, rule := range passportRules {
		if v, ok := p[k]; !ok || !rule(v) {
			return false
		}
	}
	return true
}

func (d day04) count(ok func(passport) bool) (int, error) {
	ps, err := d.passports()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range ps {
		if ok(p) {
			n++
		}
	}
	return n, nil
}

func (d day04) Part1() (any, error) { return d.count(passport.complete) }
func (d day04) Part2() (any, error) { return d.count(passport.valid) }
