package y2020

import (
	"fmt"
	"strings"

	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/strview"
)

func init() {
	puzzle.Register(2020, 7, func(in puzzle.Input) puzzle.Problem { return day07{in} })
}

type day07 struct{ puzzle.Input }

const myBag = "shiny gold"

type bagCount struct {
	n     int
	color string
}

// bagRules maps each color to what a bag of that color must contain.
type bagRules map[string][]bagCount

// parseBagRule parses rules like
//
//	light red bags contain 1 bright white bag, 2 muted yellow bags.
func parseBagRule(line string) (string, []bagCount, error) {
	v := strview.New(strings.TrimSuffix(line, "."))
	color := v.ChopBySV(" bags contain ")
	if v.Empty() || color.Empty() {
		return "", nil, fmt.Errorf("bad bag rule %q", line)
	}
	if v.String() == "no other bags" {
		return color.String(), nil, nil
	}
	var contents []bagCount
	for !v.Empty() {
		item := v.ChopBySV(", ")
		n := int(item.ChopUint())
		item.TrimLeftMut()
		inner := strings.TrimSuffix(strings.TrimSuffix(item.String(), " bags"), " bag")
		if n == 0 || inner == "" {
			return "", nil, fmt.Errorf("bad bag rule %q", line)
		}
		contents = append(contents, bagCount{n, inner})
	}
	return color.String(), contents, nil
}

func (d day07) rules() (bagRules, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	rules := make(bagRules)
	for _, line := range lines {
		if line == "" {
			continue
		}
		color, contents, err := parseBagRule(line)
		if err != nil {
			return nil, err
		}
		rules[color] = contents
	}
	return rules, nil
}

func (d day07) Part1() (any, error) {
	rules, err := d.rules()
	if err != nil {
		return nil, err
	}
	containedBy := make(map[string][]string)
	for outer, contents := range rules {
		for _, c := range contents {
			containedBy[c.color] = append(containedBy[c.color], outer)
		}
	}
	seen := make(map[string]bool)
	queue := []string{myBag}
	for len(queue) > 0 {
		color := queue[0]
		queue = queue[1:]
		for _, outer := range containedBy[color] {
			if !seen[outer] {
				seen[outer] = true
				queue = append(queue, outer)
			}
		}
	}
	return len(seen), nil
}

func (d day07) Part2() (any, error) {
	rules, err := d.rules()
	if err != nil {
		return nil, err
	}
	memo := make(map[string]int)
	var inside func(color string, depth int) (int, error)
	inside = func(color string, depth int) (int, error) {
		if n, ok := memo[color]; ok {
			return n, nil
		}
		if depth > len(rules) {
			return 0, fmt.Errorf("%s bags contain themselves", color)
		}
		total := 0
		for _, c := range rules[color] {
			n, err := inside(c.color, depth+1)
			if err != nil {
				return 0, err
			}
			total += c.n * (1 + n)
		}
		memo[color] = total
		return total, nil
	}
	return inside(myBag, 0)
}
