package y2023

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2023, 7, func(in puzzle.Input) puzzle.Problem { return day07{in} })
}

type day07 struct{ puzzle.Input }

type handType int

const (
	highCard handType = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

const (
	cardOrder      = "23456789TJQKA"
	jokerCardOrder = "J23456789TQKA"
)

type camelHand struct {
	cards string
	bid   int
}

func parseCamelHand(line string) (camelHand, error) {
	cards, bid, ok := strings.Cut(line, " ")
	if !ok || len(cards) != 5 {
		return camelHand{}, fmt.Errorf("bad hand %q", line)
	}
	for i := 0; i < len(cards); i++ {
		if strings.IndexByte(cardOrder, cards[i]) < 0 {
			return camelHand{}, fmt.Errorf("bad card %q in hand %q", cards[i], line)
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(bid))
	if err != nil {
		return camelHand{}, fmt.Errorf("bad bid in hand %q", line)
	}
	return camelHand{cards: cards, bid: n}, nil
}

// kind classifies the hand. With jokers, each J joins whichever other
// card is most common.
func (h camelHand) kind(jokers bool) handType {
	counts := make(map[byte]int)
	for i := 0; i < len(h.cards); i++ {
		counts[h.cards[i]]++
	}
	var j int
	if jokers {
		j = counts['J']
		delete(counts, 'J')
	}
	var sorted []int
	for _, n := range counts {
		sorted = append(sorted, n)
	}
	slices.Sort(sorted)
	slices.Reverse(sorted)
	if len(sorted) == 0 {
		return fiveOfAKind // JJJJJ
	}
	sorted[0] += j
	switch sorted[0] {
	case 5:
		return fiveOfAKind
	case 4:
		return fourOfAKind
	case 3:
		if sorted[1] == 2 {
			return fullHouse
		}
		return threeOfAKind
	case 2:
		if sorted[1] == 2 {
			return twoPair
		}
		return onePair
	}
	return highCard
}

func (d day07) winnings(jokers bool) (int, error) {
	lines, err := d.Lines()
	if err != nil {
		return 0, err
	}
	type ranked struct {
		h    camelHand
		kind handType
	}
	var hands []ranked
	for _, line := range lines {
		if line == "" {
			continue
		}
		h, err := parseCamelHand(line)
		if err != nil {
			return 0, err
		}
		hands = append(hands, ranked{h, h.kind(jokers)})
	}
	order := cardOrder
	if jokers {
		order = jokerCardOrder
	}
	slices.SortFunc(hands, func(a, b ranked) int {
		if c := cmp.Compare(a.kind, b.kind); c != 0 {
			return c
		}
		for i := 0; i < len(a.h.cards); i++ {
			ca := strings.IndexByte(order, a.h.cards[i])
			cb := strings.IndexByte(order, b.h.cards[i])
			if c := cmp.Compare(ca, cb); c != 0 {
				return c
			}
		}
		return 0
	})
	total := 0
	for i, r := range hands {
		total += (i + 1) * r.h.bid
	}
	return total, nil
}

func (d day07) Part1() (any, error) { return d.winnings(false) }
func (d day07) Part2() (any, error) { return d.winnings(true) }
