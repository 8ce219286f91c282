package y2023

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/strview"
)

func checkPart(t *testing.T, name string, part func() (any, error), want any) {
	t.Helper()
	got, err := part()
	require.NoError(t, err, name)
	assert.EqualValues(t, want, got, name)
}

func TestRegistered(t *testing.T) {
	for day := 1; day <= 10; day++ {
		if _, ok := puzzle.Lookup(2023, day); !ok {
			t.Errorf("2023 day %d is not registered", day)
		}
	}
}

func TestParseInts(t *testing.T) {
	got, err := parseInts(strview.New("  -3 4\t17  "))
	require.NoError(t, err)
	assert.Equal(t, []int64{-3, 4, 17}, got)
	for _, s := range []string{"1 2x", "-", "3 -a", "x"} {
		if _, err := parseInts(strview.New(s)); err == nil {
			t.Errorf("parseInts(%q): got nil error", s)
		}
	}
}

func TestCalibration(t *testing.T) {
	for _, tt := range []struct {
		line    string
		spelled bool
		want    int
	}{
		{"treb7uchet", false, 77},
		{"a1b2c3d4e5f", true, 15},
		{"two1nine", false, 11},
		{"two1nine", true, 29},
		{"eightwo", true, 82},
		{"zoneight234", true, 14},
	} {
		got, err := calibration(tt.line, tt.spelled)
		require.NoError(t, err)
		if got != tt.want {
			t.Errorf("calibration(%q, %t): got %d; want %d", tt.line, tt.spelled, got, tt.want)
		}
	}
	_, err := calibration("nodigits", false)
	assert.Error(t, err)
}

func TestDay01(t *testing.T) {
	d := day01{"testdata/01a.txt"}
	checkPart(t, "part 1", d.Part1, 142)
	d = day01{"testdata/01b.txt"}
	checkPart(t, "part 2", d.Part2, 281)
}

func TestParseCubeGame(t *testing.T) {
	got, err := parseCubeGame("Game 12: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	require.NoError(t, err)
	want := cubeGame{
		id: 12,
		rounds: []cubes{
			{red: 4, blue: 3},
			{red: 1, green: 2, blue: 6},
			{green: 2},
		},
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("got %# v; want %# v\n%s", pretty.Formatter(got), pretty.Formatter(want), diff)
	}
	assert.Equal(t, cubes{red: 4, green: 2, blue: 6}, got.fewest())
	for _, line := range []string{"Gme 1: 3 blue", "Game 1 3 blue", "Game 1: 3 purple"} {
		if _, err := parseCubeGame(line); err == nil {
			t.Errorf("parseCubeGame(%q): got nil error", line)
		}
	}
}

func TestDay02(t *testing.T) {
	d := day02{"testdata/02.txt"}
	checkPart(t, "part 1", d.Part1, 8)
	checkPart(t, "part 2", d.Part2, 2286)
}

func TestDay03(t *testing.T) {
	d := day03{"testdata/03.txt"}
	checkPart(t, "part 1", d.Part1, 4361)
	checkPart(t, "part 2", d.Part2, 467835)
}

func TestCardMatches(t *testing.T) {
	n, err := cardMatches("Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	for _, line := range []string{"Card 1: 1 2 3", "Card 1: 1 x | 2", "Crd 1: 1 | 1"} {
		if _, err := cardMatches(line); err == nil {
			t.Errorf("cardMatches(%q): got nil error", line)
		}
	}
}

func TestDay04(t *testing.T) {
	d := day04{"testdata/04.txt"}
	checkPart(t, "part 1", d.Part1, 13)
	checkPart(t, "part 2", d.Part2, 30)
}

func TestTranslate(t *testing.T) {
	m := []almanacRange{
		{dst: 52, src: 50, n: 48},
		{dst: 50, src: 98, n: 2},
	}
	got := translate(m, []span{{45, 105}, {0, 3}})
	want := []span{{45, 50}, {52, 100}, {50, 52}, {100, 105}, {0, 3}}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("translate: got %v; want %v\n%s", got, want, diff)
	}
}

func TestDay05(t *testing.T) {
	d := day05{"testdata/05.txt"}
	checkPart(t, "part 1", d.Part1, 35)
	checkPart(t, "part 2", d.Part2, 46)
}

func TestWinCount(t *testing.T) {
	for _, tt := range []struct {
		r    boatRace
		want int64
	}{
		{boatRace{7, 9}, 4},
		{boatRace{15, 40}, 8},
		{boatRace{30, 200}, 9},
		{boatRace{71530, 940200}, 71503},
		{boatRace{4, 4}, 0},
		{boatRace{4, 3}, 1},
		{boatRace{0, 0}, 0},
	} {
		if got := tt.r.winCount(); got != tt.want {
			t.Errorf("%+v: got %d; want %d", tt.r, got, tt.want)
		}
	}
}

func TestDay06(t *testing.T) {
	d := day06{"testdata/06.txt"}
	checkPart(t, "part 1", d.Part1, 288)
	checkPart(t, "part 2", d.Part2, 71503)
}

func TestHandKind(t *testing.T) {
	for _, tt := range []struct {
		cards     string
		kind      handType
		jokerKind handType
	}{
		{"32T3K", onePair, onePair},
		{"KK677", twoPair, twoPair},
		{"T55J5", threeOfAKind, fourOfAKind},
		{"KTJJT", twoPair, fourOfAKind},
		{"QQQJA", threeOfAKind, fourOfAKind},
		{"JJJJJ", fiveOfAKind, fiveOfAKind},
		{"23456", highCard, highCard},
		{"2345J", highCard, onePair},
		{"AAKKK", fullHouse, fullHouse},
		{"AAKKJ", twoPair, fullHouse},
	} {
		h := camelHand{cards: tt.cards}
		if got := h.kind(false); got != tt.kind {
			t.Errorf("%s: got kind %d; want %d", tt.cards, got, tt.kind)
		}
		if got := h.kind(true); got != tt.jokerKind {
			t.Errorf("%s with jokers: got kind %d; want %d", tt.cards, got, tt.jokerKind)
		}
	}
}

func TestDay07(t *testing.T) {
	d := day07{"testdata/07.txt"}
	checkPart(t, "part 1", d.Part1, 6440)
	checkPart(t, "part 2", d.Part2, 5905)
}

func TestCombine(t *testing.T) {
	for _, tt := range []struct {
		r1, m1, r2, m2 int64
		r, m           int64
		ok             bool
	}{
		{1, 2, 3, 6, 3, 6, true},
		{2, 3, 3, 5, 8, 15, true},
		{0, 1, 4, 7, 4, 7, true},
		{0, 2, 3, 6, 0, 0, false},
	} {
		r, m, ok, err := combine(tt.r1, tt.m1, tt.r2, tt.m2)
		require.NoError(t, err)
		if r != tt.r || m != tt.m || ok != tt.ok {
			t.Errorf("combine(%d, %d, %d, %d): got (%d, %d, %t); want (%d, %d, %t)",
				tt.r1, tt.m1, tt.r2, tt.m2, r, m, ok, tt.r, tt.m, tt.ok)
		}
	}
	_, _, _, err := combine(0, 1<<40, 0, 1<<40+1)
	assert.ErrorIs(t, err, errLCMOverflow)
}

func TestDay08(t *testing.T) {
	checkPart(t, "RL", day08{"testdata/08a.txt"}.Part1, 2)
	checkPart(t, "LLR", day08{"testdata/08b.txt"}.Part1, 6)
	checkPart(t, "ghosts", day08{"testdata/08c.txt"}.Part2, 6)
	checkPart(t, "RL ghost", day08{"testdata/08a.txt"}.Part2, 2)
	checkPart(t, "Z before the cycle", day08{"testdata/08d.txt"}.Part2, 1)

	_, err := day08{"testdata/08c.txt"}.Part1()
	assert.Error(t, err)
	_, err = day08{"testdata/08e.txt"}.Part2()
	assert.Error(t, err)
}

func TestExtrapolate(t *testing.T) {
	for _, tt := range []struct {
		seq        []int64
		prev, next int64
	}{
		{[]int64{0, 3, 6, 9, 12, 15}, -3, 18},
		{[]int64{10, 13, 16, 21, 30, 45}, 5, 68},
		{[]int64{5}, 5, 5},
		{[]int64{-1, -2, -3}, 0, -4},
	} {
		prev, next := extrapolate(tt.seq)
		if prev != tt.prev || next != tt.next {
			t.Errorf("extrapolate(%v): got (%d, %d); want (%d, %d)", tt.seq, prev, next, tt.prev, tt.next)
		}
	}
}

func TestDay09(t *testing.T) {
	d := day09{"testdata/09.txt"}
	checkPart(t, "part 1", d.Part1, 114)
	checkPart(t, "part 2", d.Part2, 2)
}

func TestDay10(t *testing.T) {
	checkPart(t, "simple loop", day10{"testdata/10a.txt"}.Part1, 4)
	checkPart(t, "complex loop", day10{"testdata/10b.txt"}.Part1, 8)
	checkPart(t, "pipe pointing at S", day10{"testdata/10g.txt"}.Part1, 4)
	for _, tt := range []struct {
		file string
		want int
	}{
		{"testdata/10a.txt", 1},
		{"testdata/10c.txt", 4},
		{"testdata/10d.txt", 4},
		{"testdata/10e.txt", 8},
		{"testdata/10f.txt", 10},
		{"testdata/10g.txt", 1},
	} {
		checkPart(t, tt.file, day10{puzzle.Input(tt.file)}.Part2, tt.want)
	}
}

func TestPipeMazeErrors(t *testing.T) {
	for _, rows := range [][]string{
		{"...", "...", "..."},
		{".|.", "-S-", ".|."},
		{"...", ".S-", "..."},
		{"S.S", "...", "..."},
		{"F7.", "|S-", "L-J"},
	} {
		if _, err := parsePipeMaze(rows); err == nil {
			t.Errorf("parsePipeMaze(%q): got nil error", rows)
		}
	}
}
