package y2020

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cespare/aoc/puzzle"
)

func checkPart(t *testing.T, name string, part func() (any, error), want any) {
	t.Helper()
	got, err := part()
	require.NoError(t, err, name)
	assert.EqualValues(t, want, got, name)
}

func TestRegistered(t *testing.T) {
	for day := 1; day <= 15; day++ {
		if _, ok := puzzle.Lookup(2020, day); !ok {
			t.Errorf("2020 day %d is not registered", day)
		}
	}
}

func TestDay01(t *testing.T) {
	d := day01{"testdata/01.txt"}
	checkPart(t, "part 1", d.Part1, 514579)
	checkPart(t, "part 2", d.Part2, 241861950)
}

func TestParsePasswordPolicy(t *testing.T) {
	got, err := parsePasswordPolicy("2-9 c: ccccccccc")
	require.NoError(t, err)
	want := passwordPolicy{lo: 2, hi: 9, c: 'c', pw: "ccccccccc"}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("got %# v; want %# v\n%s", pretty.Formatter(got), pretty.Formatter(want), diff)
	}
	for _, line := range []string{"", "1-3 a abcde", "13 a: x", "3-1 a: abc", "1-3 ab: abc"} {
		if _, err := parsePasswordPolicy(line); err == nil {
			t.Errorf("parsePasswordPolicy(%q): got nil error", line)
		}
	}
}

func TestDay02(t *testing.T) {
	d := day02{"testdata/02.txt"}
	checkPart(t, "part 1", d.Part1, 2)
	checkPart(t, "part 2", d.Part2, 1)
}

func TestDay03(t *testing.T) {
	d := day03{"testdata/03.txt"}
	checkPart(t, "part 1", d.Part1, 7)
	checkPart(t, "part 2", d.Part2, 336)
}

func TestDay04(t *testing.T) {
	d := day04{"testdata/04.txt"}
	checkPart(t, "part 1", d.Part1, 2)
	checkPart(t, "part 2", d.Part2, 2)
	checkPart(t, "invalid", day04{"testdata/04invalid.txt"}.Part2, 0)
	checkPart(t, "valid", day04{"testdata/04valid.txt"}.Part2, 4)
}

func TestPassportRules(t *testing.T) {
	for _, tt := range []struct {
		field, value string
		want         bool
	}{
		{"byr", "2002", true},
		{"byr", "2003", false},
		{"hgt", "60in", true},
		{"hgt", "190cm", true},
		{"hgt", "190in", false},
		{"hgt", "190", false},
		{"hcl", "#123abc", true},
		{"hcl", "#123abz", false},
		{"hcl", "123abc", false},
		{"ecl", "brn", true},
		{"ecl", "wat", false},
		{"pid", "000000001", true},
		{"pid", "0123456789", false},
		{"pid", "+12345678", false},
	} {
		if got := passportRules[tt.field](tt.value); got != tt.want {
			t.Errorf("%s:%s: got %t; want %t", tt.field, tt.value, got, tt.want)
		}
	}
}

func TestSeatID(t *testing.T) {
	for _, tt := range []struct {
		pass string
		want int
	}{
		{"FBFBBFFRLR", 357},
		{"BFFFBBFRRR", 567},
		{"FFFBBBFRRR", 119},
		{"BBFFBBFRLL", 820},
	} {
		got, err := seatID(tt.pass)
		if err != nil {
			t.Errorf("seatID(%q): %s", tt.pass, err)
			continue
		}
		if got != tt.want {
			t.Errorf("seatID(%q): got %d; want %d", tt.pass, got, tt.want)
		}
	}
	for _, pass := range []string{"FBFBBFF", "FBFBBFFRLX", "RBFBBFFRLR"} {
		if _, err := seatID(pass); err == nil {
			t.Errorf("seatID(%q): got nil error", pass)
		}
	}
}

func TestDay05(t *testing.T) {
	checkPart(t, "part 1", day05{"testdata/05.txt"}.Part1, 820)
	checkPart(t, "part 2", day05{"testdata/05b.txt"}.Part2, 103)
	_, err := day05{"testdata/05.txt"}.Part2()
	assert.Error(t, err)
}

func TestDay06(t *testing.T) {
	d := day06{"testdata/06.txt"}
	checkPart(t, "part 1", d.Part1, 11)
	checkPart(t, "part 2", d.Part2, 6)
}

func TestParseBagRule(t *testing.T) {
	color, contents, err := parseBagRule("muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.")
	require.NoError(t, err)
	assert.Equal(t, "muted yellow", color)
	assert.Equal(t, []bagCount{{2, "shiny gold"}, {9, "faded blue"}}, contents)

	color, contents, err = parseBagRule("faded blue bags contain no other bags.")
	require.NoError(t, err)
	assert.Equal(t, "faded blue", color)
	assert.Empty(t, contents)

	_, _, err = parseBagRule("faded blue bags hold nothing.")
	assert.Error(t, err)
}

func TestDay07(t *testing.T) {
	d := day07{"testdata/07.txt"}
	checkPart(t, "part 1", d.Part1, 4)
	checkPart(t, "part 2", d.Part2, 32)
	checkPart(t, "deep", day07{"testdata/07b.txt"}.Part2, 126)
}

func TestDay08(t *testing.T) {
	d := day08{"testdata/08.txt"}
	checkPart(t, "part 1", d.Part1, 5)
	checkPart(t, "part 2", d.Part2, 8)
}

func TestDay09(t *testing.T) {
	d := day09{Input: "testdata/09.txt", preamble: 5}
	checkPart(t, "part 1", d.Part1, 127)
	checkPart(t, "part 2", d.Part2, 62)
}

func TestDay10(t *testing.T) {
	for _, tt := range []struct {
		file         string
		product, arr int64
	}{
		{"testdata/10a.txt", 35, 8},
		{"testdata/10b.txt", 220, 19208},
	} {
		d := day10{puzzle.Input(tt.file)}
		checkPart(t, tt.file, d.Part1, tt.product)
		checkPart(t, tt.file, d.Part2, tt.arr)
	}
}

func TestDay11(t *testing.T) {
	d := day11{"testdata/11.txt"}
	checkPart(t, "part 1", d.Part1, 37)
	checkPart(t, "part 2", d.Part2, 26)
}

func TestDay12(t *testing.T) {
	d := day12{"testdata/12.txt"}
	checkPart(t, "part 1", d.Part1, 25)
	checkPart(t, "part 2", d.Part2, 286)
}

func TestDay13(t *testing.T) {
	d := day13{"testdata/13.txt"}
	checkPart(t, "part 1", d.Part1, 295)
	checkPart(t, "part 2", d.Part2, 1068781)
}

func TestCRT(t *testing.T) {
	for _, tt := range []struct {
		buses string
		want  int64
	}{
		{"17,x,13,19", 3417},
		{"67,7,59,61", 754018},
		{"67,x,7,59,61", 779210},
		{"67,7,x,59,61", 1261476},
		{"1789,37,47,1889", 1202161486},
	} {
		s, err := parseSchedule([]string{"0", tt.buses})
		require.NoError(t, err)
		var rems, mods []int64
		for _, i := range s.order {
			rems = append(rems, (s.buses[i]-int64(i)%s.buses[i])%s.buses[i])
			mods = append(mods, s.buses[i])
		}
		got, err := crt(rems, mods)
		require.NoError(t, err)
		if got != tt.want {
			t.Errorf("%s: got %d; want %d", tt.buses, got, tt.want)
		}
	}

	// The product of these moduli is more than 2^62, so the naive
	// products in the sum overflow an int64.
	mods := []int64{3000000019, 3000000037}
	rems := []int64{5, 3000000000}
	got, err := crt(rems, mods)
	require.NoError(t, err)
	for i, m := range mods {
		assert.Equal(t, rems[i], got%m, "residue mod %d", m)
	}

	_, err = crt([]int64{0, 1}, []int64{6, 4})
	assert.Error(t, err)
}

func TestDay14(t *testing.T) {
	checkPart(t, "part 1", day14{"testdata/14a.txt"}.Part1, 165)
	checkPart(t, "part 2", day14{"testdata/14b.txt"}.Part2, 208)
}

func TestSpoken(t *testing.T) {
	for _, tt := range []struct {
		start []int
		want  int
	}{
		{[]int{0, 3, 6}, 436},
		{[]int{1, 3, 2}, 1},
		{[]int{2, 1, 3}, 10},
		{[]int{1, 2, 3}, 27},
		{[]int{2, 3, 1}, 78},
		{[]int{3, 2, 1}, 438},
		{[]int{3, 1, 2}, 1836},
	} {
		got, err := spoken(tt.start, 2020)
		require.NoError(t, err)
		if got != tt.want {
			t.Errorf("spoken(%v, 2020): got %d; want %d", tt.start, got, tt.want)
		}
	}
	got, err := spoken([]int{0, 3, 6}, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
	got, err = spoken([]int{0, 3, 6}, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestDay15(t *testing.T) {
	d := day15{"testdata/15.txt"}
	checkPart(t, "part 1", d.Part1, 436)
	if testing.Short() {
		t.Skip("skipping 30 million turns in short mode")
	}
	checkPart(t, "part 2", d.Part2, 175594)
}
