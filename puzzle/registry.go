package puzzle

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// A Key names one day of one event.
type Key struct {
	Year int
	Day  int
}

func (k Key) String() string { return fmt.Sprintf("%d/%d", k.Year, k.Day) }

// Less orders keys by year and then by day.
func (k Key) Less(k1 Key) bool {
	if k.Year != k1.Year {
		return k.Year < k1.Year
	}
	return k.Day < k1.Day
}

// ParseKey parses a selector of the form "2020/13". A bare day such as "13"
// is resolved against defaultYear, which must then be nonzero.
func ParseKey(s string, defaultYear int) (Key, error) {
	year := defaultYear
	dayStr := s
	if y, d, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.Atoi(y)
		if err != nil || n < 2015 {
			return Key{}, fmt.Errorf("bad year in %q", s)
		}
		year = n
		dayStr = d
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 25 {
		return Key{}, fmt.Errorf("bad day in %q", s)
	}
	if year == 0 {
		return Key{}, fmt.Errorf("no year given for %q", s)
	}
	return Key{Year: year, Day: day}, nil
}

// A Constructor makes the Problem for one input file.
type Constructor func(Input) Problem

var registry = make(map[Key]Constructor)

// Register records the constructor for a day. It is meant to be called from
// init functions and panics if the day is already registered.
func Register(year, day int, New Constructor) {
	k := Key{Year: year, Day: day}
	if _, ok := registry[k]; ok {
		panic(fmt.Sprintf("duplicate registration of %s", k))
	}
	registry[k] = New
}

// Lookup returns the constructor for a day, if there is one.
func Lookup(year, day int) (Constructor, bool) {
	New, ok := registry[Key{Year: year, Day: day}]
	return New, ok
}

// Days lists the registered days in order.
func Days() []Key {
	keys := maps.Keys(registry)
	slices.SortFunc(keys, func(a, b Key) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return keys
}

// Years lists the years that have at least one registered day.
func Years() []int {
	var years []int
	for _, k := range Days() {
		if len(years) == 0 || years[len(years)-1] != k.Year {
			years = append(years, k.Year)
		}
	}
	return years
}
