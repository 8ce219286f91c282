package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/rs/zerolog"

	"github.com/cespare/aoc/puzzle"
)

// A runner runs selected days against their input files.
type runner struct {
	cfg     config
	answers answerKey // nil unless checking
	out     io.Writer
	log     zerolog.Logger
}

// run runs one day and reports whether it succeeded: the input was
// readable, neither part failed, and the answers matched.
func (r *runner) run(k puzzle.Key) bool {
	New, ok := puzzle.Lookup(k.Year, k.Day)
	if !ok {
		r.log.Error().Stringer("puzzle", k).Msg("No solution for this day")
		return false
	}
	path := r.cfg.inputPath(k.Year, k.Day)
	fi, err := os.Stat(path)
	if err != nil {
		r.log.Error().Err(err).Stringer("puzzle", k).Msg("Cannot read input")
		return false
	}
	r.log.Debug().
		Stringer("puzzle", k).
		Str("input", path).
		Str("size", humanize.Bytes(uint64(fi.Size()))).
		Msg("Running")

	fmt.Fprintf(r.out, "%s\n", k)
	report := puzzle.Run(r.out, New(puzzle.Input(path)))
	if report.MaxRSS > 0 {
		r.log.Debug().
			Stringer("puzzle", k).
			Str("maxrss", humanize.Bytes(uint64(report.MaxRSS))).
			Msg("Finished")
	}
	if e := r.log.Debug(); e.Enabled() {
		e.Msg(pretty.Sprintf("%# v", report))
	}

	ok = true
	for i, part := range report.Parts {
		if part.Failed() {
			r.log.Error().Err(part.Err).Stringer("puzzle", k).Int("part", i+1).Msg("Part failed")
			ok = false
		}
	}
	for _, m := range r.answers.check(k, report) {
		r.log.Error().Msg("Wrong answer: " + m)
		ok = false
	}
	return ok
}

// runAll runs each key in turn and reports whether all of them succeeded.
func (r *runner) runAll(keys []puzzle.Key) bool {
	ok := true
	for _, k := range keys {
		if !r.run(k) {
			ok = false
		}
	}
	return ok
}

// selected returns the registered days of year, or every registered day
// if year is zero.
func selected(year int) []puzzle.Key {
	var keys []puzzle.Key
	for _, k := range puzzle.Days() {
		if year == 0 || k.Year == year {
			keys = append(keys, k)
		}
	}
	return keys
}

// listDays writes the registered days, one line per year.
func listDays(w io.Writer) {
	for _, year := range puzzle.Years() {
		fmt.Fprintf(w, "  %d:", year)
		for _, k := range selected(year) {
			fmt.Fprintf(w, " %d", k.Day)
		}
		fmt.Fprintln(w)
	}
}
