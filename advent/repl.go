package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/cespare/aoc/puzzle"
)

// interact reads selectors from a prompt and runs them until EOF or quit.
func (r *runner) interact() error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "aoc> ",
		HistoryFile: filepath.Join(os.TempDir(), "aoc-history.txt"),
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		if quit := r.command(l.Stdout(), line); quit {
			return nil
		}
	}
}

// command runs one line of interactive input. It reports whether the
// session should end.
func (r *runner) command(w io.Writer, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	r.out = w
	switch fields[0] {
	case "quit", "exit":
		return true
	case "list":
		listDays(w)
		return false
	case "all":
		r.runAll(selected(r.cfg.year))
		return false
	case "help":
		fmt.Fprintln(w, "Enter selectors (2020/13, or 13 for the current year), all, list, or quit.")
		return false
	}
	var keys []puzzle.Key
	for _, f := range fields {
		k, err := puzzle.ParseKey(f, r.cfg.year)
		if err != nil {
			r.log.Error().Err(err).Msg("Bad selector")
			return false
		}
		keys = append(keys, k)
	}
	r.runAll(keys)
	return false
}
