package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/cespare/aoc/puzzle"
)

type lineCount struct{ puzzle.Input }

func (d lineCount) Part1() (any, error) {
	lines, err := d.Lines()
	return len(lines), err
}

func (d lineCount) Part2() (any, error) { return nil, puzzle.ErrNotImplemented }

func init() {
	puzzle.Register(1999, 1, func(in puzzle.Input) puzzle.Problem { return lineCount{in} })
}

func testRunner(t *testing.T) (*runner, *bytes.Buffer) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "1999", "01.txt"), "a\nb\n")
	var out bytes.Buffer
	return &runner{
		cfg: config{inputDir: dir, pattern: defaultPattern},
		out: &out,
		log: zerolog.Nop(),
	}, &out
}

func TestRun(t *testing.T) {
	r, out := testRunner(t)
	assert.True(t, r.run(puzzle.Key{Year: 1999, Day: 1}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if assert.Len(t, lines, 3) {
		assert.Equal(t, "1999/1", lines[0])
		assert.Regexp(t, `^  \| Part1 \([0-9,]+µs\): 2$`, lines[1])
		assert.Regexp(t, `^  \| Part2 \([0-9,]+µs\): not implemented$`, lines[2])
	}

	assert.False(t, r.run(puzzle.Key{Year: 1999, Day: 2}), "unregistered day")

	r.cfg.inputDir = t.TempDir()
	assert.False(t, r.run(puzzle.Key{Year: 1999, Day: 1}), "missing input")
}

func TestRunCheck(t *testing.T) {
	r, _ := testRunner(t)
	two, three := "2", "3"
	r.answers = answerKey{{Year: 1999, Day: 1}: {Part1: &two}}
	assert.True(t, r.run(puzzle.Key{Year: 1999, Day: 1}))
	r.answers = answerKey{{Year: 1999, Day: 1}: {Part1: &three}}
	assert.False(t, r.run(puzzle.Key{Year: 1999, Day: 1}))
}

func TestCommand(t *testing.T) {
	r, _ := testRunner(t)
	r.cfg.year = 1999
	var out bytes.Buffer
	assert.False(t, r.command(&out, "1"))
	assert.Contains(t, out.String(), "1999/1\n")

	out.Reset()
	assert.False(t, r.command(&out, "list"))
	assert.Contains(t, out.String(), "  1999: 1\n")
	assert.Contains(t, out.String(), "  2020: 1 2 3")

	out.Reset()
	assert.False(t, r.command(&out, "2020/x"))
	assert.Empty(t, out.String())

	assert.True(t, r.command(&out, "quit"))
	assert.False(t, r.command(&out, "   "))
}
