// Package puzzle holds the little that the daily solutions share: the
// Problem interface, reading of input files, the registry of days, and a
// runner that times both parts and prints them.
package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// A Problem is a single day's puzzle. It is constructed from the path to
// its input and computes the two answers on demand.
//
// An answer is usually an integer. It may be a string when the puzzle asks
// for something that isn't a number (a rendered image, for instance).
type Problem interface {
	Part1() (any, error)
	Part2() (any, error)
}

// ErrNotImplemented is returned by a part that has no solution.
var ErrNotImplemented = errors.New("not implemented")

// Input is the path of a puzzle input file.
// Solutions embed it and call Lines or Raw from each part.
type Input string

// Path returns the file name.
func (in Input) Path() string { return string(in) }

// Lines reads the file and returns its lines without line terminators.
// A trailing newline does not produce a final empty line.
func (in Input) Lines() ([]string, error) {
	f, err := os.Open(string(in))
	if err != nil {
		return nil, fmt.Errorf("cannot read input: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", in, err)
	}
	return lines, nil
}

// Raw reads the whole file. CRLF line endings are converted to LF.
func (in Input) Raw() (string, error) {
	b, err := os.ReadFile(string(in))
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return strings.ReplaceAll(string(b), "\r\n", "\n"), nil
}
