package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cespare/aoc/puzzle"
)

// An answerKey holds known answers. In the file they are keyed by
// selectors like "2020/13"; missing parts aren't checked.
//
//	2020/13:
//	  part1: 295
//	  part2: 1068781
type answerKey map[puzzle.Key]answers

type answers struct {
	Part1 *string `yaml:"part1"`
	Part2 *string `yaml:"part2"`
}

func loadAnswers(path string) (answerKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]answers
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing answers (%s): %s", path, err)
	}
	key := make(answerKey, len(raw))
	for s, a := range raw {
		k, err := puzzle.ParseKey(s, 0)
		if err != nil {
			return nil, fmt.Errorf("%s: %s", path, err)
		}
		if _, ok := key[k]; ok {
			return nil, fmt.Errorf("%s: more than one entry for %s", path, k)
		}
		key[k] = a
	}
	return key, nil
}

// check compares a report with the known answers for k and describes each
// mismatch. Parts without an answer in the report are skipped.
func (a answerKey) check(k puzzle.Key, r puzzle.Report) []string {
	want, ok := a[k]
	if !ok {
		return nil
	}
	var mismatches []string
	for i, w := range []*string{want.Part1, want.Part2} {
		part := r.Parts[i]
		if w == nil || part.Err != nil {
			continue
		}
		got := fmt.Sprint(part.Answer)
		if exp := strings.TrimRight(*w, "\n"); got != exp {
			mismatches = append(mismatches, fmt.Sprintf("%s part %d: got %q; want %q", k, i+1, got, exp))
		}
	}
	return mismatches
}
