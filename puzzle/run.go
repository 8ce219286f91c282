package puzzle

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// A PartResult is the outcome of running one part.
type PartResult struct {
	Answer  any
	Err     error
	Elapsed time.Duration
}

// Failed reports whether the part returned an error other than
// ErrNotImplemented.
func (r PartResult) Failed() bool {
	return r.Err != nil && !errors.Is(r.Err, ErrNotImplemented)
}

// A Report collects the results of running a Problem.
type Report struct {
	Parts [2]PartResult
	// MaxRSS is the peak resident set size of the process, in bytes, after
	// both parts ran. It is zero where the platform doesn't report it.
	MaxRSS int64
}

// Failed reports whether either part failed.
func (r Report) Failed() bool {
	return r.Parts[0].Failed() || r.Parts[1].Failed()
}

var printer = message.NewPrinter(language.English)

// Run runs both parts of p in order and writes one line per part to w,
// indented by two spaces:
//
//	| Part1 (1,234µs): 514579
//
// Answers that span several lines are written below the part line.
func Run(w io.Writer, p Problem) Report {
	var r Report
	for i, part := range []func() (any, error){p.Part1, p.Part2} {
		start := time.Now()
		v, err := part()
		r.Parts[i] = PartResult{Answer: v, Err: err, Elapsed: time.Since(start)}
		writePart(w, i+1, r.Parts[i])
	}
	r.MaxRSS = maxRSS()
	return r
}

func writePart(w io.Writer, n int, r PartResult) {
	prefix := printer.Sprintf("  | Part%d (%dµs): ", n, r.Elapsed.Microseconds())
	switch {
	case errors.Is(r.Err, ErrNotImplemented):
		fmt.Fprintf(w, "%snot implemented\n", prefix)
	case r.Err != nil:
		fmt.Fprintf(w, "%serror: %s\n", prefix, r.Err)
	default:
		s := fmt.Sprint(r.Answer)
		if !strings.Contains(s, "\n") {
			fmt.Fprintf(w, "%s%s\n", prefix, s)
			return
		}
		fmt.Fprintln(w, strings.TrimRight(prefix, " "))
		for _, line := range strings.Split(s, "\n") {
			fmt.Fprintf(w, "  |   %s\n", line)
		}
	}
}
