package interpreter

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2/lexer"
)

// Result is the outcome of one expect statement.
type Result struct {
	Pos     lexer.Position
	Pattern string
	Input   string
	Want    bool
	Got     bool
}

func (r Result) Passed() bool { return r.Want == r.Got }

func verdict(b bool) string {
	if b {
		return "accept"
	}
	return "reject"
}

// Report accumulates expectation results across scripts.
type Report struct {
	Passed   int
	Failures []Result
}

func (r *Report) Record(res Result) {
	if res.Passed() {
		r.Passed++
		return
	}
	r.Failures = append(r.Failures, res)
}

func (r *Report) Failed() int { return len(r.Failures) }

// Write prints each failure followed by a summary line.
func (r *Report) Write(w io.Writer) error {
	for _, f := range r.Failures {
		if _, err := fmt.Fprintf(w, "FAIL %s: %q on %q: want %s, got %s\n",
			f.Pos, f.Pattern, f.Input, verdict(f.Want), verdict(f.Got)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d passed, %d failed\n", r.Passed, r.Failed())
	return err
}
