/*
Package check runs tables of literal assertions and reports one pass/fail
verdict per group.

# Output

For every group the runner prints a single line:

	getBits tests: pass

followed, once all groups ran, by a summary:

	9 functions out of a total of 10 passed their tests

In verbose mode every failing assertion is also printed with its expected and
actual values in hexadecimal. With ExitOnFail the run stops at the first
failing assertion and Run returns ErrAborted.
*/
package check

import (
	"errors"
	"fmt"
	"io"
)

// ErrAborted is returned by Run when ExitOnFail stopped the run early.
var ErrAborted = errors.New("aborted after first failed test")

const (
	ansiRed   = "\x1B[31m"
	ansiGreen = "\x1B[32m"
	ansiReset = "\x1B[0m"
)

// Options control what the runner prints and when it stops.
type Options struct {
	Verbose    bool // print every failing assertion
	ExitOnFail bool // stop at the first failing assertion
	Color      bool // wrap verdicts in ANSI colour codes
}

// Summary is the outcome of a run.
type Summary struct {
	Passed int
	Total  int
	Traces map[string]Trace
}

// Runner evaluates groups and writes a report.
type Runner struct {
	Out  io.Writer
	Opts Options
}

// NewRunner creates a new Runner writing to out.
func NewRunner(out io.Writer, opts Options) *Runner {
	return &Runner{Out: out, Opts: opts}
}

// Run evaluates every group in order.
// A failed assertion is not an error; only an ExitOnFail abort or a write
// failure is.
func (r *Runner) Run(groups []Group) (Summary, error) {
	sum := Summary{
		Total:  len(groups),
		Traces: make(map[string]Trace, len(groups)),
	}

	for _, g := range groups {
		trace, err := r.runGroup(g)
		sum.Traces[g.Name] = trace
		if err != nil {
			return sum, err
		}

		ok := trace.IsSuccess()
		if ok {
			sum.Passed++
		}
		if _, err := fmt.Fprintf(r.Out, "%s tests:%s\n", g.Name, r.verdict(ok)); err != nil {
			return sum, fmt.Errorf("write report: %w", err)
		}
	}

	if _, err := fmt.Fprintf(r.Out, "\n%d functions out of a total of %d passed their tests\n", sum.Passed, sum.Total); err != nil {
		return sum, fmt.Errorf("write report: %w", err)
	}
	return sum, nil
}

func (r *Runner) runGroup(g Group) (Trace, error) {
	trace := make(Trace, 0, len(g.Assertions))

	for _, a := range g.Assertions {
		res := Result{Assertion: a, Passed: a.Passed()}
		trace = append(trace, res)
		if res.Passed {
			continue
		}

		if r.Opts.Verbose || r.Opts.ExitOnFail {
			if _, err := fmt.Fprintln(r.Out, res.Describe(g.Name)); err != nil {
				return trace, fmt.Errorf("write report: %w", err)
			}
		}

		if r.Opts.ExitOnFail {
			if _, err := fmt.Fprintln(r.Out, "Aborting after first failed test"); err != nil {
				return trace, fmt.Errorf("write report: %w", err)
			}
			return trace, fmt.Errorf("%s: %w", g.Name, ErrAborted)
		}
	}

	return trace, nil
}

func (r *Runner) verdict(ok bool) string {
	word, color := " fail ", ansiRed
	if ok {
		word, color = " pass ", ansiGreen
	}
	if !r.Opts.Color {
		return word
	}
	return color + word + ansiReset
}
