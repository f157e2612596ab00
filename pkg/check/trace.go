package check

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// ASSERTION:
// An Assertion pairs a rendered call (e.g. "GetBits(0x1122334455667788, 0x0, 0x7)")
// with the value it produced and the value it should have produced.
//
// TRACE:
// A Trace is the chronological list of evaluated assertions for one group.
// The group passes only when every assertion in it passed. When the runner
// aborts on the first failure, the Trace stops at that failure.

// Assertion is a single expected-versus-actual comparison.
type Assertion struct {
	Expr string
	Got  any
	Want any
}

// Passed reports whether Got equals Want.
func (a Assertion) Passed() bool {
	return cmp.Equal(a.Got, a.Want)
}

// Group is the vector table of one function under test.
type Group struct {
	Name       string
	Assertions []Assertion
}

// Result is an evaluated assertion.
type Result struct {
	Assertion Assertion
	Passed    bool
}

// Describe returns the failure line printed in verbose mode.
func (r Result) Describe(group string) string {
	return fmt.Sprintf("%s: failed on %s, Expected %s, Got %s",
		group, r.Assertion.Expr, Hex(r.Assertion.Want), Hex(r.Assertion.Got))
}

// Trace is the ordered log of results for one group.
type Trace []Result

// Last returns the final result of the trace.
// Returns nil if the trace is empty.
func (t Trace) Last() *Result {
	if len(t) == 0 {
		return nil
	}
	return &t[len(t)-1]
}

// IsSuccess checks that the trace is non-empty and every result passed.
func (t Trace) IsSuccess() bool {
	if len(t) == 0 {
		return false
	}
	for _, r := range t {
		if !r.Passed {
			return false
		}
	}
	return true
}

// Hex renders a result value in hexadecimal without a prefix.
// Booleans render as 1 or 0.
func Hex(v any) string {
	switch x := v.(type) {
	case bool:
		if x {
			return "1"
		}
		return "0"
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%x", x)
	}
}
