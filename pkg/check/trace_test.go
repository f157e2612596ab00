package check

import (
	"testing"

	"github.com/gregLibert/bit-tools/pkg/bits"
)

func TestAssertion_Passed(t *testing.T) {
	tests := []struct {
		name string
		a    Assertion
		want bool
	}{
		{"Equal Words", Assertion{Got: bits.Word(0x88), Want: bits.Word(0x88)}, true},
		{"Different Words", Assertion{Got: bits.Word(0x88), Want: bits.Word(0x77)}, false},
		{"Equal Bools", Assertion{Got: true, Want: true}, true},
		{"Different Bools", Assertion{Got: false, Want: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Passed(); got != tt.want {
				t.Errorf("Passed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{bits.Word(0x1122334455667788), "1122334455667788"},
		{bits.Word(0), "0"},
		{true, "1"},
		{false, "0"},
		{nil, "<nil>"},
	}

	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%v) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrace(t *testing.T) {
	var empty Trace
	if empty.IsSuccess() {
		t.Error("an empty trace should not be a success")
	}
	if empty.Last() != nil {
		t.Error("Last() of an empty trace should be nil")
	}

	pass := Result{Assertion: Assertion{Expr: "a"}, Passed: true}
	fail := Result{Assertion: Assertion{Expr: "b"}, Passed: false}

	tr := Trace{pass, fail, pass}
	if tr.IsSuccess() {
		t.Error("a trace with a failure should not be a success")
	}
	if !(Trace{pass, pass}).IsSuccess() {
		t.Error("an all-pass trace should be a success")
	}
	if last := tr.Last(); last == nil || last.Assertion.Expr != "a" {
		t.Errorf("Last() = %+v; want result for a", last)
	}
}

func TestResult_Describe(t *testing.T) {
	r := Result{Assertion: Assertion{
		Expr: "GetByte(0x1234567821436587, 0x9)",
		Got:  bits.Word(0x12),
		Want: bits.Word(0),
	}}
	want := "getByte: failed on GetByte(0x1234567821436587, 0x9), Expected 0, Got 12"
	if got := r.Describe("getByte"); got != want {
		t.Errorf("Describe() = %q; want %q", got, want)
	}
}
