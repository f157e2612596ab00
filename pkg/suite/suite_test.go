package suite

import (
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/gregLibert/bit-tools/pkg/bits"
)

func TestAll_Order(t *testing.T) {
	c := qt.New(t)

	var names []string
	for _, g := range All() {
		names = append(names, g.Name)
	}
	c.Assert(names, qt.DeepEquals, []string{
		"buildLong", "getByte", "getBits", "setBits", "clearBits",
		"sign", "addOverflow", "subOverflow", "setByte", "copyBits",
	})
}

func TestAll_EveryVectorPasses(t *testing.T) {
	t.Parallel()

	for _, g := range All() {
		c := qt.New(t)
		c.Assert(g.Assertions, qt.Not(qt.HasLen), 0, qt.Commentf("group %s is empty", g.Name))

		for i, a := range g.Assertions {
			t.Run(fmt.Sprintf("%s-%d", g.Name, i), func(t *testing.T) {
				qt.Assert(t, a.Got, qt.Equals, a.Want, qt.Commentf("%s", a.Expr))
			})
		}
	}
}

func TestAll_VectorCounts(t *testing.T) {
	want := map[string]int{
		"buildLong":   7,
		"getByte":     21,
		"getBits":     14,
		"setBits":     17,
		"clearBits":   9,
		"sign":        5,
		"addOverflow": 6,
		"subOverflow": 7,
		"setByte":     23,
		"copyBits":    8,
	}
	for _, g := range All() {
		qt.Assert(t, g.Assertions, qt.HasLen, want[g.Name], qt.Commentf("group %s", g.Name))
	}
}

func TestOctets(t *testing.T) {
	c := qt.New(t)

	c.Assert(Octets("11 22 33 44 55 66 77 88"), qt.Equals,
		[bits.WordBytes]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88})
	c.Assert(Octets("ffFF0000 00000000"), qt.Equals,
		[bits.WordBytes]byte{0xff, 0xff, 0, 0, 0, 0, 0, 0})

	c.Assert(func() { Octets("ZZ") }, qt.PanicMatches, `invalid input 'ZZ'.*`)
	c.Assert(func() { Octets("11 22") }, qt.PanicMatches, `invalid input '1122': word needs exactly 8 bytes: got 2`)
}
