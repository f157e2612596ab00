// Package suite holds the literal vector tables for every function in
// package bits, one check.Group per function.
package suite

import (
	"fmt"

	"github.com/gregLibert/bit-tools/pkg/bits"
	"github.com/gregLibert/bit-tools/pkg/check"
)

// All returns every group in run order.
func All() []check.Group {
	return []check.Group{
		BuildLong(),
		GetByte(),
		GetBits(),
		SetBits(),
		ClearBits(),
		Sign(),
		AddOverflow(),
		SubOverflow(),
		SetByte(),
		CopyBits(),
	}
}

type rangeVector struct {
	source    bits.Word
	low, high int
	want      bits.Word
}

type byteVector struct {
	source  bits.Word
	byteNum int
	want    bits.Word
}

type pairVector struct {
	op1, op2 bits.Word
	want     bool
}

func rangeGroup(name string, fn func(bits.Word, int, int) bits.Word, label string, vectors []rangeVector) check.Group {
	g := check.Group{Name: name}
	for _, v := range vectors {
		g.Assertions = append(g.Assertions, check.Assertion{
			Expr: fmt.Sprintf("%s(%#x, %#x, %#x)", label, uint64(v.source), v.low, v.high),
			Got:  fn(v.source, v.low, v.high),
			Want: v.want,
		})
	}
	return g
}

func byteGroup(name string, fn func(bits.Word, int) bits.Word, label string, vectors []byteVector) check.Group {
	g := check.Group{Name: name}
	for _, v := range vectors {
		g.Assertions = append(g.Assertions, check.Assertion{
			Expr: fmt.Sprintf("%s(%#x, %#x)", label, uint64(v.source), v.byteNum),
			Got:  fn(v.source, v.byteNum),
			Want: v.want,
		})
	}
	return g
}

func pairGroup(name string, fn func(bits.Word, bits.Word) bool, label string, vectors []pairVector) check.Group {
	g := check.Group{Name: name}
	for _, v := range vectors {
		g.Assertions = append(g.Assertions, check.Assertion{
			Expr: fmt.Sprintf("%s(%#x, %#x)", label, uint64(v.op1), uint64(v.op2)),
			Got:  fn(v.op1, v.op2),
			Want: v.want,
		})
	}
	return g
}

// BuildLong assembles words from byte arrays, low-order byte first.
func BuildLong() check.Group {
	vectors := []struct {
		octets string
		want   bits.Word
	}{
		{"11 22 33 44 55 66 77 88", 0x8877665544332211},
		{"88 77 66 55 44 33 22 11", 0x1122334455667788},
		{"78 67 56 45 34 23 12 01", 0x0112233445566778},
		{"08 07 06 05 04 03 02 01", 0x0102030405060708},
		{"80 70 60 50 40 30 20 10", 0x1020304050607080},
		{"00 00 00 00 ff ff ff ff", 0xffffffff00000000},
		{"ff ff ff ff 00 00 00 00", 0x00000000ffffffff},
	}

	g := check.Group{Name: "buildLong"}
	for _, v := range vectors {
		g.Assertions = append(g.Assertions, check.Assertion{
			Expr: fmt.Sprintf("BuildLong([%s])", v.octets),
			Got:  bits.BuildLong(Octets(v.octets)),
			Want: v.want,
		})
	}
	return g
}

// GetByte reads single bytes, including out-of-range byte numbers.
func GetByte() check.Group {
	return byteGroup("getByte", bits.GetByte, "GetByte", []byteVector{
		{0x8877665544332211, 0, 0x11},
		{0x8877665544332211, 1, 0x22},
		{0x8877665544332211, 2, 0x33},
		{0x8877665544332211, 3, 0x44},
		{0x8877665544332211, 4, 0x55},
		{0x8877665544332211, 5, 0x66},
		{0x8877665544332211, 6, 0x77},
		{0x8877665544332211, 7, 0x88},
		{0x1234567821436587, 0, 0x87},
		{0x1234567821436587, 1, 0x65},
		{0x1234567821436587, 2, 0x43},
		{0x1234567821436587, 3, 0x21},
		{0x1234567821436587, 4, 0x78},
		{0x1234567821436587, 5, 0x56},
		{0x1234567821436587, 6, 0x34},
		{0x1234567821436587, 7, 0x12},
		{0x1234567821436587, 8, 0x00},
		{0x1234567821436587, -1, 0x00},
		{0x1234567821436587, 0x7fffffff, 0x00},
		{0x1234567821436587, 9, 0x00},
		{0x1234567821436587, 10, 0x00},
	})
}

// GetBits extracts bit ranges; an invalid range reads as 0.
func GetBits() check.Group {
	return rangeGroup("getBits", bits.GetBits, "GetBits", []rangeVector{
		{0x1122334455667788, 0, 7, 0x88},
		{0x1122334455667788, 8, 0xf, 0x77},
		{0x1122334455667788, 0x10, 0x17, 0x66},
		{0x1122334455667788, 0x18, 0x1f, 0x55},
		{0x1122334455667788, 0x20, 0x27, 0x44},
		{0x1122334455667788, 0x28, 0x2f, 0x33},
		{0x1122334455667788, 0x30, 0x37, 0x22},
		{0x1122334455667788, 0x38, 0x3f, 0x11},
		{0x1122334455667788, 0, 0x3f, 0x1122334455667788},
		{0x1122334455667788, 0x3f, 0, 0},
		{0xffffffffffffffff, 0x3f, 0x3f, 1},
		{0x8000000000000001, 0, 0, 1},
		{0x700000000000000e, 0, 0, 0},
		{0x700000000000000e, 0x3f, 0x3f, 0},
	})
}

// SetBits forces bit ranges to 1; an invalid range is a no-op.
func SetBits() check.Group {
	return rangeGroup("setBits", bits.SetBits, "SetBits", []rangeVector{
		{0x1122334455667788, 0, 7, 0x11223344556677ff},
		{0x1122334455667788, 8, 0xf, 0x112233445566ff88},
		{0x1122334455667788, 0x10, 0x17, 0x1122334455ff7788},
		{0x1122334455667788, 0x18, 0x1f, 0x11223344ff667788},
		{0x1122334455667788, 0x20, 0x27, 0x112233ff55667788},
		{0x1122334455667788, 0x28, 0x2f, 0x1122ff4455667788},
		{0x1122334455667788, 0x30, 0x37, 0x11ff334455667788},
		{0x1122334455667788, 0x38, 0x3f, 0xff22334455667788},
		{0x1122334455667788, 0, 0x3f, 0xffffffffffffffff},
		{0x1122334455667788, 0x3f, 0, 0x1122334455667788},
		{0x7fffffffffffffff, 0x3f, 0x3f, 0xffffffffffffffff},
		{0xfffffffffffffffe, 0, 0, 0xffffffffffffffff},
		{0x0000000000000001, 0x3f, 0x3f, 0x8000000000000001},
		{0x8000000000000001, 0x3f, 0x3f, 0x8000000000000001},
		{0x8000000000000000, 0, 0, 0x8000000000000001},
		{0x8000000000000001, 0, 0, 0x8000000000000001},
		{0x8000000000000001, 2, 3, 0x800000000000000d},
	})
}

// ClearBits forces bit ranges to 0; an invalid range is a no-op.
func ClearBits() check.Group {
	return rangeGroup("clearBits", bits.ClearBits, "ClearBits", []rangeVector{
		{0x1122334455667788, 0, 7, 0x1122334455667700},
		{0x1122334455667788, 4, 7, 0x1122334455667708},
		{0x1122334455667788, 8, 0xf, 0x1122334455660088},
		{0x1122334455667788, 0x10, 0x13, 0x1122334455607788},
		{0x1122334455667789, 0, 0, 0x1122334455667788},
		{0x9122334455667788, 0x3f, 0x3f, 0x1122334455667788},
		{0x1122334455667788, 0x30, 0x3f, 0x0000334455667788},
		{0x1122334455667788, 0x40, 0x3f, 0x1122334455667788},
		{0x1122334455667788, 0x30, 0x40, 0x1122334455667788},
	})
}

// Sign reads the two's-complement sign bit.
func Sign() check.Group {
	vectors := []struct {
		source, want bits.Word
	}{
		{0x1122334455667788, 0},
		{0x8877665544332211, 1},
		{0x0000000000000000, 0},
		{0x1111111111111111, 0},
		{0xffffffffffffffff, 1},
	}

	g := check.Group{Name: "sign"}
	for _, v := range vectors {
		g.Assertions = append(g.Assertions, check.Assertion{
			Expr: fmt.Sprintf("Sign(%#x)", uint64(v.source)),
			Got:  bits.Sign(v.source),
			Want: v.want,
		})
	}
	return g
}

// AddOverflow detects signed overflow of op1 + op2.
func AddOverflow() check.Group {
	return pairGroup("addOverflow", bits.AddOverflow, "AddOverflow", []pairVector{
		{0xffffffffffffffff, 0xffffffffffffffff, false},
		{0x8000000000000000, 0x8000000000000000, true},
		{31, 0x7fffffffffffffe1, true},
		{31, 0x7fffffffffffffe0, false},
		{0xfffffffffffffff1, 0x800000000000000e, true}, // -15
		{0xfffffffffffffff1, 0x800000000000000f, false},
	})
}

// SubOverflow detects signed overflow of op2 - op1.
func SubOverflow() check.Group {
	return pairGroup("subOverflow", bits.SubOverflow, "SubOverflow", []pairVector{
		{0xffffffffffffffff, 0xffffffffffffffff, false},
		{0x0000000000000004, 0x8000000000000003, true},
		{0x8000000000000008, 8, true},
		{0x8000000000000009, 8, false},
		{0x8000000000000000, 0x8000000000000001, false},
		{0x7ffffffffffffff2, 0xfffffffffffffff1, true}, // op2 is -15
		{0x7ffffffffffffff1, 0xfffffffffffffff1, false},
	})
}

// SetByte forces single bytes to 0xff; an out-of-range byte number is a no-op.
func SetByte() check.Group {
	return byteGroup("setByte", bits.SetByte, "SetByte", []byteVector{
		{0x1122334455667788, 0, 0x11223344556677ff},
		{0x1122334455667788, 1, 0x112233445566ff88},
		{0x1122334455667788, 2, 0x1122334455ff7788},
		{0x1122334455667788, 3, 0x11223344ff667788},
		{0x1122334455667788, 4, 0x112233ff55667788},
		{0x1122334455667788, 5, 0x1122ff4455667788},
		{0x1122334455667788, 6, 0x11ff334455667788},
		{0x1122334455667788, 7, 0xff22334455667788},
		{0x1122334455667788, 8, 0x1122334455667788},
		{0x1122334455667788, -1, 0x1122334455667788},
		{0x1122334455667788, -2, 0x1122334455667788},
		{0x0000000000000000, 7, 0xff00000000000000},
		{0x0000000000000000, 6, 0x00ff000000000000},
		{0x0000000000000000, 5, 0x0000ff0000000000},
		{0x0000000000000000, 4, 0x000000ff00000000},
		{0x0000000000000000, 3, 0x00000000ff000000},
		{0x0000000000000000, 2, 0x0000000000ff0000},
		{0x0000000000000000, 1, 0x000000000000ff00},
		{0x0000000000000000, 0, 0x00000000000000ff},
		{0x0000000000000000, 8, 0x0000000000000000},
		{0x0000000000000000, -1, 0x0000000000000000},
		{0x0023000000000000, -2, 0x0023000000000000},
		{0x0023000000000000, 0x7fffffff, 0x0023000000000000},
	})
}

// CopyBits moves bit fields between words; any out-of-range end leaves dest alone.
func CopyBits() check.Group {
	vectors := []struct {
		source, dest           bits.Word
		srcLow, dstLow, length int
		want                   bits.Word
	}{
		{0x1122334455667788, 0x8877665544332211, 0, 0, 8, 0x8877665544332288},
		{0x1122334455667788, 0x8877665544332211, 0, 8, 8, 0x8877665544338811},
		{0x1122334455667788, 0x8877665544332211, 8, 4, 4, 0x8877665544332271},
		{0x1122334455667788, 0x1877665544332211, 3, 0x3f, 1, 0x9877665544332211},
		{0x1122334455667788, 0x1877665544332211, 3, 0x40, 1, 0x1877665544332211},
		{0x1122334455667788, 0x1877665544332211, -2, 0x3f, 1, 0x1877665544332211},
		{0x1122334455667788, 0x1877665544332211, 3, 0x3f, 2, 0x1877665544332211},
		{0x1122334455667788, 0x8877665544332211, 8, 8, 0x10, 0x8877665544667711},
	}

	g := check.Group{Name: "copyBits"}
	for _, v := range vectors {
		g.Assertions = append(g.Assertions, check.Assertion{
			Expr: fmt.Sprintf("CopyBits(%#x, %#x, %#x, %#x, %#x)",
				uint64(v.source), uint64(v.dest), v.srcLow, v.dstLow, v.length),
			Got:  bits.CopyBits(v.source, v.dest, v.srcLow, v.dstLow, v.length),
			Want: v.want,
		})
	}
	return g
}
