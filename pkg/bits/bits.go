// Package bits implements bit-field access on 64-bit words.
//
// Bits are numbered from 0 (least significant) to 63 (most significant, the
// two's-complement sign bit). Bytes are numbered from 0 (bits 0-7) to 7
// (bits 56-63).
//
// Out-of-range indices are not errors. Readers (GetBits, GetByte) return 0 and
// writers (SetBits, ClearBits, SetByte, CopyBits) return their input unchanged.
package bits

// Word is a 64-bit value, interpreted as two's-complement where a sign matters.
type Word uint64

const (
	// WordBits is the number of bits in a Word.
	WordBits = 64
	// WordBytes is the number of bytes in a Word.
	WordBytes = 8

	signBit = WordBits - 1
)

// ValidRange reports whether [low, high] is a usable bit range:
// 0 <= low <= high <= 63.
func ValidRange(low, high int) bool {
	return low >= 0 && low <= high && high < WordBits
}

// Mask returns a word with bits low through high set.
// It returns 0 if the range is invalid.
func Mask(low, high int) Word {
	if !ValidRange(low, high) {
		return 0
	}

	width := high - low + 1
	if width == WordBits {
		return ^Word(0)
	}
	return (Word(1)<<uint(width) - 1) << uint(low)
}

// GetBits extracts bits low through high of source, shifted so that bit low
// becomes bit 0 of the result.
// Example: GetBits(0x1122334455667788, 8, 15) returns 0x77
func GetBits(source Word, low, high int) Word {
	if !ValidRange(low, high) {
		return 0
	}
	return (source & Mask(low, high)) >> uint(low)
}

// SetBits returns source with bits low through high set to 1.
// An invalid range leaves source unchanged.
func SetBits(source Word, low, high int) Word {
	if !ValidRange(low, high) {
		return source
	}
	return source | Mask(low, high)
}

// ClearBits returns source with bits low through high set to 0.
// An invalid range leaves source unchanged.
func ClearBits(source Word, low, high int) Word {
	if !ValidRange(low, high) {
		return source
	}
	return source &^ Mask(low, high)
}
