package bits

import (
	"errors"
	"fmt"
)

// ErrByteCount is returned when a word is assembled from a slice that does not
// hold exactly WordBytes bytes.
var ErrByteCount = errors.New("word needs exactly 8 bytes")

// BuildLong assembles a word from little-endian bytes: b[0] becomes bits 0-7
// and b[7] becomes bits 56-63.
func BuildLong(b [WordBytes]byte) Word {
	var w Word
	for i := WordBytes - 1; i >= 0; i-- {
		w = (w << 8) | Word(b[i])
	}
	return w
}

// BuildLongFrom is BuildLong for a slice. The slice must hold exactly 8 bytes.
func BuildLongFrom(p []byte) (Word, error) {
	if len(p) != WordBytes {
		return 0, fmt.Errorf("%w: got %d", ErrByteCount, len(p))
	}
	return BuildLong([WordBytes]byte(p)), nil
}

// Bytes splits the word into little-endian bytes. It is the inverse of BuildLong.
func (w Word) Bytes() [WordBytes]byte {
	var b [WordBytes]byte
	for i := range b {
		b[i] = byte(w >> (8 * i))
	}
	return b
}

func validByte(byteNum int) bool {
	return byteNum >= 0 && byteNum < WordBytes
}

// GetByte returns byte byteNum (0 to 7) of source in the low 8 bits of the result.
// It returns 0 if byteNum is out of range.
func GetByte(source Word, byteNum int) Word {
	if !validByte(byteNum) {
		return 0
	}
	low := byteNum * 8
	return GetBits(source, low, low+7)
}

// SetByte returns source with every bit of byte byteNum (0 to 7) set to 1.
// An out-of-range byteNum leaves source unchanged.
func SetByte(source Word, byteNum int) Word {
	if !validByte(byteNum) {
		return source
	}
	low := byteNum * 8
	return SetBits(source, low, low+7)
}
