package suite

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gregLibert/bit-tools/pkg/bits"
)

// Octets decodes a hex literal such as "11 22 33 44 55 66 77 88" into the
// eight bytes of a word, first byte first.
// It panics on malformed input; it is meant for static vector tables.
func Octets(s string) [bits.WordBytes]byte {
	clean := strings.ReplaceAll(s, " ", "")

	data, err := hex.DecodeString(clean)
	if err != nil {
		panic(fmt.Sprintf("invalid input '%s': %v", clean, err))
	}
	if _, err := bits.BuildLongFrom(data); err != nil {
		panic(fmt.Sprintf("invalid input '%s': %v", clean, err))
	}
	return [bits.WordBytes]byte(data)
}
