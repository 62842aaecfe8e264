package hufftree

import (
	"fmt"
)

// NumSymbols is the size of the alphabet: one symbol per byte value.
const NumSymbols = 256

// MaxCodeSize is the length of the longest possible code.  A tree with
// NumSymbols leaves can be at most NumSymbols-1 levels deep.
const MaxCodeSize = NumSymbols - 1

// symbolString renders a byte value for the debugging dumps.  Printable
// ASCII is shown as-is, everything else in hex.
func symbolString(b byte) string {
	if b > ' ' && b < 0x7f {
		return string(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}
