package hufftree

import (
	"fmt"
	mathbits "math/bits"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Bit i of the code lives
	// at bit (i % 64) of Bits[i / 64], so the least significant bit of
	// Bits[0] is the first bit.
	Bits [4]uint64
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(s string) (Code, error) {
	if len(s) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is longer than %d bits", s, MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			hc = hc.Append(false)
		case '1':
			hc = hc.Append(true)
		default:
			return Code{}, fmt.Errorf("invalid character %q in code %q", s[i], s)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of the code.
func (hc Code) Bit(i int) bool {
	assert.Assertf(i >= 0 && i < int(hc.Size), "bit index %d out of range [0, %d)", i, hc.Size)
	return (hc.Bits[i>>6]>>(uint(i)&63))&1 != 0
}

// Append returns the Code with one more bit at the end.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code already holds %d bits", hc.Size)
	if bit {
		i := uint(hc.Size)
		hc.Bits[i>>6] |= 1 << (i & 63)
	}
	hc.Size++
	return hc
}

// Reversed returns the corresponding Code with the bits in reverse order.
func (hc Code) Reversed() Code {
	// Reverse all 256 bits, then shift the valid ones back down to bit 0.
	var rev [4]uint64
	for i := 0; i < 4; i++ {
		rev[3-i] = mathbits.Reverse64(hc.Bits[i])
	}
	return Code{Size: hc.Size, Bits: shiftDown(rev, 256-uint(hc.Size))}
}

// HasPrefix reports whether prefix is a prefix of this Code.  Every Code
// has itself and the empty Code as prefixes.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := 0; i < int(prefix.Size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code, first bit first.
func (hc Code) String() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size) + 2)
	sb.WriteByte('"')
	for i := 0; i < int(hc.Size); i++ {
		if hc.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

var _ fmt.Stringer = Code{}

func shiftDown(words [4]uint64, n uint) [4]uint64 {
	if n >= 256 {
		return [4]uint64{}
	}
	wordShift, bitShift := n>>6, n&63
	var out [4]uint64
	for i := uint(0); i+wordShift < 4; i++ {
		out[i] = words[i+wordShift] >> bitShift
		if bitShift != 0 && i+wordShift+1 < 4 {
			out[i] |= words[i+wordShift+1] << (64 - bitShift)
		}
	}
	return out
}
