package hufftree

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable counts the occurrences of each byte value.  A count of 0
// means the byte value is absent.
//
// FrequencyTable implements io.Writer, so counts may be accumulated from a
// stream with io.Copy.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies makes a single pass over p and returns its byte counts.
func CountFrequencies(p []byte) *FrequencyTable {
	ft := new(FrequencyTable)
	_, _ = ft.Write(p)
	return ft
}

// Write adds the bytes of p to the counts.  It never fails.
func (ft *FrequencyTable) Write(p []byte) (int, error) {
	for _, b := range p {
		ft[b] = addFreq(ft[b], 1)
	}
	return len(p), nil
}

// Count returns the number of occurrences of b.
func (ft *FrequencyTable) Count(b byte) uint64 {
	return ft[b]
}

// Distinct returns the number of byte values with a non-zero count.
func (ft *FrequencyTable) Distinct() int {
	var n int
	for _, freq := range ft {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	var total uint64
	for _, freq := range ft {
		total = addFreq(total, freq)
	}
	return total
}

// Dump writes a programmer-readable listing of the non-zero counts to the
// given writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for symbol, freq := range ft {
		if freq == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\t%3d %-4s = %d\n", symbol, symbolString(byte(symbol)), freq)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ io.Writer = (*FrequencyTable)(nil)
