package hufftree

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
)

// Encoder writes compressed streams using a fixed Huffman tree.
type Encoder struct {
	tree    *Tree
	codes   [NumSymbols]Code
	minSize byte
	maxSize byte
}

// NewEncoder precomputes the code of every leaf in t.
func NewEncoder(t *Tree) (*Encoder, error) {
	if t == nil || t.root == nil {
		return nil, ErrDegenerateTree
	}
	e := &Encoder{tree: t}
	e.codes, e.minSize, e.maxSize = codeTable(t)
	return e, nil
}

// Encode compresses input into a new byte slice.
func Encode(input []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(&buf, input); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo counts the byte frequencies of input, builds the matching tree
// and writes the compressed stream to w.
func EncodeTo(w io.Writer, input []byte) error {
	if len(input) == 0 {
		dst := NewBitSink(w)
		if err := dst.WriteUint32(0); err != nil {
			return err
		}
		return dst.Flush()
	}

	t, err := BuildTree(CountFrequencies(input))
	if err != nil {
		return err
	}
	e, err := NewEncoder(t)
	if err != nil {
		return err
	}
	return e.EncodeTo(w, input)
}

// EncodeTo writes the compressed stream for input to w: the length header,
// the serialized tree and the code of every byte, padded with zero bits to
// a byte boundary.  Every byte of input must have a leaf in the tree.
func (e *Encoder) EncodeTo(w io.Writer, input []byte) error {
	if uint64(len(input)) > math.MaxUint32 {
		return ErrInputTooLarge
	}
	for _, b := range input {
		if e.codes[b].Size == 0 {
			return errors.Wrapf(ErrUnknownSymbol, "byte %d", b)
		}
	}

	dst := NewBitSink(w)
	if err := dst.WriteUint32(uint32(len(input))); err != nil {
		return err
	}
	if len(input) != 0 {
		if err := WriteTree(dst, e.tree); err != nil {
			return err
		}
		for _, b := range input {
			if err := dst.WriteCode(e.codes[b]); err != nil {
				return err
			}
		}
	}
	if err := dst.Flush(); err != nil {
		return err
	}

	log.Debugf("encoded %d bytes into %d bits", len(input), dst.BitsWritten())
	return nil
}

// Code returns the code for symbol, or a zero-size Code if the tree has no
// leaf for it.
func (e *Encoder) Code(symbol byte) Code {
	return e.codes[symbol]
}

// Tree returns the tree this Encoder was built from.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// MinSize is the bit length of the shortest code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// SizeBySymbol returns an array containing the bit length for each byte
// value.  Absent byte values have a length of 0.
func (e *Encoder) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol, hc := range e.codes {
		out[symbol] = hc.Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol, hc := range e.codes {
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tCode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// codeTable computes the code of every leaf by climbing from the leaf to
// the root, collecting one bit per edge (1 for a right child), and then
// reversing the collected bits.  We also compute minSize and maxSize while
// we're here.
func codeTable(t *Tree) (codes [NumSymbols]Code, minSize byte, maxSize byte) {
	var hasMinMax bool
	for symbol, leaf := range t.leaves {
		if leaf == nil {
			continue
		}

		var reversed Code
		var child Node = leaf
		for parent := leaf.parent; parent != nil; parent = parent.parent {
			reversed = reversed.Append(parent.right == child)
			child = parent
		}

		hc := reversed.Reversed()
		codes[symbol] = hc

		size := hc.Size
		if !hasMinMax {
			hasMinMax = true
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}
	return
}
