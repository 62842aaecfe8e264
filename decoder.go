package hufftree

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// maxPrealloc caps the output buffer preallocated from the length header,
// which has not been validated against the stream yet.
const maxPrealloc = 1 << 20

// Decoder decodes symbols by walking a Huffman tree one bit at a time.
type Decoder struct {
	tree *Tree
}

// NewDecoder returns a Decoder for t.
func NewDecoder(t *Tree) (*Decoder, error) {
	if t == nil || t.root == nil {
		return nil, ErrDegenerateTree
	}
	return &Decoder{tree: t}, nil
}

// Decode decompresses a stream produced by Encode.
func Decode(stream []byte) ([]byte, error) {
	return DecodeFrom(bytes.NewReader(stream))
}

// DecodeFrom reads a compressed stream from r and returns the original
// bytes.  A stream that ends before the declared number of bytes has been
// decoded yields a *FormatError wrapping ErrTruncated.
func DecodeFrom(r io.Reader) ([]byte, error) {
	src := NewBitSource(r)
	count, err := src.ReadUint32()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		log.Debugf("decoded empty stream")
		return []byte{}, nil
	}

	t, err := ReadTree(src)
	if err != nil {
		return nil, err
	}
	d, err := NewDecoder(t)
	if err != nil {
		return nil, err
	}

	capacity := count
	if capacity > maxPrealloc {
		capacity = maxPrealloc
	}
	out := make([]byte, 0, capacity)
	for i := uint32(0); i < count; i++ {
		symbol, err := d.ReadSymbol(src)
		if err != nil {
			return nil, err
		}
		out = append(out, symbol)
	}

	log.Debugf("decoded %d bytes from %d bits", count, src.BitsRead())
	return out, nil
}

// ReadSymbol reads one code from src and returns its byte value.  The walk
// starts at the root and follows the left child on a 0 bit and the right
// child on a 1 bit until it reaches a Leaf.
func (d *Decoder) ReadSymbol(src *BitSource) (byte, error) {
	var node Node = d.tree.root
	for {
		switch x := node.(type) {
		case *Leaf:
			return x.Symbol, nil

		case *Internal:
			start := src.BitsRead()
			bit, err := src.ReadBit()
			if err != nil {
				return 0, err
			}
			if bit {
				node = x.right
			} else {
				node = x.left
			}
			if node == nil {
				return 0, &FormatError{Offset: start, Reason: "code leads to a missing branch"}
			}

		default:
			return 0, ErrDegenerateTree
		}
	}
}

// Tree returns the tree this Decoder walks.
func (d *Decoder) Tree() *Tree {
	return d.tree
}

// String returns a short description of this Decoder.
func (d *Decoder) String() string {
	_, minSize, maxSize := codeTable(d.tree)
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)", d.tree.numLeaves, minSize, maxSize)
}

var _ fmt.Stringer = (*Decoder)(nil)

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.  Codes are listed shortest first.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	codes, minSize, maxSize := codeTable(d.tree)

	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", maxSize)
	keys := make(byCode, 0, d.tree.numLeaves)
	for symbol, hc := range codes {
		if hc.Size != 0 {
			keys = append(keys, codeAndSymbol{hc, byte(symbol)})
		}
	}
	keys.Sort()
	for _, item := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", item.code, item.symbol)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type codeAndSymbol struct {
	code   Code
	symbol byte
}

type byCode []codeAndSymbol

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i].code, list[j].code
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	for k := 0; k < int(a.Size); k++ {
		if ab, bb := a.Bit(k), b.Bit(k); ab != bb {
			return !ab
		}
	}
	return false
}

var _ sort.Interface = byCode(nil)

// }}}
