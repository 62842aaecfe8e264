package hufftree

import (
	"strconv"
)

// WriteTree serializes t in preorder.  An Internal node is written as a 1
// bit followed by its left and right subtrees; a Leaf as a 0 bit followed
// by its byte value in 8 bits.  A one-leaf tree is written as its lone Leaf.
func WriteTree(dst *BitSink, t *Tree) error {
	if t.IsDegenerate() {
		return writeNode(dst, t.root.left)
	}
	return writeNode(dst, t.root)
}

func writeNode(dst *BitSink, node Node) error {
	switch x := node.(type) {
	case *Leaf:
		if err := dst.WriteBit(false); err != nil {
			return err
		}
		return dst.WriteByte(x.Symbol)

	case *Internal:
		if err := dst.WriteBit(true); err != nil {
			return err
		}
		if err := writeNode(dst, x.left); err != nil {
			return err
		}
		return writeNode(dst, x.right)
	}
	return ErrDegenerateTree
}

// ReadTree deserializes a tree written by WriteTree.  The nodes of the
// returned tree all have a frequency of 0.
//
// ReadTree returns a *FormatError if the stream ends inside the tree, if
// the tree nests deeper than MaxCodeSize levels, or if a byte value appears
// on more than one leaf.
//
func ReadTree(src *BitSource) (*Tree, error) {
	tr := treeReader{src: src}
	root, err := tr.readNode(0)
	if err != nil {
		return nil, err
	}
	t, err := NewTree(root)
	if err != nil {
		return nil, &FormatError{Offset: src.BitsRead(), Reason: "invalid tree", Err: err}
	}
	return t, nil
}

type treeReader struct {
	src  *BitSource
	seen [NumSymbols]bool
}

func (tr *treeReader) readNode(depth int) (Node, error) {
	start := tr.src.BitsRead()
	isInternal, err := tr.src.ReadBit()
	if err != nil {
		return nil, err
	}

	if !isInternal {
		symbol, err := tr.src.ReadByte()
		if err != nil {
			return nil, err
		}
		if tr.seen[symbol] {
			return nil, &FormatError{Offset: start, Reason: "byte value " + strconv.Itoa(int(symbol)) + " appears on two leaves"}
		}
		tr.seen[symbol] = true
		return NewLeaf(symbol, 0), nil
	}

	if depth >= MaxCodeSize {
		return nil, &FormatError{Offset: start, Reason: "tree nests deeper than " + strconv.Itoa(MaxCodeSize) + " levels"}
	}
	left, err := tr.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	right, err := tr.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	return NewInternal(left, right), nil
}
