package hufftree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// ErrDuplicateSymbol is returned by NewTree when two leaves hold the same
// byte value.
var ErrDuplicateSymbol = errors.New("hufftree: byte value appears on more than one leaf")

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.
type Node interface {
	// Frequency returns the number of occurrences covered by this node.
	// Nodes read back from a stream have a frequency of 0.
	Frequency() uint64

	// Parent returns the Internal node this node hangs from, or nil for
	// the root.  The parent does not own anything through this link.
	Parent() *Internal

	setParent(p *Internal)
}

// Leaf is a Node holding a single byte value.
type Leaf struct {
	Symbol byte
	freq   uint64
	parent *Internal
}

// NewLeaf returns a parentless Leaf.
func NewLeaf(symbol byte, freq uint64) *Leaf {
	return &Leaf{Symbol: symbol, freq: freq}
}

func (l *Leaf) Frequency() uint64 { return l.freq }
func (l *Leaf) Parent() *Internal { return l.parent }

func (l *Leaf) setParent(p *Internal) {
	assert.Assertf(l.parent == nil, "leaf %d already has a parent", l.Symbol)
	l.parent = p
}

// Internal is a Node with two children.  Its frequency is the sum of its
// children's.
type Internal struct {
	left   Node
	right  Node
	freq   uint64
	parent *Internal
}

// NewInternal combines left and right, which must not already have
// parents, into a new Internal node.
func NewInternal(left, right Node) *Internal {
	assert.Assertf(left != nil && right != nil, "NewInternal needs two children")
	n := &Internal{
		left:  left,
		right: right,
		freq:  addFreq(left.Frequency(), right.Frequency()),
	}
	left.setParent(n)
	right.setParent(n)
	return n
}

// newDegenerateRoot returns the root of a one-leaf tree: an Internal node
// whose only child is leaf, on the left.
func newDegenerateRoot(leaf *Leaf) *Internal {
	n := &Internal{left: leaf, freq: leaf.freq}
	leaf.setParent(n)
	return n
}

// Left returns the child reached by a 0 bit.
func (n *Internal) Left() Node { return n.left }

// Right returns the child reached by a 1 bit.  It is nil only for the root
// of a one-leaf tree.
func (n *Internal) Right() Node { return n.right }

func (n *Internal) Frequency() uint64 { return n.freq }
func (n *Internal) Parent() *Internal { return n.parent }

func (n *Internal) setParent(p *Internal) {
	assert.Assertf(n.parent == nil, "internal node already has a parent")
	n.parent = p
}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Tree is a Huffman code tree.  The root is always an *Internal node; a
// tree with a single distinct byte value has a root whose only child is
// that byte's Leaf.
type Tree struct {
	root      *Internal
	leaves    [NumSymbols]*Leaf
	numLeaves int
	depth     int
}

// NewTree validates the tree below root and indexes its leaves.  A lone
// *Leaf is accepted and becomes the only child of a new root.
//
// NewTree returns ErrDegenerateTree if an Internal node lacks children it
// needs, and ErrDuplicateSymbol if a byte value appears twice.
//
func NewTree(root Node) (*Tree, error) {
	if root != nil && root.Parent() != nil {
		return nil, errors.New("hufftree: root node already has a parent")
	}

	var t Tree
	switch x := root.(type) {
	case nil:
		return nil, ErrDegenerateTree
	case *Leaf:
		t.root = newDegenerateRoot(x)
	case *Internal:
		t.root = x
	}

	if err := t.index(t.root, 0); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tree) index(node Node, depth int) error {
	switch x := node.(type) {
	case *Leaf:
		if t.leaves[x.Symbol] != nil {
			return errors.Wrapf(ErrDuplicateSymbol, "byte %d", x.Symbol)
		}
		t.leaves[x.Symbol] = x
		t.numLeaves++
		if depth > t.depth {
			t.depth = depth
		}
		return nil

	case *Internal:
		if depth >= MaxCodeSize {
			return errors.Wrapf(ErrDegenerateTree, "tree deeper than %d levels", MaxCodeSize)
		}
		if x.left == nil {
			return ErrDegenerateTree
		}
		if x.right == nil {
			_, isLeaf := x.left.(*Leaf)
			if x != t.root || !isLeaf {
				return ErrDegenerateTree
			}
		}
		if err := t.index(x.left, depth+1); err != nil {
			return err
		}
		if x.right != nil {
			return t.index(x.right, depth+1)
		}
		return nil
	}
	return ErrDegenerateTree
}

// BuildTree builds the Huffman tree for ft by repeatedly merging the two
// lowest-frequency nodes.  The first node removed becomes the left child.
func BuildTree(ft *FrequencyTable) (*Tree, error) {
	q := leafQueue(ft)
	if q.Len() == 0 {
		return nil, ErrEmptyFrequencyTable
	}

	for q.Len() > 1 {
		left := q.pop()
		right := q.pop()
		q.push(NewInternal(left, right))
	}

	t, err := NewTree(q.pop())
	if err != nil {
		return nil, err
	}
	log.Debugf("built tree: %d leaves, depth %d, frequency %d", t.numLeaves, t.depth, t.root.freq)
	return t, nil
}

// Root returns the root node.
func (t *Tree) Root() *Internal {
	return t.root
}

// Leaf returns the leaf holding symbol, or nil if there is none.
func (t *Tree) Leaf(symbol byte) *Leaf {
	return t.leaves[symbol]
}

// NumLeaves returns the number of distinct byte values in the tree.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// Depth returns the length of the longest root-to-leaf path.
func (t *Tree) Depth() int {
	return t.depth
}

// IsDegenerate reports whether this is a one-leaf tree.
func (t *Tree) IsDegenerate() bool {
	return t.root.right == nil
}

// Equal reports whether both trees have the same shape and the same byte
// values at the same leaves.  Frequencies are ignored.
func (t *Tree) Equal(other *Tree) bool {
	return sameShape(t.root, other.root)
}

func sameShape(a, b Node) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case *Leaf:
		y, ok := b.(*Leaf)
		return ok && x.Symbol == y.Symbol
	case *Internal:
		y, ok := b.(*Internal)
		return ok && sameShape(x.left, y.left) && sameShape(x.right, y.right)
	}
	return false
}

// Dump writes the tree to the given writer, rotated a quarter turn
// counter-clockwise: the right subtree is printed above its parent and the
// left subtree below, indented by depth.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	dumpNode(&buf, t.root, 0)
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, node Node, level int) {
	switch x := node.(type) {
	case *Leaf:
		buf.WriteString(strings.Repeat("    ", level))
		fmt.Fprintf(buf, "%s-%d\n", symbolString(x.Symbol), x.freq)
	case *Internal:
		dumpNode(buf, x.right, level+1)
		buf.WriteString(strings.Repeat("    ", level))
		fmt.Fprintf(buf, "*-%d\n", x.freq)
		dumpNode(buf, x.left, level+1)
	}
}
