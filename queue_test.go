package hufftree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeQueue_TieBreakIsInsertionOrder(t *testing.T) {
	q := newNodeQueue(0)
	q.push(NewLeaf('x', 3))
	q.push(NewLeaf('b', 1))
	q.push(NewLeaf('z', 1))
	q.push(NewLeaf('a', 1))
	q.push(NewLeaf('y', 2))

	var order []byte
	for q.Len() != 0 {
		order = append(order, q.pop().(*Leaf).Symbol)
	}
	require.Equal(t, []byte("bzayx"), order)
}

func TestNodeQueue_MergedNodesQueueBehindEqualLeaves(t *testing.T) {
	q := newNodeQueue(0)
	q.push(NewLeaf('a', 2))
	q.push(NewInternal(NewLeaf('b', 1), NewLeaf('c', 1)))
	q.push(NewLeaf('d', 2))

	first := q.pop()
	require.IsType(t, (*Leaf)(nil), first)
	require.Equal(t, byte('a'), first.(*Leaf).Symbol)
	require.IsType(t, (*Internal)(nil), q.pop())
	require.Equal(t, byte('d'), q.pop().(*Leaf).Symbol)
}

func TestDumpQueue(t *testing.T) {
	expectDump := strings.Join([]string{
		"Queue{\n",
		"\tc-1\n",
		"\td-1\n",
		"\tb-2\n",
		"\tr-2\n",
		"\ta-5\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, err := DumpQueue(&buf, CountFrequencies([]byte("abracadabra")))
	require.NoError(t, err)
	require.Equal(t, expectDump, buf.String())
}
