package hufftree

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// nodeQueue is a min-heap of nodes ordered by ascending frequency.  Ties
// are broken by insertion order, so the ordering is fully deterministic.
type nodeQueue struct {
	list    []queueItem
	nextSeq uint64
}

type queueItem struct {
	node Node
	seq  uint64
}

func newNodeQueue(capacity int) *nodeQueue {
	return &nodeQueue{list: make([]queueItem, 0, capacity)}
}

func (q *nodeQueue) push(node Node) {
	heap.Push(q, queueItem{node: node, seq: q.nextSeq})
	q.nextSeq++
}

func (q *nodeQueue) pop() Node {
	assert.Assertf(len(q.list) != 0, "pop from empty nodeQueue")
	return heap.Pop(q).(queueItem).node
}

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if fa, fb := a.node.Frequency(), b.node.Frequency(); fa != fb {
		return fa < fb
	}
	return a.seq < b.seq
}

func (q *nodeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(queueItem))
}

func (q *nodeQueue) Pop() interface{} {
	last := uint(len(q.list)) - 1
	x := q.list[last]
	q.list[last] = queueItem{}
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)

// leafQueue returns a queue holding one Leaf per present byte value,
// inserted in ascending byte order.
func leafQueue(ft *FrequencyTable) *nodeQueue {
	q := newNodeQueue(ft.Distinct())
	for symbol, freq := range ft {
		if freq != 0 {
			q.push(NewLeaf(byte(symbol), freq))
		}
	}
	return q
}

// DumpQueue writes the initial priority queue that BuildTree would start
// from for ft, in the order the leaves would be removed.
func DumpQueue(w io.Writer, ft *FrequencyTable) (int64, error) {
	q := leafQueue(ft)
	var buf bytes.Buffer
	buf.WriteString("Queue{\n")
	for q.Len() != 0 {
		leaf := q.pop().(*Leaf)
		fmt.Fprintf(&buf, "\t%s-%d\n", symbolString(leaf.Symbol), leaf.Frequency())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
