package astar

import (
	"container/heap"

	"github.com/vovakirdan/pathsnake/internal/core"
)

// node is one search entry. Several nodes may exist for the same cell; the
// parent chain is only walked once the goal is popped.
type node struct {
	cell   core.Cell
	parent *node
	g, h   int
	f      int
	seq    int // insertion order, breaks ties on f
}

// openQueue is a min-heap on (f, seq): among equal f the node pushed first wins.
type openQueue []*node

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openQueue) Push(x any) { *q = append(*q, x.(*node)) }

func (q *openQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return n
}

func (q *openQueue) push(n *node) { heap.Push(q, n) }

func (q *openQueue) pop() *node { return heap.Pop(q).(*node) }
