package huffstat

import (
	"container/heap"
)

// type heapItem + type nodeHeap {{{

// heapItem pairs a Node with its creation sequence number.  Leaves are
// numbered by byte value; each internal node is numbered above every node
// created before it.
type heapItem struct {
	node *Node
	seq  uint32
}

// nodeHeap is a min-heap of nodes ordered by ascending frequency, then by
// descending sequence number.  Popping from it visits nodes in the same order
// as stably sorting them by descending frequency and taking from the end.
type nodeHeap struct {
	list []heapItem
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.freq != b.node.freq {
		return a.node.freq < b.node.freq
	}
	return a.seq > b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
