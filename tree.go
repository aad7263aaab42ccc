package huffstat

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A Node is either a leaf, which holds a
// Symbol and its frequency, or an internal node, which owns exactly two
// children and whose frequency is the sum of theirs.  Nodes are never
// modified after construction.
type Node struct {
	left   *Node
	right  *Node
	freq   uint64
	symbol Symbol
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// Symbol returns the byte represented by a leaf.  It is always 0 for an
// internal node.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Freq returns the weight of this node.
func (n *Node) Freq() uint64 {
	return n.freq
}

// Left returns the child reached by a '0' bit, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by a '1' bit, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// CountNodes returns the number of leaves and internal nodes in the subtree
// rooted at n.  A nil Node has neither.
func (n *Node) CountNodes() (leaves int, internal int) {
	if n == nil {
		return 0, 0
	}
	if n.IsLeaf() {
		return 1, 0
	}
	ll, li := n.left.CountNodes()
	rl, ri := n.right.CountNodes()
	return ll + rl, li + ri + 1
}

// Depth returns the length of the longest root-to-leaf path.
func (n *Node) Depth() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	l, r := n.left.Depth(), n.right.Depth()
	if l < r {
		l = r
	}
	return l + 1
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if n != nil {
		n.dump(&buf, 1, "")
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (n *Node) dump(buf *bytes.Buffer, depth int, path string) {
	indent := strings.Repeat("\t", depth)
	if n.IsLeaf() {
		fmt.Fprintf(buf, "%sLeaf(%d %s) freq=%d path=%q\n", indent, n.symbol, n.symbol, n.freq, path)
		return
	}
	fmt.Fprintf(buf, "%sNode freq=%d path=%q\n", indent, n.freq, path)
	n.left.dump(buf, depth+1, path+"0")
	n.right.dump(buf, depth+1, path+"1")
}

// BuildTree builds a Huffman tree from the given frequencies and returns its
// root.  Bytes with a frequency of 0 are omitted from the tree entirely.
//
// If no byte has a non-zero frequency, the result is nil.  If exactly one
// byte does, its leaf is returned as the root without any merging.
//
// Otherwise the two lightest nodes are merged repeatedly until a single node
// remains.  The first node removed becomes the left child.  Ties are broken
// in favor of the most recently created node, with leaves created in
// ascending byte order, so the tree shape depends only on freq.
//
func BuildTree(freq FrequencyTable) *Node {
	h := nodeHeap{list: make([]heapItem, 0, NumSymbols)}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if count := freq[symbol]; count != 0 {
			leaf := &Node{freq: count, symbol: Symbol(symbol)}
			h.list = append(h.list, heapItem{leaf, uint32(symbol)})
		}
	}

	switch h.Len() {
	case 0:
		return nil
	case 1:
		return h.list[0].node
	}

	h.Init()
	nextSeq := uint32(NumSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)

		// Compute freqSum using saturating addition
		freqSum := a.node.freq + b.node.freq
		if freqSum < a.node.freq {
			freqSum = math.MaxUint64
		}

		parent := &Node{left: a.node, right: b.node, freq: freqSum}
		heap.Push(&h, heapItem{parent, nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(heapItem).node
	assert.Assertf(!root.IsLeaf(), "BuildTree merged %d leaves into a leaf", freq.Distinct())
	return root
}
