package huffstat

import (
	"math/rand"
	"sort"
	"strings"
	"testing"
)

func makeFreq(pairs map[byte]uint64) FrequencyTable {
	var freq FrequencyTable
	for b, count := range pairs {
		freq[b] = count
	}
	return freq
}

func TestBuildTree_Dump(t *testing.T) {
	root := BuildTree(makeFreq(map[byte]uint64{'A': 3, 'B': 2, 'C': 1}))

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tNode freq=6 path=\"\"\n",
		"\t\tNode freq=3 path=\"0\"\n",
		"\t\t\tLeaf(67 C) freq=1 path=\"00\"\n",
		"\t\t\tLeaf(66 B) freq=2 path=\"01\"\n",
		"\t\tLeaf(65 A) freq=3 path=\"1\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = root.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	if root := BuildTree(FrequencyTable{}); root != nil {
		t.Errorf("expected nil root, got freq=%d", root.Freq())
	}

	var root *Node
	var buf strings.Builder
	_, _ = root.Dump(&buf)
	if expect, actual := "Tree{\n}\n", buf.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	root := BuildTree(makeFreq(map[byte]uint64{'x': 42}))
	if root == nil {
		t.Fatal("expected a root, got nil")
	}
	if !root.IsLeaf() {
		t.Errorf("expected the root to be a leaf")
	}
	if root.Symbol() != 'x' || root.Freq() != 42 {
		t.Errorf("expected Leaf(x, 42), got Leaf(%s, %d)", root.Symbol(), root.Freq())
	}
	if leaves, internal := root.CountNodes(); leaves != 1 || internal != 0 {
		t.Errorf("expected 1 leaf and 0 internal nodes, got %d and %d", leaves, internal)
	}
}

func TestBuildTree_NodeCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 50; iter++ {
		var freq FrequencyTable
		for symbol := range freq {
			if rng.Intn(3) == 0 {
				freq[symbol] = uint64(rng.Intn(1000) + 1)
			}
		}
		k := freq.Distinct()
		if k < 2 {
			continue
		}

		root := BuildTree(freq)
		leaves, internal := root.CountNodes()
		if leaves != k {
			t.Errorf("iteration %d: expected %d leaves, got %d", iter, k, leaves)
		}
		if internal != k-1 {
			t.Errorf("iteration %d: expected %d internal nodes, got %d", iter, k-1, internal)
		}
		if root.Freq() != freq.Total() {
			t.Errorf("iteration %d: expected root freq %d, got %d", iter, freq.Total(), root.Freq())
		}
		checkInternalSums(t, root)
	}
}

func checkInternalSums(t *testing.T, n *Node) {
	t.Helper()
	if n.IsLeaf() {
		if n.Right() != nil {
			t.Errorf("leaf %d has a right child", n.Symbol())
		}
		return
	}
	if n.Right() == nil {
		t.Fatalf("internal node with freq %d has only one child", n.Freq())
	}
	if sum := n.Left().Freq() + n.Right().Freq(); sum != n.Freq() {
		t.Errorf("internal node freq %d != children's sum %d", n.Freq(), sum)
	}
	checkInternalSums(t, n.Left())
	checkInternalSums(t, n.Right())
}

// referenceNode and buildReference merge nodes by stably sorting them by
// descending frequency and taking the last two, which is the order BuildTree
// must reproduce.
type referenceNode struct {
	symbol      byte
	freq        uint64
	left, right *referenceNode
}

func buildReference(freq FrequencyTable) *referenceNode {
	var nodes []*referenceNode
	for symbol, count := range freq {
		if count != 0 {
			nodes = append(nodes, &referenceNode{symbol: byte(symbol), freq: count})
		}
	}
	for len(nodes) > 1 {
		sort.SliceStable(nodes, func(i, j int) bool {
			return nodes[i].freq > nodes[j].freq
		})
		left := nodes[len(nodes)-1]
		right := nodes[len(nodes)-2]
		nodes = nodes[:len(nodes)-2]
		nodes = append(nodes, &referenceNode{freq: left.freq + right.freq, left: left, right: right})
	}
	return nodes[0]
}

func sameShape(a *Node, b *referenceNode) bool {
	if a.IsLeaf() != (b.left == nil) || a.Freq() != b.freq {
		return false
	}
	if a.IsLeaf() {
		return byte(a.Symbol()) == b.symbol
	}
	return sameShape(a.Left(), b.left) && sameShape(a.Right(), b.right)
}

func TestBuildTree_TieBreak(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for iter := 0; iter < 200; iter++ {
		var freq FrequencyTable
		numSymbols := 2 + rng.Intn(40)
		for i := 0; i < numSymbols; i++ {
			// Small counts force many ties.
			freq[rng.Intn(NumSymbols)] = uint64(rng.Intn(4) + 1)
		}
		if freq.Distinct() < 2 {
			continue
		}

		actual := BuildTree(freq)
		expect := buildReference(freq)
		if !sameShape(actual, expect) {
			var buf strings.Builder
			_, _ = actual.Dump(&buf)
			t.Errorf("iteration %d: tree differs from stable-sort merge order:\n%s", iter, buf.String())
		}
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	freq := CountFrequencies([]byte("it was the best of times, it was the worst of times"))

	var first, second strings.Builder
	_, _ = BuildTree(freq).Dump(&first)
	_, _ = BuildTree(freq).Dump(&second)
	if first.String() != second.String() {
		t.Errorf("trees differ:\n%s\n%s", first.String(), second.String())
	}
}

func TestNode_Depth(t *testing.T) {
	type testRow struct {
		name  string
		freq  FrequencyTable
		depth int
	}

	testData := [...]testRow{
		{"single", makeFreq(map[byte]uint64{0: 7}), 0},
		{"pair", makeFreq(map[byte]uint64{0: 7, 1: 7}), 1},
		{"skewed", makeFreq(map[byte]uint64{0: 1, 1: 1, 2: 2, 3: 4, 4: 8}), 4},
		{"classic", makeFreq(map[byte]uint64{0: 5, 1: 9, 2: 12, 3: 13, 4: 16, 5: 45}), 4},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if actual := BuildTree(row.freq).Depth(); actual != row.depth {
				t.Errorf("expected depth %d, got %d", row.depth, actual)
			}
		})
	}
}
