package huffstat

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// StripMode selects the post-processing applied to each raw root-to-leaf
// path before it is stored as a Code.
type StripMode uint8

const (
	// StripLeadingZeros removes the leading run of '0' bits from each path.
	// A path made only of '0' bits, including the empty path of a
	// single-leaf tree, yields the empty Code.  The resulting codes are
	// not necessarily prefix-free, or even distinct.
	StripLeadingZeros StripMode = iota

	// KeepRawPath stores each path unchanged.  The resulting codes are
	// prefix-free.
	KeepRawPath
)

var stripModeNames = [...]string{
	StripLeadingZeros: "StripLeadingZeros",
	KeepRawPath:       "KeepRawPath",
}

// String returns the name of the StripMode.
func (mode StripMode) String() string {
	if uint(mode) < uint(len(stripModeNames)) {
		return stripModeNames[mode]
	}
	return fmt.Sprintf("StripMode(%d)", uint(mode))
}

// Apply returns the Code stored for the given raw path under this mode.
func (mode StripMode) Apply(path string) Code {
	switch mode {
	case StripLeadingZeros:
		return Code(strings.TrimLeft(path, "0"))
	case KeepRawPath:
		return Code(path)
	}
	assert.Assertf(false, "unknown StripMode %d", uint(mode))
	return ""
}

var _ fmt.Stringer = StripMode(0)

// EncodingTable holds the Code assigned to each byte value.  Bytes that do
// not occur in the input have the empty Code.
type EncodingTable [NumSymbols]Code

// AssignCodes walks the tree rooted at root and assigns a Code to every leaf.
// Descending into a left child appends '0' to the path and descending into a
// right child appends '1'.  Each leaf's path is then passed through mode.
//
// A nil root yields a table of empty Codes.
//
func AssignCodes(root *Node, mode StripMode) EncodingTable {
	var enc EncodingTable
	if root != nil {
		assignPaths(root, make([]byte, 0, root.Depth()), func(symbol Symbol, path []byte) {
			enc[symbol] = mode.Apply(string(path))
		})
	}
	return enc
}

func assignPaths(n *Node, path []byte, fn func(Symbol, []byte)) {
	if n.IsLeaf() {
		fn(n.symbol, path)
		return
	}
	assignPaths(n.left, append(path, '0'), fn)
	assignPaths(n.right, append(path, '1'), fn)
}

// Present returns the number of bytes with a non-empty Code.
func (enc *EncodingTable) Present() int {
	var n int
	for _, hc := range enc {
		if hc != "" {
			n++
		}
	}
	return n
}

// Lengths returns the bit length of each byte's Code.  Lengths that do not
// fit in a byte are clamped to 255.
func (enc *EncodingTable) Lengths() []byte {
	out := make([]byte, NumSymbols)
	for symbol, hc := range enc {
		size := hc.Len()
		if size > 255 {
			size = 255
		}
		out[symbol] = byte(size)
	}
	return out
}

// Canonical returns the canonical Huffman code with the same bit length for
// each byte as this table.  Codes are assigned sequentially in order of
// (length, byte) ascending.  Bytes with the empty Code keep it.
//
// The result is only meaningful if the lengths describe a complete prefix
// code; see VerifyComplete.
//
func (enc *EncodingTable) Canonical() EncodingTable {
	sorted := make(bySize, 0, NumSymbols)
	for symbol, hc := range enc {
		if hc == "" {
			continue
		}
		sorted = append(sorted, symbolAndSize{Symbol(symbol), hc.Len()})
	}

	var out EncodingTable
	if len(sorted) == 0 {
		return out
	}
	sorted.Sort()

	// The code may be longer than any machine word, so it is kept as a
	// string of '0'/'1' bytes and incremented by hand.
	next := make([]byte, sorted[0].size)
	for i := range next {
		next[i] = '0'
	}
	for index, item := range sorted {
		if index != 0 {
			incrementBits(next)
			for len(next) < item.size {
				next = append(next, '0')
			}
		}
		out[item.symbol] = Code(next)
	}
	return out
}

// incrementBits adds one to the binary number in bits, discarding any carry
// out of the most significant bit.
func incrementBits(bits []byte) {
	for i := len(bits) - 1; i >= 0; i-- {
		if bits[i] == '0' {
			bits[i] = '1'
			return
		}
		bits[i] = '0'
	}
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (enc *EncodingTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("EncodingTable{\n")
	fmt.Fprintf(&buf, "\tPresent() = %d\n", enc.Present())
	for symbol, hc := range enc {
		if hc != "" {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   int
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
