package huffstat

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNotPrefixFree indicates that one code in a table is a prefix of
	// another.
	ErrNotPrefixFree = errors.New("code is not prefix-free")

	// ErrIncompleteCode indicates that a set of code lengths does not
	// describe a full binary tree.
	ErrIncompleteCode = errors.New("degenerate Huffman tree")
)

// VerifyPrefixFree checks that no non-empty Code in enc is a prefix of
// another.  Empty codes mark unused bytes and are ignored.
func VerifyPrefixFree(enc *EncodingTable) error {
	// Every proper prefix of every code, mapped to one code that has it.
	prefixes := make(map[Code]Symbol)
	codes := make(map[Code]Symbol, NumSymbols)

	for symbol, hc := range enc {
		if hc == "" {
			continue
		}
		if other, found := codes[hc]; found {
			return fmt.Errorf("%w: bytes %d and %d share code %s", ErrNotPrefixFree, other, symbol, hc)
		}
		if other, found := prefixes[hc]; found {
			return fmt.Errorf("%w: code %s of byte %d is a prefix of code %s of byte %d", ErrNotPrefixFree, hc, symbol, enc[other], other)
		}
		for size := 1; size < len(hc); size++ {
			if other, found := codes[hc[:size]]; found {
				return fmt.Errorf("%w: code %s of byte %d is a prefix of code %s of byte %d", ErrNotPrefixFree, enc[other], other, hc, symbol)
			}
			if _, found := prefixes[hc[:size]]; !found {
				prefixes[hc[:size]] = Symbol(symbol)
			}
		}
		codes[hc] = Symbol(symbol)
	}
	return nil
}

// VerifyComplete checks that the given code lengths, one per symbol, describe
// a full binary tree: the sum of 2^-size over the non-zero sizes must be
// exactly 1.  Degenerate codes of 0 or 1 symbols are permitted, as there is
// no way to construct a full tree for them.
func VerifyComplete(sizes []byte) error {
	var n int
	var maxSize byte
	for _, size := range sizes {
		if size == 0 {
			continue
		}
		n++
		if maxSize < size {
			maxSize = size
		}
	}
	if n <= 1 {
		return nil
	}

	// Sum 2^(maxSize-size), which must come to 2^maxSize.  Sizes go up to
	// 255 bits, so big.Int is needed.
	sum := new(big.Int)
	term := new(big.Int)
	for _, size := range sizes {
		if size == 0 {
			continue
		}
		term.Lsh(big.NewInt(1), uint(maxSize-size))
		sum.Add(sum, term)
	}
	expect := new(big.Int).Lsh(big.NewInt(1), uint(maxSize))
	if sum.Cmp(expect) != 0 {
		return fmt.Errorf("%w: Kraft sum %s/%s", ErrIncompleteCode, sum, expect)
	}
	return nil
}
