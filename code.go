package huffstat

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as a string of '0' and '1'
// characters with the first bit first.  The empty Code means "no code".
type Code string

// Len returns the number of bits in the Code.
func (hc Code) Len() int {
	return len(hc)
}

// Ones returns the number of 1 bits in the Code.
func (hc Code) Ones() int {
	return strings.Count(string(hc), "1")
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")
