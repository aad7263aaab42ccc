package huffstat

import (
	"fmt"
)

// Symbol represents one byte of input.
type Symbol byte

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// String returns a printable representation of the Symbol.  The control
// characters '\n', '\t', and '\r' are shown as two-character escapes; every
// other byte is shown as the character it encodes.
func (s Symbol) String() string {
	switch s {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	}
	return string(rune(s))
}

var _ fmt.Stringer = Symbol(0)
