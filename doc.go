// Package huffstat analyzes byte streams with Huffman codes.  It counts byte
// frequencies, builds a Huffman tree, assigns a bit string to every byte that
// occurs, and computes the size statistics that the resulting code would
// achieve.  No compressed bitstream is ever produced.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
package huffstat
