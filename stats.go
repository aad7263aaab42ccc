package huffstat

import (
	"time"
)

// CompressedBits returns the number of bits needed to encode the input
// described by freq using the codes in enc.
func CompressedBits(freq *FrequencyTable, enc *EncodingTable) uint64 {
	var bits uint64
	for symbol, count := range freq {
		bits += count * uint64(enc[symbol].Len())
	}
	return bits
}

// CompressedSize is CompressedBits converted to bytes, rounding up.
func CompressedSize(freq *FrequencyTable, enc *EncodingTable) uint64 {
	bits := CompressedBits(freq, enc)
	size := bits / 8
	if bits%8 != 0 {
		size++
	}
	return size
}

// OnesCount returns the number of 1 bits in the encoded input.
func OnesCount(freq *FrequencyTable, enc *EncodingTable) uint64 {
	var ones uint64
	for symbol, count := range freq {
		ones += count * uint64(enc[symbol].Ones())
	}
	return ones
}

// MeanCodeLength returns the mean length of the non-empty codes in enc.  Each
// code counts once regardless of its byte's frequency.  The result is NaN if
// every code is empty.
func MeanCodeLength(enc *EncodingTable) float64 {
	var sum, n int
	for _, hc := range enc {
		if hc != "" {
			sum += hc.Len()
			n++
		}
	}
	return float64(sum) / float64(n)
}

// WeightedCodeLength returns the mean number of bits per input byte, i.e. the
// code length weighted by frequency.  The result is NaN for empty input.
func WeightedCodeLength(freq *FrequencyTable, enc *EncodingTable) float64 {
	return float64(CompressedBits(freq, enc)) / float64(freq.Total())
}

// Report holds the statistics of one analysis.
//
// Ratios are computed with plain floating-point division.  Degenerate inputs,
// such as those whose estimated compressed size is 0, yield +Inf or NaN.
//
type Report struct {
	// MeanCodeLength is the unweighted mean length of the non-empty codes.
	MeanCodeLength float64

	// OriginalSize is the input size in bytes.
	OriginalSize uint64

	// CompressedSize is the estimated encoded size in bytes.
	CompressedSize uint64

	// CompressionRatio is OriginalSize / CompressedSize.
	CompressionRatio float64

	// OnesPercentage is the share of 1 bits in the encoded output, counting
	// the padding bits of the final byte as 0 bits.
	OnesPercentage float64

	// AverageCodeLength is CompressedSize / (OriginalSize / 8), with the
	// inner division truncated.
	AverageCodeLength float64

	// BitsPerByte is the frequency-weighted mean code length.
	BitsPerByte float64

	// Elapsed is the wall-clock time the analysis took.
	Elapsed time.Duration
}

// NewReport computes a Report for the given tables.  Elapsed is left zero.
func NewReport(freq *FrequencyTable, enc *EncodingTable, originalSize uint64) Report {
	compressed := CompressedSize(freq, enc)
	ones := OnesCount(freq, enc)
	total := freq.Total()
	return Report{
		MeanCodeLength:    MeanCodeLength(enc),
		OriginalSize:      originalSize,
		CompressedSize:    compressed,
		CompressionRatio:  float64(originalSize) / float64(compressed),
		OnesPercentage:    100 * float64(ones) / float64(compressed*8),
		AverageCodeLength: float64(compressed) / float64(total/8),
		BitsPerByte:       WeightedCodeLength(freq, enc),
	}
}
