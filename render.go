package huffstat

import (
	"bytes"
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Renderer writes human-readable analysis output.  Numbers are formatted for
// the Renderer's language, e.g. with thousands separators.
type Renderer struct {
	p *message.Printer
}

// NewRenderer creates a Renderer for the given language.
func NewRenderer(tag language.Tag) *Renderer {
	return &Renderer{p: message.NewPrinter(tag)}
}

// RenderFrequencies writes the relative frequency of every byte that occurs,
// one line per byte in ascending byte order, followed by a blank line.
func (r *Renderer) RenderFrequencies(w io.Writer, freq *FrequencyTable) (int64, error) {
	var buf bytes.Buffer
	for symbol, count := range freq {
		if count != 0 {
			r.p.Fprintf(&buf, "%d %s: %.5f\n", symbol, Symbol(symbol), freq.Relative(byte(symbol)))
		}
	}
	buf.WriteByte('\n')
	return buf.WriteTo(w)
}

// RenderEncodings writes the code of every byte that has one, one line per
// byte in ascending byte order, followed by a blank line.
func (r *Renderer) RenderEncodings(w io.Writer, enc *EncodingTable) (int64, error) {
	var buf bytes.Buffer
	for symbol, hc := range enc {
		if hc != "" {
			r.p.Fprintf(&buf, "%d %s: %s\n", symbol, Symbol(symbol), string(hc))
		}
	}
	buf.WriteByte('\n')
	return buf.WriteTo(w)
}

// RenderReport writes the statistics block.  Fractional values are written in
// plain decimal notation with as many digits as needed to round-trip, and
// non-finite values as "+Inf", "-Inf", or "NaN".
func (r *Renderer) RenderReport(w io.Writer, report *Report) (int64, error) {
	var buf bytes.Buffer
	r.p.Fprintf(&buf, "Mean code length: %s\n", formatFloat(report.MeanCodeLength))
	r.p.Fprintf(&buf, "Old Size: %d bytes\n", report.OriginalSize)
	r.p.Fprintf(&buf, "New Size: %d bytes\n", report.CompressedSize)
	r.p.Fprintf(&buf, "Compression ratio: %s\n", formatFloat(report.CompressionRatio))
	r.p.Fprintf(&buf, "Percentage of ones: %s%%\n", formatFloat(report.OnesPercentage))
	r.p.Fprintf(&buf, "Average code length: %s\n", formatFloat(report.AverageCodeLength))
	r.p.Fprintf(&buf, "Bits per byte: %s\n", formatFloat(report.BitsPerByte))
	r.p.Fprintf(&buf, "\nExecution time: %ss\n", formatFloat(report.Elapsed.Seconds()))
	return buf.WriteTo(w)
}

// Render writes the frequencies, encodings, and statistics of result, in
// that order.
func (r *Renderer) Render(w io.Writer, result *Result) (int64, error) {
	var total int64
	n, err := r.RenderFrequencies(w, &result.Frequencies)
	total += n
	if err != nil {
		return total, err
	}
	n, err = r.RenderEncodings(w, &result.Encodings)
	total += n
	if err != nil {
		return total, err
	}
	n, err = r.RenderReport(w, &result.Report)
	total += n
	return total, err
}

// formatFloat bypasses the Printer, whose %v switches to scientific notation
// outside %g's decimal range.  Non-finite values come out as "+Inf", "-Inf",
// or "NaN".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
