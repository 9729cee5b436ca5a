// Package textfit fits label text into a fixed width and height budget by
// word wrapping and by trimming with a truncation marker. All width checks go
// through a Measurer so tests can substitute fixed-advance metrics.
package textfit

import "strings"

// DefaultMarker is appended to text that was shortened.
const DefaultMarker = "[...]"

// Fitter wraps and truncates text against a Measurer.
type Fitter struct {
	measurer Measurer
	marker   string
}

// New returns a Fitter using m. An empty marker selects DefaultMarker.
func New(m Measurer, marker string) *Fitter {
	if marker == "" {
		marker = DefaultMarker
	}
	return &Fitter{measurer: m, marker: marker}
}

// Marker returns the truncation marker in use.
func (f *Fitter) Marker() string { return f.marker }

// MeasuresWider reports whether text renders wider than maxWidth.
func (f *Fitter) MeasuresWider(text string, maxWidth float64) bool {
	w, _ := f.measurer.Measure(text)
	return w > maxWidth
}

// Wrap greedily packs whole words into lines no wider than maxWidth and joins
// them with newlines. See WrapLines for the height rule.
func (f *Fitter) Wrap(text string, maxWidth, maxHeight, lineHeight float64) string {
	lines, _ := f.WrapLines(text, maxWidth, maxHeight, lineHeight)
	if lines == nil {
		return text
	}
	return strings.Join(lines, "\n")
}

// WrapLines is Wrap before joining. Each finished line adds lineHeight to a
// running total; once the total exceeds maxHeight the line just finished is
// replaced by the marker and wrapping stops, so truncation happens per line,
// never mid-line. A word wider than maxWidth still gets a line of its own.
// Text without words yields nil lines.
func (f *Fitter) WrapLines(text string, maxWidth, maxHeight, lineHeight float64) (lines []string, truncated bool) {
	words := strings.Fields(text)
	height := 0.0
	for len(words) > 0 {
		line := words[0]
		words = words[1:]
		for len(words) > 0 && !f.MeasuresWider(line+" "+words[0], maxWidth) {
			line += " " + words[0]
			words = words[1:]
		}
		lines = append(lines, line)

		height += lineHeight
		if height > maxHeight {
			lines[len(lines)-1] = f.marker
			return lines, true
		}
	}
	return lines, false
}

// Truncate drops trailing characters until the remainder plus the marker
// fits in maxWidth, then appends the marker. Text that already fits, and the
// empty string, come back unchanged. If not even the marker fits the result
// is the bare marker.
func (f *Fitter) Truncate(text string, maxWidth float64) string {
	if text == "" || !f.MeasuresWider(text, maxWidth) {
		return text
	}
	r := []rune(text)
	for len(r) > 0 && f.MeasuresWider(string(r)+f.marker, maxWidth) {
		r = r[:len(r)-1]
	}
	return string(r) + f.marker
}

// LooksTruncated reports whether displayed ends with the marker.
//
// This is the legacy way of telling a shortened label from a full one. It
// misreads any text that legitimately ends with the marker; prefer tracking
// the label mode explicitly.
func (f *Fitter) LooksTruncated(displayed string) bool {
	return strings.HasSuffix(displayed, f.marker)
}
