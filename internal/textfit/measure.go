package textfit

import (
	"strings"

	"golang.org/x/image/font"

	"hexclusters/internal/fonts"
)

// Measurer reports the rendered bounding box of text. Multi-line text
// measures as wide as its widest line.
type Measurer interface {
	Measure(text string) (width, height float64)
}

// FaceMeasurer measures text with a real font face. It is the measurer the
// board uses, and the same face is used to draw snapshots.
type FaceMeasurer struct {
	face       font.Face
	lineHeight float64
}

// NewFaceMeasurer builds a measurer for the Go Mono face at size points.
func NewFaceMeasurer(size float64) (*FaceMeasurer, error) {
	face, err := fonts.Face(size)
	if err != nil {
		return nil, err
	}
	return &FaceMeasurer{
		face:       face,
		lineHeight: float64(face.Metrics().Height) / 64,
	}, nil
}

func (m *FaceMeasurer) Measure(text string) (width, height float64) {
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		w := float64(font.MeasureString(m.face, line)) / 64
		if w > width {
			width = w
		}
	}
	return width, float64(len(lines)) * m.lineHeight
}
