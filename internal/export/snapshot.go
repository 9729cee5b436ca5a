// Package export writes the board out as a PNG snapshot and a static page
// that shows it at the canvas's size.
package export

import (
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/fogleman/gg"

	"hexclusters/internal/fonts"
	"hexclusters/internal/scene"
)

// Snapshot paints items in order onto a white width x height image.
func Snapshot(items []scene.Item, width, height int) (image.Image, error) {
	dc, err := render(items, width, height)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG renders items and encodes the result as PNG to w.
func WritePNG(w io.Writer, items []scene.Item, width, height int) error {
	dc, err := render(items, width, height)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func render(items []scene.Item, width, height int) (*gg.Context, error) {
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	for _, it := range items {
		switch it.Kind {
		case scene.KindPolygon:
			drawPolygon(dc, it)
		case scene.KindText:
			if err := drawText(dc, it); err != nil {
				return nil, err
			}
		}
	}
	return dc, nil
}

func drawPolygon(dc *gg.Context, it scene.Item) {
	if len(it.Points) < 3 {
		return
	}
	dc.NewSubPath()
	dc.MoveTo(it.Points[0].X, it.Points[0].Y)
	for _, p := range it.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()

	if it.Style.Fill != "" {
		dc.SetHexColor(it.Style.Fill)
		dc.FillPreserve()
	}
	if it.Style.Outline != "" {
		dc.SetHexColor(it.Style.Outline)
		dc.SetLineWidth(max(it.Style.Width, 1))
		dc.StrokePreserve()
	}
	dc.ClearPath()
}

// drawText centers each line on the item's anchor, one font size apart,
// the same line height the board wraps with.
func drawText(dc *gg.Context, it scene.Item) error {
	if it.Text == "" {
		return nil
	}
	face, err := fonts.Face(it.Font.Size)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	if it.Font.Color != "" {
		dc.SetHexColor(it.Font.Color)
	} else {
		dc.SetColor(color.Black)
	}

	lines := strings.Split(it.Text, "\n")
	top := it.At.Y - float64(len(lines)-1)*it.Font.Size/2
	for i, line := range lines {
		dc.DrawStringAnchored(line, it.At.X, top+float64(i)*it.Font.Size, 0.5, 0.5)
	}
	return nil
}
