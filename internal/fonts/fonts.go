// Package fonts provides the monospace face used both to measure labels and
// to draw them into snapshots, so that what fits on the board also fits in
// the exported image.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// DPI is the resolution faces are built at; at 72 DPI one point is one
// canvas unit.
const DPI = 72

var (
	parsed    *truetype.Font
	parseErr  error
	parseOnce sync.Once

	mu    sync.Mutex
	faces = map[float64]font.Face{}
)

func mono() (*truetype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = truetype.Parse(gomono.TTF)
		if parseErr != nil {
			parseErr = fmt.Errorf("failed to parse font: %w", parseErr)
		}
	})
	return parsed, parseErr
}

// Face returns a Go Mono face at size points. Faces are cached per size and
// must not be used from more than one goroutine at a time.
func Face(size float64) (font.Face, error) {
	mu.Lock()
	defer mu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	ttf, err := mono()
	if err != nil {
		return nil, err
	}
	f := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
	faces[size] = f
	return f, nil
}
