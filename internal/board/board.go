// Package board is the hexagon interaction and layout engine. It places
// tiles on a drawing surface, moves them under a single pointer, docks them
// edge to edge with their neighbours and switches their labels between full
// and shortened text.
//
// A Board is not safe for concurrent use; pointer events are expected to be
// delivered one at a time from a single event loop.
package board

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"hexclusters/internal/errors"
	"hexclusters/internal/geometry"
	"hexclusters/internal/scene"
	"hexclusters/internal/textfit"
)

// Surface is what the board draws on. *scene.Scene satisfies it.
type Surface interface {
	AddPolygon(pts []geometry.Point, st scene.Style) scene.ItemID
	AddText(at geometry.Point, text string, f scene.Font) scene.ItemID
	SetText(id scene.ItemID, text string) bool
	Text(id scene.ItemID) (string, bool)
	Move(d geometry.Point, ids ...scene.ItemID)
}

// Detection selects how a click decides which label rendering to show next.
type Detection int

const (
	// DetectByMode flips on the tile's recorded LabelMode.
	DetectByMode Detection = iota
	// DetectByMarker flips to the full text only when the displayed label
	// ends with the truncation marker, and re-wraps otherwise. A full text
	// that itself ends with the marker is misread as shortened.
	DetectByMarker
)

// Options are the board's fixed drawing and docking parameters.
type Options struct {
	Size         float64 // hexagon circumradius
	FontSize     float64 // label size; badges are two points larger
	BadgeOffset  float64 // badge distance below the top vertex
	WrapRatio    float64 // label budget as a fraction of Size, both ways
	SnapDistance float64
	Detection    Detection

	FillColor    string
	OutlineColor string
	LabelColor   string
	BadgeColor   string
}

// DefaultOptions returns the classic look: 50-unit orange hexagons with
// navy outlines and 10-point labels.
func DefaultOptions() Options {
	return Options{
		Size:         50,
		FontSize:     10,
		BadgeOffset:  7,
		WrapRatio:    0.85,
		SnapDistance: 5,
		Detection:    DetectByMode,
		FillColor:    "#FFA500",
		OutlineColor: "#000080",
		LabelColor:   "#000000",
		BadgeColor:   "#000080",
	}
}

// Board owns the tile registry and the single drag session.
type Board struct {
	opts     Options
	surface  Surface
	fit      *textfit.Fitter
	registry *Registry
	drag     DragSession
	logger   *log.Logger
}

// New creates an empty board drawing on surface and measuring with fit.
// A nil logger discards output.
func New(surface Surface, fit *textfit.Fitter, logger *log.Logger, opts Options) *Board {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{
		opts:     opts,
		surface:  surface,
		fit:      fit,
		registry: NewRegistry(),
		logger:   logger,
	}
}

func (b *Board) Options() Options { return b.opts }

// TileOption adjusts a tile before it is registered.
type TileOption func(*Tile)

// WithSource records where the tile's text came from.
func WithSource(source string) TileOption {
	return func(t *Tile) { t.Source = source }
}

// CreateTile places a new tile centered on center and draws its body,
// label and badge. Whether the label starts full or shortened is decided
// here, once, by measuring text against the wrap width.
func (b *Board) CreateTile(center geometry.Point, text string, opts ...TileOption) Tile {
	t := &Tile{
		ID:     b.registry.NextID(),
		Center: center,
		Text:   text,
	}
	for _, opt := range opts {
		opt(t)
	}

	v := geometry.HexagonVertices(center, b.opts.Size)
	t.Body = b.surface.AddPolygon(v[:], scene.Style{
		Fill:    b.opts.FillColor,
		Outline: b.opts.OutlineColor,
		Width:   0.5,
	})
	top := v[geometry.TopVertex]
	t.Badge = b.surface.AddText(geometry.Pt(top.X, top.Y+b.opts.BadgeOffset), strconv.Itoa(int(t.ID)), scene.Font{
		Size:  b.opts.FontSize + 2,
		Color: b.opts.BadgeColor,
	})

	label := text
	t.Mode = LabelFull
	if b.fit.MeasuresWider(text, b.wrapWidth()) {
		label, t.Mode = b.shortLabel(text)
		t.Toggleable = true
	}
	t.Label = b.surface.AddText(center, label, scene.Font{
		Size:  b.opts.FontSize,
		Color: b.opts.LabelColor,
	})

	b.registry.Add(t)
	b.logger.Debug("tile created", "id", t.ID, "x", center.X, "y", center.Y, "mode", t.Mode)
	return *t
}

// Tile returns a copy of the tile with the given id.
func (b *Board) Tile(id TileID) (Tile, bool) {
	t, ok := b.registry.Get(id)
	if !ok {
		return Tile{}, false
	}
	return *t, true
}

// Tiles returns copies of all tiles in creation order.
func (b *Board) Tiles() []Tile {
	ts := b.registry.Tiles()
	out := make([]Tile, len(ts))
	for i, t := range ts {
		out[i] = *t
	}
	return out
}

// Vertices returns the current hexagon of a tile.
func (b *Board) Vertices(id TileID) ([6]geometry.Point, bool) {
	t, ok := b.registry.Get(id)
	if !ok {
		return [6]geometry.Point{}, false
	}
	return geometry.HexagonVertices(t.Center, b.opts.Size), true
}

// TileAt returns the topmost tile whose body contains p. Later tiles are
// drawn over earlier ones, so the search runs newest first.
func (b *Board) TileAt(p geometry.Point) (TileID, bool) {
	ts := b.registry.Tiles()
	for i := len(ts) - 1; i >= 0; i-- {
		v := geometry.HexagonVertices(ts[i].Center, b.opts.Size)
		if geometry.Contains(v[:], p) {
			return ts[i].ID, true
		}
	}
	return 0, false
}

// Toggle switches a toggleable tile's label between the full text and the
// shortened rendering and returns the mode now shown. Tiles whose text fit
// at creation are left alone.
func (b *Board) Toggle(id TileID) (LabelMode, error) {
	t, ok := b.registry.Get(id)
	if !ok {
		return 0, errors.New(errors.ErrCodeStaleReference, "tile %d is not on the board", id)
	}
	if !t.Toggleable {
		return t.Mode, nil
	}

	var showFull bool
	switch b.opts.Detection {
	case DetectByMarker:
		shown, _ := b.surface.Text(t.Label)
		showFull = b.fit.LooksTruncated(shown)
	default:
		showFull = t.Mode != LabelFull
	}

	label := t.Text
	t.Mode = LabelFull
	if !showFull {
		label, t.Mode = b.shortLabel(t.Text)
	}
	b.surface.SetText(t.Label, label)
	b.logger.Debug("label toggled", "id", id, "mode", t.Mode)
	return t.Mode, nil
}

// shortLabel wraps text into the hexagon. Words that are wider than the
// hexagon on their own are cut down with the marker so no line spills past
// the body.
func (b *Board) shortLabel(text string) (string, LabelMode) {
	w := b.wrapWidth()
	lines, truncated := b.fit.WrapLines(text, w, w, b.opts.FontSize)
	if lines == nil {
		return text, LabelFull
	}
	for i, line := range lines {
		if b.fit.MeasuresWider(line, w) {
			lines[i] = b.fit.Truncate(line, w)
			truncated = true
		}
	}
	mode := LabelWrapped
	if truncated {
		mode = LabelTruncated
	}
	return strings.Join(lines, "\n"), mode
}

func (b *Board) wrapWidth() float64 {
	return b.opts.Size * b.opts.WrapRatio
}

// translate moves a tile and everything drawn for it.
func (b *Board) translate(t *Tile, d geometry.Point) {
	t.Center = t.Center.Add(d)
	b.surface.Move(d, t.Body, t.Label, t.Badge)
}
