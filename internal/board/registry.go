package board

import (
	"hexclusters/internal/geometry"
	"hexclusters/internal/scene"
)

// TileID identifies a tile. IDs start at 1 and are shown on the tile's badge.
type TileID int

// LabelMode says which rendering of a tile's text its label shows.
type LabelMode int

const (
	LabelFull LabelMode = iota
	LabelWrapped
	LabelTruncated
)

func (m LabelMode) String() string {
	switch m {
	case LabelFull:
		return "full"
	case LabelWrapped:
		return "wrapped"
	case LabelTruncated:
		return "truncated"
	default:
		return "unknown"
	}
}

// Tile is one hexagon on the board together with the three items drawn for
// it. Body, Label and Badge always move together with Center.
type Tile struct {
	ID     TileID
	Center geometry.Point
	Text   string
	Source string

	Body  scene.ItemID
	Label scene.ItemID
	Badge scene.ItemID

	Mode LabelMode
	// Toggleable is set when the text did not fit at creation, which is the
	// only case where a click switches renderings.
	Toggleable bool
}

// Registry is the insertion-ordered set of tiles. It owns the id counter so
// that independent boards number their tiles independently.
type Registry struct {
	tiles map[TileID]*Tile
	order []TileID
	last  TileID
}

func NewRegistry() *Registry {
	return &Registry{tiles: make(map[TileID]*Tile)}
}

// NextID reserves the next id. IDs are never handed out twice.
func (r *Registry) NextID() TileID {
	r.last++
	return r.last
}

// Add stores t under t.ID.
func (r *Registry) Add(t *Tile) {
	if _, ok := r.tiles[t.ID]; !ok {
		r.order = append(r.order, t.ID)
	}
	r.tiles[t.ID] = t
}

func (r *Registry) Get(id TileID) (*Tile, bool) {
	t, ok := r.tiles[id]
	return t, ok
}

// Tiles returns the tiles in insertion order.
func (r *Registry) Tiles() []*Tile {
	out := make([]*Tile, 0, len(r.order))
	for _, id := range r.order {
		if t, ok := r.tiles[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (r *Registry) Len() int { return len(r.tiles) }
