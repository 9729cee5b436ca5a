package board

import "hexclusters/internal/geometry"

// Candidate is a docking target: another tile's sides in registry order.
type Candidate struct {
	ID    TileID
	Sides [6]geometry.Segment
}

// Snap is one corrective translation of the dragged tile.
type Snap struct {
	Target      TileID
	TargetSide  int
	DraggedSide int
	Delta       geometry.Point
}

// FindSnap compares every side of every candidate with every side of the
// dragged hexagon and returns the first pair that is either closer than
// snapDistance (midpoint to midpoint) or coincident. The returned Delta
// carries the dragged side's midpoint onto the candidate side's midpoint.
//
// The scan is greedy: candidates are tried in the order given and the first
// match wins, even if a later pair would be closer. That keeps a tile from
// bouncing between two targets it is near at once.
func FindSnap(dragged [6]geometry.Segment, candidates []Candidate, snapDistance float64) (Snap, bool) {
	for _, c := range candidates {
		for j, side := range c.Sides {
			for i, own := range dragged {
				d := geometry.SideMidpointDistance(own, side)
				if d < snapDistance || geometry.SidesCoincide(own, side) {
					return Snap{
						Target:      c.ID,
						TargetSide:  j,
						DraggedSide: i,
						Delta:       side.Midpoint().Sub(own.Midpoint()),
					}, true
				}
			}
		}
	}
	return Snap{}, false
}

// dock runs one docking pass for t against every other tile and applies the
// snap it finds. The cost is 36 side comparisons per other tile.
func (b *Board) dock(t *Tile) (Snap, bool) {
	others := b.registry.Tiles()
	candidates := make([]Candidate, 0, len(others))
	for _, o := range others {
		if o.ID == t.ID {
			continue
		}
		candidates = append(candidates, Candidate{
			ID:    o.ID,
			Sides: geometry.HexagonSides(geometry.HexagonVertices(o.Center, b.opts.Size)),
		})
	}

	own := geometry.HexagonSides(geometry.HexagonVertices(t.Center, b.opts.Size))
	snap, ok := FindSnap(own, candidates, b.opts.SnapDistance)
	if !ok {
		return Snap{}, false
	}
	b.translate(t, snap.Delta)
	b.logger.Debug("tile docked", "id", t.ID, "target", snap.Target,
		"side", snap.DraggedSide, "target_side", snap.TargetSide)
	return snap, true
}
