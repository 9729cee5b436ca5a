package board

import (
	"hexclusters/internal/errors"
	"hexclusters/internal/geometry"
)

// DragState is the drag controller's state.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	if s == DragDragging {
		return "dragging"
	}
	return "idle"
}

// DragSession is the live drag, if any. Ending a drag resets the fields;
// there is never more than one session.
type DragSession struct {
	State       DragState
	Active      TileID
	LastPointer geometry.Point
	moved       bool
}

func (s *DragSession) reset() {
	*s = DragSession{}
}

// Modifier is the set of modifier keys held during a pointer event.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCapsLock
	ModShiftLock
)

// ShiftFamily reports whether any shift-like modifier is held. Any of them
// turns docking on for a drag step.
func (m Modifier) ShiftFamily() bool {
	return m&(ModShift|ModCapsLock|ModShiftLock) != 0
}

// Session returns a copy of the current drag session.
func (b *Board) Session() DragSession { return b.drag }

// PointerDown starts dragging the topmost tile under p and reports whether
// there was one. A press that arrives mid-drag abandons the old session and
// starts over on whatever is under the pointer now; a press on empty canvas
// leaves the board idle.
func (b *Board) PointerDown(p geometry.Point) (TileID, bool) {
	b.drag.reset()
	id, ok := b.TileAt(p)
	if !ok {
		return 0, false
	}
	b.drag = DragSession{State: DragDragging, Active: id, LastPointer: p}
	return id, true
}

// PointerMove moves the dragged tile by the pointer's displacement since
// the last sample. With a shift-family modifier held the docking engine runs
// afterwards and may shift the tile further; the snap it applied, if any, is
// returned.
//
// If the dragged tile has disappeared the session ends and a
// STALE_REFERENCE error is returned; callers are expected to log it and
// carry on.
func (b *Board) PointerMove(p geometry.Point, mods Modifier) (*Snap, error) {
	if b.drag.State != DragDragging {
		return nil, nil
	}
	t, ok := b.registry.Get(b.drag.Active)
	if !ok {
		id := b.drag.Active
		b.drag.reset()
		b.logger.Debug("drag ended on missing tile", "id", id)
		return nil, errors.New(errors.ErrCodeStaleReference, "tile %d is not on the board", id)
	}

	delta := p.Sub(b.drag.LastPointer)
	if delta != (geometry.Point{}) {
		b.drag.moved = true
		b.translate(t, delta)
	}
	b.drag.LastPointer = p

	if !mods.ShiftFamily() {
		return nil, nil
	}
	snap, ok := b.dock(t)
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

// PointerUp ends the drag. A press and release with no movement in between
// is a click on the tile and toggles its label; clicked reports that case.
func (b *Board) PointerUp(p geometry.Point) (clicked bool, err error) {
	if b.drag.State != DragDragging {
		return false, nil
	}
	id, moved := b.drag.Active, b.drag.moved
	b.drag.reset()
	if moved {
		return false, nil
	}
	if _, err := b.Toggle(id); err != nil {
		return false, err
	}
	return true, nil
}
