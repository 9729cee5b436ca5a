package board

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexclusters/internal/errors"
	"hexclusters/internal/geometry"
	"hexclusters/internal/scene"
	"hexclusters/internal/textfit"
)

const tol = 1e-9

// monoMeasurer is a 6-unit-per-rune, 10-unit-per-line stand-in for the
// real face. With the default options a label line holds 7 runes.
type monoMeasurer struct{}

func (monoMeasurer) Measure(text string) (float64, float64) {
	lines := strings.Split(text, "\n")
	widest := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > widest {
			widest = n
		}
	}
	return float64(widest) * 6, float64(len(lines)) * 10
}

func newBoard(t *testing.T, opts Options) (*Board, *scene.Scene) {
	t.Helper()
	sc := scene.New()
	return New(sc, textfit.New(monoMeasurer{}, ""), nil, opts), sc
}

func labelText(t *testing.T, sc *scene.Scene, tile Tile) string {
	t.Helper()
	s, ok := sc.Text(tile.Label)
	require.True(t, ok)
	return s
}

// hexWidth is the distance between the vertical sides of a default tile.
var hexWidth = 2 * 50 * math.Cos(math.Pi/6)

// ---------------------------------------------------------------------------
// Creation and registry
// ---------------------------------------------------------------------------

func TestCreateTileSequentialIDs(t *testing.T) {
	b, _ := newBoard(t, DefaultOptions())

	t1 := b.CreateTile(geometry.Pt(100, 100), "need: faster search", WithSource("alice"))
	t2 := b.CreateTile(geometry.Pt(200, 100), "need: offline mode", WithSource("bob"))

	assert.Equal(t, TileID(1), t1.ID)
	assert.Equal(t, TileID(2), t2.ID)
	assert.Equal(t, "alice", t1.Source)

	tiles := b.Tiles()
	require.Len(t, tiles, 2)
	assert.Equal(t, geometry.Pt(100, 100), tiles[0].Center)
	assert.Equal(t, geometry.Pt(200, 100), tiles[1].Center)
}

func TestIndependentBoardsNumberIndependently(t *testing.T) {
	a, _ := newBoard(t, DefaultOptions())
	b, _ := newBoard(t, DefaultOptions())

	a.CreateTile(geometry.Pt(0, 0), "x")
	a.CreateTile(geometry.Pt(0, 0), "y")
	got := b.CreateTile(geometry.Pt(0, 0), "z")

	assert.Equal(t, TileID(1), got.ID)
}

func TestCreateTileDrawsPartsAroundCenter(t *testing.T) {
	b, sc := newBoard(t, DefaultOptions())
	tile := b.CreateTile(geometry.Pt(100, 100), "ok")

	body, ok := sc.Item(tile.Body)
	require.True(t, ok)
	v := geometry.HexagonVertices(tile.Center, 50)
	assert.Equal(t, v[:], body.Points)
	assert.Equal(t, "#FFA500", body.Style.Fill)

	badge, ok := sc.Item(tile.Badge)
	require.True(t, ok)
	assert.Equal(t, "1", badge.Text)
	assert.InDelta(t, 100, badge.At.X, tol)
	assert.InDelta(t, 57, badge.At.Y, tol)
	assert.Equal(t, 12.0, badge.Font.Size)

	label, ok := sc.Item(tile.Label)
	require.True(t, ok)
	assert.Equal(t, tile.Center, label.At)
	assert.Equal(t, "ok", label.Text)
}

func TestCreateTileLabelModes(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		mode       LabelMode
		label      string
		toggleable bool
	}{
		{name: "fits", text: "ok", mode: LabelFull, label: "ok", toggleable: false},
		{name: "wrapped", text: "need: faster search", mode: LabelWrapped, label: "need:\nfaster\nsearch", toggleable: true},
		{
			name:       "too many lines",
			text:       "one two three four five six seven eight",
			mode:       LabelTruncated,
			label:      "one two\nthree\nfour\nfive\n[...]",
			toggleable: true,
		},
		{name: "overlong word", text: "supercalifragilistic", mode: LabelTruncated, label: "su[...]", toggleable: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, sc := newBoard(t, DefaultOptions())
			tile := b.CreateTile(geometry.Pt(100, 100), tt.text)

			assert.Equal(t, tt.mode, tile.Mode)
			assert.Equal(t, tt.toggleable, tile.Toggleable)
			assert.Equal(t, tt.text, tile.Text)
			assert.Equal(t, tt.label, labelText(t, sc, tile))
		})
	}
}

func TestTileAtPrefersTopmost(t *testing.T) {
	b, _ := newBoard(t, DefaultOptions())
	b.CreateTile(geometry.Pt(100, 100), "under")
	b.CreateTile(geometry.Pt(120, 100), "over")

	id, ok := b.TileAt(geometry.Pt(110, 100))
	require.True(t, ok)
	assert.Equal(t, TileID(2), id)

	id, ok = b.TileAt(geometry.Pt(70, 100))
	require.True(t, ok)
	assert.Equal(t, TileID(1), id)

	_, ok = b.TileAt(geometry.Pt(500, 500))
	assert.False(t, ok)
}

// ---------------------------------------------------------------------------
// Toggle
// ---------------------------------------------------------------------------

func TestClickTogglesWrappedLabel(t *testing.T) {
	b, sc := newBoard(t, DefaultOptions())
	tile := b.CreateTile(geometry.Pt(100, 100), "need: faster search")
	original := labelText(t, sc, tile)
	require.Equal(t, LabelWrapped, tile.Mode)

	click := func() {
		_, ok := b.PointerDown(tile.Center)
		require.True(t, ok)
		clicked, err := b.PointerUp(tile.Center)
		require.NoError(t, err)
		require.True(t, clicked)
	}

	click()
	got, _ := b.Tile(tile.ID)
	assert.Equal(t, LabelFull, got.Mode)
	assert.Equal(t, "need: faster search", labelText(t, sc, got))

	click()
	got, _ = b.Tile(tile.ID)
	assert.Equal(t, LabelWrapped, got.Mode)
	assert.Equal(t, original, labelText(t, sc, got))
}

func TestToggleLeavesFittingLabelAlone(t *testing.T) {
	b, sc := newBoard(t, DefaultOptions())
	tile := b.CreateTile(geometry.Pt(100, 100), "ok")

	mode, err := b.Toggle(tile.ID)
	require.NoError(t, err)
	assert.Equal(t, LabelFull, mode)
	assert.Equal(t, "ok", labelText(t, sc, tile))
}

func TestToggleByMarker(t *testing.T) {
	opts := DefaultOptions()
	opts.Detection = DetectByMarker

	t.Run("truncated label round trips", func(t *testing.T) {
		b, sc := newBoard(t, opts)
		tile := b.CreateTile(geometry.Pt(100, 100), "one two three four five six seven eight")
		short := labelText(t, sc, tile)

		mode, err := b.Toggle(tile.ID)
		require.NoError(t, err)
		assert.Equal(t, LabelFull, mode)
		assert.Equal(t, tile.Text, labelText(t, sc, tile))

		mode, err = b.Toggle(tile.ID)
		require.NoError(t, err)
		assert.Equal(t, LabelTruncated, mode)
		assert.Equal(t, short, labelText(t, sc, tile))
	})

	t.Run("wrapped label without marker is rewrapped", func(t *testing.T) {
		b, sc := newBoard(t, opts)
		tile := b.CreateTile(geometry.Pt(100, 100), "need: faster search")

		mode, err := b.Toggle(tile.ID)
		require.NoError(t, err)
		assert.Equal(t, LabelWrapped, mode)
		assert.Equal(t, "need:\nfaster\nsearch", labelText(t, sc, tile))
	})

	t.Run("full text ending in marker is misread", func(t *testing.T) {
		b, sc := newBoard(t, opts)
		tile := b.CreateTile(geometry.Pt(100, 100), "quote [...]")

		require.Equal(t, "quote\n[...]", labelText(t, sc, tile))

		mode, err := b.Toggle(tile.ID)
		require.NoError(t, err)
		assert.Equal(t, LabelFull, mode)

		// The full text ends with the marker too, so it never wraps again.
		mode, err = b.Toggle(tile.ID)
		require.NoError(t, err)
		assert.Equal(t, LabelFull, mode)
		assert.Equal(t, "quote [...]", labelText(t, sc, tile))
	})
}

func TestToggleMissingTile(t *testing.T) {
	b, _ := newBoard(t, DefaultOptions())
	_, err := b.Toggle(TileID(9))
	assert.True(t, errors.Is(err, errors.ErrCodeStaleReference))
}

// ---------------------------------------------------------------------------
// Drag controller
// ---------------------------------------------------------------------------

func TestDragMovesAllParts(t *testing.T) {
	b, sc := newBoard(t, DefaultOptions())
	tile := b.CreateTile(geometry.Pt(100, 100), "need: faster search")
	bodyBefore, _ := sc.Item(tile.Body)
	badgeBefore, _ := sc.Item(tile.Badge)

	id, ok := b.PointerDown(geometry.Pt(105, 95))
	require.True(t, ok)
	assert.Equal(t, tile.ID, id)
	assert.Equal(t, DragDragging, b.Session().State)

	_, err := b.PointerMove(geometry.Pt(115, 100), 0)
	require.NoError(t, err)
	_, err = b.PointerMove(geometry.Pt(125, 90), 0)
	require.NoError(t, err)

	d := geometry.Pt(20, -5)
	got, _ := b.Tile(tile.ID)
	assert.Equal(t, geometry.Pt(120, 95), got.Center)

	body, _ := sc.Item(tile.Body)
	for i := range body.Points {
		assert.True(t, body.Points[i].Eq(bodyBefore.Points[i].Add(d)))
	}
	badge, _ := sc.Item(tile.Badge)
	assert.True(t, badge.At.Eq(badgeBefore.At.Add(d)))
	label, _ := sc.Item(tile.Label)
	assert.True(t, label.At.Eq(got.Center))

	clicked, err := b.PointerUp(geometry.Pt(125, 90))
	require.NoError(t, err)
	assert.False(t, clicked, "a moved press is not a click")
	assert.Equal(t, DragIdle, b.Session().State)
	assert.Equal(t, TileID(0), b.Session().Active)

	got, _ = b.Tile(tile.ID)
	assert.Equal(t, LabelWrapped, got.Mode)
}

func TestPointerEventsWhileIdle(t *testing.T) {
	b, _ := newBoard(t, DefaultOptions())
	b.CreateTile(geometry.Pt(100, 100), "x")

	_, ok := b.PointerDown(geometry.Pt(400, 400))
	assert.False(t, ok)
	assert.Equal(t, DragIdle, b.Session().State)

	snap, err := b.PointerMove(geometry.Pt(410, 400), ModShift)
	assert.NoError(t, err)
	assert.Nil(t, snap)

	clicked, err := b.PointerUp(geometry.Pt(410, 400))
	assert.NoError(t, err)
	assert.False(t, clicked)

	got, _ := b.Tile(1)
	assert.Equal(t, geometry.Pt(100, 100), got.Center)
}

func TestPointerDownMidDragRestarts(t *testing.T) {
	b, _ := newBoard(t, DefaultOptions())
	b.CreateTile(geometry.Pt(100, 100), "a")
	b.CreateTile(geometry.Pt(300, 100), "b")

	_, ok := b.PointerDown(geometry.Pt(100, 100))
	require.True(t, ok)
	id, ok := b.PointerDown(geometry.Pt(300, 100))
	require.True(t, ok)
	assert.Equal(t, TileID(2), id)
	assert.Equal(t, geometry.Pt(300, 100), b.Session().LastPointer)

	_, ok = b.PointerDown(geometry.Pt(600, 600))
	assert.False(t, ok)
	assert.Equal(t, DragIdle, b.Session().State)
}

func TestPointerMoveOnMissingTileEndsDrag(t *testing.T) {
	b, _ := newBoard(t, DefaultOptions())
	b.CreateTile(geometry.Pt(100, 100), "a")
	b.CreateTile(geometry.Pt(300, 100), "b")

	_, ok := b.PointerDown(geometry.Pt(300, 100))
	require.True(t, ok)
	delete(b.registry.tiles, TileID(2))

	snap, err := b.PointerMove(geometry.Pt(310, 100), ModShift)
	assert.Nil(t, snap)
	assert.True(t, errors.Is(err, errors.ErrCodeStaleReference))
	assert.Equal(t, DragIdle, b.Session().State)

	got, _ := b.Tile(1)
	assert.Equal(t, geometry.Pt(100, 100), got.Center)
	assert.Equal(t, TileID(3), b.registry.NextID(), "ids are not reused")
}

func TestModifierShiftFamily(t *testing.T) {
	assert.False(t, Modifier(0).ShiftFamily())
	assert.True(t, ModShift.ShiftFamily())
	assert.True(t, ModCapsLock.ShiftFamily())
	assert.True(t, ModShiftLock.ShiftFamily())
	assert.True(t, (ModShift | ModShiftLock).ShiftFamily())
	assert.False(t, Modifier(1<<5).ShiftFamily())
}

// ---------------------------------------------------------------------------
// Docking
// ---------------------------------------------------------------------------

func TestShiftDragDocksToNeighbour(t *testing.T) {
	b, sc := newBoard(t, DefaultOptions())
	first := b.CreateTile(geometry.Pt(100, 100), "need: faster search")
	second := b.CreateTile(geometry.Pt(200, 100), "need: offline mode")

	_, ok := b.PointerDown(second.Center)
	require.True(t, ok)
	// Closes the 13.4 unit gap between the vertical sides to under 3.
	snap, err := b.PointerMove(geometry.Pt(189, 100), ModShift)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, first.ID, snap.Target)
	assert.Equal(t, 5, snap.TargetSide)
	assert.Equal(t, 2, snap.DraggedSide)

	got, _ := b.Tile(second.ID)
	assert.InDelta(t, 100+hexWidth, got.Center.X, tol)
	assert.InDelta(t, 100, got.Center.Y, tol)

	firstSides := geometry.HexagonSides(geometry.HexagonVertices(first.Center, 50))
	v, _ := b.Vertices(second.ID)
	secondSides := geometry.HexagonSides(v)
	assert.True(t, firstSides[5].Midpoint().Eq(secondSides[2].Midpoint()))

	// The parts followed the snap.
	label, _ := sc.Item(second.Label)
	assert.True(t, label.At.Eq(got.Center))
	body, _ := sc.Item(second.Body)
	assert.True(t, body.Points[2].Eq(v[2]))

	// Nothing else moved.
	still, _ := b.Tile(first.ID)
	assert.Equal(t, geometry.Pt(100, 100), still.Center)
}

func TestDragWithoutModifierDoesNotDock(t *testing.T) {
	b, _ := newBoard(t, DefaultOptions())
	b.CreateTile(geometry.Pt(100, 100), "a")
	second := b.CreateTile(geometry.Pt(200, 100), "b")

	_, ok := b.PointerDown(second.Center)
	require.True(t, ok)
	snap, err := b.PointerMove(geometry.Pt(189, 100), 0)
	require.NoError(t, err)
	assert.Nil(t, snap)

	got, _ := b.Tile(second.ID)
	assert.Equal(t, geometry.Pt(189, 100), got.Center)
}

func TestShiftDragOutOfRangeDoesNotDock(t *testing.T) {
	b, _ := newBoard(t, DefaultOptions())
	b.CreateTile(geometry.Pt(100, 100), "a")
	second := b.CreateTile(geometry.Pt(300, 100), "b")

	_, ok := b.PointerDown(second.Center)
	require.True(t, ok)
	snap, err := b.PointerMove(geometry.Pt(280, 100), ModShiftLock)
	require.NoError(t, err)
	assert.Nil(t, snap)

	got, _ := b.Tile(second.ID)
	assert.Equal(t, geometry.Pt(280, 100), got.Center)
}

func TestFindSnapCoincidentSidesSnapRegardlessOfDistance(t *testing.T) {
	size := 50.0
	target := geometry.HexagonSides(geometry.HexagonVertices(geometry.Pt(100, 100), size))
	// Left side collinear with the target's right side, 20 units lower.
	dragged := geometry.HexagonSides(geometry.HexagonVertices(geometry.Pt(100+hexWidth, 120), size))

	snap, ok := FindSnap(dragged, []Candidate{{ID: 1, Sides: target}}, 5)
	require.True(t, ok)
	assert.Equal(t, 5, snap.TargetSide)
	assert.Equal(t, 2, snap.DraggedSide)
	assert.InDelta(t, 0, snap.Delta.X, tol)
	assert.InDelta(t, -20, snap.Delta.Y, tol)
}

func TestFindSnapFirstCandidateWins(t *testing.T) {
	size := 50.0
	dragged := geometry.HexagonSides(geometry.HexagonVertices(geometry.Pt(200, 100), size))
	// Both neighbours are within range; the nearer one is listed second.
	far := geometry.HexagonSides(geometry.HexagonVertices(geometry.Pt(200-hexWidth-4, 100), size))
	near := geometry.HexagonSides(geometry.HexagonVertices(geometry.Pt(200+hexWidth+1, 100), size))

	snap, ok := FindSnap(dragged, []Candidate{{ID: 7, Sides: far}, {ID: 8, Sides: near}}, 5)
	require.True(t, ok)
	assert.Equal(t, TileID(7), snap.Target)
	assert.InDelta(t, -4, snap.Delta.X, tol)
}

func TestFindSnapNoCandidates(t *testing.T) {
	dragged := geometry.HexagonSides(geometry.HexagonVertices(geometry.Pt(0, 0), 50))
	_, ok := FindSnap(dragged, nil, 5)
	assert.False(t, ok)
}
