// Package input reads the two-column elicited information file and lays the
// rows out as tiles on a board.
package input

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"hexclusters/internal/board"
	"hexclusters/internal/errors"
	"hexclusters/internal/geometry"
)

// HeaderColumn is the first cell of the header row.
const HeaderColumn = "source"

// ElicitedInformation is one row: who said it, and what they said.
type ElicitedInformation struct {
	Source      string
	Information string
}

// Load reads the file at path. See Read.
func Load(path string) ([]ElicitedInformation, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInputFormat, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Read parses comma-separated rows of exactly two columns. A first row whose
// first cell is "source" is a header and skipped. The whole input is
// rejected on the first malformed row, so callers never see a partial list.
func Read(r io.Reader) ([]ElicitedInformation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []ElicitedInformation
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if stderrors.As(err, &perr) {
				return nil, errors.Wrap(errors.ErrCodeInputFormat, err, "line %d", perr.Line)
			}
			return nil, errors.Wrap(errors.ErrCodeInputFormat, err, "read input")
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), HeaderColumn) {
				continue
			}
		}
		if len(rec) != 2 {
			return nil, errors.New(errors.ErrCodeInputFormat, "line %d: want 2 columns, got %d", line, len(rec))
		}
		rows = append(rows, ElicitedInformation{
			Source:      strings.TrimSpace(rec[0]),
			Information: strings.TrimSpace(rec[1]),
		})
	}
	return rows, nil
}

// Grid is the initial left-to-right layout. A row ends once the next x
// would reach Width-Margin.
type Grid struct {
	Origin float64
	Step   float64
	Margin float64
	Width  float64
}

// Positions returns n tile centers.
func (g Grid) Positions(n int) []geometry.Point {
	pts := make([]geometry.Point, 0, n)
	x, y := g.Origin, g.Origin
	for _i := 0; _i < n; _i++ {
		pts = append(pts, geometry.Pt(x, y))
		x += g.Step
		if x >= g.Width-g.Margin {
			x = g.Origin
			y += g.Step
		}
	}
	return pts
}

// Place creates one tile per row at the grid positions, in row order.
func Place(b *board.Board, rows []ElicitedInformation, g Grid) []board.Tile {
	tiles := make([]board.Tile, 0, len(rows))
	for i, at := range g.Positions(len(rows)) {
		row := rows[i]
		tiles = append(tiles, b.CreateTile(at, row.Information, board.WithSource(row.Source)))
	}
	return tiles
}
