package tui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"hexclusters/internal/geometry"
	"hexclusters/internal/scene"
)

type cell struct {
	ch rune
	fg string
	bg string
}

// raster is the scene sampled at the center of every terminal cell.
type raster struct {
	cells [][]cell
	cw    float64
	ch    float64
}

func newRaster(cols, rows int, cw, ch float64) *raster {
	cells := make([][]cell, rows)
	for r := range cells {
		cells[r] = make([]cell, cols)
		for c := range cells[r] {
			cells[r][c].ch = ' '
		}
	}
	return &raster{cells: cells, cw: cw, ch: ch}
}

func (r *raster) rows() int { return len(r.cells) }

func (r *raster) cols() int {
	if len(r.cells) == 0 {
		return 0
	}
	return len(r.cells[0])
}

func (r *raster) center(col, row int) geometry.Point {
	return geometry.Pt((float64(col)+0.5)*r.cw, (float64(row)+0.5)*r.ch)
}

func (r *raster) cellAt(p geometry.Point) (col, row int) {
	return int(math.Floor(p.X / r.cw)), int(math.Floor(p.Y / r.ch))
}

func (r *raster) inBounds(col, row int) bool {
	return row >= 0 && row < r.rows() && col >= 0 && col < r.cols()
}

// draw paints items in order, later ones over earlier ones.
func (r *raster) draw(items []scene.Item) {
	for _, it := range items {
		switch it.Kind {
		case scene.KindPolygon:
			r.polygon(it)
		case scene.KindText:
			r.text(it)
		}
	}
}

// polygon fills every cell whose center lies inside the polygon. Cells on
// the rim take the outline color. Text underneath is covered.
func (r *raster) polygon(it scene.Item) {
	if len(it.Points) < 3 {
		return
	}
	lo, hi := geometry.BoundingBox(it.Points)
	c0, r0 := r.cellAt(lo)
	c1, r1 := r.cellAt(hi)

	inside := func(col, row int) bool {
		return geometry.Contains(it.Points, r.center(col, row))
	}
	for row := max(r0, 0); row <= min(r1, r.rows()-1); row++ {
		for col := max(c0, 0); col <= min(c1, r.cols()-1); col++ {
			if !inside(col, row) {
				continue
			}
			bg := it.Style.Fill
			if !inside(col-1, row) || !inside(col+1, row) || !inside(col, row-1) || !inside(col, row+1) {
				bg = it.Style.Outline
			}
			r.cells[row][col] = cell{ch: ' ', bg: bg}
		}
	}
}

// text writes each line centered on the anchor, keeping the background.
func (r *raster) text(it scene.Item) {
	if it.Text == "" {
		return
	}
	lines := strings.Split(it.Text, "\n")
	col, row := r.cellAt(it.At)
	row -= (len(lines) - 1) / 2
	for i, line := range lines {
		start := col - utf8.RuneCountInString(line)/2
		j := 0
		for _, ch := range line {
			c, rr := start+j, row+i
			j++
			if !r.inBounds(c, rr) {
				continue
			}
			r.cells[rr][c].ch = ch
			r.cells[rr][c].fg = it.Font.Color
		}
	}
}

// render turns the raster into styled lines, one lipgloss style per run of
// equally colored cells.
func (r *raster) render() []string {
	styles := map[[2]string]lipgloss.Style{}
	style := func(fg, bg string) lipgloss.Style {
		key := [2]string{fg, bg}
		if s, ok := styles[key]; ok {
			return s
		}
		s := lipgloss.NewStyle()
		if fg != "" {
			s = s.Foreground(lipgloss.Color(fg))
		}
		if bg != "" {
			s = s.Background(lipgloss.Color(bg))
		}
		styles[key] = s
		return s
	}

	out := make([]string, 0, r.rows())
	for _, row := range r.cells {
		var line, run strings.Builder
		var fg, bg string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if fg == "" && bg == "" {
				line.WriteString(run.String())
			} else {
				line.WriteString(style(fg, bg).Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range row {
			if c.fg != fg || c.bg != bg {
				flush()
				fg, bg = c.fg, c.bg
			}
			run.WriteRune(c.ch)
		}
		flush()
		out = append(out, line.String())
	}
	return out
}
