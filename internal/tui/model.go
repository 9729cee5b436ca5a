// Package tui is the interactive terminal board. Terminal cells map onto
// canvas units at a fixed cell size; the mouse drags tiles and holding
// shift (or the dock lock) docks them.
package tui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"hexclusters/internal/board"
	"hexclusters/internal/errors"
	"hexclusters/internal/export"
	"hexclusters/internal/geometry"
	"hexclusters/internal/scene"
)

const exportButton = "[Export to HTML]"

// Exporter writes the current drawing out. *export.Exporter satisfies it.
type Exporter interface {
	Export(items []scene.Item) (export.Result, error)
}

type Options struct {
	CellWidth    float64
	CellHeight   float64
	CanvasWidth  int
	CanvasHeight int
	// Copy puts text on the system clipboard. Defaults to clipboard.WriteAll.
	Copy func(string) error
}

type Model struct {
	board    *board.Board
	scene    *scene.Scene
	exporter Exporter
	logger   *log.Logger
	opts     Options

	width    int
	height   int
	selected board.TileID
	dockLock bool
	help     bool

	errorMessage   string
	successMessage string
}

func New(b *board.Board, sc *scene.Scene, exp Exporter, logger *log.Logger, opts Options) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	return Model{
		board:    b,
		scene:    sc,
		exporter: exp,
		logger:   logger,
		opts:     opts,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.help = true
		case "e":
			m.export()
		case "d":
			m.dockLock = !m.dockLock
			m.clearMessages()
			if m.dockLock {
				m.successMessage = "dock lock on"
			} else {
				m.successMessage = "dock lock off"
			}
		case "y":
			m.copySelected()
		case "esc":
			m.selected = 0
			m.clearMessages()
		}
	}
	return m, nil
}

func (m *Model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

// toCanvas maps a terminal cell to the canvas point at its center.
func (m Model) toCanvas(x, y int) geometry.Point {
	return geometry.Pt((float64(x)+0.5)*m.opts.CellWidth, (float64(y)+0.5)*m.opts.CellHeight)
}

func (m Model) modifiers(msg tea.MouseMsg) board.Modifier {
	var mods board.Modifier
	if msg.Shift {
		mods |= board.ModShift
	}
	if m.dockLock {
		mods |= board.ModShiftLock
	}
	return mods
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if msg.Y == m.statusRow() && msg.X < len(exportButton) {
			m.export()
			return
		}
		m.clearMessages()
		if id, ok := m.board.PointerDown(m.toCanvas(msg.X, msg.Y)); ok {
			m.selected = id
		}

	case tea.MouseActionMotion:
		snap, err := m.board.PointerMove(m.toCanvas(msg.X, msg.Y), m.modifiers(msg))
		if err != nil {
			m.reportBoardError(err)
			return
		}
		if snap != nil {
			m.successMessage = fmt.Sprintf("docked to tile %d", snap.Target)
		}

	case tea.MouseActionRelease:
		id := m.board.Session().Active
		clicked, err := m.board.PointerUp(m.toCanvas(msg.X, msg.Y))
		if err != nil {
			m.reportBoardError(err)
			return
		}
		if clicked {
			if t, ok := m.board.Tile(id); ok {
				m.successMessage = fmt.Sprintf("tile %d shows %s text", id, t.Mode)
			}
		}
	}
}

// reportBoardError keeps the session alive. A stale tile is expected when
// a drag outlives its tile and only goes to the debug log.
func (m *Model) reportBoardError(err error) {
	if errors.Is(err, errors.ErrCodeStaleReference) {
		m.logger.Debug("pointer event ignored", "err", err)
		if _, ok := m.board.Tile(m.selected); !ok {
			m.selected = 0
		}
		return
	}
	m.logger.Error("pointer event failed", "err", err)
	m.errorMessage = errors.UserMessage(err)
}

func (m *Model) export() {
	m.clearMessages()
	if m.exporter == nil {
		m.errorMessage = "export is not available"
		return
	}
	res, err := m.exporter.Export(m.scene.Items())
	if err != nil {
		m.errorMessage = errors.UserMessage(err)
		return
	}
	m.successMessage = "exported " + res.Page
}

func (m *Model) copySelected() {
	m.clearMessages()
	t, ok := m.board.Tile(m.selected)
	if !ok {
		m.errorMessage = "no tile selected"
		return
	}
	if err := m.opts.Copy(t.Text); err != nil {
		m.logger.Warn("clipboard write failed", "err", err)
		m.errorMessage = "clipboard: " + err.Error()
		return
	}
	m.successMessage = fmt.Sprintf("copied tile %d", t.ID)
}

// canvasSize is the board area in cells: the terminal minus the status
// line, or the whole canvas before the first resize.
func (m Model) canvasSize() (cols, rows int) {
	if m.width > 0 && m.height > 1 {
		return m.width, m.height - 1
	}
	cols = int(math.Ceil(float64(m.opts.CanvasWidth) / m.opts.CellWidth))
	rows = int(math.Ceil(float64(m.opts.CanvasHeight) / m.opts.CellHeight))
	return max(cols, 1), max(rows, 1)
}

func (m Model) statusRow() int {
	_, rows := m.canvasSize()
	return rows
}

func (m Model) View() string {
	if m.help {
		return helpView()
	}

	cols, rows := m.canvasSize()
	r := newRaster(cols, rows, m.opts.CellWidth, m.opts.CellHeight)
	r.draw(m.scene.Items())

	var result strings.Builder
	for _, line := range r.render() {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine())
	return result.String()
}

func (m Model) statusLine() string {
	status := exportButton
	if s := m.board.Session(); s.State == board.DragDragging {
		status += fmt.Sprintf(" | Dragging tile %d", s.Active)
	}
	if t, ok := m.board.Tile(m.selected); ok {
		status += fmt.Sprintf(" | Tile %d", t.ID)
		if t.Source != "" {
			status += fmt.Sprintf(" from %s", t.Source)
		}
	}
	if m.dockLock {
		status += " | DOCK LOCK"
	}
	if m.successMessage != "" {
		status += " | " + m.successMessage
	}
	if m.errorMessage != "" {
		status += " | ERROR: " + m.errorMessage
	} else if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return status
}

func helpView() string {
	return strings.Join([]string{
		"Hexclusters Help",
		"================",
		"",
		"  drag             Move a tile",
		"  shift+drag       Move a tile and dock it to a neighbour",
		"  click            Switch a long label between full and short text",
		"  d                Toggle dock lock (dock without holding shift)",
		"  y                Copy the selected tile's text",
		"  e                Export snapshot and HTML page",
		"  esc              Clear selection",
		"  q                Quit",
		"",
		"Press ? or esc to close",
	}, "\n")
}
