package cli

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"hexclusters/internal/export"
	"hexclusters/internal/tui"
)

// runBoard opens the interactive board. The terminal belongs to the board
// while it runs, so logs only go somewhere if --log-file was given.
func (c *CLI) runBoard(ctx context.Context, path string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	b, sc, err := c.loadBoard(cfg, path)
	if err != nil {
		return err
	}

	if c.logSink == nil {
		c.Logger.SetOutput(io.Discard)
	}

	model := tui.New(b, sc, export.New(cfg, c.Logger), c.Logger, tui.Options{
		CellWidth:    cfg.CellWidth,
		CellHeight:   cfg.CellHeight,
		CanvasWidth:  cfg.CanvasWidth,
		CanvasHeight: cfg.CanvasHeight,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	return err
}
