package export

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"hexclusters/internal/config"
	"hexclusters/internal/errors"
	"hexclusters/internal/scene"
)

// Exporter writes the snapshot and page named in the configuration.
type Exporter struct {
	cfg    *config.Config
	logger *log.Logger
}

func New(cfg *config.Config, logger *log.Logger) *Exporter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Exporter{cfg: cfg, logger: logger}
}

// Result holds the paths that were written.
type Result struct {
	Snapshot string
	Page     string
}

// Export renders items and writes both artifacts. It only reads items, so
// a failure leaves the board exactly as it was. Every failure is an
// EXPORT_IO error.
func (e *Exporter) Export(items []scene.Item) (Result, error) {
	res, err := e.export(items)
	if err != nil {
		e.logger.Error("export failed", "err", err)
		return Result{}, err
	}
	e.logger.Info("exported", "snapshot", res.Snapshot, "page", res.Page, "items", len(items))
	return res, nil
}

func (e *Exporter) export(items []scene.Item) (Result, error) {
	var res Result
	var err error

	if res.Snapshot, err = e.cfg.OutputPath(e.cfg.SnapshotFile); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeExportIO, err, "prepare snapshot")
	}
	if res.Page, err = e.cfg.OutputPath(e.cfg.PageFile); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeExportIO, err, "prepare page")
	}

	err = writeFile(res.Snapshot, func(w io.Writer) error {
		return WritePNG(w, items, e.cfg.CanvasWidth, e.cfg.CanvasHeight)
	})
	if err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeExportIO, err, "write snapshot %s", res.Snapshot)
	}

	page := Page{
		Title:  "Hexagonal clusters",
		Image:  e.cfg.SnapshotFile,
		Width:  e.cfg.CanvasWidth,
		Height: e.cfg.CanvasHeight,
	}
	if err := writeFile(res.Page, page.Write); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeExportIO, err, "write page %s", res.Page)
	}
	return res, nil
}

func writeFile(path string, fill func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fill(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
