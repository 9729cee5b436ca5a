// Package cli implements the hexclusters command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"hexclusters/internal/board"
	"hexclusters/internal/config"
	"hexclusters/internal/errors"
	"hexclusters/internal/input"
	"hexclusters/internal/scene"
	"hexclusters/internal/textfit"
)

const (
	appName = "hexclusters"

	// defaultInput is read when no input file is named.
	defaultInput = "elicited_information.csv"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	logFile    string
	outputDir  string

	logSink *os.File
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run on its own it opens the interactive board.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName + " [input.csv]",
		Short: "Hexclusters arranges elicited information as docking hexagons",
		Long: `Hexclusters loads a two-column (source, information) CSV file and lays every row out
as a hexagonal tile. Drag tiles with the mouse; hold shift to dock them edge to edge
with their neighbours and build affinity clusters.`,
		Args:               cobra.MaximumNArgs(1),
		SilenceUsage:       true,
		PersistentPreRunE:  func(cmd *cobra.Command, args []string) error { return c.openLog() },
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return c.closeLog() },
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBoard(cmd.Context(), inputPath(args))
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default ~/"+config.FileName+")")
	flags.StringVar(&c.logFile, "log-file", "", "append logs to this file")
	flags.StringVar(&c.outputDir, "output-dir", "", "directory for exported files (overrides output_dir)")

	root.AddCommand(c.exportCommand())

	return root
}

func inputPath(args []string) string {
	if len(args) == 0 {
		return defaultInput
	}
	return args[0]
}

func (c *CLI) openLog() error {
	if c.logFile == "" {
		return nil
	}
	f, err := os.OpenFile(c.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "open log file %s", c.logFile)
	}
	c.logSink = f
	c.Logger.SetOutput(f)
	return nil
}

func (c *CLI) closeLog() error {
	if c.logSink == nil {
		return nil
	}
	err := c.logSink.Close()
	c.logSink = nil
	return err
}

func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.outputDir != "" {
		cfg.OutputDir = c.outputDir
	}
	c.Logger.Debug("config loaded", "path", c.configPath, "output_dir", cfg.OutputDir)
	return cfg, nil
}

// loadBoard reads the input file and lays every row out as a tile. Nothing
// is placed unless the whole file parses.
func (c *CLI) loadBoard(cfg *config.Config, path string) (*board.Board, *scene.Scene, error) {
	rows, err := input.Load(path)
	if err != nil {
		return nil, nil, err
	}

	m, err := textfit.NewFaceMeasurer(cfg.FontSize)
	if err != nil {
		return nil, nil, err
	}
	sc := scene.New()
	b := board.New(sc, textfit.New(m, cfg.TruncationMarker), c.Logger, cfg.BoardOptions())

	grid := input.Grid{
		Origin: cfg.GridOrigin,
		Step:   cfg.GridStep,
		Margin: cfg.GridMargin,
		Width:  float64(cfg.CanvasWidth),
	}
	tiles := input.Place(b, rows, grid)
	c.Logger.Info("loaded", "file", path, "tiles", len(tiles))
	return b, sc, nil
}
