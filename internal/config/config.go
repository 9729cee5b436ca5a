// Package config loads hexclusters settings from a TOML file. Every key is
// optional; anything left out keeps its default.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"hexclusters/internal/board"
	"hexclusters/internal/errors"
)

// FileName is looked up in the user's home directory when no path is given.
const FileName = ".hexclusters.toml"

type Config struct {
	CanvasWidth  int `toml:"canvas_width"`
	CanvasHeight int `toml:"canvas_height"`

	HexagonSize      float64 `toml:"hexagon_size"`
	FontSize         float64 `toml:"font_size"`
	BadgeOffset      float64 `toml:"badge_offset"`
	WrapRatio        float64 `toml:"wrap_ratio"`
	SnapDistance     float64 `toml:"snap_distance"`
	TruncationMarker string  `toml:"truncation_marker"`
	ToggleDetection  string  `toml:"toggle_detection"`

	GridOrigin float64 `toml:"grid_origin"`
	GridStep   float64 `toml:"grid_step"`
	GridMargin float64 `toml:"grid_margin"`

	FillColor    string `toml:"fill_color"`
	OutlineColor string `toml:"outline_color"`
	LabelColor   string `toml:"label_color"`
	BadgeColor   string `toml:"badge_color"`

	OutputDir    string `toml:"output_dir"`
	SnapshotFile string `toml:"snapshot_file"`
	PageFile     string `toml:"page_file"`

	// Pixels covered by one terminal cell on the interactive board.
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

func Default() *Config {
	return &Config{
		CanvasWidth:      900,
		CanvasHeight:     600,
		HexagonSize:      50,
		FontSize:         10,
		BadgeOffset:      7,
		WrapRatio:        0.85,
		SnapDistance:     5,
		TruncationMarker: "[...]",
		ToggleDetection:  "mode",
		GridOrigin:       100,
		GridStep:         100,
		GridMargin:       100,
		FillColor:        "#FFA500",
		OutlineColor:     "#000080",
		LabelColor:       "#000000",
		BadgeColor:       "#000080",
		OutputDir:        "output",
		SnapshotFile:     "hexagonal_clusters.png",
		PageFile:         "hexagon_layout.html",
		CellWidth:        8,
		CellHeight:       16,
	}
}

// Load reads path over the defaults. With an empty path it tries
// ~/.hexclusters.toml and quietly falls back to defaults if that is absent;
// an explicitly named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, FileName)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
			}
			return Default(), nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	cfg.OutputDir = expandHome(cfg.OutputDir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// Validate rejects settings the board cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "canvas must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight)
	case c.HexagonSize <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "hexagon_size must be positive, got %v", c.HexagonSize)
	case c.FontSize <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "font_size must be positive, got %v", c.FontSize)
	case c.WrapRatio <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "wrap_ratio must be positive, got %v", c.WrapRatio)
	case c.SnapDistance < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "snap_distance must not be negative, got %v", c.SnapDistance)
	case c.GridStep <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "grid_step must be positive, got %v", c.GridStep)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "cell size must be positive, got %vx%v", c.CellWidth, c.CellHeight)
	case c.SnapshotFile == "" || c.PageFile == "":
		return errors.New(errors.ErrCodeInvalidConfig, "snapshot_file and page_file must be set")
	}
	if _, err := c.detection(); err != nil {
		return err
	}
	return nil
}

func (c *Config) detection() (board.Detection, error) {
	switch strings.ToLower(c.ToggleDetection) {
	case "", "mode":
		return board.DetectByMode, nil
	case "marker":
		return board.DetectByMarker, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidConfig, "toggle_detection must be \"mode\" or \"marker\", got %q", c.ToggleDetection)
	}
}

// BoardOptions converts the drawing and docking settings for the board.
func (c *Config) BoardOptions() board.Options {
	det, _ := c.detection()
	return board.Options{
		Size:         c.HexagonSize,
		FontSize:     c.FontSize,
		BadgeOffset:  c.BadgeOffset,
		WrapRatio:    c.WrapRatio,
		SnapDistance: c.SnapDistance,
		Detection:    det,
		FillColor:    c.FillColor,
		OutlineColor: c.OutlineColor,
		LabelColor:   c.LabelColor,
		BadgeColor:   c.BadgeColor,
	}
}

// OutputPath joins name onto the output directory, creating the directory
// if needed.
func (c *Config) OutputPath(name string) (string, error) {
	if c.OutputDir == "" {
		return name, nil
	}
	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	return filepath.Join(c.OutputDir, name), nil
}
