// Package config loads rendering defaults from an optional graphplot.toml
// file. Values left unset in the file keep their built-in defaults, so a
// partial config is fine.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/graphplot/graphplot/pkg/plot"
)

// FileName is the config file looked up in the working directory and in the
// user config directory.
const FileName = "graphplot.toml"

// Config holds user-tunable rendering defaults.
type Config struct {
	// Width and Height are the SVG viewport dimensions in pixels.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Layout is the default layout algorithm when the source text does not
	// pick one.
	Layout string `toml:"layout"`

	// EqualAspect forces both axes onto the same scale so circular layouts
	// stay round.
	EqualAspect bool `toml:"equal_aspect"`

	// CacheDir overrides the artifact cache location. Empty means the
	// platform user cache directory.
	CacheDir string `toml:"cache_dir"`

	// Palette overrides the series color cycle. Each entry is an [r, g, b]
	// triple in 0..255.
	Palette [][3]uint8 `toml:"palette"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:       plot.DefaultWidth,
		Height:      plot.DefaultHeight,
		Layout:      "hierarchical",
		EqualAspect: false,
	}
}

// Load reads the config file at path and merges it over the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the config from the working directory, falling back to the
// user config directory, falling back to the defaults.
func Discover() (Config, error) {
	if _, err := os.Stat(FileName); err == nil {
		return Load(FileName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return Load(filepath.Join(dir, "graphplot", FileName))
	}
	return Default(), nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %gx%g", c.Width, c.Height)
	}
	return nil
}

// PlotPalette converts the configured palette into plot colors. It returns
// nil when no override is configured, which keeps the default cycle.
func (c Config) PlotPalette() []plot.Color {
	if len(c.Palette) == 0 {
		return nil
	}
	colors := make([]plot.Color, len(c.Palette))
	for i, rgb := range c.Palette {
		colors[i] = plot.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 1}
	}
	return colors
}
