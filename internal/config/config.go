// Package config holds the startup options shared by every host.
package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strconv"

	"lifepaint/internal/core"
	"lifepaint/internal/playback"
)

// ViewportMargin is subtracted from the screen size on each axis when no
// explicit viewport is configured.
const ViewportMargin = 50

// Config represents the command-line parameters for the application.
type Config struct {
	CellPx int
	Width  int
	Height int
	Rate   int
	Seed   int64
	// Erase starts with a dead brush instead of a live one.
	Erase bool
	// Query holds URL-style overrides such as "size=12&rate=30".
	Query string
}

// NewConfig returns a Config populated with sensible defaults. Width and
// Height of zero mean "fit the screen".
func NewConfig() *Config {
	return &Config{CellPx: core.DefaultCellPx, Rate: playback.DefaultRate, Erase: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.CellPx, "size", c.CellPx, "cell edge length in pixels")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels (0 fits the screen)")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels (0 fits the screen)")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random board (0 picks one)")
	fs.BoolVar(&c.Erase, "erase", c.Erase, "start with the eraser brush")
	fs.StringVar(&c.Query, "query", c.Query, "URL query overrides, e.g. size=12&rate=30")
}

// ApplyMap overrides fields from flag-style key/value pairs. Unparsable or
// out-of-range values are skipped.
func (c *Config) ApplyMap(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellPx = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rate"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= playback.MinRate && parsed <= playback.MaxRate {
			c.Rate = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["erase"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Erase = parsed
		}
	}
}

// ApplyQuery parses a URL query string, with or without a leading "?" or a
// full URL, and applies it with ApplyMap. The first value of a repeated key
// wins.
func (c *Config) ApplyQuery(raw string) error {
	if raw == "" {
		return nil
	}
	if u, err := url.Parse(raw); err == nil && u.RawQuery != "" {
		raw = u.RawQuery
	} else if raw[0] == '?' {
		raw = raw[1:]
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return fmt.Errorf("parse query %q: %w", raw, err)
	}
	m := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			m[k] = vs[0]
		}
	}
	c.ApplyMap(m)
	return nil
}

// ErrCellSize is returned when the cell size is not positive.
var ErrCellSize = errors.New("cell size must be positive")

// Validate reports configuration values no host can run with.
func (c *Config) Validate() error {
	if c.CellPx <= 0 {
		return fmt.Errorf("%w: got %d", ErrCellSize, c.CellPx)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("viewport must not be negative: got %dx%d", c.Width, c.Height)
	}
	if c.Rate < playback.MinRate || c.Rate > playback.MaxRate {
		return fmt.Errorf("rate must be within [%d, %d]: got %d", playback.MinRate, playback.MaxRate, c.Rate)
	}
	return nil
}

// Viewport resolves the configured viewport against the screen size. Zero
// fields fall back to the screen minus ViewportMargin.
func (c *Config) Viewport(screenW, screenH int) (int, int) {
	w, h := c.Width, c.Height
	if w == 0 {
		w = screenW - ViewportMargin
	}
	if h == 0 {
		h = screenH - ViewportMargin
	}
	return max(w, 0), max(h, 0)
}

// Geometry derives the grid layout for the given screen size.
func (c *Config) Geometry(screenW, screenH int) core.Geometry {
	w, h := c.Viewport(screenW, screenH)
	return core.ComputeGeometry(w, h, c.CellPx)
}

// Brush returns the initial paint value.
func (c *Config) Brush() core.Cell {
	if c.Erase {
		return core.Dead
	}
	return core.Alive
}
