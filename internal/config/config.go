// Package config holds the game's tunables: grid size, cell size, tick
// period and RNG seed. Values come from defaults, then an optional config
// file, then command line flags.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MinGrid is the smallest grid edge the opening layout fits on.
const MinGrid = 12

// MaxGrid bounds each grid edge.
const MaxGrid = 1000

const (
	DefaultWidth    = 40
	DefaultHeight   = 40
	DefaultCellSize = 10
	DefaultPeriod   = 100 * time.Millisecond
	DefaultScale    = 2
	DefaultPath     = "snake.conf"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width    int           // grid columns
	Height   int           // grid rows
	CellSize int           // pixels per cell, window frontend only
	Period   time.Duration // time between ticks
	Seed     int64         // 0 seeds from the clock
	Scale    int           // initial window scale, window frontend only
}

func Default() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		CellSize: DefaultCellSize,
		Period:   DefaultPeriod,
		Scale:    DefaultScale,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Width < MinGrid || c.Width > MaxGrid:
		return fmt.Errorf("%w: width %d not in %d..%d", ErrInvalid, c.Width, MinGrid, MaxGrid)
	case c.Height < MinGrid || c.Height > MaxGrid:
		return fmt.Errorf("%w: height %d not in %d..%d", ErrInvalid, c.Height, MinGrid, MaxGrid)
	case c.CellSize < 1 || c.CellSize > 64:
		return fmt.Errorf("%w: cell_size %d not in 1..64", ErrInvalid, c.CellSize)
	case c.Period <= 0:
		return fmt.Errorf("%w: period %v must be positive", ErrInvalid, c.Period)
	case c.Scale < 1 || c.Scale > 8:
		return fmt.Errorf("%w: scale %d not in 1..8", ErrInvalid, c.Scale)
	}
	return nil
}

// ScreenSize is the logical pixel size of the grid.
func (c Config) ScreenSize() (w, h int) {
	return c.Width * c.CellSize, c.Height * c.CellSize
}
