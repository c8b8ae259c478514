package session

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig indicates a Config field outside its allowed range.
var ErrInvalidConfig = errors.New("session: invalid config")

// Config holds board geometry and animation pacing.
//
// Rows, Cols      – board dimensions in cells.
// TileSize        – cell edge in pixels, used by CellAt and renderers.
// StepInterval    – wall-clock time per engine Step.
// StepsPerTick    – upper bound on Steps per Update, so a long frame cannot stall the caller.
// RevealDelay     – pause between Found and the start of the path animation.
// RevealDuration  – time the path animation takes to draw the whole route; 0 shows it at once.
type Config struct {
	Rows, Cols     int
	TileSize       int
	StepInterval   time.Duration
	StepsPerTick   int
	RevealDelay    time.Duration
	RevealDuration time.Duration
}

// DefaultConfig returns a 32×48 board of 16px tiles stepping every 15ms,
// revealing the path 800ms after it is found.
func DefaultConfig() Config {
	return Config{
		Rows:           32,
		Cols:           48,
		TileSize:       16,
		StepInterval:   15 * time.Millisecond,
		StepsPerTick:   64,
		RevealDelay:    800 * time.Millisecond,
		RevealDuration: 600 * time.Millisecond,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: board %d×%d", ErrInvalidConfig, c.Rows, c.Cols)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.TileSize)
	case c.StepInterval <= 0:
		return fmt.Errorf("%w: step interval %v", ErrInvalidConfig, c.StepInterval)
	case c.StepsPerTick <= 0:
		return fmt.Errorf("%w: steps per tick %d", ErrInvalidConfig, c.StepsPerTick)
	case c.RevealDelay < 0 || c.RevealDuration < 0:
		return fmt.Errorf("%w: negative reveal timing", ErrInvalidConfig)
	}

	return nil
}

// ScreenSize returns the board size in pixels.
func (c Config) ScreenSize() (width, height int) {
	return c.Cols * c.TileSize, c.Rows * c.TileSize
}
