package engine

import (
	"time"

	"github.com/pkg/errors"

	"lifeboard/pkg/core"
)

const (
	// DefaultRows and DefaultCols give the classic 25x25 board.
	DefaultRows = 25
	DefaultCols = 25
	// DefaultDelay is the pause between generations while running.
	DefaultDelay = 100 * time.Millisecond
	// DefaultAliveProbability is the chance a cell starts alive on Randomize.
	DefaultAliveProbability = 0.3
)

// Config holds the fixed settings of an Engine.
type Config struct {
	Rows             int
	Cols             int
	Delay            time.Duration
	AliveProbability float64
	// Seed drives Randomize. Zero seeds from the clock.
	Seed int64
	// Workers above one computes each generation in parallel row bands.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:             DefaultRows,
		Cols:             DefaultCols,
		Delay:            DefaultDelay,
		AliveProbability: DefaultAliveProbability,
		Workers:          1,
	}
}

// Validate reports core.ErrInvalidConfiguration for unusable settings.
func (c Config) Validate() error {
	if err := core.CheckDimensions(c.Rows, c.Cols); err != nil {
		return errors.Wrap(err, "[Config.Validate] dimensions")
	}
	if err := core.CheckProbability(c.AliveProbability); err != nil {
		return errors.Wrap(err, "[Config.Validate] alive probability")
	}
	if c.Delay <= 0 {
		return errors.Wrapf(core.ErrInvalidConfiguration, "[Config.Validate] delay must be positive, got %v", c.Delay)
	}
	if c.Workers < 0 {
		return errors.Wrapf(core.ErrInvalidConfiguration, "[Config.Validate] workers must not be negative, got %d", c.Workers)
	}
	return nil
}
