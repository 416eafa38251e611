package core

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange is returned when a coordinate falls outside the grid.
	ErrOutOfRange = errors.New("cell out of range")

	// ErrInvalidConfiguration is returned for non-positive or oversized
	// dimensions or a probability outside [0, 1].
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// MaxCells bounds rows*cols so the cell buffer size never overflows.
const MaxCells = 1 << 24

// CheckDimensions validates grid dimensions.
func CheckDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "[CheckDimensions] grid must be at least 1x1, got %dx%d", rows, cols)
	}
	if rows > MaxCells/cols {
		return errors.Wrapf(ErrInvalidConfiguration, "[CheckDimensions] grid %dx%d exceeds %d cells", rows, cols, MaxCells)
	}
	return nil
}

// CheckProbability validates an alive probability.
func CheckProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "[CheckProbability] probability %v outside [0, 1]", p)
	}
	return nil
}
