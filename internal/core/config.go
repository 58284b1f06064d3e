package core

import (
	"errors"
	"fmt"
)

// Playfield limits accepted on the command line. Outside them the
// renderers cannot lay the board out legibly.
const (
	MinRows = 10
	MaxRows = 25
	MinCols = 5
	MaxCols = 40
)

// ErrInvalidSize is returned by Validate for an out-of-range playfield.
var ErrInvalidSize = errors.New("invalid playfield size")

// RuntimeConfig contains configuration passed to the engine and renderer
// at start-up.
type RuntimeConfig struct {
	Backend string // Renderer backend ID
	Rows    int    // Visible rows of the playfield
	Cols    int    // Columns of the playfield
	Seed    int64  // RNG seed; 0 means use current time in the command layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Backend: "tui",
		Rows:    20,
		Cols:    10,
	}
}

// Validate checks the playfield dimensions.
func (c RuntimeConfig) Validate() error {
	if c.Rows < MinRows || c.Rows > MaxRows || c.Cols < MinCols || c.Cols > MaxCols {
		return fmt.Errorf("%w: need %d <= rows <= %d and %d <= columns <= %d, got %dx%d",
			ErrInvalidSize, MinRows, MaxRows, MinCols, MaxCols, c.Rows, c.Cols)
	}
	return nil
}
