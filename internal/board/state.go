package board

import (
	"fmt"

	"github.com/lgbarn/boardstate-go/internal/errors"
	"github.com/lgbarn/boardstate-go/internal/piece"
)

// State captures the cell contents of a board for save/restore operations.
// This is cheaper than Copy() when a caller temporarily modifies the board
// and then wants it back.
type State struct {
	Width       int
	Height      int
	Cells       []piece.Code
	Initialized bool
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() State {
	return State{
		Width:       b.width,
		Height:      b.height,
		Cells:       b.Cells(),
		Initialized: b.initialized,
	}
}

// RestoreState restores the board to a previously saved state. The state
// must come from a board of the same dimensions.
func (b *Board) RestoreState(s State) error {
	if s.Width != b.width || s.Height != b.height || len(s.Cells) != len(b.cells) {
		return fmt.Errorf("restoring %dx%d state (%d cells) onto %dx%d board: %w",
			s.Width, s.Height, len(s.Cells), b.width, b.height, errors.ErrInvalidDimensions)
	}
	copy(b.cells, s.Cells)
	b.initialized = s.Initialized
	return nil
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	return &Board{
		width:       b.width,
		height:      b.height,
		cells:       b.Cells(),
		initialized: b.initialized,
	}
}
