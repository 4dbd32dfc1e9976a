// Package board provides a rectangular grid of piece codes with bounds-checked
// access.
//
// A Board is owned by a single goroutine. It does no locking; share it through
// Guarded when several goroutines need access.
package board

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/lgbarn/boardstate-go/internal/errors"
	"github.com/lgbarn/boardstate-go/internal/piece"
)

// Board is a width x height grid of raw piece codes. Cell (x, y) is stored
// row-major at index y*width + x.
type Board struct {
	width  int
	height int

	// Allocated once in New and never resized.
	cells []piece.Code

	initialized bool
}

// Square is a coordinate together with the code stored there.
type Square struct {
	X    int
	Y    int
	Code piece.Code
}

// MaxCells is the largest width*height a board may have.
const MaxCells = 1 << 24

// CheckDimensions reports ErrInvalidDimensions unless both dimensions are
// positive and width*height is at most MaxCells.
func CheckDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxCells/height {
		return fmt.Errorf("%dx%d: %w", width, height, errors.ErrInvalidDimensions)
	}
	return nil
}

// New creates an uninitialized board. The dimensions must pass CheckDimensions.
func New(width, height int) (*Board, error) {
	if err := CheckDimensions(width, height); err != nil {
		return nil, err
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]piece.Code, width*height),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Initialized reports whether Initialize has been called.
func (b *Board) Initialized() bool {
	return b.initialized
}

// Initialize sets every cell to piece.Empty. Calling it again resets the board.
func (b *Board) Initialize() {
	for i := range b.cells {
		b.cells[i] = piece.Empty
	}
	b.initialized = true
}

// InBounds reports whether 0 <= x < width and 0 <= y < height.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Index returns the linear index of (x, y), or false if it is off the board.
func (b *Board) Index(x, y int) (int, bool) {
	if !b.InBounds(x, y) {
		return 0, false
	}
	return y*b.width + x, true
}

func (b *Board) checkedIndex(x, y int) (int, error) {
	idx, ok := b.Index(x, y)
	if !ok {
		return 0, errors.NewOutOfRange(x, y, b.width, b.height)
	}
	if !b.initialized {
		return 0, errors.ErrNotInitialized
	}
	return idx, nil
}

// Get returns the code stored at (x, y).
func (b *Board) Get(x, y int) (piece.Code, error) {
	idx, err := b.checkedIndex(x, y)
	if err != nil {
		return 0, err
	}
	return b.cells[idx], nil
}

// Set stores code at (x, y). Any integer is accepted; use Place to store
// only legal contents. Nothing is written on error.
func (b *Board) Set(x, y int, code piece.Code) error {
	idx, err := b.checkedIndex(x, y)
	if err != nil {
		return err
	}
	b.cells[idx] = code
	return nil
}

// Content decodes the code stored at (x, y).
func (b *Board) Content(x, y int) (piece.Content, error) {
	code, err := b.Get(x, y)
	if err != nil {
		return piece.Content{}, err
	}
	c, err := piece.Decode(code)
	if err != nil {
		return piece.Content{}, errors.Wrapf(err, "cell (%d, %d)", x, y)
	}
	return c, nil
}

// Place stores the encoded form of c at (x, y).
func (b *Board) Place(x, y int, c piece.Content) error {
	return b.Set(x, y, c.Encode())
}

// Cells returns a copy of the row-major cell store.
func (b *Board) Cells() []piece.Code {
	out := make([]piece.Code, len(b.cells))
	copy(out, b.cells)
	return out
}

// Occupied returns every cell that does not hold piece.Empty, in row-major
// order. It returns nil for an uninitialized board.
func (b *Board) Occupied() []Square {
	if !b.initialized {
		return nil
	}
	return lo.FilterMap(b.cells, func(code piece.Code, i int) (Square, bool) {
		return Square{X: i % b.width, Y: i / b.width, Code: code}, code != piece.Empty
	})
}

// Describe returns a diagnostic dump of the dimensions and every cell code,
// one line per row starting at y=0. The format is not stable.
func (b *Board) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Board{width=%d, height=%d}\n", b.width, b.height)
	if !b.initialized {
		sb.WriteString("  (uninitialized)\n")
		return sb.String()
	}
	for y, row := range lo.Chunk(b.cells, b.width) {
		codes := lo.Map(row, func(c piece.Code, _ int) string {
			return fmt.Sprintf("%d", int(c))
		})
		fmt.Fprintf(&sb, "  y=%d: %s\n", y, strings.Join(codes, " "))
	}
	return sb.String()
}

// String returns Describe().
func (b *Board) String() string {
	return b.Describe()
}

// Diagram draws the board with one letter per cell, highest row first.
// Empty cells are '.', illegal codes '?'.
func (b *Board) Diagram() string {
	var sb strings.Builder
	for y := b.height - 1; y >= 0; y-- {
		for x := 0; x < b.width; x++ {
			sb.WriteByte(b.letterAt(y*b.width + x))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) letterAt(idx int) byte {
	c, err := piece.Decode(b.cells[idx])
	if err != nil {
		return '?'
	}
	return c.Letter()
}
