// Package errors provides sentinel errors and error types for boardstate.
// It defines the failure conditions of the board and piece packages and a
// structured coordinate error that keeps context while allowing inspection
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfRange indicates a cell coordinate outside the board.
	ErrOutOfRange = errors.New("coordinates out of range")

	// ErrInvalidDimensions indicates a non-positive board width or height,
	// or a size that does not fit the requested operation.
	ErrInvalidDimensions = errors.New("invalid board dimensions")

	// ErrNotInitialized indicates cell access before the board was initialized.
	ErrNotInitialized = errors.New("board not initialized")

	// ErrInvalidPieceCode indicates a piece code that is not a legal
	// flag combination, or an unparseable piece code expression.
	ErrInvalidPieceCode = errors.New("invalid piece code")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// CoordError wraps errors with the coordinate that caused them and the
// dimensions of the board they were checked against.
type CoordError struct {
	Err    error // The underlying error
	X      int
	Y      int
	Width  int
	Height int
}

// NewOutOfRange returns a CoordError for (x, y) on a width x height board.
func NewOutOfRange(x, y, width, height int) error {
	return &CoordError{Err: ErrOutOfRange, X: x, Y: y, Width: width, Height: height}
}

// Error returns the coordinate, the valid ranges and the underlying error.
func (e *CoordError) Error() string {
	msg := fmt.Sprintf("(%d, %d) on %dx%d board", e.X, e.Y, e.Width, e.Height)
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the CoordError wrapper.
func (e *CoordError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
