package board

import (
	"sync"

	"github.com/lgbarn/boardstate-go/internal/piece"
)

// Guarded wraps a Board with mutex protection for concurrent access.
// Reads share the lock; writes hold it exclusively.
type Guarded struct {
	board *Board
	mu    sync.RWMutex
}

// NewGuarded takes ownership of b. The caller must not use b directly afterwards.
func NewGuarded(b *Board) *Guarded {
	return &Guarded{board: b}
}

// Width returns the number of columns.
func (g *Guarded) Width() int {
	return g.board.Width()
}

// Height returns the number of rows.
func (g *Guarded) Height() int {
	return g.board.Height()
}

// Initialize resets every cell to piece.Empty.
func (g *Guarded) Initialize() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.board.Initialize()
}

// Get returns the code stored at (x, y).
func (g *Guarded) Get(x, y int) (piece.Code, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.Get(x, y)
}

// Set stores code at (x, y).
func (g *Guarded) Set(x, y int, code piece.Code) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Set(x, y, code)
}

// Content decodes the code stored at (x, y).
func (g *Guarded) Content(x, y int) (piece.Content, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.Content(x, y)
}

// Place stores the encoded form of c at (x, y).
func (g *Guarded) Place(x, y int, c piece.Content) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Place(x, y, c)
}

// Cells returns a copy of the row-major cell store.
func (g *Guarded) Cells() []piece.Code {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.Cells()
}

// Describe returns the diagnostic dump of the board.
func (g *Guarded) Describe() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.Describe()
}

// Snapshot returns an independent copy of the board.
func (g *Guarded) Snapshot() *Board {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.Copy()
}

// Update runs fn with exclusive access to the board, so several cells can be
// changed atomically. fn must not retain b.
func (g *Guarded) Update(fn func(b *Board) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.board)
}
