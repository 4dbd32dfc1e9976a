package piece

import (
	"fmt"
	"math/bits"

	"github.com/lgbarn/boardstate-go/internal/errors"
)

// Side is the colour a piece belongs to.
type Side uint8

const (
	SideWhite Side = iota + 1
	SideBlack
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	}
	return "Unknown"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideWhite {
		return SideBlack
	}
	return SideWhite
}

// Flag returns the colour flag for s.
func (s Side) Flag() Code {
	switch s {
	case SideWhite:
		return White
	case SideBlack:
		return Black
	}
	return 0
}

// Kind is a piece kind.
type Kind uint8

const (
	KindPawn Kind = iota + 1
	KindRook
	KindBishop
	KindKnight
	KindQueen
	KindKing
)

var kindNames = []string{"", "Pawn", "Rook", "Bishop", "Knight", "Queen", "King"}
var kindLetters = []byte{'?', 'P', 'R', 'B', 'N', 'Q', 'K'}

func (k Kind) valid() bool {
	return k >= KindPawn && k <= KindKing
}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if !k.valid() {
		return "Unknown"
	}
	return kindNames[k]
}

// Letter returns the upper case letter of a kind.
func (k Kind) Letter() byte {
	if !k.valid() {
		return '?'
	}
	return kindLetters[k]
}

// Flag returns the kind flag for k. Kind flags follow the Kind order,
// starting at Pawn.
func (k Kind) Flag() Code {
	if !k.valid() {
		return 0
	}
	return Pawn << (k - KindPawn)
}

// Content is the decoded content of a cell: empty, or a piece of one side
// and one kind. The zero value is empty.
type Content struct {
	side Side
	kind Kind
}

// EmptyContent returns the content of an empty cell.
func EmptyContent() Content {
	return Content{}
}

// Occupied returns the content for a piece of the given side and kind.
func Occupied(side Side, kind Kind) (Content, error) {
	if side != SideWhite && side != SideBlack {
		return Content{}, fmt.Errorf("side %d: %w", side, errors.ErrInvalidPieceCode)
	}
	if !kind.valid() {
		return Content{}, fmt.Errorf("kind %d: %w", kind, errors.ErrInvalidPieceCode)
	}
	return Content{side: side, kind: kind}, nil
}

// W returns a white piece of kind k. It panics if k is not a Kind constant.
func W(k Kind) Content {
	return mustOccupied(SideWhite, k)
}

// B returns a black piece of kind k. It panics if k is not a Kind constant.
func B(k Kind) Content {
	return mustOccupied(SideBlack, k)
}

func mustOccupied(side Side, kind Kind) Content {
	c, err := Occupied(side, kind)
	if err != nil {
		panic(err)
	}
	return c
}

// IsEmpty reports whether the cell holds no piece.
func (c Content) IsEmpty() bool {
	return c.kind == 0
}

// Side returns the side of the piece, or 0 for an empty cell.
func (c Content) Side() Side {
	return c.side
}

// Kind returns the kind of the piece, or 0 for an empty cell.
func (c Content) Kind() Kind {
	return c.kind
}

// Encode packs c into its bit flag code.
func (c Content) Encode() Code {
	if c.IsEmpty() {
		return Empty
	}
	return c.side.Flag() | c.kind.Flag()
}

// Letter returns '.' for an empty cell, the kind letter in upper case for
// white and lower case for black.
func (c Content) Letter() byte {
	if c.IsEmpty() {
		return '.'
	}
	l := c.kind.Letter()
	if c.side == SideBlack {
		l += 'a' - 'A'
	}
	return l
}

// String returns "Empty" or e.g. "White Pawn".
func (c Content) String() string {
	if c.IsEmpty() {
		return "Empty"
	}
	return c.side.String() + " " + c.kind.String()
}

// Decode unpacks a code. It fails with ErrInvalidPieceCode unless code is
// exactly Empty or one colour flag combined with one kind flag.
func Decode(code Code) (Content, error) {
	if code == Empty {
		return Content{}, nil
	}
	if code&^(colourMask|kindMask) != 0 {
		return Content{}, invalidCode(code)
	}

	var side Side
	switch code & colourMask {
	case White:
		side = SideWhite
	case Black:
		side = SideBlack
	default:
		return Content{}, invalidCode(code)
	}

	kinds := code & kindMask
	if bits.OnesCount(uint(kinds)) != 1 {
		return Content{}, invalidCode(code)
	}
	kind := KindPawn + Kind(bits.TrailingZeros(uint(kinds/Pawn)))

	return Content{side: side, kind: kind}, nil
}

func invalidCode(code Code) error {
	return fmt.Errorf("%s (%d): %w", code, int(code), errors.ErrInvalidPieceCode)
}
