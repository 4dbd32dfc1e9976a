package board

import (
	"github.com/lgbarn/boardstate-go/internal/errors"
	"github.com/lgbarn/boardstate-go/internal/piece"
)

// StandardSize is the side length required by SetupStandard.
const StandardSize = 8

var backRank = []piece.Kind{
	piece.KindRook, piece.KindKnight, piece.KindBishop, piece.KindQueen,
	piece.KindKing, piece.KindBishop, piece.KindKnight, piece.KindRook,
}

// SetupStandard initializes an 8x8 board to the chess starting position:
// white on rows 0 and 1, black on rows 6 and 7, kings on x=4.
func (b *Board) SetupStandard() error {
	if b.width != StandardSize || b.height != StandardSize {
		return errors.Wrapf(errors.ErrInvalidDimensions,
			"standard setup needs %dx%d, board is %dx%d", StandardSize, StandardSize, b.width, b.height)
	}

	b.Initialize()
	for x, kind := range backRank {
		b.cells[x] = piece.W(kind).Encode()
		b.cells[StandardSize+x] = piece.W(piece.KindPawn).Encode()
		b.cells[6*StandardSize+x] = piece.B(piece.KindPawn).Encode()
		b.cells[7*StandardSize+x] = piece.B(kind).Encode()
	}
	return nil
}
