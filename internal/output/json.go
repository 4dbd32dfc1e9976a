package output

import (
	"encoding/json"
	"io"

	"github.com/samber/lo"

	"github.com/lgbarn/boardstate-go/internal/board"
	"github.com/lgbarn/boardstate-go/internal/piece"
)

// JSONBoard represents a board in JSON format.
type JSONBoard struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Initialized bool         `json:"initialized"`
	Cells       []int        `json:"cells"`
	Occupied    []JSONSquare `json:"occupied,omitempty"`
}

// JSONSquare represents one non-empty cell in JSON format.
type JSONSquare struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Code  int    `json:"code"`
	Flags string `json:"flags"`
	Piece string `json:"piece,omitempty"` // empty for illegal codes
}

// BoardToJSON converts a board to its JSON representation.
func BoardToJSON(b *board.Board) *JSONBoard {
	return &JSONBoard{
		Width:       b.Width(),
		Height:      b.Height(),
		Initialized: b.Initialized(),
		Cells: lo.Map(b.Cells(), func(c piece.Code, _ int) int {
			return int(c)
		}),
		Occupied: lo.Map(b.Occupied(), func(sq board.Square, _ int) JSONSquare {
			js := JSONSquare{X: sq.X, Y: sq.Y, Code: int(sq.Code), Flags: sq.Code.String()}
			if c, err := piece.Decode(sq.Code); err == nil {
				js.Piece = c.String()
			}
			return js
		}),
	}
}

// WriteJSON writes b as an indented JSON document.
func WriteJSON(w io.Writer, b *board.Board) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BoardToJSON(b))
}
