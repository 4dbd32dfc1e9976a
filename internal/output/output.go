// Package output writes boards in the diagnostic formats of the boardstate
// command. None of the formats is meant to be read back.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/boardstate-go/internal/board"
	"github.com/lgbarn/boardstate-go/internal/config"
	"github.com/lgbarn/boardstate-go/internal/errors"
)

// Write writes b to w in the given format.
func Write(w io.Writer, b *board.Board, format config.OutputFormat) error {
	var err error
	switch format {
	case config.Text:
		_, err = io.WriteString(w, b.Describe())
	case config.Diagram:
		_, err = io.WriteString(w, b.Diagram())
	case config.JSON:
		err = WriteJSON(w, b)
	default:
		return fmt.Errorf("output format %v: %w", format, errors.ErrInvalidConfig)
	}
	return err
}
