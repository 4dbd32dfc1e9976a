// Package piece provides the piece code encoding stored in board cells.
//
// A Code is a set of bit flags: the Empty sentinel on its own, or exactly one
// colour flag combined with exactly one kind flag. Code itself does not
// enforce this; Content is the closed form that does.
package piece

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/lgbarn/boardstate-go/internal/errors"
)

// Code is the raw integer stored in a board cell.
type Code int

// Flag values. Each is a distinct power of two.
const (
	Empty Code = 1 << iota // cell holds no piece
	White
	Black
	Pawn
	Rook
	Bishop
	Knight
	Queen
	King
)

const (
	colourMask = White | Black
	kindMask   = Pawn | Rook | Bishop | Knight | Queen | King
	allFlags   = Empty | colourMask | kindMask
)

type namedFlag struct {
	flag Code
	name string
}

var flagTable = []namedFlag{
	{Empty, "EMPTY"},
	{White, "WHITE"},
	{Black, "BLACK"},
	{Pawn, "PAWN"},
	{Rook, "ROOK"},
	{Bishop, "BISHOP"},
	{Knight, "KNIGHT"},
	{Queen, "QUEEN"},
	{King, "KING"},
}

// Flags returns every flag in ascending value order.
func Flags() []Code {
	return lo.Map(flagTable, func(f namedFlag, _ int) Code {
		return f.flag
	})
}

// Name returns the flag name of a single flag, or "" if c is not exactly one flag.
func (c Code) Name() string {
	f, ok := lo.Find(flagTable, func(f namedFlag) bool {
		return f.flag == c
	})
	if !ok {
		return ""
	}
	return f.name
}

// LookupFlag returns the flag with the given name, ignoring case.
func LookupFlag(name string) (Code, bool) {
	f, ok := lo.Find(flagTable, func(f namedFlag) bool {
		return strings.EqualFold(f.name, name)
	})
	return f.flag, ok
}

// String renders c as its set flags joined by '|', e.g. "WHITE|PAWN".
// Bits outside the flag set are appended in hex.
func (c Code) String() string {
	if c == 0 {
		return "0"
	}
	names := lo.FilterMap(flagTable, func(f namedFlag, _ int) (string, bool) {
		return f.name, c&f.flag != 0
	})
	if rest := c &^ allFlags; rest != 0 {
		names = append(names, fmt.Sprintf("%#x", int(rest)))
	}
	return strings.Join(names, "|")
}

// Valid reports whether c is Empty or one colour flag plus one kind flag.
func (c Code) Valid() bool {
	_, err := Decode(c)
	return err == nil
}

// ParseCode parses a decimal integer ("10") or a '|'-separated list of
// flag names ("WHITE|PAWN"). The result is not checked for legality.
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty piece code: %w", errors.ErrInvalidPieceCode)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Code(n), nil
	}

	var c Code
	for _, part := range strings.Split(s, "|") {
		f, ok := LookupFlag(strings.TrimSpace(part))
		if !ok {
			return 0, fmt.Errorf("unknown flag %q in %q: %w", part, s, errors.ErrInvalidPieceCode)
		}
		c |= f
	}
	return c, nil
}
