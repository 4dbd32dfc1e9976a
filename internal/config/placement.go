package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/boardstate-go/internal/errors"
	"github.com/lgbarn/boardstate-go/internal/piece"
)

// Placement puts one piece code on one square before output.
//
// Square is either "x,y" (zero-based) or algebraic, a file letter from 'a'
// and a rank from 1, so "e2" is (4, 1). Code is anything piece.ParseCode
// accepts.
type Placement struct {
	Square string `yaml:"square"`
	Code   string `yaml:"code"`
}

// ParsePlacement parses the flag form "square=code", e.g. "e2=WHITE|PAWN".
func ParsePlacement(s string) (Placement, error) {
	square, code, ok := strings.Cut(s, "=")
	if !ok {
		return Placement{}, fmt.Errorf("placement %q: want square=code: %w", s, errors.ErrInvalidConfig)
	}
	return Placement{Square: strings.TrimSpace(square), Code: strings.TrimSpace(code)}, nil
}

// String returns the flag form of p.
func (p Placement) String() string {
	return p.Square + "=" + p.Code
}

// Resolve parses the square and the code.
func (p Placement) Resolve() (x, y int, code piece.Code, err error) {
	x, y, err = ParseSquare(p.Square)
	if err != nil {
		return 0, 0, 0, err
	}
	code, err = piece.ParseCode(p.Code)
	if err != nil {
		return 0, 0, 0, err
	}
	return x, y, code, nil
}

// ParseSquare converts "x,y" or an algebraic square such as "e2" to
// zero-based coordinates.
func ParseSquare(s string) (x, y int, err error) {
	s = strings.TrimSpace(s)
	if xs, ys, ok := strings.Cut(s, ","); ok {
		cx, errX := parseNumber(strings.TrimSpace(xs))
		cy, errY := parseNumber(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return 0, 0, fmt.Errorf("square %q: %w", s, errors.ErrInvalidConfig)
		}
		return cx, cy, nil
	}

	if len(s) < 2 {
		return 0, 0, fmt.Errorf("square %q: %w", s, errors.ErrInvalidConfig)
	}
	col := s[0] | 0x20 // lower case
	rank, err := parseNumber(s[1:])
	if col < 'a' || col > 'z' || err != nil || rank < 1 {
		return 0, 0, fmt.Errorf("square %q: %w", s, errors.ErrInvalidConfig)
	}
	return int(col - 'a'), rank - 1, nil
}

// parseNumber accepts only plain decimal digits without a leading zero
// (a lone "0" is allowed), so "+2" and "02" are rejected.
func parseNumber(s string) (int, error) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, errors.ErrInvalidConfig
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errors.ErrInvalidConfig
		}
	}
	return strconv.Atoi(s)
}
