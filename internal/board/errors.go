package board

import (
	"errors"
	"fmt"
)

// FEN parse failures. Every error returned by ParseFEN wraps exactly one of these.
var (
	ErrFieldCount      = errors.New("FEN must have exactly 6 fields")
	ErrPiecePlacement  = errors.New("invalid piece placement")
	ErrInvalidPiece    = errors.New("invalid piece character")
	ErrActiveColor     = errors.New("invalid active color")
	ErrCastlingRights  = errors.New("invalid castling rights")
	ErrEnPassantSquare = errors.New("invalid en passant square")
	ErrHalfMoveClock   = errors.New("invalid halfmove clock")
	ErrFullMoveNumber  = errors.New("invalid fullmove number")
)

// FENError reports which FEN field was rejected and why.
type FENError struct {
	Field string // e.g. "placement", "castling"
	Value string // offending text
	Err   error  // one of the Err* sentinels, possibly wrapped with detail
}

func (e *FENError) Error() string {
	return fmt.Sprintf("fen %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FENError) Unwrap() error {
	return e.Err
}

func fenError(field, value string, err error) error {
	return &FENError{Field: field, Value: value, Err: err}
}
