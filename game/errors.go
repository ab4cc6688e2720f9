package game

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange means the requested column does not exist on the board.
	ErrOutOfRange = errors.New("column out of range")
	// ErrColumnFull means every cell of the requested column is occupied.
	ErrColumnFull = errors.New("column is full")
)

// IllegalMoveError reports a rejected move. The board is never mutated
// by a rejected move, and illegal moves are never silently remapped to
// legal ones.
type IllegalMoveError struct {
	Column int
	Cause  error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move in column %d: %v", e.Column, e.Cause)
}

func (e *IllegalMoveError) Unwrap() error {
	return e.Cause
}
