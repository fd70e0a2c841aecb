package chess

import (
	"errors"
	"fmt"
	"strings"
)

// Rule violations reported by Game. Use errors.Is to tell them apart.
var (
	ErrNoFigure    = errors.New("no figure at cell")
	ErrWrongColor  = errors.New("figure belongs to the other player")
	ErrIllegalMove = errors.New("illegal move")
	ErrSelfCheck   = errors.New("move leaves own king under attack")

	ErrInvalidCastling      = errors.New("invalid castling target")
	ErrCastlingPieceMoved   = errors.New("castling piece has already moved")
	ErrCastlingInCheck      = errors.New("cannot castle while in check")
	ErrCastlingBlocked      = errors.New("castling path is blocked")
	ErrCastlingThroughCheck = errors.New("king would pass through an attacked cell")

	ErrInvalidCell      = errors.New("invalid cell")
	ErrInvalidPromotion = errors.New("invalid promotion piece")
	ErrInvalidSetup     = errors.New("invalid board setup")
)

// MoveError wraps a rule violation with the move that caused it.
type MoveError struct {
	Op    string // "move" or "castle"
	From  Cell
	To    Cell
	Piece string // empty when no piece was found
	Err   error
}

func (e *MoveError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Piece != "" {
		fmt.Fprintf(&b, " %s", e.Piece)
	}
	fmt.Fprintf(&b, " %s", e.From)
	if e.To != e.From {
		fmt.Fprintf(&b, "-%s", e.To)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
