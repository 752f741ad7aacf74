// Package referee classifies proposed moves before they are applied.
// A rejected move is described by a Violation that keeps the offending
// move and the board it was proposed on.
package referee

import (
	"fmt"

	"github.com/vovakirdan/reversi-arena/internal/core"
)

// Violation is the closed set of rule violations: *IllegalMove and
// *IllegalTurn. Handlers switch on the concrete type.
type Violation interface {
	error
	Offending() core.Move
	Snapshot() core.Board
	violation()
}

const (
	msgIllegalMove = "the move is not legal on this board"
	msgIllegalTurn = "the move was made for the side not on turn"
)

// IllegalMove reports a move the board does not accept, regardless of
// who proposed it.
type IllegalMove struct {
	Message string
	Move    core.Move
	Board   core.Board
}

// NewIllegalMove creates an IllegalMove with the default message.
func NewIllegalMove(board core.Board, move core.Move) *IllegalMove {
	return &IllegalMove{Message: msgIllegalMove, Move: move, Board: board}
}

func (e *IllegalMove) Error() string {
	return fmt.Sprintf("%s move=%s", e.Message, e.Move)
}

// Offending returns the rejected move.
func (e *IllegalMove) Offending() core.Move { return e.Move }

// Snapshot returns the board the move was proposed on.
func (e *IllegalMove) Snapshot() core.Board { return e.Board }

func (*IllegalMove) violation() {}

// IllegalTurn reports a move made for the wrong side. It refines
// IllegalMove: errors.As with a *IllegalMove target also matches.
type IllegalTurn struct {
	IllegalMove
	ProperColor core.Color
}

// NewIllegalTurn creates an IllegalTurn with the default message.
// proper is the side whose turn it actually was.
func NewIllegalTurn(board core.Board, proper core.Color, move core.Move) *IllegalTurn {
	return &IllegalTurn{
		IllegalMove: IllegalMove{Message: msgIllegalTurn, Move: move, Board: board},
		ProperColor: proper,
	}
}

func (e *IllegalTurn) Error() string {
	return fmt.Sprintf("%s properColor=%s move=%s", e.Message, e.ProperColor, e.Move)
}

// Unwrap exposes the embedded IllegalMove to errors.As.
func (e *IllegalTurn) Unwrap() error {
	return &e.IllegalMove
}

func (*IllegalTurn) violation() {}

// Kind returns a short stable name for v: "illegal_move",
// "illegal_turn", or "" for nil.
func Kind(v Violation) string {
	switch v.(type) {
	case *IllegalTurn:
		return "illegal_turn"
	case *IllegalMove:
		return "illegal_move"
	default:
		return ""
	}
}
