package core

import "fmt"

// Board is the read-only contract the orchestration engine needs from a
// game board. Implementations must behave as values: Apply returns a new
// board and never changes the receiver, so a board handed to a strategy
// or stored in a diagnostic record stays as it was.
type Board interface {
	fmt.Stringer

	// IsLegal reports whether m is a legal move for m.Color on this board.
	IsLegal(m Move) bool

	// Apply returns the board after m. Only called with legal moves.
	Apply(m Move) Board

	// IsTerminal reports whether neither side can move.
	IsTerminal() bool

	// Score returns the number of discs of color c.
	Score(c Color) int

	// NextMover returns the side to move after previous moved. Forced
	// passes are resolved here: if the opponent has no legal move the
	// same side moves again.
	NextMover(previous Color) Color

	// LegalMoves lists the legal moves for c in a stable order.
	LegalMoves(c Color) []Move
}
