package referee

import "github.com/vovakirdan/reversi-arena/internal/core"

// Validate checks move against the side expected to move and the board.
// The turn check comes first: a move for the wrong side is an
// IllegalTurn whatever its legality on the board. An accepted move is
// returned unchanged with a nil Violation. The board is never modified.
func Validate(board core.Board, expected core.Color, move core.Move) (core.Move, Violation) {
	if move.Color != expected {
		return core.Move{}, NewIllegalTurn(board, expected, move)
	}
	if !board.IsLegal(move) {
		return core.Move{}, NewIllegalMove(board, move)
	}
	return move, nil
}
