// Package strategy contains the built-in players. Each file registers its
// strategy with the registry in init(); import the package for side
// effects to make them available by name.
package strategy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/reversi-arena/internal/core"
)

// legalMoves returns the board's legal moves for c, or a pass when the
// board reports none.
func legalMoves(board core.Board, c core.Color) []core.Move {
	moves := board.LegalMoves(c)
	if len(moves) == 0 {
		return []core.Move{core.PassOf(c)}
	}
	return moves
}

// newRand returns a generator seeded from params[key], or from the clock
// when the key is absent.
func newRand(params core.Params, key string) *rand.Rand {
	seed := params.Int64(key, 0)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // not security sensitive
}
