package strategy

import (
	"context"
	"time"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/registry"
)

// Greedy takes the move that leaves it with the most discs. Ties go to
// the earliest move.
type Greedy struct{}

func init() {
	registry.Register("greedy", func(core.Params) registry.Strategy { return Greedy{} })
}

func (Greedy) ID() string    { return "greedy" }
func (Greedy) Title() string { return "Greedy (most flips)" }

func (Greedy) Decide(_ context.Context, board core.Board, color core.Color, _ time.Duration) (core.Move, error) {
	moves := legalMoves(board, color)
	best, bestScore := moves[0], -1
	for _, m := range moves {
		if m.Pass {
			continue
		}
		if s := board.Apply(m).Score(color); s > bestScore {
			best, bestScore = m, s
		}
	}
	return best, nil
}
