package strategy

import (
	"context"
	"math/rand"
	"time"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/registry"
)

// Random picks uniformly among the legal moves. Set "random.seed" for a
// reproducible sequence.
type Random struct {
	rng *rand.Rand
}

func init() {
	registry.Register("random", func(p core.Params) registry.Strategy { return NewRandom(p) })
}

// NewRandom creates a Random strategy.
func NewRandom(params core.Params) *Random {
	return &Random{rng: newRand(params, "random.seed")}
}

func (*Random) ID() string    { return "random" }
func (*Random) Title() string { return "Random" }

func (*Random) Params() []registry.ParamDoc {
	return []registry.ParamDoc{{Key: "random.seed", Default: "clock", Usage: "random seed"}}
}

func (r *Random) Decide(_ context.Context, board core.Board, color core.Color, _ time.Duration) (core.Move, error) {
	moves := legalMoves(board, color)
	return moves[r.rng.Intn(len(moves))], nil
}
