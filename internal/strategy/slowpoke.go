package strategy

import (
	"context"
	"time"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/registry"
)

// Slowpoke ignores cancellation and answers "slowpoke.extra" (default
// 100ms) after its budget has run out. It exists to exercise timeout
// forfeits.
type Slowpoke struct {
	extra time.Duration
}

func init() {
	registry.Register("slowpoke", func(p core.Params) registry.Strategy { return NewSlowpoke(p) })
}

// NewSlowpoke creates a Slowpoke strategy.
func NewSlowpoke(params core.Params) *Slowpoke {
	return &Slowpoke{extra: params.Duration("slowpoke.extra", 100*time.Millisecond)}
}

func (*Slowpoke) ID() string    { return "slowpoke" }
func (*Slowpoke) Title() string { return "Slowpoke (always late)" }

func (*Slowpoke) Params() []registry.ParamDoc {
	return []registry.ParamDoc{{Key: "slowpoke.extra", Default: "100ms", Usage: "how long to overrun the budget"}}
}

func (s *Slowpoke) Decide(_ context.Context, board core.Board, color core.Color, budget time.Duration) (core.Move, error) {
	time.Sleep(budget + s.extra)
	return legalMoves(board, color)[0], nil
}
