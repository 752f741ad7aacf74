package strategy

import (
	"context"
	"math/rand"
	"time"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/registry"
)

// Crazy puts a disc on a random square without looking at the rules, so
// it usually forfeits by an illegal move. With "crazy.wrong-color" set to
// "true" it also plays the opponent's color.
type Crazy struct {
	rng        *rand.Rand
	wrongColor bool
}

func init() {
	registry.Register("crazy", func(p core.Params) registry.Strategy { return NewCrazy(p) })
}

// NewCrazy creates a Crazy strategy.
func NewCrazy(params core.Params) *Crazy {
	return &Crazy{
		rng:        newRand(params, "crazy.seed"),
		wrongColor: params.String("crazy.wrong-color", "false") == "true",
	}
}

func (*Crazy) ID() string    { return "crazy" }
func (*Crazy) Title() string { return "Crazy (ignores the rules)" }

func (*Crazy) Params() []registry.ParamDoc {
	return []registry.ParamDoc{
		{Key: "crazy.seed", Default: "clock", Usage: "random seed"},
		{Key: "crazy.wrong-color", Default: "false", Usage: "play the opponent's color"},
	}
}

func (c *Crazy) Decide(_ context.Context, _ core.Board, color core.Color, _ time.Duration) (core.Move, error) {
	if c.wrongColor {
		color = color.Opposite()
	}
	return core.Put(color, core.Point{Row: c.rng.Intn(8), Col: c.rng.Intn(8)}), nil
}
