package strategy

import (
	"context"
	"time"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/registry"
)

// Simplest plays the first legal move in row-major order.
type Simplest struct{}

func init() {
	registry.Register("simplest", func(core.Params) registry.Strategy { return Simplest{} })
}

func (Simplest) ID() string    { return "simplest" }
func (Simplest) Title() string { return "Simplest (first legal move)" }

func (Simplest) Decide(_ context.Context, board core.Board, color core.Color, _ time.Duration) (core.Move, error) {
	return legalMoves(board, color)[0], nil
}
