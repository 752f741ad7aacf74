package strategy

import (
	"context"
	"math"
	"time"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/registry"
)

// Minimax runs an iterative-deepening alpha-beta search up to
// "minimax.depth" plies (default 4). When ctx is cancelled it returns the
// best move of the deepest completed iteration.
type Minimax struct {
	depth int
}

func init() {
	registry.Register("minimax", func(p core.Params) registry.Strategy { return NewMinimax(p) })
}

// NewMinimax creates a Minimax strategy.
func NewMinimax(params core.Params) *Minimax {
	depth := params.Int("minimax.depth", 4)
	if depth < 1 {
		depth = 1
	}
	return &Minimax{depth: depth}
}

func (*Minimax) ID() string    { return "minimax" }
func (*Minimax) Title() string { return "Minimax (alpha-beta)" }

func (*Minimax) Params() []registry.ParamDoc {
	return []registry.ParamDoc{{Key: "minimax.depth", Default: "4", Usage: "maximum search depth in plies"}}
}

func (m *Minimax) Decide(ctx context.Context, board core.Board, color core.Color, _ time.Duration) (core.Move, error) {
	moves := legalMoves(board, color)
	best := moves[0]
	if len(moves) == 1 {
		return best, nil
	}

	for depth := 1; depth <= m.depth; depth++ {
		move, ok := m.searchRoot(ctx, board, color, moves, depth)
		if !ok {
			break
		}
		best = move
	}
	return best, nil
}

func (m *Minimax) searchRoot(ctx context.Context, board core.Board, color core.Color, moves []core.Move, depth int) (core.Move, bool) {
	best := moves[0]
	alpha, beta := math.MinInt32, math.MaxInt32
	for _, mv := range moves {
		next := board.Apply(mv)
		score, ok := m.alphaBeta(ctx, next, color, next.NextMover(color), depth-1, alpha, beta)
		if !ok {
			return core.Move{}, false
		}
		if score > alpha {
			alpha, best = score, mv
		}
	}
	return best, true
}

// alphaBeta scores board from me's point of view with toMove on turn.
// It reports false when ctx was cancelled mid-search.
func (m *Minimax) alphaBeta(ctx context.Context, board core.Board, me, toMove core.Color, depth, alpha, beta int) (int, bool) {
	if ctx.Err() != nil {
		return 0, false
	}
	if depth == 0 || board.IsTerminal() {
		return evaluate(board, me), true
	}

	moves := legalMoves(board, toMove)
	if toMove == me {
		for _, mv := range moves {
			next := board.Apply(mv)
			score, ok := m.alphaBeta(ctx, next, me, next.NextMover(toMove), depth-1, alpha, beta)
			if !ok {
				return 0, false
			}
			alpha = max(alpha, score)
			if alpha >= beta {
				break
			}
		}
		return alpha, true
	}

	for _, mv := range moves {
		next := board.Apply(mv)
		score, ok := m.alphaBeta(ctx, next, me, next.NextMover(toMove), depth-1, alpha, beta)
		if !ok {
			return 0, false
		}
		beta = min(beta, score)
		if alpha >= beta {
			break
		}
	}
	return beta, true
}

// evaluate is disc difference plus a bonus for corners the side can
// take next; terminal positions dominate everything else.
func evaluate(board core.Board, me core.Color) int {
	diff := board.Score(me) - board.Score(me.Opposite())
	if board.IsTerminal() {
		return diff * 1000
	}
	corners := 0
	for _, p := range []core.Point{{Row: 0, Col: 0}, {Row: 0, Col: 7}, {Row: 7, Col: 0}, {Row: 7, Col: 7}} {
		switch {
		case board.IsLegal(core.Put(me, p)):
			corners++
		case board.IsLegal(core.Put(me.Opposite(), p)):
			corners--
		}
	}
	return diff + 10*corners
}
