package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/referee"
)

// Runner plays one game to completion. A Runner is single-use and owns
// its board for its lifetime.
type Runner struct {
	cond   Condition
	logger *log.Logger
	now    func() time.Time

	state  State
	result *Result
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock replaces the clock used to measure strategy calls. Deadlines
// handed to strategies still follow real time.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRunner validates cond and returns a runner in the NotStarted state.
func NewRunner(cond Condition, opts ...Option) (*Runner, error) {
	if err := cond.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cond:   cond,
		logger: log.New(io.Discard),
		now:    time.Now,
		state:  NotStarted,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// State returns the current lifecycle state.
func (r *Runner) State() State {
	return r.state
}

// Condition returns the condition the runner was built with.
func (r *Runner) Condition() Condition {
	return r.cond
}

// play holds the mutable state of a game in progress.
type play struct {
	board     core.Board
	mover     core.Color
	remaining [core.ColorCount]time.Duration
	spent     [core.ColorCount]time.Duration
	moves     []core.Move
	turns     int
}

// Play runs the game and returns its result. It always returns a
// definitive result; calling it again returns the same result.
func (r *Runner) Play() Result {
	if r.result != nil {
		return r.result.Clone()
	}
	r.state = InProgress

	p := &play{
		board:     r.cond.Board,
		remaining: [core.ColorCount]time.Duration{r.cond.PerGame, r.cond.PerGame},
	}
	// The side to open is whoever would move after White, so a start
	// position where Black must pass is handled by the board.
	p.mover = p.board.NextMover(core.White)

	r.logger.Debug("game started",
		"black", r.cond.Name(core.Black),
		"white", r.cond.Name(core.White),
		"per_turn", r.cond.PerTurn,
		"per_game", r.cond.PerGame,
	)

	var res Result
	for {
		var done bool
		res, done = r.turn(p)
		if done {
			break
		}
	}

	res.Moves = p.moves
	res.Spent = p.spent
	res.Turns = p.turns
	r.state = res.State
	r.result = &res
	r.logResult(res)
	return res.Clone()
}

// turn plays one turn. It reports done with the final result when the
// game is over. A panic anywhere in the turn is charged to the mover.
func (r *Runner) turn(p *play) (res Result, done bool) {
	defer func() {
		if v := recover(); v != nil {
			res = r.forfeitOnFault(p, &Fault{
				Color:  p.mover,
				Budget: min(r.cond.PerTurn, p.remaining[p.mover]),
				Err:    fmt.Errorf("%w: %v", ErrStrategyPanic, v),
			})
			done = true
		}
	}()

	if p.board.IsTerminal() {
		return r.complete(p), true
	}

	mover := p.mover
	budget := min(r.cond.PerTurn, p.remaining[mover])
	move, elapsed, fault := r.decide(p.board, mover, budget)
	p.turns++
	p.spent[mover] += elapsed
	p.remaining[mover] = max(0, p.remaining[mover]-elapsed)

	if fault != nil {
		return r.forfeitOnFault(p, fault), true
	}

	accepted, v := referee.Validate(p.board, mover, move)
	if v != nil {
		r.logger.Warn("rule violation", "color", mover, "kind", referee.Kind(v), "move", move)
		return Result{
			State:     ForfeitedOnViolation,
			Board:     p.board,
			Winner:    mover.Opposite(),
			Violation: v,
		}, true
	}

	r.logger.Debug("move", "turn", p.turns, "color", mover, "move", accepted, "elapsed", elapsed)
	p.board = p.board.Apply(accepted)
	p.moves = append(p.moves, accepted)
	p.mover = p.board.NextMover(mover)
	return Result{}, false
}

func (r *Runner) complete(p *play) Result {
	res := Result{State: Completed, Board: p.board}
	black, white := p.board.Score(core.Black), p.board.Score(core.White)
	switch {
	case black > white:
		res.Winner = core.Black
	case white > black:
		res.Winner = core.White
	default:
		res.Draw = true
	}
	return res
}

func (r *Runner) forfeitOnFault(p *play, f *Fault) Result {
	r.logger.Warn("strategy fault", "color", f.Color, "error", f.Err, "budget", f.Budget, "elapsed", f.Elapsed)
	return Result{
		State:  ForfeitedOnTimeout,
		Board:  p.board,
		Winner: f.Color.Opposite(),
		Fault:  f,
	}
}

type decision struct {
	move core.Move
	err  error
}

// decide asks the strategy for color's move. The call runs in its own
// goroutine; once the budget is spent it is abandoned and whatever it
// sends later is dropped into the buffered channel and never read.
func (r *Runner) decide(board core.Board, color core.Color, budget time.Duration) (core.Move, time.Duration, *Fault) {
	strategy := r.cond.Strategies[color]

	ctx, cancel := context.WithTimeout(context.Background(), budget)
	defer cancel()

	ch := make(chan decision, 1)
	start := r.now()
	go func() {
		defer func() {
			if v := recover(); v != nil {
				ch <- decision{err: fmt.Errorf("%w: %v", ErrStrategyPanic, v)}
			}
		}()
		m, err := strategy.Decide(ctx, board, color, budget)
		ch <- decision{move: m, err: err}
	}()

	var d decision
	select {
	case d = <-ch:
	case <-ctx.Done():
		elapsed := r.now().Sub(start)
		return core.Move{}, elapsed, &Fault{Color: color, Budget: budget, Elapsed: elapsed, Err: ErrBudgetExceeded}
	}

	elapsed := r.now().Sub(start)
	if elapsed > budget {
		return core.Move{}, elapsed, &Fault{Color: color, Budget: budget, Elapsed: elapsed, Err: ErrBudgetExceeded}
	}
	if d.err != nil {
		err := d.err
		if !errors.Is(err, ErrStrategyPanic) {
			err = fmt.Errorf("%w: %w", ErrStrategyFailed, err)
		}
		return core.Move{}, elapsed, &Fault{Color: color, Budget: budget, Elapsed: elapsed, Err: err}
	}
	return d.move, elapsed, nil
}

func (r *Runner) logResult(res Result) {
	kv := []any{
		"state", res.State,
		"turns", res.Turns,
		"black", res.Board.Score(core.Black),
		"white", res.Board.Score(core.White),
	}
	if res.Draw {
		kv = append(kv, "winner", "draw")
	} else {
		kv = append(kv, "winner", r.cond.Name(res.Winner))
	}
	r.logger.Info("game finished", kv...)
}
