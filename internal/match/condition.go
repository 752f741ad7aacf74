// Package match plays a series of games between two entrants, swapping
// who moves first every game, and aggregates the results.
package match

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/game"
	"github.com/vovakirdan/reversi-arena/internal/registry"
	"github.com/vovakirdan/reversi-arena/internal/reversi"
)

var (
	ErrInvalidCondition = errors.New("match: invalid condition")
	// ErrBoardSetup reports a board factory that panicked or returned
	// no board.
	ErrBoardSetup = errors.New("match: board setup failed")
)

// Contestant binds an entrant to a strategy.
type Contestant struct {
	ID      string
	Factory registry.Factory
}

// Condition configures a match. It is treated as immutable once Run
// has been called with it.
type Condition struct {
	Contestants [core.EntrantCount]Contestant
	PerTurn     time.Duration
	PerGame     time.Duration
	Times       int

	// Params is handed to every strategy factory.
	Params core.Params

	// NewBoard builds the starting position of each game. Nil means the
	// standard Reversi opening.
	NewBoard func() core.Board
}

// Bounds is the deployment policy for match conditions.
type Bounds struct {
	MaxPerTurn time.Duration
	MaxPerGame time.Duration
	MaxTimes   int
}

// DefaultBounds returns the limits used by the CLI.
func DefaultBounds() Bounds {
	return Bounds{
		MaxPerTurn: time.Minute,
		MaxPerGame: 30 * time.Minute,
		MaxTimes:   100,
	}
}

// Validate checks c against b. Every failure wraps ErrInvalidCondition.
func (c Condition) Validate(b Bounds) error {
	for _, e := range core.Entrants {
		if c.Contestants[e].Factory == nil {
			return fmt.Errorf("%w: no strategy bound to entrant %s", ErrInvalidCondition, e)
		}
	}
	if c.Times < 1 || c.Times > b.MaxTimes {
		return fmt.Errorf("%w: times must be in [1, %d], got %d", ErrInvalidCondition, b.MaxTimes, c.Times)
	}
	if c.PerTurn <= 0 || c.PerTurn > b.MaxPerTurn {
		return fmt.Errorf("%w: per-turn budget must be in (0, %v], got %v", ErrInvalidCondition, b.MaxPerTurn, c.PerTurn)
	}
	if c.PerGame <= 0 || c.PerGame > b.MaxPerGame {
		return fmt.Errorf("%w: per-game budget must be in (0, %v], got %v", ErrInvalidCondition, b.MaxPerGame, c.PerGame)
	}
	if c.NewBoard != nil {
		if _, err := c.board(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCondition, err)
		}
	}
	return nil
}

// Label names an entrant in logs and reports, e.g. "A:greedy".
func (c Condition) Label(e core.Entrant) string {
	id := c.Contestants[e].ID
	if id == "" {
		return e.String()
	}
	return e.String() + ":" + id
}

// FirstMover returns the entrant playing Black in game i.
func FirstMover(i int) core.Entrant {
	if i%2 == 0 {
		return core.EntrantA
	}
	return core.EntrantB
}

// ColorOf returns the color entrant e plays when first moves first.
func ColorOf(e, first core.Entrant) core.Color {
	if e == first {
		return core.Black
	}
	return core.White
}

// SetupError reports a strategy that could not be built for a game.
type SetupError struct {
	Entrant core.Entrant
	Color   core.Color
	Err     error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("match: entrant %s (%s): %v", e.Entrant, e.Color, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// GameCondition derives the condition of a game in which first plays
// Black. Each call builds fresh strategy instances and a fresh board.
func (c Condition) GameCondition(first core.Entrant) (game.Condition, error) {
	gc := game.Condition{
		PerTurn: c.PerTurn,
		PerGame: c.PerGame,
	}
	board, err := c.board()
	if err != nil {
		return gc, err
	}
	gc.Board = board

	for _, e := range core.Entrants {
		color := ColorOf(e, first)
		s, err := newStrategy(c.Contestants[e].Factory, c.Params.Clone())
		if err != nil {
			return gc, &SetupError{Entrant: e, Color: color, Err: err}
		}
		gc.Strategies[color] = s
		gc.Names[color] = c.Label(e)
	}
	return gc, nil
}

// board builds a starting position, turning a panic or a nil board from
// NewBoard into an ErrBoardSetup error.
func (c Condition) board() (b core.Board, err error) {
	if c.NewBoard == nil {
		return reversi.NewBoard(), nil
	}
	defer func() {
		if v := recover(); v != nil {
			b, err = nil, fmt.Errorf("%w: panic: %v", ErrBoardSetup, v)
		}
	}()
	if b = c.NewBoard(); b == nil {
		return nil, fmt.Errorf("%w: no board", ErrBoardSetup)
	}
	return b, nil
}

// newStrategy calls f, turning a panic or a nil strategy into an error.
func newStrategy(f registry.Factory, params core.Params) (s registry.Strategy, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%w: factory: %v", game.ErrStrategyPanic, v)
		}
	}()
	if f == nil {
		return nil, errors.New("no factory")
	}
	s = f(params)
	if s == nil {
		return nil, errors.New("factory returned no strategy")
	}
	return s, nil
}
