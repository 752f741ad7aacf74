// Package game drives a single game between two strategies: it asks the
// side on turn for a move under a time budget, has the referee check it,
// applies it, and turns any misbehaviour into a forfeit.
package game

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/referee"
	"github.com/vovakirdan/reversi-arena/internal/registry"
)

var (
	ErrInvalidCondition = errors.New("game: invalid condition")

	// ErrBudgetExceeded marks a fault where the strategy did not answer
	// within its budget.
	ErrBudgetExceeded = errors.New("game: time budget exceeded")
	// ErrStrategyFailed marks a fault where Decide returned an error.
	ErrStrategyFailed = errors.New("game: strategy failed")
	// ErrStrategyPanic marks a fault where the turn panicked.
	ErrStrategyPanic = errors.New("game: strategy panicked")
)

// State is the position of a game in its lifecycle.
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
	ForfeitedOnViolation
	ForfeitedOnTimeout
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case InProgress:
		return "InProgress"
	case Completed:
		return "Completed"
	case ForfeitedOnViolation:
		return "ForfeitedOnViolation"
	case ForfeitedOnTimeout:
		return "ForfeitedOnTimeout"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the game is over.
func (s State) Terminal() bool {
	return s == Completed || s == ForfeitedOnViolation || s == ForfeitedOnTimeout
}

// Forfeit reports whether the game was decided by the orchestrator
// rather than on the board.
func (s State) Forfeit() bool {
	return s == ForfeitedOnViolation || s == ForfeitedOnTimeout
}

// Condition configures one game. It must not be changed once the game
// has started.
type Condition struct {
	PerTurn    time.Duration
	PerGame    time.Duration
	Board      core.Board
	Strategies [core.ColorCount]registry.Strategy

	// Names label the sides in logs and reports; optional.
	Names [core.ColorCount]string
}

// Validate checks that the condition can be played.
func (c Condition) Validate() error {
	if c.Board == nil {
		return fmt.Errorf("%w: no initial board", ErrInvalidCondition)
	}
	for _, color := range core.Colors {
		if c.Strategies[color] == nil {
			return fmt.Errorf("%w: no strategy for %s", ErrInvalidCondition, color)
		}
	}
	if c.PerTurn <= 0 {
		return fmt.Errorf("%w: per-turn budget must be positive, got %v", ErrInvalidCondition, c.PerTurn)
	}
	if c.PerGame <= 0 {
		return fmt.Errorf("%w: per-game budget must be positive, got %v", ErrInvalidCondition, c.PerGame)
	}
	return nil
}

// Name returns the label for color, falling back to the strategy ID.
func (c Condition) Name(color core.Color) string {
	if n := c.Names[color]; n != "" {
		return n
	}
	if s := c.Strategies[color]; s != nil {
		return s.ID()
	}
	return color.String()
}

// Fault describes a timeout-class forfeit: an overrun budget, an error
// returned by the strategy, or a panic during the turn.
type Fault struct {
	Color   core.Color
	Budget  time.Duration
	Elapsed time.Duration
	Err     error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s forfeits: %v (budget=%v elapsed=%v)", f.Color, f.Err, f.Budget, f.Elapsed)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Outcome is a game's result from one side's point of view.
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "loss"
	}
}

// Result is the outcome of one game. It is created once, when the game
// ends.
type Result struct {
	State State

	// Board is the position when the game ended.
	Board core.Board

	// Winner is meaningful only when Draw is false.
	Winner core.Color
	Draw   bool

	// Violation is set for ForfeitedOnViolation.
	Violation referee.Violation
	// Fault is set for ForfeitedOnTimeout.
	Fault *Fault

	// Moves lists the accepted moves in play order.
	Moves []core.Move
	// Spent is the wall-clock time each side used, rejected turn included.
	Spent [core.ColorCount]time.Duration
	// Turns counts strategy calls, rejected turn included.
	Turns int
}

// Outcome returns the result for color.
func (r Result) Outcome(color core.Color) Outcome {
	switch {
	case r.Draw:
		return Draw
	case r.Winner == color:
		return Win
	default:
		return Loss
	}
}

// Forfeiter returns the side that forfeited, if any.
func (r Result) Forfeiter() (core.Color, bool) {
	if !r.State.Forfeit() {
		return 0, false
	}
	return r.Winner.Opposite(), true
}

// Reason returns a short description of how the game ended.
func (r Result) Reason() string {
	switch r.State {
	case ForfeitedOnViolation:
		if r.Violation != nil {
			return r.Violation.Error()
		}
	case ForfeitedOnTimeout:
		if r.Fault != nil {
			return r.Fault.Error()
		}
	case Completed:
		return "board finished"
	}
	return r.State.String()
}

// Clone returns a copy that shares no slices with r.
func (r Result) Clone() Result {
	r.Moves = slices.Clone(r.Moves)
	return r
}
