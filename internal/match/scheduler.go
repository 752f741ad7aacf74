package match

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/game"
)

// Scheduler runs matches. Games are played strictly one after another.
type Scheduler struct {
	bounds     Bounds
	logger     *log.Logger
	observers  []Observer
	runnerOpts []game.Option

	mu      sync.Mutex
	current *Result
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithBounds replaces DefaultBounds.
func WithBounds(b Bounds) Option {
	return func(s *Scheduler) { s.bounds = b }
}

// WithLogger sets the logger used by the scheduler and its runners.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver registers an observer. Observers are called in
// registration order on the scheduler's goroutine.
func WithObserver(o Observer) Option {
	return func(s *Scheduler) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithRunnerOptions passes extra options to every game runner.
func WithRunnerOptions(opts ...game.Option) Option {
	return func(s *Scheduler) { s.runnerOpts = append(s.runnerOpts, opts...) }
}

// NewScheduler creates a scheduler.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		bounds: DefaultBounds(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run validates cond and plays cond.Times games. Game i is opened by
// entrant A when i is even and by entrant B when it is odd. The only
// error is an invalid condition; faults inside a game become forfeits.
func (s *Scheduler) Run(cond Condition) (*Result, error) {
	if err := cond.Validate(s.bounds); err != nil {
		return nil, err
	}
	cond.Params = cond.Params.Clone()

	res := newResult(cond)
	s.mu.Lock()
	s.current = res
	s.mu.Unlock()

	logger := s.logger.With("match", res.ID().String()[:8])
	logger.Info("match started",
		"a", cond.Label(core.EntrantA),
		"b", cond.Label(core.EntrantB),
		"times", cond.Times,
	)
	s.notify(MatchStartedEvent{MatchID: res.ID(), Condition: cond})

	for i := 0; i < cond.Times; i++ {
		first := FirstMover(i)
		gr := s.playGame(cond, first, logger.With("game", i))

		s.mu.Lock()
		g := res.append(first, gr)
		s.mu.Unlock()

		g.Result = g.Result.Clone()
		s.notify(GameFinishedEvent{MatchID: res.ID(), Game: g})
	}

	sum := Tally(res)
	logger.Info("match finished",
		"a", sum.Records[core.EntrantA],
		"b", sum.Records[core.EntrantB],
	)
	s.notify(MatchEndedEvent{Result: res})
	return res, nil
}

// Partial returns a copy of the match currently being played, or of the
// last one once it has finished. It returns nil before the first Run.
func (s *Scheduler) Partial() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	return s.current.clone()
}

// playGame plays one game and always returns a terminal result.
func (s *Scheduler) playGame(cond Condition, first core.Entrant, logger *log.Logger) (res game.Result) {
	var gc game.Condition
	defer func() {
		if v := recover(); v != nil {
			// Setup and Runner.Play recover their own panics, so this is
			// a fault in the runner itself. The side on turn is unknown;
			// Black is charged.
			err := fmt.Errorf("%w: %v", game.ErrStrategyPanic, v)
			logger.Error("game aborted", "error", err)
			res = game.Result{
				State:  game.ForfeitedOnTimeout,
				Board:  gc.Board,
				Winner: core.White,
				Fault:  &game.Fault{Color: core.Black, Err: err},
			}
		}
	}()

	gc, err := cond.GameCondition(first)
	if err != nil {
		logger.Error("game setup failed", "error", err)
		return setupForfeit(gc, err)
	}

	opts := append([]game.Option{game.WithLogger(logger)}, s.runnerOpts...)
	runner, err := game.NewRunner(gc, opts...)
	if err != nil {
		logger.Error("game setup failed", "error", err)
		return setupForfeit(gc, err)
	}
	return runner.Play()
}

// setupForfeit charges the side whose strategy could not be built. A
// failed board charges Black, the side that would have opened.
func setupForfeit(gc game.Condition, err error) game.Result {
	color := core.Black
	var se *SetupError
	if errors.As(err, &se) {
		color = se.Color
	}
	return game.Result{
		State:  game.ForfeitedOnTimeout,
		Board:  gc.Board,
		Winner: color.Opposite(),
		Fault:  &game.Fault{Color: color, Err: err},
	}
}

func (s *Scheduler) notify(evt Event) {
	for _, o := range s.observers {
		o.Observe(evt)
	}
}
