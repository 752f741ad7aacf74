// Package metrics records match outcomes as Prometheus metrics and
// writes them in the node_exporter textfile format.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/game"
	"github.com/vovakirdan/reversi-arena/internal/match"
	"github.com/vovakirdan/reversi-arena/internal/referee"
)

const namespace = "reversi"

// Recorder is a match.Observer that counts games, forfeits and the time
// strategies spend thinking. Each Recorder owns its registry.
type Recorder struct {
	reg *prometheus.Registry

	matches  prometheus.Counter
	games    *prometheus.CounterVec
	forfeits *prometheus.CounterVec
	wins     *prometheus.CounterVec
	thinking *prometheus.HistogramVec

	cond match.Condition
}

// NewRecorder creates a recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Matches played to the end.",
		}),
		games: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_total",
			Help:      "Games played, by final state.",
		}, []string{"state"}),
		forfeits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forfeits_total",
			Help:      "Forfeited games, by cause.",
		}, []string{"kind"}),
		wins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wins_total",
			Help:      "Games won, by strategy.",
		}, []string{"strategy"}),
		thinking: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "strategy_seconds",
			Help:      "Time a side spent deciding over one game.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"color"}),
	}
	r.reg.MustRegister(r.matches, r.games, r.forfeits, r.wins, r.thinking)
	return r
}

// Registry exposes the recorder's registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// Observe implements match.Observer.
func (r *Recorder) Observe(evt match.Event) {
	switch evt := evt.(type) {
	case match.MatchStartedEvent:
		r.cond = evt.Condition
	case match.GameFinishedEvent:
		r.recordGame(evt.Game)
	case match.MatchEndedEvent:
		r.matches.Inc()
	}
}

// RecordGame records a game played outside a match. winner names the
// winning strategy and is ignored for draws.
func (r *Recorder) RecordGame(res game.Result, winner string) {
	r.games.WithLabelValues(res.State.String()).Inc()
	if kind := ForfeitKind(res); kind != "" {
		r.forfeits.WithLabelValues(kind).Inc()
	}
	if !res.Draw && winner != "" {
		r.wins.WithLabelValues(winner).Inc()
	}
	for _, c := range core.Colors {
		r.thinking.WithLabelValues(c.String()).Observe(res.Spent[c].Seconds())
	}
}

func (r *Recorder) recordGame(g match.Game) {
	var winner string
	if !g.Result.Draw {
		winner = r.cond.Label(g.Entrant(g.Result.Winner))
	}
	r.RecordGame(g.Result, winner)
}

// WriteTextfile writes every metric to path, atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}

// ForfeitKind labels how a game was forfeited: "illegal_move",
// "illegal_turn", "timeout", "strategy_error", "panic", or "" when the
// game was not forfeited.
func ForfeitKind(res game.Result) string {
	switch res.State {
	case game.ForfeitedOnViolation:
		return referee.Kind(res.Violation)
	case game.ForfeitedOnTimeout:
		if res.Fault == nil {
			return "timeout"
		}
		switch {
		case errors.Is(res.Fault, game.ErrStrategyPanic):
			return "panic"
		case errors.Is(res.Fault, game.ErrStrategyFailed):
			return "strategy_error"
		default:
			return "timeout"
		}
	default:
		return ""
	}
}
