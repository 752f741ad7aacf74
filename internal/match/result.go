package match

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/game"
)

// Game is one played game of a match.
type Game struct {
	Index  int
	First  core.Entrant
	Result game.Result
}

// Color returns the color e played in this game.
func (g Game) Color(e core.Entrant) core.Color {
	return ColorOf(e, g.First)
}

// Entrant returns the entrant that played color.
func (g Game) Entrant(color core.Color) core.Entrant {
	if color == core.Black {
		return g.First
	}
	return g.First.Opposite()
}

// Outcome returns the result of the game for e.
func (g Game) Outcome(e core.Entrant) game.Outcome {
	return g.Result.Outcome(g.Color(e))
}

// Result is the record of a match. It is filled in by the scheduler and
// sealed once Run returns; accessors hand out copies.
type Result struct {
	id    uuid.UUID
	cond  Condition
	games [core.EntrantCount][]game.Result
	all   []Game
}

func newResult(cond Condition) *Result {
	return &Result{
		id:   uuid.New(),
		cond: cond,
	}
}

// ID identifies the match in logs and metrics.
func (r *Result) ID() uuid.UUID {
	return r.id
}

// Condition returns the condition the match was played under.
func (r *Result) Condition() Condition {
	c := r.cond
	c.Params = c.Params.Clone()
	return c
}

// Games returns, in play order, the results of the games in which e
// moved first.
func (r *Result) Games(e core.Entrant) []game.Result {
	out := make([]game.Result, len(r.games[e]))
	for i, g := range r.games[e] {
		out[i] = g.Clone()
	}
	return out
}

// All returns every game in play order.
func (r *Result) All() []Game {
	out := make([]Game, len(r.all))
	for i, g := range r.all {
		g.Result = g.Result.Clone()
		out[i] = g
	}
	return out
}

// Game returns the game played at index i.
func (r *Result) Game(i int) (Game, bool) {
	if i < 0 || i >= len(r.all) {
		return Game{}, false
	}
	g := r.all[i]
	g.Result = g.Result.Clone()
	return g, true
}

// Len returns the number of games recorded.
func (r *Result) Len() int {
	return len(r.all)
}

// Complete reports whether every requested game has been played.
func (r *Result) Complete() bool {
	return len(r.all) == r.cond.Times
}

func (r *Result) append(first core.Entrant, res game.Result) Game {
	g := Game{Index: len(r.all), First: first, Result: res}
	r.games[first] = append(r.games[first], res)
	r.all = append(r.all, g)
	return g
}

func (r *Result) clone() *Result {
	c := *r
	for _, e := range core.Entrants {
		c.games[e] = append([]game.Result(nil), r.games[e]...)
	}
	c.all = append([]Game(nil), r.all...)
	return &c
}
