package match

import (
	"fmt"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/game"
)

// Record is one entrant's tally over a match.
type Record struct {
	Wins   int
	Losses int
	Draws  int
	// Forfeits counts the losses the entrant conceded by violation or
	// timeout; they are included in Losses.
	Forfeits int
}

// Played returns the number of games in the record.
func (r Record) Played() int {
	return r.Wins + r.Losses + r.Draws
}

func (r Record) String() string {
	return fmt.Sprintf("%dW %dL %dD (%d forfeits)", r.Wins, r.Losses, r.Draws, r.Forfeits)
}

// Summary aggregates a match result.
type Summary struct {
	Records [core.EntrantCount]Record
	Games   []Game
}

// Leader returns the entrant with more wins, or false on a tie.
func (s Summary) Leader() (core.Entrant, bool) {
	a, b := s.Records[core.EntrantA].Wins, s.Records[core.EntrantB].Wins
	switch {
	case a > b:
		return core.EntrantA, true
	case b > a:
		return core.EntrantB, true
	default:
		return 0, false
	}
}

// Tally counts wins, losses and draws per entrant. It does not modify r
// and returns equal summaries for the same result.
func Tally(r *Result) Summary {
	sum := Summary{Games: r.All()}
	for _, g := range sum.Games {
		forfeiter, forfeited := g.Result.Forfeiter()
		for _, e := range core.Entrants {
			rec := &sum.Records[e]
			switch g.Outcome(e) {
			case game.Win:
				rec.Wins++
			case game.Draw:
				rec.Draws++
			default:
				rec.Losses++
				if forfeited && forfeiter == g.Color(e) {
					rec.Forfeits++
				}
			}
		}
	}
	return sum
}
