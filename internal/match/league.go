package match

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/vovakirdan/reversi-arena/internal/core"
)

// LeagueResult holds every match of a round-robin league in play order.
type LeagueResult struct {
	Players []Contestant
	Matches []*Result
}

// Standing is one player's aggregate over a league.
type Standing struct {
	ID        string
	Record    Record
	MatchWins int
}

// League plays a match between every pair of players, one after another.
// Player i is entrant A against every player j > i. base supplies the
// budgets, game count, params and board; its Contestants are ignored.
// All pairings are validated before the first game starts.
func (s *Scheduler) League(players []Contestant, base Condition) (*LeagueResult, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: a league needs at least 2 players, got %d", ErrInvalidCondition, len(players))
	}
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if p.ID == "" || seen[p.ID] {
			return nil, fmt.Errorf("%w: player ids must be unique and non-empty, got %q", ErrInvalidCondition, p.ID)
		}
		seen[p.ID] = true
	}

	var pairings []Condition
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			cond := base
			cond.Contestants = [core.EntrantCount]Contestant{players[i], players[j]}
			if err := cond.Validate(s.bounds); err != nil {
				return nil, err
			}
			pairings = append(pairings, cond)
		}
	}

	s.logger.Info("league started", "players", len(players), "matches", len(pairings))
	lr := &LeagueResult{Players: append([]Contestant(nil), players...)}
	for _, cond := range pairings {
		res, err := s.Run(cond)
		if err != nil {
			return lr, err
		}
		lr.Matches = append(lr.Matches, res)
	}
	return lr, nil
}

// Standings folds the league's match tallies into one row per player,
// ordered by wins, then fewer losses, then id.
func (lr *LeagueResult) Standings() []Standing {
	rows := make(map[string]*Standing, len(lr.Players))
	out := make([]Standing, len(lr.Players))
	for i, p := range lr.Players {
		out[i].ID = p.ID
		rows[p.ID] = &out[i]
	}

	for _, res := range lr.Matches {
		cond := res.Condition()
		sum := Tally(res)
		for _, e := range core.Entrants {
			row := rows[cond.Contestants[e].ID]
			if row == nil {
				continue
			}
			rec := sum.Records[e]
			row.Record.Wins += rec.Wins
			row.Record.Losses += rec.Losses
			row.Record.Draws += rec.Draws
			row.Record.Forfeits += rec.Forfeits
		}
		if leader, ok := sum.Leader(); ok {
			if row := rows[cond.Contestants[leader].ID]; row != nil {
				row.MatchWins++
			}
		}
	}

	slices.SortStableFunc(out, func(a, b Standing) int {
		return cmp.Or(
			cmp.Compare(b.Record.Wins, a.Record.Wins),
			cmp.Compare(a.Record.Losses, b.Record.Losses),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return out
}
