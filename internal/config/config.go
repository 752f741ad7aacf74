// Package config loads match configuration from YAML files and the
// environment and turns it into a match condition.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/match"
	"github.com/vovakirdan/reversi-arena/internal/registry"
)

// ErrOutOfBounds is returned when a numeric setting is outside the
// allowed range.
var ErrOutOfBounds = errors.New("config: value out of bounds")

// File is the on-disk form of a match configuration.
type File struct {
	Players   Players           `yaml:"players"`
	League    []string          `yaml:"league" env:"REVERSI_LEAGUE" env-separator:","`
	PerTurnMs int64             `yaml:"per_turn_ms" env:"REVERSI_PER_TURN_MS"`
	PerGameMs int64             `yaml:"per_game_ms" env:"REVERSI_PER_GAME_MS"`
	Times     int               `yaml:"times" env:"REVERSI_TIMES"`
	Params    map[string]string `yaml:"params" env:"REVERSI_PARAMS"`
	LogLevel  string            `yaml:"log_level" env:"REVERSI_LOG_LEVEL" env-default:"warn"`
}

// Players names the strategy of each entrant.
type Players struct {
	A string `yaml:"a" env:"REVERSI_PLAYER_A"`
	B string `yaml:"b" env:"REVERSI_PLAYER_B"`
}

// Bounds limits the numeric settings. Budgets are in milliseconds.
type Bounds struct {
	MinPerTurnMs, MaxPerTurnMs int64
	MinPerGameMs, MaxPerGameMs int64
	MinTimes, MaxTimes         int
}

// DefaultBounds allows 1ms-1min per turn, 1ms-30min per game and
// 1-100 games.
func DefaultBounds() Bounds {
	return Bounds{
		MinPerTurnMs: 1, MaxPerTurnMs: 60_000,
		MinPerGameMs: 1, MaxPerGameMs: 1_800_000,
		MinTimes: 1, MaxTimes: 100,
	}
}

// Match converts b to the scheduler's bounds.
func (b Bounds) Match() match.Bounds {
	return match.Bounds{
		MaxPerTurn: time.Duration(b.MaxPerTurnMs) * time.Millisecond,
		MaxPerGame: time.Duration(b.MaxPerGameMs) * time.Millisecond,
		MaxTimes:   b.MaxTimes,
	}
}

// Validate checks that both players are set and the numbers are in b.
func (f File) Validate(b Bounds) error {
	if f.Players.A == "" {
		return errors.New("config: players.a is required")
	}
	if f.Players.B == "" {
		return errors.New("config: players.b is required")
	}
	return f.ValidateBudgets(b)
}

// ValidateBudgets checks only the numeric settings against b.
func (f File) ValidateBudgets(b Bounds) error {
	if f.PerTurnMs < b.MinPerTurnMs || f.PerTurnMs > b.MaxPerTurnMs {
		return fmt.Errorf("%w: per_turn_ms=%d, want %d-%d", ErrOutOfBounds, f.PerTurnMs, b.MinPerTurnMs, b.MaxPerTurnMs)
	}
	if f.PerGameMs < b.MinPerGameMs || f.PerGameMs > b.MaxPerGameMs {
		return fmt.Errorf("%w: per_game_ms=%d, want %d-%d", ErrOutOfBounds, f.PerGameMs, b.MinPerGameMs, b.MaxPerGameMs)
	}
	if f.Times < b.MinTimes || f.Times > b.MaxTimes {
		return fmt.Errorf("%w: times=%d, want %d-%d", ErrOutOfBounds, f.Times, b.MinTimes, b.MaxTimes)
	}
	return nil
}

// Lookup resolves a strategy ID to its factory. registry.Lookup
// satisfies it.
type Lookup func(id string) (registry.Factory, error)

// Condition builds the match condition described by f.
func (f File) Condition(lookup Lookup) (match.Condition, error) {
	ids := [core.EntrantCount]string{f.Players.A, f.Players.B}

	cond := f.Base()
	for _, e := range core.Entrants {
		factory, err := lookup(ids[e])
		if err != nil {
			return match.Condition{}, fmt.Errorf("config: player %s: %w", e, err)
		}
		cond.Contestants[e] = match.Contestant{ID: ids[e], Factory: factory}
	}
	return cond, nil
}

// Base returns the budgets, game count and params of f as a condition
// with no contestants.
func (f File) Base() match.Condition {
	return match.Condition{
		PerTurn: time.Duration(f.PerTurnMs) * time.Millisecond,
		PerGame: time.Duration(f.PerGameMs) * time.Millisecond,
		Times:   f.Times,
		Params:  core.Params(f.Params).Clone(),
	}
}

// LeaguePlayers resolves f.League, in order, to the contestants of a
// round-robin league.
func (f File) LeaguePlayers(lookup Lookup) ([]match.Contestant, error) {
	if len(f.League) < 2 {
		return nil, fmt.Errorf("config: league needs at least 2 players, got %d", len(f.League))
	}
	players := make([]match.Contestant, 0, len(f.League))
	for _, raw := range f.League {
		id := strings.TrimSpace(raw)
		factory, err := lookup(id)
		if err != nil {
			return nil, fmt.Errorf("config: league player %q: %w", id, err)
		}
		players = append(players, match.Contestant{ID: id, Factory: factory})
	}
	return players, nil
}

// SetParam parses "key=value" and stores it in f.Params.
func (f *File) SetParam(kv string) error {
	key, value, err := ParseParam(kv)
	if err != nil {
		return err
	}
	if f.Params == nil {
		f.Params = make(map[string]string)
	}
	f.Params[key] = value
	return nil
}

// ParseParam splits "key=value". The value may be empty and may itself
// contain '='; the key may not be empty. Both are trimmed of spaces.
func ParseParam(kv string) (string, string, error) {
	key, value, ok := strings.Cut(kv, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("config: invalid parameter %q, want key=value", kv)
	}
	return key, strings.TrimSpace(value), nil
}
