// Package report prints game and match results for people. Output
// detail is chosen with a Level.
package report

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/reversi-arena/internal/core"
)

// LevelParam is the match parameter that selects the print level.
const LevelParam = "print.level"

// Level controls how much detail is printed.
type Level int

const (
	// LevelLeague prints the match summary only.
	LevelLeague Level = iota
	// LevelMatch adds one line per game.
	LevelMatch
	// LevelGame adds the final board and forfeit details.
	LevelGame
	// LevelTurn adds the move list.
	LevelTurn
)

var levelNames = [...]string{"league", "match", "game", "turn"}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range levelNames {
		if s == name {
			return Level(i), nil
		}
	}
	return LevelLeague, fmt.Errorf("report: unknown level %q (want one of %s)", s, strings.Join(levelNames[:], ", "))
}

// LevelFrom reads LevelParam from params, falling back to def when it
// is missing or unknown.
func LevelFrom(params core.Params, def Level) Level {
	raw := params.String(LevelParam, "")
	if raw == "" {
		return def
	}
	l, err := ParseLevel(raw)
	if err != nil {
		return def
	}
	return l
}
