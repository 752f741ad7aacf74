package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reversi-arena/internal/config"
	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/game"
	"github.com/vovakirdan/reversi-arena/internal/registry"
	"github.com/vovakirdan/reversi-arena/internal/report"
	"github.com/vovakirdan/reversi-arena/internal/reversi"
)

var (
	flagBlack       string
	flagWhite       string
	flagGamePerTurn int64
	flagGamePerGame int64
	flagGameParams  []string
	flagGameLevel   string
)

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Play a single game",
	Long: `Play one game between two strategies and print the result.

Black moves first. A strategy that plays an illegal move, plays out of
turn, fails or overruns its budget forfeits the game.

Examples:
  reversi game --black greedy --white random
  reversi game --black minimax --white greedy --param minimax.depth=5
  reversi game --black crazy --white simplest --level game`,
	Run: runGame,
}

func init() {
	gameCmd.Flags().StringVar(&flagBlack, "black", "simplest", "Strategy playing Black")
	gameCmd.Flags().StringVar(&flagWhite, "white", "random", "Strategy playing White")
	gameCmd.Flags().Int64Var(&flagGamePerTurn, "per-turn", 1000, "Time budget per turn in milliseconds")
	gameCmd.Flags().Int64Var(&flagGamePerGame, "per-game", 60000, "Time budget per side for the whole game in milliseconds")
	gameCmd.Flags().StringArrayVar(&flagGameParams, "param", nil, "Strategy parameter key=value (repeatable)")
	gameCmd.Flags().StringVar(&flagGameLevel, "level", "turn", "Print level: league, match, game, turn")
}

func runGame(_ *cobra.Command, _ []string) {
	logger := newLogger("")

	f := config.File{
		Players:   config.Players{A: flagBlack, B: flagWhite},
		PerTurnMs: flagGamePerTurn,
		PerGameMs: flagGamePerGame,
		Times:     1,
	}
	for _, kv := range flagGameParams {
		if err := f.SetParam(kv); err != nil {
			fail("%v", err)
		}
	}
	if err := f.Validate(config.DefaultBounds()); err != nil {
		fail("%v", err)
	}

	level, err := report.ParseLevel(flagGameLevel)
	if err != nil {
		fail("%v", err)
	}

	var cond game.Condition
	cond.PerTurn = time.Duration(f.PerTurnMs) * time.Millisecond
	cond.PerGame = time.Duration(f.PerGameMs) * time.Millisecond
	cond.Board = reversi.New()
	for color, id := range [core.ColorCount]string{flagBlack, flagWhite} {
		s, err := registry.Create(id, core.Params(f.Params))
		if err != nil {
			fail("%v (run 'reversi list' to see available strategies)", err)
		}
		cond.Strategies[color] = s
		cond.Names[color] = id
	}

	runner, err := game.NewRunner(cond, game.WithLogger(logger))
	if err != nil {
		fail("%v", err)
	}
	res := runner.Play()

	report.NewPrinter(os.Stdout, level).PrintGame(cond.Names, res)
}
