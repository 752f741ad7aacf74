package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reversi-arena/internal/config"
	"github.com/vovakirdan/reversi-arena/internal/match"
	"github.com/vovakirdan/reversi-arena/internal/metrics"
	"github.com/vovakirdan/reversi-arena/internal/platform/tui"
	"github.com/vovakirdan/reversi-arena/internal/registry"
	"github.com/vovakirdan/reversi-arena/internal/report"
)

var (
	flagConfig     string
	flagA          string
	flagB          string
	flagTimes      int
	flagPerTurn    int64
	flagPerGame    int64
	flagParams     []string
	flagLevel      string
	flagTUI        bool
	flagMetricsOut string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Play a match between two strategies",
	Long: `Play a series of games between entrants A and B. A moves first in
even-numbered games and B in odd-numbered ones.

Settings come from the first config found in:
  --config <file>, ~/.reversi/match.yaml, ./configs/match.yaml, built-in default
REVERSI_* environment variables override the file, and flags override both.

Print levels (--level or the print.level parameter):
  league - match summary only
  match  - one line per game
  game   - final board and forfeit details
  turn   - every move

Examples:
  reversi match
  reversi match --a minimax --b greedy --times 20 --per-turn 500
  reversi match --a crazy --b simplest --param crazy.seed=7 --level game
  reversi match --config ./duel.yaml --tui --metrics-out ./reversi.prom`,
	Run: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&flagConfig, "config", "", "Path to match config YAML")
	matchCmd.Flags().StringVar(&flagA, "a", "", "Strategy of entrant A")
	matchCmd.Flags().StringVar(&flagB, "b", "", "Strategy of entrant B")
	matchCmd.Flags().IntVar(&flagTimes, "times", 0, "Number of games (1-100)")
	matchCmd.Flags().Int64Var(&flagPerTurn, "per-turn", 0, "Time budget per turn in milliseconds (1-60000)")
	matchCmd.Flags().Int64Var(&flagPerGame, "per-game", 0, "Time budget per side per game in milliseconds (1-1800000)")
	matchCmd.Flags().StringArrayVar(&flagParams, "param", nil, "Strategy parameter key=value (repeatable)")
	matchCmd.Flags().StringVar(&flagLevel, "level", "", "Print level: league, match, game, turn")
	matchCmd.Flags().BoolVar(&flagTUI, "tui", false, "Show live progress when stdout is a terminal")
	matchCmd.Flags().StringVar(&flagMetricsOut, "metrics-out", "", "Write Prometheus metrics to this file when done")
}

func runMatch(cmd *cobra.Command, _ []string) {
	f, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	applyMatchFlags(cmd, &f)

	logger := newLogger(f.LogLevel)
	logger.Debug("config loaded", "source", config.Source(flagConfig))

	bounds := config.DefaultBounds()
	if err := f.Validate(bounds); err != nil {
		fail("%v", err)
	}
	cond, err := f.Condition(registry.Lookup)
	if err != nil {
		fail("%v (run 'reversi list' to see available strategies)", err)
	}

	level := report.LevelFrom(cond.Params, report.LevelMatch)
	if flagLevel != "" {
		if level, err = report.ParseLevel(flagLevel); err != nil {
			fail("%v", err)
		}
	}
	printer := report.NewPrinter(os.Stdout, level)

	opts := []match.Option{
		match.WithBounds(bounds.Match()),
		match.WithLogger(logger),
	}
	var recorder *metrics.Recorder
	if flagMetricsOut != "" {
		recorder = metrics.NewRecorder()
		opts = append(opts, match.WithObserver(recorder))
	}

	var res *match.Result
	if flagTUI && term.IsTerminal(int(os.Stdout.Fd())) {
		obs := match.NewChannelObserver(cond.Times + 4)
		s := match.NewScheduler(append(opts, match.WithObserver(obs))...)
		res, err = tui.RunMatch(s, obs, cond)
		if res != nil {
			printer.PrintMatch(res)
		}
	} else {
		if flagTUI {
			logger.Warn("stdout is not a terminal, ignoring --tui")
		}
		res, err = match.NewScheduler(append(opts, match.WithObserver(printer))...).Run(cond)
	}
	if err != nil {
		fail("%v", err)
	}

	if recorder != nil {
		if err := recorder.WriteTextfile(flagMetricsOut); err != nil {
			fail("%v", err)
		}
		logger.Info("metrics written", "path", flagMetricsOut)
	}
}

// applyMatchFlags copies explicitly set flags over the loaded config.
func applyMatchFlags(cmd *cobra.Command, f *config.File) {
	flags := cmd.Flags()
	if flags.Changed("a") {
		f.Players.A = flagA
	}
	if flags.Changed("b") {
		f.Players.B = flagB
	}
	if flags.Changed("times") {
		f.Times = flagTimes
	}
	if flags.Changed("per-turn") {
		f.PerTurnMs = flagPerTurn
	}
	if flags.Changed("per-game") {
		f.PerGameMs = flagPerGame
	}
	for _, kv := range flagParams {
		if err := f.SetParam(kv); err != nil {
			fail("%v", err)
		}
	}
}
