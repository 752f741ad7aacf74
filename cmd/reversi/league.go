package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reversi-arena/internal/config"
	"github.com/vovakirdan/reversi-arena/internal/match"
	"github.com/vovakirdan/reversi-arena/internal/metrics"
	"github.com/vovakirdan/reversi-arena/internal/registry"
	"github.com/vovakirdan/reversi-arena/internal/report"
)

var (
	flagLeagueConfig     string
	flagLeaguePlayers    []string
	flagLeagueTimes      int
	flagLeaguePerTurn    int64
	flagLeaguePerGame    int64
	flagLeagueParams     []string
	flagLeagueLevel      string
	flagLeagueMetricsOut string
)

var leagueCmd = &cobra.Command{
	Use:   "league",
	Short: "Play a round-robin league between several strategies",
	Long: `Play a match between every pair of the given strategies, one after
another, and print the standings. The first listed player is entrant A
against everyone after it.

Players come from --players, else from the league list in the config.
Budgets, games per match and params are read like 'reversi match'.

Examples:
  reversi league
  reversi league --players minimax,greedy,random --times 4
  reversi league --players greedy,crazy,simplest --level match`,
	Run: runLeague,
}

func init() {
	leagueCmd.Flags().StringVar(&flagLeagueConfig, "config", "", "Path to match config YAML")
	leagueCmd.Flags().StringSliceVar(&flagLeaguePlayers, "players", nil, "Comma-separated strategies, at least 2")
	leagueCmd.Flags().IntVar(&flagLeagueTimes, "times", 0, "Games per match (1-100)")
	leagueCmd.Flags().Int64Var(&flagLeaguePerTurn, "per-turn", 0, "Time budget per turn in milliseconds (1-60000)")
	leagueCmd.Flags().Int64Var(&flagLeaguePerGame, "per-game", 0, "Time budget per side per game in milliseconds (1-1800000)")
	leagueCmd.Flags().StringArrayVar(&flagLeagueParams, "param", nil, "Strategy parameter key=value (repeatable)")
	leagueCmd.Flags().StringVar(&flagLeagueLevel, "level", "league", "Print level: league, match, game, turn")
	leagueCmd.Flags().StringVar(&flagLeagueMetricsOut, "metrics-out", "", "Write Prometheus metrics to this file when done")
}

func runLeague(cmd *cobra.Command, _ []string) {
	f, err := config.Load(flagLeagueConfig)
	if err != nil {
		fail("%v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("players") {
		f.League = flagLeaguePlayers
	}
	if flags.Changed("times") {
		f.Times = flagLeagueTimes
	}
	if flags.Changed("per-turn") {
		f.PerTurnMs = flagLeaguePerTurn
	}
	if flags.Changed("per-game") {
		f.PerGameMs = flagLeaguePerGame
	}
	for _, kv := range flagLeagueParams {
		if err := f.SetParam(kv); err != nil {
			fail("%v", err)
		}
	}

	logger := newLogger(f.LogLevel)
	bounds := config.DefaultBounds()
	if err := f.ValidateBudgets(bounds); err != nil {
		fail("%v", err)
	}
	players, err := f.LeaguePlayers(registry.Lookup)
	if err != nil {
		fail("%v (run 'reversi list' to see available strategies)", err)
	}

	level, err := report.ParseLevel(flagLeagueLevel)
	if err != nil {
		fail("%v", err)
	}
	printer := report.NewPrinter(os.Stdout, level)

	opts := []match.Option{
		match.WithBounds(bounds.Match()),
		match.WithLogger(logger),
		match.WithObserver(printer),
	}
	var recorder *metrics.Recorder
	if flagLeagueMetricsOut != "" {
		recorder = metrics.NewRecorder()
		opts = append(opts, match.WithObserver(recorder))
	}

	lr, err := match.NewScheduler(opts...).League(players, f.Base())
	if err != nil {
		fail("%v", err)
	}
	printer.PrintStandings(lr.Standings())

	if recorder != nil {
		if err := recorder.WriteTextfile(flagLeagueMetricsOut); err != nil {
			fail("%v", err)
		}
		logger.Info("metrics written", "path", flagLeagueMetricsOut)
	}
}
