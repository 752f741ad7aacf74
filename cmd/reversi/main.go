// reversi runs Reversi games and matches between built-in strategies.
//
// Usage:
//
//	reversi list                          - List available strategies
//	reversi game --black X --white Y      - Play a single game
//	reversi match [--config file] [...]   - Play a match of several games
//	reversi league --players X,Y,Z        - Play every pairing and rank the players
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: from config, else warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import strategies to register them
	_ "github.com/vovakirdan/reversi-arena/internal/strategy"
)

var (
	// Global flags
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reversi",
	Short: "Reversi arena - pit strategies against each other",
	Long: `Reversi arena plays Reversi between pluggable strategies under time
budgets and reports the results. Illegal moves and overrun budgets
forfeit the game.

Available commands:
  list     - Show all available strategies
  game     - Play a single game
  match    - Play a match, alternating who moves first
  league   - Play a match for every pair of strategies and rank them

Examples:
  reversi list
  reversi game --black greedy --white random
  reversi match --a minimax --b greedy --times 10
  reversi match --config ./configs/match.yaml --tui
  reversi league --players minimax,greedy,random`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(gameCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(leagueCmd)
}

// newLogger returns the CLI logger. The --log-level flag wins over
// fallback, which usually comes from the config file.
func newLogger(fallback string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "reversi",
	})

	name := flagLogLevel
	if name == "" {
		name = fallback
	}
	if name == "" {
		name = "warn"
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", name)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// fail prints err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
