package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/game"
	"github.com/vovakirdan/reversi-arena/internal/match"
	"github.com/vovakirdan/reversi-arena/internal/referee"
	"github.com/vovakirdan/reversi-arena/internal/registry"
	"github.com/vovakirdan/reversi-arena/internal/reversi"
	_ "github.com/vovakirdan/reversi-arena/internal/strategy"
)

func runMatch(t *testing.T, rec *Recorder, a, b string, times int) *match.Result {
	t.Helper()
	var cond match.Condition
	for i, id := range []string{a, b} {
		f, err := registry.Lookup(id)
		require.NoError(t, err)
		cond.Contestants[i] = match.Contestant{ID: id, Factory: f}
	}
	cond.PerTurn = time.Second
	cond.PerGame = time.Minute
	cond.Times = times
	cond.Params = core.Params{"crazy.seed": "7"}

	res, err := match.NewScheduler(match.WithObserver(rec)).Run(cond)
	require.NoError(t, err)
	return res
}

func TestRecorderCountsGames(t *testing.T) {
	rec := NewRecorder()
	res := runMatch(t, rec, "simplest", "greedy", 4)

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.matches))
	assert.Equal(t, 4.0, testutil.ToFloat64(rec.games.WithLabelValues(game.Completed.String())))
	assert.Equal(t, 0, testutil.CollectAndCount(rec.forfeits))

	sum := match.Tally(res)
	wins := 0.0
	for _, e := range core.Entrants {
		label := res.Condition().Label(e)
		if sum.Records[e].Wins > 0 {
			wins += testutil.ToFloat64(rec.wins.WithLabelValues(label))
		}
	}
	assert.Equal(t, float64(sum.Records[0].Wins+sum.Records[1].Wins), wins)
	assert.Equal(t, 2, testutil.CollectAndCount(rec.thinking))
}

func TestRecorderCountsForfeits(t *testing.T) {
	rec := NewRecorder()
	runMatch(t, rec, "crazy", "simplest", 3)

	state := testutil.ToFloat64(rec.games.WithLabelValues(game.ForfeitedOnViolation.String()))
	forfeits := testutil.ToFloat64(rec.forfeits.WithLabelValues("illegal_move"))
	assert.Equal(t, state, forfeits)
	assert.Positive(t, forfeits)
}

func TestForfeitKind(t *testing.T) {
	board := reversi.New()
	tests := []struct {
		name string
		res  game.Result
		want string
	}{
		{name: "completed", res: game.Result{State: game.Completed}, want: ""},
		{name: "illegal move", res: game.Result{
			State:     game.ForfeitedOnViolation,
			Violation: referee.NewIllegalMove(board, core.PassOf(core.Black)),
		}, want: "illegal_move"},
		{name: "illegal turn", res: game.Result{
			State:     game.ForfeitedOnViolation,
			Violation: referee.NewIllegalTurn(board, core.Black, core.PassOf(core.White)),
		}, want: "illegal_turn"},
		{name: "overrun", res: game.Result{
			State: game.ForfeitedOnTimeout,
			Fault: &game.Fault{Err: game.ErrBudgetExceeded},
		}, want: "timeout"},
		{name: "error", res: game.Result{
			State: game.ForfeitedOnTimeout,
			Fault: &game.Fault{Err: errors.Join(game.ErrStrategyFailed, errors.New("boom"))},
		}, want: "strategy_error"},
		{name: "panic", res: game.Result{
			State: game.ForfeitedOnTimeout,
			Fault: &game.Fault{Err: game.ErrStrategyPanic},
		}, want: "panic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForfeitKind(tt.res))
		})
	}
}

func TestWriteTextfile(t *testing.T) {
	rec := NewRecorder()
	runMatch(t, rec, "simplest", "simplest", 2)

	path := filepath.Join(t.TempDir(), "reversi.prom")
	require.NoError(t, rec.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	for _, name := range []string{"reversi_matches_total 1", "reversi_games_total{state=\"Completed\"} 2", "reversi_strategy_seconds_bucket"} {
		assert.True(t, strings.Contains(out, name), "textfile lacks %q", name)
	}

	assert.Error(t, rec.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}
