package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/game"
	"github.com/vovakirdan/reversi-arena/internal/match"
	"github.com/vovakirdan/reversi-arena/internal/registry"
	_ "github.com/vovakirdan/reversi-arena/internal/strategy"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "league", want: LevelLeague},
		{in: "match", want: LevelMatch},
		{in: "Game", want: LevelGame},
		{in: " turn ", want: LevelTurn},
		{in: "verbose", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	for _, l := range []Level{LevelLeague, LevelMatch, LevelGame, LevelTurn} {
		got, err := ParseLevel(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v", l.String(), got, err, l)
		}
	}
	if got := Level(9).String(); got != "Level(9)" {
		t.Errorf("Level(9).String() = %q", got)
	}
}

func TestLevelFrom(t *testing.T) {
	tests := []struct {
		params core.Params
		want   Level
	}{
		{params: nil, want: LevelMatch},
		{params: core.Params{LevelParam: "turn"}, want: LevelTurn},
		{params: core.Params{LevelParam: "bogus"}, want: LevelMatch},
		{params: core.Params{"other": "game"}, want: LevelMatch},
	}
	for _, tt := range tests {
		if got := LevelFrom(tt.params, LevelMatch); got != tt.want {
			t.Errorf("LevelFrom(%v) = %v, want %v", tt.params, got, tt.want)
		}
	}
}

func playMatch(t *testing.T, a, b string, params core.Params, p *Printer) *match.Result {
	t.Helper()
	var cond match.Condition
	for i, id := range []string{a, b} {
		f, err := registry.Lookup(id)
		if err != nil {
			t.Fatal(err)
		}
		cond.Contestants[i] = match.Contestant{ID: id, Factory: f}
	}
	cond.PerTurn = time.Second
	cond.PerGame = time.Minute
	cond.Times = 3
	cond.Params = params

	var opts []match.Option
	if p != nil {
		opts = append(opts, match.WithObserver(p))
	}
	res, err := match.NewScheduler(opts...).Run(cond)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return res
}

func TestPrinterLevels(t *testing.T) {
	tests := []struct {
		level   Level
		want    []string
		notWant []string
	}{
		{level: LevelLeague, want: []string{"Result", "A:simplest", "B:greedy", "W "}, notWant: []string{"game 1", "A:simplest vs B:greedy"}},
		{level: LevelMatch, want: []string{"A:simplest vs B:greedy", "game 1", "game 2", "game 3"}, notWant: []string{"a b c d e f g h"}},
		{level: LevelGame, want: []string{"a b c d e f g h", "turns "}, notWant: []string{"1.Black:"}},
		{level: LevelTurn, want: []string{"1.Black:"}},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			playMatch(t, "simplest", "greedy", nil, NewPrinter(&buf, tt.level))

			out := buf.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("output unexpectedly contains %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestPrinterForfeits(t *testing.T) {
	var buf bytes.Buffer
	params := core.Params{"crazy.wrong-color": "true"}
	playMatch(t, "crazy", "simplest", params, NewPrinter(&buf, LevelGame))

	out := buf.String()
	if got := strings.Count(out, "A:crazy forfeits: illegal turn"); got != 3 {
		t.Errorf("forfeit lines = %d, want 3:\n%s", got, out)
	}
	if !strings.Contains(out, "properColor=") {
		t.Errorf("game level output lacks violation detail:\n%s", out)
	}
	if !strings.Contains(out, "winner B:simplest") {
		t.Errorf("output lacks match winner:\n%s", out)
	}
}

func TestPrintMatchMatchesObserverOutput(t *testing.T) {
	var live bytes.Buffer
	res := playMatch(t, "simplest", "simplest", nil, NewPrinter(&live, LevelTurn))

	var after bytes.Buffer
	NewPrinter(&after, LevelTurn).PrintMatch(res)

	if live.String() != after.String() {
		t.Errorf("PrintMatch output differs from live output:\nlive:\n%s\nafter:\n%s", live.String(), after.String())
	}
}

func TestPrintGame(t *testing.T) {
	res := game.Result{
		State:  game.ForfeitedOnTimeout,
		Winner: core.White,
		Fault:  &game.Fault{Color: core.Black, Budget: time.Second, Elapsed: 2 * time.Second, Err: game.ErrBudgetExceeded},
		Turns:  1,
	}

	var buf bytes.Buffer
	NewPrinter(&buf, LevelGame).PrintGame([core.ColorCount]string{"slowpoke", "random"}, res)

	out := buf.String()
	for _, s := range []string{"winner random", "slowpoke forfeits: timeout", "time budget exceeded"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestFormatMoves(t *testing.T) {
	moves := make([]core.Move, 9)
	for i := range moves {
		moves[i] = core.PassOf(core.Colors[i%2])
	}
	got := formatMoves(moves)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("formatMoves() = %q, want 2 lines", got)
	}
	if !strings.HasPrefix(lines[0], "1.Black:pass 2.White:pass") {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "9.Black:pass" {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestPrintStandings(t *testing.T) {
	rows := []match.Standing{
		{ID: "minimax", Record: match.Record{Wins: 7, Losses: 1}, MatchWins: 2},
		{ID: "greedy", Record: match.Record{Wins: 4, Losses: 3, Draws: 1}, MatchWins: 1},
		{ID: "crazy", Record: match.Record{Losses: 8, Forfeits: 5}},
	}

	var buf bytes.Buffer
	NewPrinter(&buf, LevelLeague).PrintStandings(rows)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Standings" {
		t.Errorf("title = %q", lines[0])
	}
	for i, id := range []string{"minimax", "greedy", "crazy"} {
		fields := strings.Fields(lines[i+2])
		if len(fields) != 7 || fields[1] != id {
			t.Errorf("row %d = %q, want player %s", i+1, lines[i+2], id)
		}
	}
	if got := strings.Fields(lines[4]); len(got) == 7 && got[5] != "5" {
		t.Errorf("crazy forfeits = %q, want 5", got[5])
	}
}
