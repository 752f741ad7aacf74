package strategy

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/registry"
	"github.com/vovakirdan/reversi-arena/internal/reversi"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"simplest", "random", "greedy", "minimax", "slowpoke", "crazy"} {
		t.Run(id, func(t *testing.T) {
			s, err := registry.Create(id, nil)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", id, err)
			}
			if s.ID() != id {
				t.Errorf("ID() = %q, want %q", s.ID(), id)
			}
			if s.Title() == "" {
				t.Error("Title() is empty")
			}
		})
	}
}

func TestLegalStrategiesPlayLegalMoves(t *testing.T) {
	params := core.Params{"random.seed": "7", "minimax.depth": "2"}

	for _, id := range []string{"simplest", "random", "greedy", "minimax"} {
		t.Run(id, func(t *testing.T) {
			black, _ := registry.Create(id, params)
			white, _ := registry.Create(id, params)
			players := [core.ColorCount]registry.Strategy{black, white}

			var board core.Board = reversi.New()
			color := core.Black
			for turn := 0; !board.IsTerminal() && turn < 128; turn++ {
				m, err := players[color].Decide(context.Background(), board, color, time.Second)
				if err != nil {
					t.Fatalf("Decide() failed: %v", err)
				}
				if m.Color != color || !board.IsLegal(m) {
					t.Fatalf("turn %d: Decide() = %v, not legal for %v\n%s", turn, m, color, board)
				}
				board = board.Apply(m)
				color = board.NextMover(color)
			}
			if !board.IsTerminal() {
				t.Error("game did not finish")
			}
		})
	}
}

func TestSimplestOpening(t *testing.T) {
	m, _ := Simplest{}.Decide(context.Background(), reversi.New(), core.Black, time.Second)
	if m.Point.String() != "d3" {
		t.Errorf("Decide() = %v, want Black:d3", m)
	}
}

func TestRandomSeedIsReproducible(t *testing.T) {
	p := core.Params{"random.seed": "42"}
	a, b := NewRandom(p), NewRandom(p)
	board := reversi.New()

	for i := 0; i < 10; i++ {
		ma, _ := a.Decide(context.Background(), board, core.Black, time.Second)
		mb, _ := b.Decide(context.Background(), board, core.Black, time.Second)
		if ma != mb {
			t.Fatalf("call %d: %v != %v with the same seed", i, ma, mb)
		}
	}
}

func TestGreedyTakesMostDiscs(t *testing.T) {
	board, err := reversi.Parse(`
		X.X.X...
		.OOO....
		........
		........
		....O...
		.....X..
		........
		........`)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	m, _ := Greedy{}.Decide(context.Background(), board, core.Black, time.Second)
	if m.Point.String() != "c3" {
		t.Errorf("Decide() = %v, want Black:c3 (three flips)", m)
	}
}

func TestMinimaxHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	board := reversi.New()
	m, err := NewMinimax(core.Params{"minimax.depth": "12"}).Decide(ctx, board, core.Black, time.Millisecond)
	if err != nil {
		t.Fatalf("Decide() failed: %v", err)
	}
	if !board.IsLegal(m) {
		t.Errorf("Decide() = %v, want a legal fallback move", m)
	}
}

func TestCrazyWrongColor(t *testing.T) {
	c := NewCrazy(core.Params{"crazy.seed": "3", "crazy.wrong-color": "true"})
	m, _ := c.Decide(context.Background(), reversi.New(), core.Black, time.Second)

	if m.Color != core.White {
		t.Errorf("Decide() color = %v, want White", m.Color)
	}
	if !reversi.InBounds(m.Point) {
		t.Errorf("Decide() point %v off the board", m.Point)
	}
}

func TestSlowpokeOverruns(t *testing.T) {
	s := NewSlowpoke(core.Params{"slowpoke.extra": "5"})
	budget := 5 * time.Millisecond

	start := time.Now()
	_, _ = s.Decide(context.Background(), reversi.New(), core.Black, budget)
	if elapsed := time.Since(start); elapsed <= budget {
		t.Errorf("Decide() took %v, want more than %v", elapsed, budget)
	}
}

func TestParamDocs(t *testing.T) {
	want := map[string][]string{
		"crazy":    {"crazy.seed", "crazy.wrong-color"},
		"minimax":  {"minimax.depth"},
		"random":   {"random.seed"},
		"slowpoke": {"slowpoke.extra"},
		"greedy":   nil,
		"simplest": nil,
	}
	for _, info := range registry.List() {
		keys, ok := want[info.ID]
		if !ok {
			continue
		}
		if len(info.Params) != len(keys) {
			t.Errorf("%s: %d params documented, want %d", info.ID, len(info.Params), len(keys))
			continue
		}
		for i, p := range info.Params {
			if p.Key != keys[i] || p.Default == "" || p.Usage == "" {
				t.Errorf("%s: param %d = %+v, want key %s with default and usage", info.ID, i, p, keys[i])
			}
		}
	}
}
