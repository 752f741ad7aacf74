package reversi

import (
	"strings"
	"testing"

	"github.com/vovakirdan/reversi-arena/internal/core"
)

func mustParse(t *testing.T, s string) Board {
	t.Helper()
	b, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return b
}

func pt(t *testing.T, s string) core.Point {
	t.Helper()
	p, err := core.ParsePoint(s)
	if err != nil {
		t.Fatalf("ParsePoint(%q) failed: %v", s, err)
	}
	return p
}

func TestNewBoardScores(t *testing.T) {
	b := New()
	if b.Score(core.Black) != 2 || b.Score(core.White) != 2 {
		t.Errorf("Score() = %d/%d, want 2/2", b.Score(core.Black), b.Score(core.White))
	}
	if b.IsTerminal() {
		t.Error("starting position reported terminal")
	}
	if b.At(pt(t, "d4")) != CellWhite || b.At(pt(t, "e4")) != CellBlack {
		t.Error("unexpected starting discs")
	}
}

func TestOpeningMoves(t *testing.T) {
	moves := New().LegalMoves(core.Black)
	want := []string{"d3", "c4", "f5", "e6"}

	if len(moves) != len(want) {
		t.Fatalf("LegalMoves() returned %d moves, want %d: %v", len(moves), len(want), moves)
	}
	for i, m := range moves {
		if m.Point.String() != want[i] || m.Color != core.Black || m.Pass {
			t.Errorf("LegalMoves()[%d] = %v, want Black:%s", i, m, want[i])
		}
	}
}

func TestIsLegal(t *testing.T) {
	b := New()
	tests := []struct {
		name string
		move core.Move
		want bool
	}{
		{name: "flanking move", move: core.Put(core.Black, pt(t, "d3")), want: true},
		{name: "occupied by white", move: core.Put(core.Black, pt(t, "d4")), want: false},
		{name: "occupied by own disc", move: core.Put(core.Black, pt(t, "e4")), want: false},
		{name: "no flips", move: core.Put(core.Black, pt(t, "a1")), want: false},
		{name: "off board", move: core.Put(core.Black, core.Point{Row: 8, Col: 0}), want: false},
		{name: "negative point", move: core.Put(core.White, core.Point{Row: -1, Col: 3}), want: false},
		{name: "pass with moves available", move: core.PassOf(core.Black), want: false},
		{name: "invalid color", move: core.Move{Color: core.Color(7), Point: pt(t, "d3")}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.IsLegal(tc.move); got != tc.want {
				t.Errorf("IsLegal(%v) = %v, want %v", tc.move, got, tc.want)
			}
		})
	}
}

func TestApplyDoesNotMutate(t *testing.T) {
	b := New()
	next := b.Apply(core.Put(core.Black, pt(t, "d3")))

	if b.Score(core.Black) != 2 || b.Score(core.White) != 2 {
		t.Error("Apply() mutated the receiver")
	}
	if next.Score(core.Black) != 4 || next.Score(core.White) != 1 {
		t.Errorf("after d3 Score() = %d/%d, want 4/1", next.Score(core.Black), next.Score(core.White))
	}
	if next.NextMover(core.Black) != core.White {
		t.Error("NextMover() should hand the turn to White")
	}
}

func TestApplyFlipsMultipleLines(t *testing.T) {
	b := mustParse(t, `
		X.X.X...
		.OOO.O..
		........
		........
		........
		........
		........
		........`)
	// c3 closes b2, c2 and d2 along three different lines; f2 is untouched.
	next := b.Apply(core.Put(core.Black, pt(t, "c3"))).(Board)

	for _, s := range []string{"b2", "c2", "d2", "c3"} {
		if got := next.At(pt(t, s)); got != CellBlack {
			t.Errorf("%s = %v, want Black", s, got)
		}
	}
	if got := next.At(pt(t, "f2")); got != CellWhite {
		t.Errorf("f2 = %v, want White", got)
	}
	if next.Score(core.Black) != 7 || next.Score(core.White) != 1 {
		t.Errorf("Score() = %d/%d, want 7/1", next.Score(core.Black), next.Score(core.White))
	}
}

func TestForcedPass(t *testing.T) {
	b := mustParse(t, `
		XO......
		........
		........
		........
		........
		........
		........
		........`)

	if !b.IsLegal(core.Put(core.Black, pt(t, "c1"))) {
		t.Error("c1 should be legal for Black")
	}
	if moves := b.LegalMoves(core.White); len(moves) != 1 || !moves[0].Pass {
		t.Errorf("LegalMoves(White) = %v, want a single pass", moves)
	}
	if !b.IsLegal(core.PassOf(core.White)) {
		t.Error("pass should be legal for White")
	}
	if got := b.NextMover(core.Black); got != core.Black {
		t.Errorf("NextMover(Black) = %v, want Black (White must pass)", got)
	}
	if b.IsTerminal() {
		t.Error("board should not be terminal while Black can move")
	}
}

func TestTerminal(t *testing.T) {
	full := mustParse(t, strings.Repeat("XXXXXXXX\n", 7)+"OOOOOOOO")
	if !full.IsTerminal() {
		t.Error("full board should be terminal")
	}
	if full.Score(core.Black) != 56 || full.Score(core.White) != 8 {
		t.Errorf("Score() = %d/%d, want 56/8", full.Score(core.Black), full.Score(core.White))
	}

	wiped := mustParse(t, "XX"+strings.Repeat(".", 62))
	if !wiped.IsTerminal() {
		t.Error("board with one color only should be terminal")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "too short", input: "XO"},
		{name: "too long", input: strings.Repeat(".", 65)},
		{name: "bad rune", input: "Z" + strings.Repeat(".", 63)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.input); err == nil {
				t.Errorf("Parse(%q) expected error", tc.input)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	b := New()
	s := b.String()
	if !strings.HasPrefix(s, "  a b c d e f g h\n") {
		t.Errorf("String() header = %q", strings.SplitN(s, "\n", 2)[0])
	}
	// Strip the coordinates and parse the grid back.
	var grid strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(s), "\n")[1:] {
		grid.WriteString(line[1:])
	}
	back, err := Parse(grid.String())
	if err != nil {
		t.Fatalf("Parse(String()) failed: %v", err)
	}
	if back != b {
		t.Error("Parse(String()) did not reproduce the board")
	}
}
