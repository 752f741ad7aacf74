// Package reversi implements the standard 8x8 Reversi board used by the
// engine. Boards are plain values: every operation that changes the
// position returns a new Board.
package reversi

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/reversi-arena/internal/core"
)

// Size is the board edge length.
const Size = 8

// Cell is the content of one square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// CellOf returns the cell value for a disc of color c.
func CellOf(c core.Color) Cell {
	if c == core.Black {
		return CellBlack
	}
	return CellWhite
}

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	default:
		return "Empty"
	}
}

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an immutable Reversi position.
type Board struct {
	cells [Size][Size]Cell
}

var _ core.Board = Board{}

// New returns the standard starting position: d4 and e5 White, e4 and
// d5 Black.
func New() Board {
	var b Board
	b.cells[3][3] = CellWhite
	b.cells[4][4] = CellWhite
	b.cells[3][4] = CellBlack
	b.cells[4][3] = CellBlack
	return b
}

// NewBoard is New typed as core.Board, for use as a board factory.
func NewBoard() core.Board {
	return New()
}

// Parse reads a board from eight rows of '.', 'X' (Black) and 'O'
// (White). Whitespace is ignored, so rows may be indented or spaced.
func Parse(s string) (Board, error) {
	var b Board
	n := 0
	for _, r := range s {
		var c Cell
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		case '.', '-':
			c = CellEmpty
		case 'X', 'x', 'B', 'b':
			c = CellBlack
		case 'O', 'o', 'W', 'w':
			c = CellWhite
		default:
			return Board{}, fmt.Errorf("reversi: unexpected character %q", r)
		}
		if n >= Size*Size {
			return Board{}, fmt.Errorf("reversi: more than %d cells", Size*Size)
		}
		b.cells[n/Size][n%Size] = c
		n++
	}
	if n != Size*Size {
		return Board{}, fmt.Errorf("reversi: got %d cells, want %d", n, Size*Size)
	}
	return b, nil
}

// InBounds reports whether p is on the board.
func InBounds(p core.Point) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < Size && p.Col < Size
}

// At returns the content of p, or CellEmpty when p is off the board.
func (b Board) At(p core.Point) Cell {
	if !InBounds(p) {
		return CellEmpty
	}
	return b.cells[p.Row][p.Col]
}

// flips returns the discs that would turn over if c played at p.
func (b Board) flips(c core.Color, p core.Point) []core.Point {
	if !InBounds(p) || b.cells[p.Row][p.Col] != CellEmpty {
		return nil
	}
	own := CellOf(c)
	other := CellOf(c.Opposite())

	var out []core.Point
	for _, d := range directions {
		var line []core.Point
		r, col := p.Row+d[0], p.Col+d[1]
		for r >= 0 && r < Size && col >= 0 && col < Size && b.cells[r][col] == other {
			line = append(line, core.Point{Row: r, Col: col})
			r += d[0]
			col += d[1]
		}
		if len(line) > 0 && r >= 0 && r < Size && col >= 0 && col < Size && b.cells[r][col] == own {
			out = append(out, line...)
		}
	}
	return out
}

// canMove reports whether c has at least one placing move.
func (b Board) canMove(c core.Color) bool {
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if len(b.flips(c, core.Point{Row: r, Col: col})) > 0 {
				return true
			}
		}
	}
	return false
}

// IsLegal implements core.Board. A pass is legal only when the side has
// no placing move.
func (b Board) IsLegal(m core.Move) bool {
	if !m.Color.Valid() {
		return false
	}
	if m.Pass {
		return !b.canMove(m.Color)
	}
	return len(b.flips(m.Color, m.Point)) > 0
}

// Apply implements core.Board.
func (b Board) Apply(m core.Move) core.Board {
	if m.Pass {
		return b
	}
	next := b
	own := CellOf(m.Color)
	for _, p := range b.flips(m.Color, m.Point) {
		next.cells[p.Row][p.Col] = own
	}
	next.cells[m.Point.Row][m.Point.Col] = own
	return next
}

// IsTerminal implements core.Board.
func (b Board) IsTerminal() bool {
	return !b.canMove(core.Black) && !b.canMove(core.White)
}

// Score implements core.Board.
func (b Board) Score(c core.Color) int {
	want := CellOf(c)
	n := 0
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if b.cells[r][col] == want {
				n++
			}
		}
	}
	return n
}

// NextMover implements core.Board.
func (b Board) NextMover(previous core.Color) core.Color {
	opp := previous.Opposite()
	if b.canMove(opp) {
		return opp
	}
	if b.canMove(previous) {
		return previous
	}
	return opp
}

// LegalMoves implements core.Board. Moves are listed row by row; when c
// has no placing move the only legal move is a pass.
func (b Board) LegalMoves(c core.Color) []core.Move {
	var moves []core.Move
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			p := core.Point{Row: r, Col: col}
			if len(b.flips(c, p)) > 0 {
				moves = append(moves, core.Put(c, p))
			}
		}
	}
	if len(moves) == 0 {
		return []core.Move{core.PassOf(c)}
	}
	return moves
}

// String renders the board with file letters and rank numbers.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for r := 0; r < Size; r++ {
		fmt.Fprintf(&sb, "%d", r+1)
		for col := 0; col < Size; col++ {
			sb.WriteByte(' ')
			switch b.cells[r][col] {
			case CellBlack:
				sb.WriteRune(core.Black.Disc())
			case CellWhite:
				sb.WriteRune(core.White.Disc())
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
