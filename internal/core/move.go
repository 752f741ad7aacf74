package core

import (
	"fmt"
	"strings"
)

// Point addresses a cell on the board. Row 0 is the top rank ("1"),
// Col 0 the leftmost file ("a").
type Point struct {
	Row, Col int
}

// String returns the point in "c4" notation.
func (p Point) String() string {
	if p.Col < 0 || p.Col > 25 || p.Row < 0 {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

// ParsePoint parses "c4" notation. It does not check board bounds.
func ParsePoint(s string) (Point, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 || s[0] < 'a' || s[0] > 'z' {
		return Point{}, fmt.Errorf("core: invalid point %q", s)
	}
	var row int
	if _, err := fmt.Sscanf(s[1:], "%d", &row); err != nil || row < 1 {
		return Point{}, fmt.Errorf("core: invalid point %q", s)
	}
	return Point{Row: row - 1, Col: int(s[0] - 'a')}, nil
}

// Move is a proposal made by a strategy. Color is the side the move is
// made for; the referee compares it with the side whose turn it is.
// A pass carries no point.
type Move struct {
	Color Color
	Point Point
	Pass  bool
}

// Put creates a move placing a disc of the given color at p.
func Put(c Color, p Point) Move {
	return Move{Color: c, Point: p}
}

// PassOf creates a pass for the given color.
func PassOf(c Color) Move {
	return Move{Color: c, Pass: true}
}

// String returns e.g. "Black:c4" or "White:pass".
func (m Move) String() string {
	if m.Pass {
		return m.Color.String() + ":pass"
	}
	return m.Color.String() + ":" + m.Point.String()
}
