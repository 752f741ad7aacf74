// Package core provides the fundamental value types shared by the board,
// the strategies and the orchestration engine. It has no dependencies on
// any other package in the module.
package core

// Color is one of the two playing sides on the board.
type Color uint8

const (
	// Black is the conventional first mover.
	Black Color = iota
	White
)

// ColorCount is the number of playing sides. Per-side state is kept in
// [ColorCount]T arrays indexed by Color.
const ColorCount = 2

// Colors lists both sides in play order.
var Colors = [ColorCount]Color{Black, White}

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == Black {
		return White
	}
	return Black
}

// Valid reports whether c is one of the two sides.
func (c Color) Valid() bool {
	return c == Black || c == White
}

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Unknown"
	}
}

// Disc returns the single-character glyph used when printing boards.
func (c Color) Disc() rune {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	default:
		return '?'
	}
}
