// Package glyph turns text into wall shapes. Glyphs live on a 5x7 cell
// grid with the origin at the top-left corner and are placed left to right
// with one blank column between them.
package glyph

import (
	"slices"

	"github.com/vovakirdan/pixsnake/internal/shape"
)

// Cell size of a glyph and the horizontal advance, in unscaled units.
const (
	Width   = 5
	Height  = 7
	Advance = Width + 1
)

func l(x0, y0, x1, y1 int) shape.Shape { return shape.NewLine(x0, y0, x1, y1) }
func p(x, y int) shape.Shape          { return shape.NewPoint(x, y) }

var table = map[rune][]shape.Shape{
	'A': {l(0, 1, 0, 6), l(4, 1, 4, 6), l(1, 2, 3, 2), l(1, 0, 3, 0)},
	'B': {l(0, 0, 0, 6), l(4, 3, 4, 5), p(4, 1), l(1, 0, 3, 0), l(1, 2, 3, 2), l(1, 6, 3, 6)},
	'C': {l(1, 0, 4, 0), l(0, 1, 0, 5), l(1, 6, 4, 6)},
	'D': {l(0, 0, 0, 6), l(1, 0, 2, 0), l(1, 6, 2, 6), p(3, 1), p(3, 5), l(4, 2, 4, 4)},
	'E': {l(0, 0, 0, 6), l(1, 0, 4, 0), l(1, 3, 3, 3), l(1, 6, 4, 6)},
	'F': {l(0, 0, 0, 6), l(1, 0, 4, 0), l(1, 3, 3, 3)},
	'G': {l(1, 0, 4, 0), l(0, 1, 0, 5), l(1, 6, 3, 6), l(4, 3, 4, 5), p(3, 3)},
	'H': {l(0, 0, 0, 6), l(4, 0, 4, 6), l(1, 3, 3, 3)},
	'I': {l(1, 0, 3, 0), l(2, 1, 2, 5), l(1, 6, 3, 6)},
	'J': {l(2, 0, 4, 0), l(3, 1, 3, 5), l(1, 6, 2, 6), p(0, 5)},
	'K': {l(0, 0, 0, 6), l(1, 3, 4, 0), l(2, 4, 4, 6)},
	'L': {l(0, 0, 0, 6), l(1, 6, 4, 6)},
	'M': {l(0, 0, 0, 6), l(4, 0, 4, 6), l(1, 1, 2, 2), p(3, 1)},
	'N': {l(0, 0, 0, 6), l(4, 0, 4, 6), l(1, 1, 3, 5)},
	'O': {l(1, 0, 3, 0), l(1, 6, 3, 6), l(0, 1, 0, 5), l(4, 1, 4, 5)},
	'P': {l(0, 0, 0, 6), l(1, 0, 3, 0), l(4, 1, 4, 2), l(1, 3, 3, 3)},
	'Q': {l(1, 0, 3, 0), l(0, 1, 0, 5), l(4, 1, 4, 4), l(1, 6, 2, 6), l(2, 4, 4, 6)},
	'R': {l(0, 0, 0, 6), l(1, 0, 3, 0), l(4, 1, 4, 2), l(1, 3, 3, 3), l(2, 4, 4, 6)},
	'S': {l(1, 0, 4, 0), l(0, 1, 0, 2), l(1, 3, 3, 3), l(4, 4, 4, 5), l(0, 6, 3, 6)},
	'T': {l(0, 0, 4, 0), l(2, 1, 2, 6)},
	'U': {l(0, 0, 0, 5), l(4, 0, 4, 5), l(1, 6, 3, 6)},
	'V': {l(0, 0, 0, 4), l(4, 0, 4, 4), p(1, 5), p(3, 5), p(2, 6)},
	'W': {l(0, 0, 0, 5), l(4, 0, 4, 5), l(2, 2, 2, 5), p(1, 6), p(3, 6)},
	'X': {l(0, 0, 4, 6), l(0, 6, 4, 0)},
	'Y': {l(0, 0, 2, 2), l(4, 0, 2, 2), l(2, 3, 2, 6)},
	'Z': {l(0, 0, 4, 0), l(4, 1, 0, 5), l(0, 6, 4, 6)},

	'0': {l(1, 0, 3, 0), l(1, 6, 3, 6), l(0, 1, 0, 5), l(4, 1, 4, 5), l(1, 4, 3, 2)},
	'1': {l(2, 0, 2, 6), p(1, 1), l(1, 6, 3, 6)},
	'2': {p(0, 1), l(1, 0, 3, 0), l(4, 1, 4, 2), l(3, 3, 0, 6), l(1, 6, 4, 6)},
	'3': {l(0, 0, 3, 0), l(4, 1, 4, 2), l(1, 3, 3, 3), l(4, 4, 4, 5), l(0, 6, 3, 6)},
	'4': {l(0, 0, 0, 3), l(1, 3, 4, 3), l(3, 0, 3, 6)},
	'5': {l(0, 0, 4, 0), l(0, 1, 0, 3), l(1, 3, 3, 3), l(4, 4, 4, 5), l(0, 6, 3, 6)},
	'6': {l(1, 0, 4, 0), l(0, 1, 0, 5), l(1, 6, 3, 6), l(4, 4, 4, 5), l(1, 3, 3, 3)},
	'7': {l(0, 0, 4, 0), l(4, 1, 2, 3), l(2, 4, 2, 6)},
	'8': {l(1, 0, 3, 0), l(0, 1, 0, 2), l(4, 1, 4, 2), l(1, 3, 3, 3), l(0, 4, 0, 5), l(4, 4, 4, 5), l(1, 6, 3, 6)},
	'9': {l(1, 0, 3, 0), l(0, 1, 0, 2), l(4, 1, 4, 5), l(1, 3, 3, 3), l(0, 6, 3, 6)},

	'-': {l(0, 3, 4, 3)},
	'.': {p(2, 6)},
	'!': {l(2, 0, 2, 4), p(2, 6)},
}

// Lookup returns the unscaled shapes of r at the origin.
func Lookup(r rune) ([]shape.Shape, bool) {
	s, ok := table[r]
	if !ok {
		return nil, false
	}
	return slices.Clone(s), true
}

// Supported returns every rune the table can draw, sorted.
func Supported() []rune {
	out := make([]rune, 0, len(table))
	for r := range table {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}
