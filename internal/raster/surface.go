// Package raster provides a fixed-size pixel surface with toroidal
// addressing and the drawing primitives the game needs: points, lines and
// rectangle outlines.
package raster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/pixsnake/internal/geom"
)

// ErrUnsupportedFill is returned when a filled rectangle is requested.
// Only outlines are implemented.
var ErrUnsupportedFill = errors.New("raster: filled rectangles are not supported")

// Surface is a width x height grid of colors stored in row-major order.
// Every read and write wraps its coordinates, so the surface has no edges.
type Surface struct {
	width      int
	height     int
	background Color
	pixels     []Color
}

// New creates a surface filled with the background color.
func New(width, height int, background Color) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid surface size %dx%d", width, height)
	}
	s := &Surface{
		width:      width,
		height:     height,
		background: background,
		pixels:     make([]Color, width*height),
	}
	s.Fill(background)
	return s, nil
}

// Width returns the surface width in cells.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in cells.
func (s *Surface) Height() int {
	return s.height
}

// Bounds returns the surface size as a vector.
func (s *Surface) Bounds() geom.Vector {
	return geom.V(s.width, s.height)
}

// Background returns the color used as the empty sentinel.
func (s *Surface) Background() Color {
	return s.background
}

// Normalize wraps a vector into the surface bounds.
func (s *Surface) Normalize(v geom.Vector) geom.Vector {
	return geom.Normalize(v, s.Bounds())
}

// index converts any coordinate to a flat array index after wrapping.
func (s *Surface) index(x, y int) int {
	return geom.Wrap(y, s.height)*s.width + geom.Wrap(x, s.width)
}

// Get returns the color at (x, y).
func (s *Surface) Get(x, y int) Color {
	return s.pixels[s.index(x, y)]
}

// Set paints the cell at (x, y).
func (s *Surface) Set(x, y int, c Color) {
	s.pixels[s.index(x, y)] = c
}

// At returns the color at v.
func (s *Surface) At(v geom.Vector) Color {
	return s.Get(v.X, v.Y)
}

// SetAt paints the cell at v.
func (s *Surface) SetAt(v geom.Vector, c Color) {
	s.Set(v.X, v.Y, c)
}

// Fill paints every cell with c.
func (s *Surface) Fill(c Color) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// Count returns how many cells hold exactly c.
func (s *Surface) Count(c Color) int {
	n := 0
	for _, p := range s.pixels {
		if p == c {
			n++
		}
	}
	return n
}

// Pixels returns a row-major copy of the surface contents.
func (s *Surface) Pixels() []Color {
	out := make([]Color, len(s.pixels))
	copy(out, s.pixels)
	return out
}

// Clone returns a deep copy of the surface.
func (s *Surface) Clone() *Surface {
	return &Surface{
		width:      s.width,
		height:     s.height,
		background: s.background,
		pixels:     s.Pixels(),
	}
}

// Equal returns true if both surfaces have the same size and contents.
func (s *Surface) Equal(other *Surface) bool {
	if s.width != other.width || s.height != other.height {
		return false
	}
	for i, p := range s.pixels {
		if p != other.pixels[i] {
			return false
		}
	}
	return true
}

// Render draws the surface as text, one rune per cell.
func (s *Surface) Render(legend func(Color) rune) string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(legend(s.pixels[y*s.width+x]))
		}
	}
	return sb.String()
}
