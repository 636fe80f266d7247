// Package shape defines the closed set of geometry descriptors that can be
// drawn onto a raster surface. Shapes carry no color or scale: both are
// supplied at draw time, so one shape list can be rendered many times.
package shape

import (
	"fmt"

	"github.com/vovakirdan/pixsnake/internal/geom"
	"github.com/vovakirdan/pixsnake/internal/raster"
)

// Shape is a point, a line or an axis-aligned rectangle.
// The set is closed: only this package can add variants.
type Shape interface {
	// Draw paints the shape onto dst.
	Draw(dst *raster.Surface, c raster.Color, scale int) error

	isShape()
}

// Point is a single cell.
type Point struct {
	P geom.Vector
}

// Line is a segment between two cells, inclusive.
type Line struct {
	From, To geom.Vector
}

// Rect is an axis-aligned rectangle spanned by two corners.
type Rect struct {
	Min, Max geom.Vector
	Filled   bool
}

// NewPoint creates a point shape.
func NewPoint(x, y int) Point {
	return Point{P: geom.V(x, y)}
}

// NewLine creates a line shape.
func NewLine(x0, y0, x1, y1 int) Line {
	return Line{From: geom.V(x0, y0), To: geom.V(x1, y1)}
}

// NewRect creates a rectangle shape.
func NewRect(minX, minY, maxX, maxY int, filled bool) Rect {
	return Rect{Min: geom.V(minX, minY), Max: geom.V(maxX, maxY), Filled: filled}
}

func (Point) isShape() {}
func (Line) isShape()  {}
func (Rect) isShape()  {}

// Draw implements Shape.
func (p Point) Draw(dst *raster.Surface, c raster.Color, scale int) error {
	dst.DrawPoint(p.P, scale, c)
	return nil
}

// Draw implements Shape.
func (l Line) Draw(dst *raster.Surface, c raster.Color, scale int) error {
	dst.DrawLine(l.From, l.To, scale, c)
	return nil
}

// Draw implements Shape.
func (r Rect) Draw(dst *raster.Surface, c raster.Color, scale int) error {
	return dst.DrawRect(r.Min, r.Max, r.Filled, scale, c)
}

func (p Point) String() string { return fmt.Sprintf("point%v", p.P) }
func (l Line) String() string  { return fmt.Sprintf("line%v-%v", l.From, l.To) }
func (r Rect) String() string {
	if r.Filled {
		return fmt.Sprintf("rect%v-%v filled", r.Min, r.Max)
	}
	return fmt.Sprintf("rect%v-%v", r.Min, r.Max)
}

// Draw paints s onto dst with the given color and scale.
func Draw(s Shape, dst *raster.Surface, c raster.Color, scale int) error {
	if err := s.Draw(dst, c, scale); err != nil {
		return fmt.Errorf("shape: draw %v: %w", s, err)
	}
	return nil
}

// DrawAll paints every shape in order and stops at the first failure.
func DrawAll(shapes []Shape, dst *raster.Surface, c raster.Color, scale int) error {
	for _, s := range shapes {
		if err := Draw(s, dst, c, scale); err != nil {
			return err
		}
	}
	return nil
}

// Translate returns s moved by offset.
func Translate(s Shape, offset geom.Vector) Shape {
	switch v := s.(type) {
	case Point:
		return Point{P: v.P.Add(offset)}
	case Line:
		return Line{From: v.From.Add(offset), To: v.To.Add(offset)}
	case Rect:
		return Rect{Min: v.Min.Add(offset), Max: v.Max.Add(offset), Filled: v.Filled}
	default:
		return s
	}
}

// Magnify multiplies every coordinate of s by factor.
func Magnify(s Shape, factor int) Shape {
	mul := func(p geom.Vector) geom.Vector { return geom.V(p.X*factor, p.Y*factor) }
	switch v := s.(type) {
	case Point:
		return Point{P: mul(v.P)}
	case Line:
		return Line{From: mul(v.From), To: mul(v.To)}
	case Rect:
		return Rect{Min: mul(v.Min), Max: mul(v.Max), Filled: v.Filled}
	default:
		return s
	}
}

// Extent returns the largest X coordinate the shape reaches.
func Extent(s Shape) int {
	switch v := s.(type) {
	case Point:
		return v.P.X
	case Line:
		return max(v.From.X, v.To.X)
	case Rect:
		return max(v.Min.X, v.Max.X)
	default:
		return 0
	}
}
