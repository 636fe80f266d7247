package raster

import "github.com/vovakirdan/pixsnake/internal/geom"

// DrawPoint paints a scale x scale block whose top-left cell is p.
// Scales below 1 draw a single cell.
func (s *Surface) DrawPoint(p geom.Vector, scale int, c Color) {
	scale = max(scale, 1)
	for dy := range scale {
		for dx := range scale {
			s.Set(p.X+dx, p.Y+dy, c)
		}
	}
}

// DrawLine paints every cell between a and b inclusive. The lit cells do not
// depend on endpoint order. Endpoints are not wrapped before the run is
// chosen: a line from x=20 to x=3 lights 3..20, not 20..W-1 and 0..3. Each
// plotted cell is wrapped, so a line with out-of-range endpoints, such as
// x=-2 to x=2, crosses the edge and continues on the opposite side.
func (s *Surface) DrawLine(a, b geom.Vector, scale int, c Color) {
	switch {
	case a.Y == b.Y:
		for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
			s.DrawPoint(geom.V(x, a.Y), scale, c)
		}
	case a.X == b.X:
		for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
			s.DrawPoint(geom.V(a.X, y), scale, c)
		}
	case geom.Abs(b.Y-a.Y) < geom.Abs(b.X-a.X):
		if a.X > b.X {
			a, b = b, a
		}
		s.lineShallow(a, b, scale, c)
	default:
		if a.Y > b.Y {
			a, b = b, a
		}
		s.lineSteep(a, b, scale, c)
	}
}

// lineShallow walks x from a to b (a.X < b.X), stepping y when the error
// term crosses zero.
func (s *Surface) lineShallow(a, b geom.Vector, scale int, c Color) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}
	d := 2*dy - dx
	y := a.Y
	for x := a.X; x <= b.X; x++ {
		s.DrawPoint(geom.V(x, y), scale, c)
		if d > 0 {
			y += yi
			d += 2 * (dy - dx)
		} else {
			d += 2 * dy
		}
	}
}

// lineSteep walks y from a to b (a.Y < b.Y), stepping x when the error
// term crosses zero.
func (s *Surface) lineSteep(a, b geom.Vector, scale int, c Color) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}
	d := 2*dx - dy
	x := a.X
	for y := a.Y; y <= b.Y; y++ {
		s.DrawPoint(geom.V(x, y), scale, c)
		if d > 0 {
			x += xi
			d += 2 * (dx - dy)
		} else {
			d += 2 * dx
		}
	}
}

// DrawRect paints the outline of the axis-aligned rectangle spanned by min
// and max as four lines. Filled rectangles are not implemented; asking for
// one returns ErrUnsupportedFill and paints nothing.
func (s *Surface) DrawRect(minV, maxV geom.Vector, filled bool, scale int, c Color) error {
	if filled {
		return ErrUnsupportedFill
	}
	topRight := geom.V(maxV.X, minV.Y)
	bottomLeft := geom.V(minV.X, maxV.Y)

	s.DrawLine(minV, topRight, scale, c)
	s.DrawLine(topRight, maxV, scale, c)
	s.DrawLine(maxV, bottomLeft, scale, c)
	s.DrawLine(bottomLeft, minV, scale, c)
	return nil
}
