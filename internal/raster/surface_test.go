package raster_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/pixsnake/internal/geom"
	"github.com/vovakirdan/pixsnake/internal/raster"
)

func newSurface(t *testing.T, w, h int) *raster.Surface {
	t.Helper()
	s, err := raster.New(w, h, raster.White)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", w, h, err)
	}
	return s
}

// lit returns the set of cells painted with c.
func lit(s *raster.Surface, c raster.Color) map[geom.Vector]bool {
	cells := make(map[geom.Vector]bool)
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) == c {
				cells[geom.V(x, y)] = true
			}
		}
	}
	return cells
}

func sameCells(a, b map[geom.Vector]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for v := range a {
		if !b[v] {
			return false
		}
	}
	return true
}

func TestNewSurface(t *testing.T) {
	s := newSurface(t, 7, 3)

	if s.Width() != 7 || s.Height() != 3 {
		t.Errorf("expected 7x3 surface, got %dx%d", s.Width(), s.Height())
	}
	if s.Count(raster.White) != 21 {
		t.Errorf("expected 21 background cells, got %d", s.Count(raster.White))
	}
	if len(s.Pixels()) != 21 {
		t.Errorf("expected 21 pixels, got %d", len(s.Pixels()))
	}
}

func TestNewSurfaceInvalidSize(t *testing.T) {
	sizes := [][2]int{{0, 5}, {5, 0}, {-1, 3}}
	for _, sz := range sizes {
		if _, err := raster.New(sz[0], sz[1], raster.White); err == nil {
			t.Errorf("New(%d, %d) should fail", sz[0], sz[1])
		}
	}
}

func TestSetGetWraps(t *testing.T) {
	s := newSurface(t, 5, 4)

	s.Set(-1, -1, raster.Red)
	if s.Get(4, 3) != raster.Red {
		t.Error("Set(-1,-1) should paint (4,3)")
	}

	s.Set(12, 9, raster.Blue)
	if s.Get(2, 1) != raster.Blue {
		t.Error("Set(12,9) should paint (2,1)")
	}
	if s.At(geom.V(-3, -7)) != raster.Blue {
		t.Error("At(-3,-7) should read (2,1)")
	}
}

func TestPixelsIsCopy(t *testing.T) {
	s := newSurface(t, 3, 3)
	px := s.Pixels()
	px[0] = raster.Black
	if s.Get(0, 0) != raster.White {
		t.Error("modifying Pixels() result should not change the surface")
	}
}

func TestDrawPointScale(t *testing.T) {
	s := newSurface(t, 6, 6)
	s.DrawPoint(geom.V(5, 5), 2, raster.Red)

	want := map[geom.Vector]bool{
		geom.V(5, 5): true,
		geom.V(0, 5): true,
		geom.V(5, 0): true,
		geom.V(0, 0): true,
	}
	if got := lit(s, raster.Red); !sameCells(got, want) {
		t.Errorf("DrawPoint scale 2 at corner lit %v, expected %v", got, want)
	}

	s2 := newSurface(t, 4, 4)
	s2.DrawPoint(geom.V(1, 1), 0, raster.Red)
	if s2.Count(raster.Red) != 1 {
		t.Errorf("scale 0 should paint one cell, painted %d", s2.Count(raster.Red))
	}
}

func TestDrawLineHorizontalScenario(t *testing.T) {
	s := newSurface(t, 5, 5)
	s.DrawLine(geom.V(0, 0), geom.V(4, 0), 1, raster.Black)

	want := make(map[geom.Vector]bool)
	for x := 0; x <= 4; x++ {
		want[geom.V(x, 0)] = true
	}
	if got := lit(s, raster.Black); !sameCells(got, want) {
		t.Errorf("DrawLine((0,0),(4,0)) lit %v, expected %v", got, want)
	}
}

func TestDrawLineAxisAligned(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Vector
		want []geom.Vector
	}{
		{
			name: "horizontal",
			a:    geom.V(1, 2), b: geom.V(3, 2),
			want: []geom.Vector{geom.V(1, 2), geom.V(2, 2), geom.V(3, 2)},
		},
		{
			name: "vertical",
			a:    geom.V(4, 5), b: geom.V(4, 2),
			want: []geom.Vector{geom.V(4, 2), geom.V(4, 3), geom.V(4, 4), geom.V(4, 5)},
		},
		{
			name: "crosses left edge",
			a:    geom.V(-2, 0), b: geom.V(1, 0),
			want: []geom.Vector{geom.V(6, 0), geom.V(7, 0), geom.V(0, 0), geom.V(1, 0)},
		},
		{
			name: "crosses bottom edge",
			a:    geom.V(3, 6), b: geom.V(3, 9),
			want: []geom.Vector{geom.V(3, 6), geom.V(3, 7), geom.V(3, 0), geom.V(3, 1)},
		},
		{
			name: "in-range endpoints take the direct run",
			a:    geom.V(6, 1), b: geom.V(1, 1),
			want: []geom.Vector{geom.V(1, 1), geom.V(2, 1), geom.V(3, 1), geom.V(4, 1), geom.V(5, 1), geom.V(6, 1)},
		},
		{
			name: "single cell",
			a:    geom.V(2, 2), b: geom.V(2, 2),
			want: []geom.Vector{geom.V(2, 2)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := make(map[geom.Vector]bool)
			for _, v := range tc.want {
				want[v] = true
			}

			s := newSurface(t, 8, 8)
			s.DrawLine(tc.a, tc.b, 1, raster.Black)
			if got := lit(s, raster.Black); !sameCells(got, want) {
				t.Errorf("DrawLine(%v, %v) lit %v, expected %v", tc.a, tc.b, got, want)
			}

			r := newSurface(t, 8, 8)
			r.DrawLine(tc.b, tc.a, 1, raster.Black)
			if got := lit(r, raster.Black); !sameCells(got, want) {
				t.Errorf("DrawLine(%v, %v) lit %v, expected %v", tc.b, tc.a, got, want)
			}
		})
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	s := newSurface(t, 8, 8)
	s.DrawLine(geom.V(0, 0), geom.V(3, 3), 1, raster.Black)

	want := map[geom.Vector]bool{
		geom.V(0, 0): true,
		geom.V(1, 1): true,
		geom.V(2, 2): true,
		geom.V(3, 3): true,
	}
	if got := lit(s, raster.Black); !sameCells(got, want) {
		t.Errorf("diagonal lit %v, expected %v", got, want)
	}
}

func TestDrawLineShallowAndSteepCounts(t *testing.T) {
	shallow := newSurface(t, 16, 16)
	shallow.DrawLine(geom.V(0, 0), geom.V(9, 3), 1, raster.Black)
	if shallow.Count(raster.Black) != 10 {
		t.Errorf("shallow line should light one cell per column (10), lit %d", shallow.Count(raster.Black))
	}

	steep := newSurface(t, 16, 16)
	steep.DrawLine(geom.V(2, 1), geom.V(0, 8), 1, raster.Black)
	if steep.Count(raster.Black) != 8 {
		t.Errorf("steep line should light one cell per row (8), lit %d", steep.Count(raster.Black))
	}
	for v := range lit(steep, raster.Black) {
		if v.X < 0 || v.X > 2 {
			t.Errorf("steep line cell %v outside x range [0,2]", v)
		}
	}
}

func TestDrawLineSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		a := geom.V(rng.Intn(40)-10, rng.Intn(40)-10)
		b := geom.V(rng.Intn(40)-10, rng.Intn(40)-10)

		forward := newSurface(t, 24, 24)
		forward.DrawLine(a, b, 1, raster.Black)
		backward := newSurface(t, 24, 24)
		backward.DrawLine(b, a, 1, raster.Black)

		if !forward.Equal(backward) {
			t.Fatalf("DrawLine(%v, %v) and DrawLine(%v, %v) differ", a, b, b, a)
		}
	}
}

func TestDrawLineScaled(t *testing.T) {
	s := newSurface(t, 10, 10)
	s.DrawLine(geom.V(0, 0), geom.V(2, 0), 2, raster.Black)

	// Three cells widened into 2x2 blocks: x 0..3, y 0..1.
	if s.Count(raster.Black) != 8 {
		t.Errorf("scaled line should light 8 cells, lit %d", s.Count(raster.Black))
	}
	for v := range lit(s, raster.Black) {
		if v.X > 3 || v.Y > 1 {
			t.Errorf("scaled line cell %v out of expected block", v)
		}
	}
}

func TestDrawRectOutline(t *testing.T) {
	s := newSurface(t, 10, 10)
	if err := s.DrawRect(geom.V(1, 1), geom.V(4, 3), false, 1, raster.Black); err != nil {
		t.Fatalf("DrawRect failed: %v", err)
	}

	// 4x3 outline: perimeter cells = 2*4 + 2*(3-2) = 10
	if s.Count(raster.Black) != 10 {
		t.Errorf("expected 10 outline cells, got %d", s.Count(raster.Black))
	}
	for _, inner := range []geom.Vector{geom.V(2, 2), geom.V(3, 2)} {
		if s.At(inner) != raster.White {
			t.Errorf("interior cell %v should stay background", inner)
		}
	}
	for _, corner := range []geom.Vector{geom.V(1, 1), geom.V(4, 1), geom.V(1, 3), geom.V(4, 3)} {
		if s.At(corner) != raster.Black {
			t.Errorf("corner %v should be painted", corner)
		}
	}
}

func TestDrawRectFilledUnsupported(t *testing.T) {
	s := newSurface(t, 10, 10)
	err := s.DrawRect(geom.V(1, 1), geom.V(4, 3), true, 1, raster.Black)
	if !errors.Is(err, raster.ErrUnsupportedFill) {
		t.Fatalf("expected ErrUnsupportedFill, got %v", err)
	}
	if s.Count(raster.Black) != 0 {
		t.Error("filled request must not paint anything")
	}
}

func TestCloneEqual(t *testing.T) {
	s := newSurface(t, 4, 4)
	s.Set(1, 2, raster.Red)

	c := s.Clone()
	if !s.Equal(c) {
		t.Error("clone should equal original")
	}
	c.Set(0, 0, raster.Blue)
	if s.Equal(c) {
		t.Error("modified clone should differ")
	}
	if s.Get(0, 0) != raster.White {
		t.Error("modifying clone should not affect original")
	}
}

func TestRender(t *testing.T) {
	s := newSurface(t, 3, 2)
	s.Set(1, 0, raster.Black)
	s.Set(2, 1, raster.Red)

	out := s.Render(func(c raster.Color) rune {
		switch c {
		case raster.Black:
			return '#'
		case raster.Red:
			return '*'
		default:
			return '.'
		}
	})

	expected := strings.Join([]string{".#.", "..*"}, "\n")
	if out != expected {
		t.Errorf("Render() = %q, expected %q", out, expected)
	}
}

func TestColorString(t *testing.T) {
	if raster.Red.String() != "red" {
		t.Errorf("Red.String() = %q", raster.Red.String())
	}
	if raster.Color(0x123456).String() != "#123456" {
		t.Errorf("unnamed color String() = %q", raster.Color(0x123456).String())
	}
	r, g, b := raster.Orange.RGB()
	if r != 0xFF || g != 0xA5 || b != 0x00 {
		t.Errorf("Orange.RGB() = %x %x %x", r, g, b)
	}
}
