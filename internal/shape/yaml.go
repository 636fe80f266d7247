package shape

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pixsnake/internal/geom"
)

// ErrBadSpec reports a YAML shape entry that does not describe exactly one shape.
var ErrBadSpec = errors.New("shape: spec must set exactly one of point, line, rect")

// Coord is an [x, y] pair as written in YAML.
type Coord [2]int

// Vector converts c to a geom.Vector.
func (c Coord) Vector() geom.Vector {
	return geom.V(c[0], c[1])
}

// LineSpec is the YAML form of a Line.
type LineSpec struct {
	From Coord `yaml:"from"`
	To   Coord `yaml:"to"`
}

// RectSpec is the YAML form of a Rect.
type RectSpec struct {
	Min    Coord `yaml:"min"`
	Max    Coord `yaml:"max"`
	Filled bool  `yaml:"filled,omitempty"`
}

// Spec is one YAML shape entry, e.g. {line: {from: [0, 0], to: [4, 0]}}.
type Spec struct {
	Point *Coord    `yaml:"point,omitempty"`
	Line  *LineSpec `yaml:"line,omitempty"`
	Rect  *RectSpec `yaml:"rect,omitempty"`
}

// Shape converts the entry into a Shape.
func (s Spec) Shape() (Shape, error) {
	set := 0
	for _, ok := range []bool{s.Point != nil, s.Line != nil, s.Rect != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrBadSpec, set)
	}

	switch {
	case s.Point != nil:
		return Point{P: s.Point.Vector()}, nil
	case s.Line != nil:
		return Line{From: s.Line.From.Vector(), To: s.Line.To.Vector()}, nil
	default:
		return Rect{Min: s.Rect.Min.Vector(), Max: s.Rect.Max.Vector(), Filled: s.Rect.Filled}, nil
	}
}

// SpecOf returns the YAML form of s.
func SpecOf(s Shape) Spec {
	c := func(v geom.Vector) Coord { return Coord{v.X, v.Y} }
	switch v := s.(type) {
	case Point:
		p := c(v.P)
		return Spec{Point: &p}
	case Line:
		return Spec{Line: &LineSpec{From: c(v.From), To: c(v.To)}}
	case Rect:
		return Spec{Rect: &RectSpec{Min: c(v.Min), Max: c(v.Max), Filled: v.Filled}}
	default:
		return Spec{}
	}
}

// FromSpecs converts a list of YAML entries, failing on the first bad one.
func FromSpecs(specs []Spec) ([]Shape, error) {
	out := make([]Shape, 0, len(specs))
	for i, sp := range specs {
		s, err := sp.Shape()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}
