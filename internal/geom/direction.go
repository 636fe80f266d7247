package geom

import (
	"fmt"
	"strings"
)

// Direction is one of the four axis-aligned travel directions.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in declaration order.
func Directions() []Direction {
	return []Direction{Left, Right, Up, Down}
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

// Delta returns the unit offset for one step in this direction.
// Up decreases Y, Down increases Y.
func (d Direction) Delta() Vector {
	switch d {
	case Left:
		return Vector{X: -1}
	case Right:
		return Vector{X: 1}
	case Up:
		return Vector{Y: -1}
	case Down:
		return Vector{Y: 1}
	default:
		return Vector{}
	}
}

// Horizontal reports whether the direction moves along the X axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// ParseDirection converts a case-insensitive name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	default:
		return Left, fmt.Errorf("geom: unknown direction %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so directions can be
// written by name in level files.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
