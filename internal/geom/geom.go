// Package geom provides the integer coordinate space shared by the raster,
// shape and engine packages. It has no external dependencies so the game
// logic built on top of it stays pure and testable.
package geom

import "fmt"

// Vector is an integer 2D position or offset.
// X increases to the right, Y increases downward (screen coordinates).
type Vector struct {
	X, Y int
}

// V is a convenience constructor for Vector.
func V(x, y int) Vector {
	return Vector{X: x, Y: y}
}

// String returns a string representation of the vector.
func (v Vector) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Add returns the component-wise sum of two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Shift moves the vector one unit in the given direction.
func (v *Vector) Shift(d Direction) {
	*v = v.Shifted(d)
}

// Shifted returns the vector moved one unit in the given direction.
func (v Vector) Shifted(d Direction) Vector {
	return v.Add(d.Delta())
}

// Wrap maps v into [0, bound) using true modulo, so negative inputs wrap
// around to the far edge. bound must be positive.
func Wrap(v, bound int) int {
	return ((v % bound) + bound) % bound
}

// Normalize wraps each axis of v into the rectangle [0, bounds.X) x [0, bounds.Y).
func Normalize(v, bounds Vector) Vector {
	return Vector{X: Wrap(v.X, bounds.X), Y: Wrap(v.Y, bounds.Y)}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
