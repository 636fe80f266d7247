// Package level loads board descriptors: board size, snake placement and
// wall shapes. Levels come from YAML files or from the built-in set compiled
// into the binary.
package level

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pixsnake/internal/engine"
	"github.com/vovakirdan/pixsnake/internal/geom"
	"github.com/vovakirdan/pixsnake/internal/shape"
)

var (
	// ErrInvalid reports a descriptor that cannot produce a game.
	ErrInvalid = errors.New("level: invalid descriptor")
	// ErrNotFound reports an unknown level ID.
	ErrNotFound = errors.New("level: not found")
)

// Snake is the initial snake placement.
type Snake struct {
	Length    int
	Start     geom.Vector
	Direction geom.Direction
}

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Snake    Snake
	Scale    int // Draw scale for walls
	Walls    []shape.Shape
	FilePath string // Empty for built-in levels
}

// Bounds returns the board size.
func (l *Level) Bounds() geom.Vector {
	return geom.V(l.Width, l.Height)
}

// Builtin reports whether the level is compiled into the binary.
func (l *Level) Builtin() bool {
	return l.FilePath == ""
}

// Validate checks what the engine would reject, with level-specific messages.
func (l *Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalid)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: %s: size %dx%d must be positive", ErrInvalid, l.ID, l.Width, l.Height)
	}
	if l.Snake.Length < 1 {
		return fmt.Errorf("%w: %s: snake length %d must be at least 1", ErrInvalid, l.ID, l.Snake.Length)
	}
	axis := l.Height
	if l.Snake.Direction.Horizontal() {
		axis = l.Width
	}
	if l.Snake.Length > axis {
		return fmt.Errorf("%w: %s: snake length %d exceeds %d cells", ErrInvalid, l.ID, l.Snake.Length, axis)
	}
	if l.Scale < 1 {
		return fmt.Errorf("%w: %s: scale %d must be at least 1", ErrInvalid, l.ID, l.Scale)
	}
	return nil
}

// EngineConfig builds the engine configuration for a new game.
func (l *Level) EngineConfig(seed int64) engine.Config {
	return engine.Config{
		Start:     l.Snake.Start,
		Length:    l.Snake.Length,
		Bounds:    l.Bounds(),
		Direction: l.Snake.Direction,
		Seed:      seed,
		Obstacles: l.Walls,
		Scale:     l.Scale,
	}
}

// NewGame builds a fresh engine for this level.
func (l *Level) NewGame(seed int64, opts ...engine.Option) (*engine.Snake, error) {
	s, err := engine.New(l.EngineConfig(seed), opts...)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return s, nil
}
