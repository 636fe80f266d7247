// Package engine implements the snake state machine. It owns a raster
// surface and mutates it in place; the sequence of pixel writes is the
// game's only observable output.
package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixsnake/internal/geom"
	"github.com/vovakirdan/pixsnake/internal/raster"
	"github.com/vovakirdan/pixsnake/internal/shape"
)

// ErrInvariant reports an initial configuration that cannot be satisfied.
var ErrInvariant = errors.New("engine: construction invariant violated")

// Outcome describes what a single Step did.
type Outcome int

const (
	OutcomeNone  Outcome = iota // Snake already dead, nothing happened
	OutcomeMoved                // Head advanced, tail followed
	OutcomeAte                  // Head advanced onto a pickup, snake grew
	OutcomeDied                 // Head would hit body or wall, game over
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeDied:
		return "died"
	default:
		return "none"
	}
}

// Config describes a game at construction time.
type Config struct {
	Start     geom.Vector    // Head position
	Length    int            // Initial segment count, head included
	Bounds    geom.Vector    // Board width and height
	Direction geom.Direction // Initial travel direction
	Seed      int64          // Seed for pickup placement
	Obstacles []shape.Shape  // Drawn once in wall color
	Scale     int            // Draw scale for obstacles (0 means 1)
}

// Option customizes a Snake at construction.
type Option func(*Snake)

// WithLogger traces every move at debug level.
func WithLogger(l *log.Logger) Option {
	return func(s *Snake) {
		if l != nil {
			s.logger = l
		}
	}
}

// Snake is the game state: the segment sequence, direction, score and the
// board it draws on. It is not safe for concurrent use.
type Snake struct {
	segments *ring
	dir      geom.Direction
	buf      *raster.Surface
	score    int
	rng      *rand.Rand
	alive    bool
	tick     uint64
	pickup   geom.Vector
	logger   *log.Logger
}

// New builds the board, places the snake and obstacles and spawns the first
// pickup. Configurations that cannot be satisfied return an error wrapping
// ErrInvariant.
func New(cfg Config, opts ...Option) (*Snake, error) {
	buf, err := raster.New(cfg.Bounds.X, cfg.Bounds.Y, BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
	}

	axis := cfg.Bounds.Y
	if cfg.Direction.Horizontal() {
		axis = cfg.Bounds.X
	}
	if cfg.Length < 1 || cfg.Length > axis {
		return nil, fmt.Errorf("%w: length %d does not fit a %d-cell %s run",
			ErrInvariant, cfg.Length, axis, cfg.Direction)
	}

	s := &Snake{
		segments: newRing(cfg.Bounds.X * cfg.Bounds.Y),
		dir:      cfg.Direction,
		buf:      buf,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		alive:    true,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	aux := buf.Normalize(cfg.Start)
	buf.SetAt(aux, s.HeadColor())
	s.segments.PushBack(aux)

	back := cfg.Direction.Opposite()
	for i := 1; i < cfg.Length; i++ {
		aux.Shift(back)
		aux = buf.Normalize(aux)
		buf.SetAt(aux, BodyColor)
		s.segments.PushBack(aux)
	}

	scale := max(cfg.Scale, 1)
	if err := shape.DrawAll(cfg.Obstacles, buf, WallColor, scale); err != nil {
		return nil, fmt.Errorf("engine: drawing obstacles: %w", err)
	}

	if s.segments.Len() != cfg.Length {
		return nil, fmt.Errorf("%w: placed %d segments, expected %d",
			ErrInvariant, s.segments.Len(), cfg.Length)
	}
	if buf.Count(BackgroundColor) == 0 {
		return nil, fmt.Errorf("%w: no free cell left for a pickup", ErrInvariant)
	}

	s.spawnPickup()
	return s, nil
}

// spawnPickup marks a random background cell with the pickup color.
// It samples until it finds one, so it never returns on a board with no
// background cells left.
func (s *Snake) spawnPickup() {
	w, h := s.buf.Width(), s.buf.Height()
	p := s.buf.Normalize(geom.V(s.rng.Intn(w), s.rng.Intn(h)))
	for s.buf.At(p) != BackgroundColor {
		p = s.buf.Normalize(geom.V(s.rng.Intn(w), s.rng.Intn(h)))
	}
	s.buf.SetAt(p, PickupColor)
	s.pickup = p
}

// Step advances the game by one tick.
//
// Moving onto a pickup grows the snake by one and respawns the pickup.
// Moving onto body or wall ends the game and leaves the board untouched.
// Otherwise the tail cell is cleared and the snake keeps its length.
func (s *Snake) Step() Outcome {
	if !s.alive {
		return OutcomeNone
	}

	lastHead := s.segments.Front()
	next := s.buf.Normalize(lastHead.Shifted(s.dir))
	outcome := OutcomeMoved

	switch s.buf.At(next) {
	case PickupColor:
		s.score++
		s.spawnPickup()
		outcome = OutcomeAte
	case BodyColor, WallColor:
		s.alive = false
		s.logger.Debug("collision", "head", lastHead, "next", next, "score", s.score)
		return OutcomeDied
	default:
		tail := s.segments.PopBack()
		s.buf.SetAt(tail, BackgroundColor)
	}

	if s.segments.Len() > 0 {
		s.buf.SetAt(lastHead, BodyColor)
	}
	s.buf.SetAt(next, s.HeadColor())
	s.segments.PushFront(next)
	s.tick++

	s.logger.Debug("tick", "head", next, "dir", s.dir, "outcome", outcome)
	return outcome
}

// HeadColor returns the head color for the current direction.
func (s *Snake) HeadColor() raster.Color {
	return HeadColor(s.dir)
}

// Alive reports whether the game is still running.
func (s *Snake) Alive() bool {
	return s.alive
}

// Score returns the number of pickups eaten.
func (s *Snake) Score() int {
	return s.score
}

// Direction returns the current travel direction.
func (s *Snake) Direction() geom.Direction {
	return s.dir
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return s.segments.Len()
}

// Head returns the head position.
func (s *Snake) Head() geom.Vector {
	return s.segments.Front()
}

// Segments returns the segment positions from head to tail.
func (s *Snake) Segments() []geom.Vector {
	return s.segments.Slice()
}

// Pickup returns the position of the current pickup.
func (s *Snake) Pickup() geom.Vector {
	return s.pickup
}

// Bounds returns the board size.
func (s *Snake) Bounds() geom.Vector {
	return s.buf.Bounds()
}

// Pixels returns a row-major copy of the board.
func (s *Snake) Pixels() []raster.Color {
	return s.buf.Pixels()
}

// ColorAt returns the board color at v.
func (s *Snake) ColorAt(v geom.Vector) raster.Color {
	return s.buf.At(v)
}

// Board returns a copy of the board surface.
func (s *Snake) Board() *raster.Surface {
	return s.buf.Clone()
}

// String prints the board as ASCII.
func (s *Snake) String() string {
	return s.buf.Render(Glyph)
}
