package engine

import "github.com/vovakirdan/pixsnake/internal/geom"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	Length    int
	Head      geom.Vector
	Direction geom.Direction
	Pickup    geom.Vector
	Alive     bool
}

// Snapshot returns the current game snapshot.
func (s *Snake) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		Score:     s.score,
		Length:    s.segments.Len(),
		Head:      s.segments.Front(),
		Direction: s.dir,
		Pickup:    s.pickup,
		Alive:     s.alive,
	}
}
