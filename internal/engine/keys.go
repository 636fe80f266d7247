package engine

import (
	"strings"

	"github.com/vovakirdan/pixsnake/internal/geom"
)

// keyBindings maps key names to directions: arrow keys plus WASD.
var keyBindings = map[string]geom.Direction{
	"left":  geom.Left,
	"a":     geom.Left,
	"right": geom.Right,
	"d":     geom.Right,
	"up":    geom.Up,
	"w":     geom.Up,
	"down":  geom.Down,
	"s":     geom.Down,
}

// DirectionForKey returns the direction bound to a key name.
func DirectionForKey(key string) (geom.Direction, bool) {
	d, ok := keyBindings[strings.ToLower(key)]
	return d, ok
}

// ParseKeys applies a batch of key presses in order. Keys without a binding
// are ignored.
func (s *Snake) ParseKeys(keys []string) {
	dirs := make([]geom.Direction, 0, len(keys))
	for _, k := range keys {
		if d, ok := DirectionForKey(k); ok {
			dirs = append(dirs, d)
		}
	}
	s.Steer(dirs)
}

// Steer applies requested directions in order. A request for the exact
// opposite of the current direction is rejected; the last accepted request
// wins. The head is recolored right away so a turn shows before the next
// tick.
func (s *Snake) Steer(dirs []geom.Direction) {
	if !s.alive {
		return
	}
	for _, d := range dirs {
		if d == s.dir.Opposite() {
			continue
		}
		s.dir = d
	}
	if s.segments.Len() > 0 {
		s.buf.SetAt(s.segments.Front(), s.HeadColor())
	}
}
