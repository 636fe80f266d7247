// Package core holds the frame loop shared by every frontend: the runtime
// settings, the tick clock and the presenter contract. It has no terminal
// dependencies so the loop can be tested headless.
package core

// RuntimeConfig contains the settings a frontend runs a game with.
type RuntimeConfig struct {
	FPS   int   // Frames per second (input polling and redraw rate)
	Speed int   // Engine ticks per second
	Seed  int64 // RNG seed for pickup placement (0 means time-based)
	Scale int   // Terminal cells per pixel edge
	Sound bool  // Chime on pickup
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FPS:   60,
		Speed: 2,
		Seed:  0,
		Scale: 1,
		Sound: false,
	}
}

// Normalized returns a copy with out-of-range values replaced by defaults.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	def := DefaultConfig()
	if c.FPS <= 0 {
		c.FPS = def.FPS
	}
	if c.Speed <= 0 {
		c.Speed = def.Speed
	}
	if c.Scale <= 0 {
		c.Scale = def.Scale
	}
	return c
}

// Clock returns a frame clock for this configuration.
func (c RuntimeConfig) Clock() *Clock {
	n := c.Normalized()
	return NewClock(n.FPS, n.Speed)
}
