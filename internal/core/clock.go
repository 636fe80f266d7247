package core

import "time"

// Clock converts a fixed frame rate into engine ticks. Input is polled every
// frame while the engine only steps every fps/speed frames, so turns land
// between ticks without waiting for the next one.
type Clock struct {
	fps       int
	threshold int
	frame     int
}

// NewClock creates a clock that fires speed times per fps frames.
// Non-positive values are treated as 1.
func NewClock(fps, speed int) *Clock {
	fps = max(fps, 1)
	speed = max(speed, 1)
	return &Clock{
		fps:       fps,
		threshold: max(fps/speed, 1),
	}
}

// Frame counts one frame and reports whether the engine should step.
func (c *Clock) Frame() bool {
	c.frame++
	if c.frame >= c.threshold {
		c.frame = 0
		return true
	}
	return false
}

// Reset restarts the frame count, e.g. after a restart or unpause.
func (c *Clock) Reset() {
	c.frame = 0
}

// Retime changes the engine speed, keeping the frame rate. The frame count
// restarts so the next tick lands a full period later.
func (c *Clock) Retime(speed int) {
	c.threshold = max(c.fps/max(speed, 1), 1)
	c.frame = 0
}

// Threshold returns the number of frames per engine tick.
func (c *Clock) Threshold() int {
	return c.threshold
}

// Interval returns the duration of one frame.
func (c *Clock) Interval() time.Duration {
	return time.Second / time.Duration(c.fps)
}
