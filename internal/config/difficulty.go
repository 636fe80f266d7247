package config

import "math"

// progress returns how far along the progression a game is, from 0 to 1.
func (c DifficultyConfig) progress(score, ticks int) float64 {
	maxAt := float64(max(c.Progression.MaxAt, 1))

	var p float64
	switch c.Progression.Type {
	case "score":
		p = float64(score) / maxAt
	case "time":
		p = float64(ticks) / maxAt
	default:
		return 0
	}
	return math.Min(p, 1)
}

// Active reports whether the speed changes during a game.
func (c DifficultyConfig) Active() bool {
	switch c.Progression.Type {
	case "score", "time":
		return c.Enabled
	default:
		return false
	}
}

// Level returns the difficulty from 0 (easy) to 1 (hard) after score
// pickups and ticks engine steps. It moves from the initial level towards
// 1 as the game progresses.
func (c DifficultyConfig) Level(score, ticks int) float64 {
	initial := math.Max(0, math.Min(1, c.InitialLevel))
	if !c.Active() {
		return initial
	}
	return initial + c.progress(score, ticks)*(1-initial)
}

// Speed returns the engine ticks per second for the current difficulty,
// from base at level 0 up to base*(1+SpeedMultiplier) at level 1. An
// inactive progression keeps base.
func (c DifficultyConfig) Speed(base, score, ticks int) int {
	if !c.Active() {
		return base
	}
	speed := float64(base) * (1 + c.Level(score, ticks)*c.Scaling.SpeedMultiplier)
	return max(int(math.Round(speed)), 1)
}
