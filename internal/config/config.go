// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pixsnake/internal/core"
)

// Config contains everything the CLI reads from a settings file.
type Config struct {
	Game       GameConfig       `yaml:"game"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GameConfig defines the runtime and session defaults.
type GameConfig struct {
	FPS      int    `yaml:"fps"`
	Speed    int    `yaml:"speed"` // Engine ticks per second
	Scale    int    `yaml:"scale"` // 0 picks a scale that fits the terminal
	Seed     int64  `yaml:"seed"`  // 0 means time-based
	Sound    bool   `yaml:"sound"`
	Frontend string `yaml:"frontend"`
	Level    string `yaml:"level"`
	LevelDir string `yaml:"level_dir"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// Runtime converts the game section into the frontend runtime settings.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		FPS:   c.Game.FPS,
		Speed: c.Game.Speed,
		Seed:  c.Game.Seed,
		Scale: c.Game.Scale,
		Sound: c.Game.Sound,
	}.Normalized()
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyInsane DifficultyPreset = "insane"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in increasing order of difficulty.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyInsane, DifficultyFixed}
}

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

// SpeedForPreset returns the base ticks per second for a preset.
// The fixed preset keeps the configured speed and returns 0.
func SpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 4
	case DifficultyInsane:
		return 8
	default:
		return 0
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	case DifficultyInsane:
		return 1.0
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
