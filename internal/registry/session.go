package registry

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixsnake/internal/config"
	"github.com/vovakirdan/pixsnake/internal/core"
	"github.com/vovakirdan/pixsnake/internal/engine"
	"github.com/vovakirdan/pixsnake/internal/level"
	"github.com/vovakirdan/pixsnake/internal/storage"
)

// Session bundles what a frontend needs to run games on one level:
// the level, runtime settings, the scoreboard and a logger. Restarts
// build fresh engines through NewGame.
type Session struct {
	Level      level.Level
	Runtime    core.RuntimeConfig
	Difficulty config.DifficultyConfig
	Store      *storage.Store // may be nil
	Logger     *log.Logger

	round int
	last  *Result
}

// Result is the outcome of one finished game.
type Result struct {
	LevelID string
	Score   int
	Length  int
	Best    int // Session best after this game
}

// NewSession creates a session with a discarding logger.
func NewSession(lvl level.Level, rt core.RuntimeConfig) *Session {
	return &Session{
		Level:   lvl,
		Runtime: rt.Normalized(),
		Logger:  log.New(io.Discard),
	}
}

// Seed returns the engine seed for the current round. A zero runtime seed
// is replaced by the wall clock once, so restarts stay reproducible from
// the first seed.
func (s *Session) Seed() int64 {
	if s.Runtime.Seed == 0 {
		s.Runtime.Seed = time.Now().UnixNano()
	}
	return s.Runtime.Seed + int64(s.round)
}

// NewGame builds the engine for the next round.
func (s *Session) NewGame() (*engine.Snake, error) {
	seed := s.Seed()
	s.round++

	g, err := s.Level.NewGame(seed, engine.WithLogger(s.logger()))
	if err != nil {
		return nil, err
	}
	s.logger().Info("game started", "level", s.Level.ID, "round", s.round, "seed", seed)
	return g, nil
}

// Speed returns the engine ticks per second for the current score.
func (s *Session) Speed(score int, ticks uint64) int {
	return s.Difficulty.Speed(s.Runtime.Speed, score, int(ticks))
}

// Record saves a finished game to the scoreboard and returns the result.
// Without a store the session best is the game's own score.
func (s *Session) Record(g *engine.Snake) (Result, error) {
	res := Result{
		LevelID: s.Level.ID,
		Score:   g.Score(),
		Length:  g.Len(),
		Best:    g.Score(),
	}
	s.logger().Info("game over", "level", res.LevelID, "score", res.Score, "length", res.Length)

	if s.Store != nil {
		if _, err := s.Store.SaveScore(res.LevelID, res.Score, res.Length); err != nil {
			return res, fmt.Errorf("registry: recording score: %w", err)
		}
		best, err := s.Store.HighScore(res.LevelID)
		if err != nil {
			return res, fmt.Errorf("registry: reading best score: %w", err)
		}
		res.Best = best
	}

	s.last = &res
	return res, nil
}

// Last returns the most recently recorded result, if any.
func (s *Session) Last() (Result, bool) {
	if s.last == nil {
		return Result{}, false
	}
	return *s.last, true
}

// Rounds returns how many games the session has started.
func (s *Session) Rounds() int {
	return s.round
}

func (s *Session) logger() *log.Logger {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	return s.Logger
}
