package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pixsnake/internal/core"
	"github.com/vovakirdan/pixsnake/internal/engine"
	"github.com/vovakirdan/pixsnake/internal/platform/audio"
	"github.com/vovakirdan/pixsnake/internal/registry"
)

func init() {
	registry.Register(func() registry.Frontend { return frontend{} })
}

type frontend struct{}

func (frontend) ID() string    { return "tcell" }
func (frontend) Title() string { return "tcell full-screen terminal" }

// Run opens a full-screen tcell display and plays rounds until the user
// quits.
func (frontend) Run(ctx context.Context, s *registry.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: %w", err)
	}

	p := NewPresenter(screen, s.Runtime.Scale)
	defer p.Close()

	chime := audio.NewChime(s.Runtime.Sound, s.Logger)
	defer chime.Close()

	s.Logger.Info("frontend started", "frontend", "tcell", "level", s.Level.ID)
	return Play(ctx, s, p, chime)
}

// Chime is played when the snake eats a pickup.
type Chime interface {
	Play()
}

// Play runs rounds on an open presenter: each round is driven by core.Drive
// and recorded when it ends.
func Play(ctx context.Context, s *registry.Session, p *Presenter, chime Chime) error {
	for {
		snake, err := s.NewGame()
		if err != nil {
			return err
		}

		clock := core.NewClock(s.Runtime.FPS, s.Runtime.Speed)
		g := &game{
			Snake:   snake,
			session: s,
			p:       p,
			clock:   clock,
			chime:   chime,
			speed:   s.Runtime.Speed,
		}
		g.updateStatus()

		if err := core.Drive(ctx, g, p, clock); err != nil {
			return err
		}

		res, err := s.Record(snake)
		if err != nil {
			s.Logger.Warn("saving score failed", "err", err)
		}
		if snake.Alive() {
			return nil
		}

		p.ShowGameOver(snake.Bounds().Y,
			fmt.Sprintf("score %d   length %d   session best %d", res.Score, res.Length, res.Best))
		if !p.WaitRestart(ctx) {
			return ctx.Err()
		}
	}
}

// game adds pause, chime and difficulty retiming to the engine.
type game struct {
	*engine.Snake
	session *registry.Session
	p       *Presenter
	clock   *core.Clock
	chime   Chime
	speed   int
}

func (g *game) Step() engine.Outcome {
	if g.p.Paused() {
		return engine.OutcomeNone
	}

	out := g.Snake.Step()
	if out == engine.OutcomeAte {
		if g.chime != nil {
			g.chime.Play()
		}
		speed := g.session.Speed(g.Score(), g.Snapshot().Tick)
		if speed != g.speed {
			g.speed = speed
			g.clock.Retime(speed)
			g.session.Logger.Debug("speed changed", "speed", speed, "frames", g.clock.Threshold())
		}
	}
	g.updateStatus()
	return out
}

func (g *game) updateStatus() {
	g.p.SetStatus(fmt.Sprintf("%s   score %d   length %d   speed %d",
		g.session.Level.Name, g.Score(), g.Len(), g.speed))
}
