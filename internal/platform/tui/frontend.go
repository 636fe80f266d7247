package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixsnake/internal/platform/audio"
	"github.com/vovakirdan/pixsnake/internal/registry"
)

func init() {
	registry.Register(func() registry.Frontend { return frontend{} })
}

type frontend struct{}

func (frontend) ID() string    { return "tui" }
func (frontend) Title() string { return "Bubble Tea terminal UI" }

// Run plays the session in the alternate screen until the user quits.
func (frontend) Run(ctx context.Context, s *registry.Session) error {
	chime := audio.NewChime(s.Runtime.Sound, s.Logger)
	defer chime.Close()

	model, err := NewModel(s, chime)
	if err != nil {
		return err
	}

	s.Logger.Info("frontend started", "frontend", "tui", "level", s.Level.ID)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return ctx.Err()
		}
		return fmt.Errorf("tui: %w", err)
	}
	s.Logger.Info("frontend stopped", "frontend", "tui")

	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
