package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixsnake/internal/core"
	"github.com/vovakirdan/pixsnake/internal/engine"
	"github.com/vovakirdan/pixsnake/internal/registry"
)

// Chime is played when the snake eats a pickup.
type Chime interface {
	Play()
}

type silent struct{}

func (silent) Play() {}

// Model is the Bubble Tea model for one game session.
type Model struct {
	session *registry.Session
	game    *engine.Snake
	clock   *core.Clock
	speed   int
	chime   Chime
	keys    KeyMap
	help    help.Model
	scores  table.Model
	pending []string // steering keys since the last frame
	result  registry.Result
	best    int

	paused   bool
	showHelp bool
	over     bool
	quitting bool
	err      error
	width    int
	height   int
}

// NewModel starts the first game of the session.
func NewModel(s *registry.Session, chime Chime) (Model, error) {
	if chime == nil {
		chime = silent{}
	}
	m := Model{
		session: s,
		chime:   chime,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	if err := m.newGame(); err != nil {
		return Model{}, err
	}
	if s.Store != nil {
		if best, err := s.Store.HighScore(s.Level.ID); err == nil {
			m.best = best
		}
	}
	return m, nil
}

func (m *Model) newGame() error {
	g, err := m.session.NewGame()
	if err != nil {
		return err
	}
	m.game = g
	m.speed = m.session.Runtime.Speed
	m.clock = core.NewClock(m.session.Runtime.FPS, m.speed)
	m.pending = nil
	m.over = false
	m.paused = false
	return nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.clock.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if !m.over {
			m.finish()
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.Pause):
		if !m.over {
			m.paused = !m.paused
			m.clock.Reset()
		}

	case key.Matches(msg, m.keys.Restart):
		if m.over {
			if err := m.newGame(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}

	case key.Matches(msg, m.keys.Steering()...):
		if !m.over && !m.paused {
			m.pending = append(m.pending, msg.String())
		}
	}

	return m, nil
}

// handleTick runs one frame: pending keys go to the engine every frame,
// the engine steps when the clock fires.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.over {
		return m, tickCmd(m.clock.Interval())
	}

	m.game.ParseKeys(m.pending)
	m.pending = nil

	if m.clock.Frame() {
		switch m.game.Step() {
		case engine.OutcomeAte:
			m.chime.Play()
			m.retime()
		case engine.OutcomeDied:
			m.finish()
		}
	}

	return m, tickCmd(m.clock.Interval())
}

// retime adjusts the engine speed to the difficulty for the current score.
func (m *Model) retime() {
	speed := m.session.Speed(m.game.Score(), m.game.Snapshot().Tick)
	if speed == m.speed {
		return
	}
	m.speed = speed
	m.clock.Retime(speed)
	m.session.Logger.Debug("speed changed", "speed", speed, "frames", m.clock.Threshold())
}

// finish records the game and prepares the game-over screen.
func (m *Model) finish() {
	m.over = true
	res, err := m.session.Record(m.game)
	if err != nil {
		m.session.Logger.Warn("saving score failed", "err", err)
	}
	m.result = res
	m.best = max(m.best, res.Best)
	m.scores = newScoreTable(m.session.Store, m.session.Level.ID)
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	b := m.game.Bounds()
	sections := []string{
		renderHUD(m.session.Level.Name, m.game, m.best),
		RenderBoard(m.game.Pixels(), b.X, b.Y, m.session.Runtime.Scale),
	}

	switch {
	case m.over:
		sections = append(sections, m.gameOverView())
	case m.paused:
		sections = append(sections, alertStyle.Render("PAUSED")+dimStyle.Render("  press p to resume"))
	}

	if m.showHelp {
		sections = append(sections, renderLegend())
	}
	sections = append(sections, dimStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) gameOverView() string {
	var b strings.Builder
	b.WriteString(alertStyle.Render("GAME OVER"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("score %d   length %d   session best %d\n\n",
		m.result.Score, m.result.Length, m.result.Best))
	if len(m.scores.Rows()) > 0 {
		b.WriteString(m.scores.View())
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("r to play again, q to quit"))
	return boxStyle.Render(b.String())
}
