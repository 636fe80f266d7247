package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pixsnake/internal/core"
	"github.com/vovakirdan/pixsnake/internal/engine"
	"github.com/vovakirdan/pixsnake/internal/geom"
	"github.com/vovakirdan/pixsnake/internal/level"
	"github.com/vovakirdan/pixsnake/internal/raster"
	"github.com/vovakirdan/pixsnake/internal/registry"
	"github.com/vovakirdan/pixsnake/internal/shape"
)

func newTestPresenter(t *testing.T, scale int) (*Presenter, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	screen.SetSize(80, 24)
	p := NewPresenter(screen, scale)
	t.Cleanup(p.Close)
	return p, screen
}

// eventually polls cond until it holds or the deadline passes.
func eventually(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func rowText(s tcell.Screen, y, n int) string {
	out := make([]rune, n)
	for x := range n {
		r, _, _, _ := s.GetContent(x, y)
		out[x] = r
	}
	return string(out)
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want string
	}{
		{tcell.KeyUp, 0, "up"},
		{tcell.KeyDown, 0, "down"},
		{tcell.KeyLeft, 0, "left"},
		{tcell.KeyRight, 0, "right"},
		{tcell.KeyEscape, 0, "esc"},
		{tcell.KeyCtrlC, 0, "ctrl+c"},
		{tcell.KeyRune, 'w', "w"},
		{tcell.KeyRune, 'W', "w"},
		{tcell.KeyRune, '?', "?"},
		{tcell.KeyF1, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
			if got := keyName(ev); got != tt.want {
				t.Errorf("keyName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPresenterKeys(t *testing.T) {
	p, screen := newTestPresenter(t, 1)

	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)

	var got []string
	eventually(t, "two steering keys", func() bool {
		got = append(got, p.Keys()...)
		return len(got) >= 2
	})
	if got[0] != "up" || got[1] != "a" {
		t.Errorf("Keys() = %v, want [up a]", got)
	}
}

func TestPresenterControls(t *testing.T) {
	p, screen := newTestPresenter(t, 1)

	screen.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	eventually(t, "pause", func() bool {
		p.Keys()
		return p.Paused()
	})

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	eventually(t, "resume", func() bool {
		if keys := p.Keys(); len(keys) > 0 {
			t.Errorf("steering leaked while paused: %v", keys)
		}
		return !p.Paused()
	})

	if p.StopRequested() {
		t.Fatal("stop requested before quit")
	}
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	eventually(t, "stop", func() bool {
		p.Keys()
		return p.StopRequested()
	})
}

func TestPresenterRender(t *testing.T) {
	p, screen := newTestPresenter(t, 2)
	p.SetStatus("hello")

	pixels := []raster.Color{engine.WallColor, engine.PickupColor}
	p.Render(pixels, 2, 1)

	if got := rowText(screen, 0, 5); got != "hello" {
		t.Errorf("status row = %q, want hello", got)
	}

	tests := []struct {
		x, y int
		want raster.Color
	}{
		{0, 1, engine.WallColor},
		{3, 2, engine.WallColor},
		{4, 1, engine.PickupColor},
		{7, 2, engine.PickupColor},
	}
	for _, tt := range tests {
		_, _, style, _ := screen.GetContent(tt.x, tt.y)
		_, bg, _ := style.Decompose()
		_, want, _ := cellStyle(tt.want).Decompose()
		if bg != want {
			t.Errorf("cell (%d,%d) background = %v, want %s", tt.x, tt.y, bg, tt.want)
		}
	}
}

func TestPlayGameOverThenQuit(t *testing.T) {
	p, screen := newTestPresenter(t, 1)

	lvl := level.Level{
		ID:     "wall",
		Name:   "Wall",
		Width:  6,
		Height: 4,
		Scale:  1,
		Snake:  level.Snake{Length: 2, Start: geom.V(2, 1), Direction: geom.Right},
		Walls:  []shape.Shape{shape.NewPoint(3, 1)},
	}
	s := registry.NewSession(lvl, core.RuntimeConfig{FPS: 50, Speed: 50, Seed: 3, Scale: 1})

	done := make(chan error, 1)
	go func() { done <- Play(context.Background(), s, p, nil) }()

	gameOverRow := 2 + lvl.Height
	eventually(t, "game over screen", func() bool {
		return rowText(screen, gameOverRow, 9) == "GAME OVER"
	})

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Play() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Play did not return after quit")
	}

	res, ok := s.Last()
	if !ok {
		t.Fatal("game was not recorded")
	}
	if res.Score != 0 || res.Length != 2 {
		t.Errorf("result = %+v, want score 0 length 2", res)
	}
	if s.Rounds() != 1 {
		t.Errorf("Rounds() = %d, want 1", s.Rounds())
	}
}

func TestPlayContextCancel(t *testing.T) {
	p, _ := newTestPresenter(t, 1)
	lvl, err := level.Lookup("open")
	if err != nil {
		t.Fatalf("Lookup(open) error = %v", err)
	}
	s := registry.NewSession(lvl, core.RuntimeConfig{FPS: 50, Speed: 1, Seed: 3})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := Play(ctx, s, p, nil); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Play() error = %v, want deadline exceeded", err)
	}
}
