// Package term provides the tcell frontend. A Presenter owns the screen
// and turns terminal events into key names; core.Drive runs the frame
// loop against it.
package term

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pixsnake/internal/core"
	"github.com/vovakirdan/pixsnake/internal/engine"
	"github.com/vovakirdan/pixsnake/internal/geom"
	"github.com/vovakirdan/pixsnake/internal/raster"
)

// keyBuffer is how many key presses are held between frames. Further
// presses are dropped.
const keyBuffer = 128

var (
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	titleStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Presenter draws the board with tcell and collects key presses.
type Presenter struct {
	screen tcell.Screen
	scale  int

	events  chan tcell.Event
	quit    chan struct{}
	keys    chan string
	done    chan struct{}
	resized atomic.Bool

	mu      sync.Mutex
	status  string
	stop    bool
	paused  bool
	legend  bool
	running bool
}

// NewPresenter wraps an initialised screen and starts reading its events.
// Each pixel is drawn scale rows high and 2*scale columns wide.
func NewPresenter(screen tcell.Screen, scale int) *Presenter {
	p := &Presenter{
		screen:  screen,
		scale:   max(scale, 1),
		events:  make(chan tcell.Event, keyBuffer),
		quit:    make(chan struct{}),
		keys:    make(chan string, keyBuffer),
		done:    make(chan struct{}),
		running: true,
	}
	screen.HideCursor()
	go screen.ChannelEvents(p.events, p.quit)
	go p.pump()
	return p
}

// pump translates screen events until the event channel closes.
func (p *Presenter) pump() {
	defer close(p.done)
	for ev := range p.events {
		switch ev := ev.(type) {
		case *tcell.EventResize:
			p.resized.Store(true)
		case *tcell.EventKey:
			name := keyName(ev)
			if name == "" {
				continue
			}
			select {
			case p.keys <- name:
			default:
			}
		}
	}
}

// keyName maps a tcell key event to the key names used by the engine and
// core.ActionForKey.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return strings.ToLower(string(ev.Rune()))
	}
	return ""
}

// Keys drains pending presses in order. Control keys are applied to the
// presenter and the steering keys are returned. Steering pressed while
// paused is dropped.
func (p *Presenter) Keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var steer []string
	for {
		select {
		case k := <-p.keys:
			switch core.ActionForKey(k) {
			case core.ActionQuit:
				p.stop = true
			case core.ActionPause:
				p.paused = !p.paused
			case core.ActionHelp:
				p.legend = !p.legend
			case core.ActionNone:
				if !p.paused {
					steer = append(steer, k)
				}
			}
		default:
			return steer
		}
	}
}

// Running reports whether the screen is still open.
func (p *Presenter) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// StopRequested reports whether a quit key was pressed.
func (p *Presenter) StopRequested() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop
}

// Paused reports whether the game is paused.
func (p *Presenter) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// SetStatus sets the line shown above the board.
func (p *Presenter) SetStatus(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = s
}

// Render draws the board below the status line and shows the frame.
func (p *Presenter) Render(pixels []raster.Color, width, height int) {
	if p.resized.Swap(false) {
		p.screen.Sync()
	}

	p.mu.Lock()
	status, paused, legend := p.status, p.paused, p.legend
	p.mu.Unlock()

	p.screen.Clear()
	drawText(p.screen, 0, 0, titleStyle, status)

	cw, ch := 2*p.scale, p.scale
	for y := range height {
		for x := range width {
			style := cellStyle(pixels[y*width+x])
			for dy := range ch {
				for dx := range cw {
					p.screen.SetContent(x*cw+dx, 1+y*ch+dy, ' ', nil, style)
				}
			}
		}
	}

	below := 2 + height*ch
	if paused {
		drawText(p.screen, 0, below, alertStyle, "PAUSED  p to resume")
		below++
	}
	if legend {
		drawLegend(p.screen, 0, below)
	}
	p.screen.Show()
}

// ShowGameOver draws the result under the last frame.
func (p *Presenter) ShowGameOver(height int, lines ...string) {
	y := 2 + height*p.scale
	drawText(p.screen, 0, y, alertStyle, "GAME OVER")
	for i, l := range lines {
		drawText(p.screen, 0, y+1+i, textStyle, l)
	}
	drawText(p.screen, 0, y+1+len(lines), textStyle, "r to play again, q to quit")
	p.screen.Show()
}

// WaitRestart blocks until the user chooses to play again (true) or to
// leave (false).
func (p *Presenter) WaitRestart(ctx context.Context) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case <-p.done:
			return false
		case k := <-p.keys:
			switch core.ActionForKey(k) {
			case core.ActionRestart:
				p.mu.Lock()
				p.paused = false
				p.mu.Unlock()
				return true
			case core.ActionQuit:
				return false
			}
		}
	}
}

// Close stops the event reader and restores the terminal.
func (p *Presenter) Close() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()

	close(p.quit)
	p.screen.Fini()
}

func cellStyle(c raster.Color) tcell.Style {
	r, g, b := c.RGB()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawLegend(s tcell.Screen, x, y int) {
	entries := []struct {
		c    raster.Color
		what string
	}{
		{engine.WallColor, "wall"},
		{engine.BodyColor, "body"},
		{engine.PickupColor, "pickup"},
		{engine.HeadColor(geom.Left), "head, moving left"},
		{engine.HeadColor(geom.Right), "head, moving right"},
		{engine.HeadColor(geom.Up), "head, moving up"},
		{engine.HeadColor(geom.Down), "head, moving down"},
	}
	drawText(s, x, y, titleStyle, "Legend")
	for i, e := range entries {
		s.SetContent(x, y+1+i, ' ', nil, cellStyle(e.c))
		s.SetContent(x+1, y+1+i, ' ', nil, cellStyle(e.c))
		drawText(s, x+3, y+1+i, textStyle, e.what)
	}
}
