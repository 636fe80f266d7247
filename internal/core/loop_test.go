package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/pixsnake/internal/engine"
	"github.com/vovakirdan/pixsnake/internal/geom"
	"github.com/vovakirdan/pixsnake/internal/raster"
)

// fakeGame counts calls and dies after a fixed number of steps.
type fakeGame struct {
	steps    int
	dieAfter int
	keys     [][]string
}

func (g *fakeGame) ParseKeys(keys []string) { g.keys = append(g.keys, keys) }
func (g *fakeGame) Alive() bool             { return g.dieAfter == 0 || g.steps < g.dieAfter }
func (g *fakeGame) Bounds() geom.Vector     { return geom.V(2, 1) }
func (g *fakeGame) Pixels() []raster.Color  { return []raster.Color{raster.White, raster.Black} }

func (g *fakeGame) Step() engine.Outcome {
	g.steps++
	return engine.OutcomeMoved
}

// fakePresenter stops after a fixed number of frames.
type fakePresenter struct {
	frames    int
	stopAfter int
	pending   []string
	width     int
	height    int
}

func (p *fakePresenter) Render(pixels []raster.Color, w, h int) {
	p.frames++
	p.width, p.height = w, h
}

func (p *fakePresenter) Running() bool       { return true }
func (p *fakePresenter) StopRequested() bool { return p.stopAfter > 0 && p.frames >= p.stopAfter }

func (p *fakePresenter) Keys() []string {
	k := p.pending
	p.pending = nil
	return k
}

func TestDriveStepsOnClock(t *testing.T) {
	g := &fakeGame{}
	p := &fakePresenter{stopAfter: 9, pending: []string{"up"}}

	err := Drive(context.Background(), g, p, NewClock(1000, 333)) // every third frame
	if err != nil {
		t.Fatalf("Drive() error: %v", err)
	}
	if p.frames != 9 {
		t.Errorf("rendered %d frames, expected 9", p.frames)
	}
	if g.steps != 3 {
		t.Errorf("stepped %d times, expected 3", g.steps)
	}
	if p.width != 2 || p.height != 1 {
		t.Errorf("rendered size %dx%d, expected 2x1", p.width, p.height)
	}
	if len(g.keys) != 9 || len(g.keys[0]) != 1 || g.keys[0][0] != "up" {
		t.Errorf("key batches = %v, expected [up] then empty batches", g.keys)
	}
}

func TestDriveEndsWhenGameDies(t *testing.T) {
	g := &fakeGame{dieAfter: 2}
	p := &fakePresenter{}

	if err := Drive(context.Background(), g, p, NewClock(1000, 1000)); err != nil {
		t.Fatalf("Drive() error: %v", err)
	}
	if g.steps != 2 {
		t.Errorf("stepped %d times, expected 2", g.steps)
	}
	if p.frames != 2 {
		t.Errorf("final board should be rendered; got %d frames", p.frames)
	}
}

func TestDriveContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Drive(ctx, &fakeGame{}, &fakePresenter{}, NewClock(100, 1))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Drive() = %v, expected context.DeadlineExceeded", err)
	}
}

func TestDriveRealEngine(t *testing.T) {
	s, err := engine.New(engine.Config{
		Start:     geom.V(3, 3),
		Length:    2,
		Bounds:    geom.V(8, 8),
		Direction: geom.Right,
		Seed:      3,
	})
	if err != nil {
		t.Fatalf("engine.New() error: %v", err)
	}

	p := &fakePresenter{stopAfter: 5}
	if err := Drive(context.Background(), s, p, NewClock(1000, 1000)); err != nil {
		t.Fatalf("Drive() error: %v", err)
	}
	if p.width != 8 || p.height != 8 {
		t.Errorf("rendered size %dx%d, expected 8x8", p.width, p.height)
	}
	if s.Snapshot().Tick == 0 && s.Alive() {
		t.Error("engine should have ticked")
	}
}
