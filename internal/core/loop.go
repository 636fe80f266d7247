package core

import (
	"context"
	"time"

	"github.com/vovakirdan/pixsnake/internal/engine"
	"github.com/vovakirdan/pixsnake/internal/geom"
	"github.com/vovakirdan/pixsnake/internal/raster"
)

// Game is the part of the engine the loop needs.
type Game interface {
	ParseKeys(keys []string)
	Step() engine.Outcome
	Alive() bool
	Pixels() []raster.Color
	Bounds() geom.Vector
}

// Presenter displays frames and collects input. It is the contract
// polling frontends implement to be driven by Drive.
type Presenter interface {
	// Render shows a row-major pixel buffer of the given size.
	Render(pixels []raster.Color, width, height int)
	// Running reports whether the display is still open.
	Running() bool
	// StopRequested reports whether the user asked to leave.
	StopRequested() bool
	// Keys drains the key names pressed since the last call.
	Keys() []string
}

// Drive runs the frame loop until the game dies, the presenter stops or ctx
// is cancelled. Every frame it feeds pending keys to the game, steps it when
// the clock fires and renders the board. A cancelled ctx returns ctx.Err().
func Drive(ctx context.Context, g Game, p Presenter, clock *Clock) error {
	ticker := time.NewTicker(clock.Interval())
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !p.Running() || p.StopRequested() {
			return nil
		}

		g.ParseKeys(p.Keys())
		if clock.Frame() {
			g.Step()
		}

		b := g.Bounds()
		p.Render(g.Pixels(), b.X, b.Y)

		if !g.Alive() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
