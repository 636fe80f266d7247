package engine

import (
	"github.com/vovakirdan/pixsnake/internal/geom"
	"github.com/vovakirdan/pixsnake/internal/raster"
)

// Cell colors. The board is read back through these values, so every color
// must be distinct.
const (
	BackgroundColor = raster.White
	BodyColor       = raster.Grey
	PickupColor     = raster.Red
	WallColor       = raster.Black
)

// HeadColor returns the head color for a travel direction. The head color is
// the only on-board signal of the current direction.
func HeadColor(d geom.Direction) raster.Color {
	switch d {
	case geom.Left:
		return raster.Blue
	case geom.Right:
		return raster.Purple
	case geom.Up:
		return raster.Yellow
	default:
		return raster.Orange
	}
}

// Glyph returns the ASCII rune used to print a board cell.
func Glyph(c raster.Color) rune {
	switch c {
	case BackgroundColor:
		return '.'
	case BodyColor:
		return 'o'
	case PickupColor:
		return '*'
	case WallColor:
		return '#'
	case HeadColor(geom.Left):
		return '<'
	case HeadColor(geom.Right):
		return '>'
	case HeadColor(geom.Up):
		return '^'
	case HeadColor(geom.Down):
		return 'v'
	default:
		return '?'
	}
}
