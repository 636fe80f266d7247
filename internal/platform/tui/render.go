package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixsnake/internal/engine"
	"github.com/vovakirdan/pixsnake/internal/geom"
	"github.com/vovakirdan/pixsnake/internal/raster"
)

// pixel is the glyph drawn for one pixel column; two terminal cells make a
// roughly square pixel.
const pixel = "██"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

func pixelStyle(c raster.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// RenderBoard converts a row-major pixel buffer to a styled string. Each
// pixel is scale rows high and 2*scale cells wide. Adjacent pixels of the
// same color share one style run to minimize ANSI escape sequences.
func RenderBoard(pixels []raster.Color, width, height, scale int) string {
	scale = max(scale, 1)
	cell := strings.Repeat(pixel, scale)

	var sb strings.Builder
	sb.Grow(len(pixels) * len(cell) * scale)

	for y := range height {
		var row strings.Builder
		x := 0
		for x < width {
			start := pixels[y*width+x]

			var run strings.Builder
			for x < width && pixels[y*width+x] == start {
				run.WriteString(cell)
				x++
			}
			row.WriteString(pixelStyle(start).Render(run.String()))
		}

		line := row.String()
		for i := range scale {
			if y > 0 || i > 0 {
				sb.WriteRune('\n')
			}
			sb.WriteString(line)
		}
	}
	return sb.String()
}

// renderHUD shows the level and the live game counters.
func renderHUD(levelName string, g *engine.Snake, best int) string {
	stats := fmt.Sprintf("score %d   length %d   best %d   heading %s",
		g.Score(), g.Len(), max(best, g.Score()), g.Direction())
	return titleStyle.Render(levelName) + "   " + hudStyle.Render(stats)
}

// renderLegend explains the board colors.
func renderLegend() string {
	entries := []struct {
		c    raster.Color
		what string
	}{
		{engine.WallColor, "black - wall"},
		{engine.BodyColor, "grey - body"},
		{engine.PickupColor, "red - pickup"},
		{engine.HeadColor(geom.Left), "blue - head, moving left"},
		{engine.HeadColor(geom.Right), "purple - head, moving right"},
		{engine.HeadColor(geom.Up), "yellow - head, moving up"},
		{engine.HeadColor(geom.Down), "orange - head, moving down"},
	}

	lines := []string{titleStyle.Render("Legend")}
	for _, e := range entries {
		lines = append(lines, pixelStyle(e.c).Render(pixel)+" "+e.what)
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
