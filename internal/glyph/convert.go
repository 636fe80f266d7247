package glyph

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/vovakirdan/pixsnake/internal/geom"
	"github.com/vovakirdan/pixsnake/internal/shape"
)

// ErrUnknownRune reports a character the glyph table cannot draw.
var ErrUnknownRune = errors.New("glyph: unknown character")

// Convert lays text out from (x, y) with every glyph magnified by scale.
// It returns the total horizontal advance and the shapes of all glyphs.
// Lower-case letters use their upper-case glyph; spaces advance without
// drawing.
func Convert(x, y, scale int, text string) (int, []shape.Shape, error) {
	scale = max(scale, 1)

	var out []shape.Shape
	shift := 0
	for _, r := range text {
		if r == ' ' {
			shift += Advance * scale
			continue
		}

		glyph, ok := table[unicode.ToUpper(r)]
		if !ok {
			return 0, nil, fmt.Errorf("%w: %q", ErrUnknownRune, r)
		}

		origin := geom.V(x+shift, y)
		for _, s := range glyph {
			out = append(out, shape.Translate(shape.Magnify(s, scale), origin))
		}
		shift += Advance * scale
	}

	return shift, out, nil
}
