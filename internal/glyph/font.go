package glyph

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pixsnake/internal/geom"
	"github.com/vovakirdan/pixsnake/internal/shape"
)

// Font is a glyph table loaded from a YAML file:
//
//	A:
//	  - line: {from: [0, 1], to: [0, 6]}
//	  - point: [2, 0]
type Font struct {
	glyphs map[rune][]shape.Shape
}

// LoadFont reads and parses a font file.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: reading font %s: %w", path, err)
	}
	f, err := ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parsing font %s: %w", path, err)
	}
	return f, nil
}

// ParseFont parses font YAML. Every key must be a single character.
func ParseFont(data []byte) (*Font, error) {
	var raw map[string][]shape.Spec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	f := &Font{glyphs: make(map[rune][]shape.Shape, len(raw))}
	for key, specs := range raw {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return nil, fmt.Errorf("font key %q is not a single character", key)
		}
		shapes, err := shape.FromSpecs(specs)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", key, err)
		}
		f.glyphs[r] = shapes
	}
	return f, nil
}

// Len returns the number of glyphs in the font.
func (f *Font) Len() int {
	return len(f.glyphs)
}

// Convert places glyph r at (x, y) magnified by scale. The advance is the
// glyph's largest unscaled X plus two.
func (f *Font) Convert(x, y, scale int, r rune) (int, []shape.Shape, error) {
	glyph, ok := f.glyphs[r]
	if !ok {
		return 0, nil, fmt.Errorf("%w: %q", ErrUnknownRune, r)
	}
	scale = max(scale, 1)

	maxX := 0
	out := make([]shape.Shape, 0, len(glyph))
	for _, s := range glyph {
		maxX = max(maxX, shape.Extent(s))
		out = append(out, shape.Translate(shape.Magnify(s, scale), geom.V(x, y)))
	}
	return maxX + 2, out, nil
}

// ConvertText places every rune of text in turn, advancing by each glyph's
// advance times scale.
func (f *Font) ConvertText(x, y, scale int, text string) (int, []shape.Shape, error) {
	scale = max(scale, 1)
	var out []shape.Shape
	shift := 0
	for _, r := range text {
		adv, shapes, err := f.Convert(x+shift, y, scale, r)
		if err != nil {
			return 0, nil, err
		}
		out = append(out, shapes...)
		shift += adv * scale
	}
	return shift, out, nil
}
