package level

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pixsnake/internal/geom"
	"github.com/vovakirdan/pixsnake/internal/glyph"
	"github.com/vovakirdan/pixsnake/internal/shape"
)

// yamlLevel represents the YAML structure for a level file.
type yamlLevel struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Snake  yamlSnake  `yaml:"snake"`
	Scale  int        `yaml:"scale,omitempty"`
	Walls  []yamlWall `yaml:"walls,omitempty"`
}

type yamlSnake struct {
	Length    int             `yaml:"length"`
	Start     shape.Coord     `yaml:"start"`
	Direction *geom.Direction `yaml:"direction,omitempty"`
}

// yamlWall is a plain shape or a text run expanded through the glyph table.
type yamlWall struct {
	shape.Spec `yaml:",inline"`
	Text       *yamlText `yaml:"text,omitempty"`
}

type yamlText struct {
	At    shape.Coord `yaml:"at"`
	Scale int         `yaml:"scale,omitempty"`
	Value string      `yaml:"value"`
	Font  string      `yaml:"font,omitempty"` // Font file; empty uses the built-in glyphs
}

// Parse parses and validates a YAML level. Relative font paths are
// resolved against the working directory.
func Parse(data []byte) (Level, error) {
	return ParseDir(data, "")
}

// ParseDir is Parse with relative font paths resolved against dir.
func ParseDir(data []byte, dir string) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	scale := yl.Scale
	if scale == 0 {
		scale = 1
	}
	snakeDir := geom.Right
	if yl.Snake.Direction != nil {
		snakeDir = *yl.Snake.Direction
	}

	lvl := Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Width:  yl.Width,
		Height: yl.Height,
		Snake: Snake{
			Length:    yl.Snake.Length,
			Start:     yl.Snake.Start.Vector(),
			Direction: snakeDir,
		},
		Scale: scale,
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}

	fonts := &fontCache{dir: dir}
	for i, w := range yl.Walls {
		shapes, err := w.shapes(fonts)
		if err != nil {
			return Level{}, fmt.Errorf("%w: wall %d: %w", ErrInvalid, i, err)
		}
		lvl.Walls = append(lvl.Walls, shapes...)
	}

	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

func (w yamlWall) shapes(fonts *fontCache) ([]shape.Shape, error) {
	if w.Text == nil {
		s, err := w.Spec.Shape()
		if err != nil {
			return nil, err
		}
		return []shape.Shape{s}, nil
	}

	if w.Point != nil || w.Line != nil || w.Rect != nil {
		return nil, shape.ErrBadSpec
	}
	x, y := w.Text.At[0], w.Text.At[1]
	if w.Text.Font == "" {
		_, shapes, err := glyph.Convert(x, y, w.Text.Scale, w.Text.Value)
		return shapes, err
	}

	font, err := fonts.load(w.Text.Font)
	if err != nil {
		return nil, err
	}
	_, shapes, err := font.ConvertText(x, y, w.Text.Scale, w.Text.Value)
	return shapes, err
}

// fontCache loads each font file of a level once.
type fontCache struct {
	dir   string
	fonts map[string]*glyph.Font
}

func (c *fontCache) load(path string) (*glyph.Font, error) {
	if !filepath.IsAbs(path) && c.dir != "" {
		path = filepath.Join(c.dir, path)
	}
	if f, ok := c.fonts[path]; ok {
		return f, nil
	}
	f, err := glyph.LoadFont(path)
	if err != nil {
		return nil, err
	}
	if c.fonts == nil {
		c.fonts = make(map[string]*glyph.Font)
	}
	c.fonts[path] = f
	return f, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
