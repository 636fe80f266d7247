package raster

import "fmt"

// Color is a 24-bit 0xRRGGBB pixel value.
type Color uint32

// Named palette used by the game.
const (
	White  Color = 0xFFFFFF
	Grey   Color = 0x808080
	Red    Color = 0xFF0000
	Black  Color = 0x000000
	Blue   Color = 0x0000FF
	Purple Color = 0x800080
	Yellow Color = 0xFFFF00
	Orange Color = 0xFFA500
)

// RGB splits the color into its 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// String returns the palette name, or the hex value for unnamed colors.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Grey:
		return "grey"
	case Red:
		return "red"
	case Black:
		return "black"
	case Blue:
		return "blue"
	case Purple:
		return "purple"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	default:
		return c.Hex()
	}
}
