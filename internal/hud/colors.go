package hud

import "image/color"

// CGA 16-color palette indices. Bit 0 is blue, bit 1 green, bit 2 red
// and bit 3 intensity.
const (
	ColorBlack = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorLightGray
	ColorDarkGray
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorLightMagenta
	ColorYellow
	ColorWhite
)

// Palette maps color indices to RGB.
var Palette = buildPalette()

func buildPalette() [16]color.RGBA {
	var p [16]color.RGBA
	for i := range p {
		lo := uint8(0)
		if i&8 != 0 {
			lo = 0x55
		}
		level := func(bit int) uint8 {
			if i&bit != 0 {
				return lo + 0xaa
			}
			return lo
		}
		p[i] = color.RGBA{level(4), level(2), level(1), 0xff}
	}
	// Dark yellow is brown on real CGA hardware.
	p[ColorBrown].G = 0x55
	return p
}
