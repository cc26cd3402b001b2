// Package hud composes what the player sees into a grid of CP437 cells:
// the two status readouts, the comms log, the surface backdrop and the
// game-over panel. Frontends only rasterize the grid.
package hud

// CP437 codes for the non-ASCII glyphs the HUD and surface use.
const (
	GlyphDot        = 7   // • pebble
	GlyphRing       = 9   // ○ crater rim
	GlyphLightShade = 176 // ░ empty bar
	GlyphMedShade   = 177 // ▒ dust
	GlyphFullBlock  = 219 // █ full bar
	GlyphSquare     = 254 // ■ ingot
)

// glyphRunes maps the graphic glyphs to Unicode for text terminals.
var glyphRunes = map[byte]rune{
	GlyphDot:        '•',
	GlyphRing:       '○',
	GlyphLightShade: '░',
	GlyphMedShade:   '▒',
	GlyphFullBlock:  '█',
	GlyphSquare:     '■',
}

// Rune returns the Unicode rune for a CP437 code the HUD emits.
func Rune(code byte) rune {
	if r, ok := glyphRunes[code]; ok {
		return r
	}
	if code >= 32 && code <= 126 {
		return rune(code)
	}
	return ' '
}
