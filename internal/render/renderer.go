package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/art3mis-rover/art3mis/internal/hud"
)

// GridRenderer draws a CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Draw renders the CellBuffer over whatever is already on screen.
// Black backgrounds and blank glyphs are left transparent.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *hud.CellBuffer) {
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != hud.ColorBlack {
				var op ebiten.DrawImageOptions
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(hud.Palette[cell.BG])
				screen.DrawImage(r.bgPixel, &op)
			}
			r.DrawFloating(screen, cell.Glyph, cell.FG, px, py)
		}
	}
}

// DrawFloating renders a single glyph at sub-pixel screen coordinates.
// Used for things that sit between cells, like dropped ingots.
func (r *GridRenderer) DrawFloating(screen *ebiten.Image, glyph byte, fg uint8, px, py float64) {
	if glyph == ' ' || glyph == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(r.CellW)/GlyphWidth, float64(r.CellH)/GlyphHeight)
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(hud.Palette[fg])
	screen.DrawImage(r.Atlas.Glyph(glyph), &op)
}

// DrawText renders a string of floating glyphs starting at (px, py).
func (r *GridRenderer) DrawText(screen *ebiten.Image, s string, fg uint8, px, py float64) {
	for i := 0; i < len(s); i++ {
		r.DrawFloating(screen, s[i], fg, px+float64(i*r.CellW), py)
	}
}
