package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/art3mis-rover/art3mis/internal/hud"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// FontAtlas holds the CP437 glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas generates the glyph atlas at startup.
// Printable ASCII (32-126) is rendered with basicfont.Face7x13;
// the few graphic glyphs above are drawn by hand.
func NewFontAtlas() *FontAtlas {
	img := buildAtlasImage()
	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}

	for code := 0; code < 256; code++ {
		a.glyphs[code] = eimg.SubImage(glyphRect(byte(code))).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a CP437 character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// buildAtlasImage rasterizes every glyph into one CPU-side image.
func buildAtlasImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13
	for code := 0; code < 256; code++ {
		r := glyphRect(byte(code))
		if code >= 32 && code <= 126 {
			drawFontGlyph(img, face, r.Min.X, r.Min.Y, rune(code))
			continue
		}
		drawShapeGlyph(img, r.Min.X, r.Min.Y, byte(code))
	}
	return img
}

func glyphRect(code byte) image.Rectangle {
	x := int(code) % AtlasCols * GlyphWidth
	y := int(code) / AtlasCols * GlyphHeight
	return image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
}

// drawFontGlyph renders a single ASCII character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13), // centered horizontally, baseline at y+13
	}
	d.DrawString(string(r))
}

// drawShapeGlyph draws the hand-made graphic glyphs. Unknown codes stay blank.
func drawShapeGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	w := color.NRGBA{255, 255, 255, 255}
	fill := func(keep func(x, y int) bool) {
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if keep(x, y) {
					img.SetNRGBA(cellX+x, cellY+y, w)
				}
			}
		}
	}

	switch code {
	case hud.GlyphDot:
		fill(func(x, y int) bool {
			dx, dy := x-7, y-7
			return dx*dx+dy*dy <= 4
		})
	case hud.GlyphRing:
		fill(func(x, y int) bool {
			dx, dy := x-7, y-7
			d2 := dx*dx + dy*dy
			return d2 <= 36 && d2 >= 16
		})
	case hud.GlyphLightShade:
		fill(func(x, y int) bool { return (x+y)%4 == 0 })
	case hud.GlyphMedShade:
		fill(func(x, y int) bool { return (x+y)%2 == 0 })
	case hud.GlyphFullBlock:
		fill(func(x, y int) bool { return true })
	case hud.GlyphSquare:
		fill(func(x, y int) bool { return x >= 4 && x < 12 && y >= 4 && y < 12 })
	}
}
