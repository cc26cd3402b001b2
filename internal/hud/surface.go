package hud

import (
	"fmt"
	"math"

	"github.com/art3mis-rover/art3mis/internal/game"
	"github.com/art3mis-rover/art3mis/internal/world"
)

// TileVisual is how a terrain kind appears on screen.
type TileVisual struct {
	Glyph byte
	FG    uint8
}

var tileVisuals = [world.TileKindCount]TileVisual{
	world.TileGround:  {' ', ColorBlack},
	world.TileDust:    {GlyphLightShade, ColorDarkGray},
	world.TilePebble:  {GlyphDot, ColorDarkGray},
	world.TileBoulder: {'o', ColorBrown},
	world.TileCrater:  {GlyphRing, ColorDarkGray},
}

// VisualFor returns the glyph and color for a terrain kind.
func VisualFor(k world.TileKind) TileVisual {
	if k < world.TileKindCount {
		return tileVisuals[k]
	}
	return TileVisual{'?', ColorMagenta}
}

// SurfaceView is the terrain backdrop laid over a world of fixed size.
type SurfaceView struct {
	Grid   *world.TileGrid
	Bounds world.Bounds
}

// NewSurfaceView generates a backdrop sized to cols x rows cells.
func NewSurfaceView(seed int64, cols, rows int, b world.Bounds) *SurfaceView {
	return &SurfaceView{
		Grid:   world.GenerateSurface(seed, cols, rows),
		Bounds: b,
	}
}

// Draw writes the backdrop into buf. Ground stays blank.
func (v *SurfaceView) Draw(buf *CellBuffer) {
	for y := 0; y < v.Grid.Height && y < buf.Rows; y++ {
		for x := 0; x < v.Grid.Width && x < buf.Cols; x++ {
			vis := VisualFor(v.Grid.Get(x, y).Kind)
			if vis.Glyph == ' ' {
				continue
			}
			buf.Set(x, y, vis.Glyph, vis.FG, ColorBlack)
		}
	}
}

// WorldToCell maps a world position to the cell that contains it on a
// cols x rows grid covering the whole world.
func WorldToCell(p game.Position, b world.Bounds, cols, rows int) (int, int) {
	if b.Width <= 0 || b.Height <= 0 {
		return 0, 0
	}
	x := int(math.Floor(p.X / b.Width * float64(cols)))
	y := int(math.Floor(p.Y / b.Height * float64(rows)))
	return min(max(x, 0), cols-1), min(max(y, 0), rows-1)
}

// DrawDrops marks every dropped ingot at its cell. Frontends that can
// place glyphs between cells draw drops themselves instead.
func DrawDrops(buf *CellBuffer, items []game.DroppedItem, b world.Bounds) {
	for _, it := range items {
		x, y := WorldToCell(it.Position, b, buf.Cols, buf.Rows)
		buf.Set(x, y, GlyphSquare, MaterialColor(it.Material), ColorBlack)
	}
}

// DrawHover describes the tile under cell (cx, cy) on row y, or prompts
// when the pointer is off the surface.
func (v *SurfaceView) DrawHover(buf *CellBuffer, y, cx, cy int) {
	buf.ClearRow(y)
	if cx < 0 || cx >= v.Grid.Width || cy < 0 || cy >= v.Grid.Height {
		buf.WriteString(1, y, "Hover over the surface to inspect", ColorDarkGray, ColorBlack)
		return
	}
	desc := fmt.Sprintf("%s  [%d,%d]", v.Grid.Get(cx, cy).Describe(), cx, cy)
	buf.WriteString(1, y, desc, ColorYellow, ColorBlack)
}
