package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/art3mis-rover/art3mis/internal/game"
	"github.com/art3mis-rover/art3mis/internal/hud"
	"github.com/art3mis-rover/art3mis/internal/input"
)

// Scene colors that sit outside the CGA palette.
var (
	Background   = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	RoverColor   = color.RGBA{0x00, 0x66, 0xff, 0xff}
	OverlayShade = color.RGBA{0, 0, 0, 0xb3} // 70% black
	ButtonFace   = color.RGBA{0x33, 0x33, 0x33, 0xff}
	ButtonHover  = color.RGBA{0x55, 0x55, 0x55, 0xff}
	PadFace      = color.RGBA{0xff, 0xff, 0xff, 0x22}
	PadHeld      = color.RGBA{0xff, 0xff, 0xff, 0x55}
)

// RoverRadius is the on-screen size of the rover, in pixels.
const RoverRadius = 10

// Scene draws everything that is not a plain cell grid: backdrop,
// rover, dropped ingots, the touch pad and the game-over overlay.
// World units map 1:1 to screen pixels.
type Scene struct {
	Grid *GridRenderer
}

// DrawBackground fills the screen with the surface color.
func (s *Scene) DrawBackground(screen *ebiten.Image) {
	screen.Fill(Background)
}

// DrawRover draws the rover centered on its world position.
func (s *Scene) DrawRover(screen *ebiten.Image, p game.Position) {
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), RoverRadius, RoverColor, true)
}

// DrawDrops draws each dropped ingot centered on where it was left.
func (s *Scene) DrawDrops(screen *ebiten.Image, items []game.DroppedItem) {
	half := float64(s.Grid.CellW) / 2
	for _, it := range items {
		s.Grid.DrawFloating(screen, hud.GlyphSquare, hud.MaterialColor(it.Material),
			it.Position.X-half, it.Position.Y-half)
	}
}

// DrawPad draws the on-screen controls, brighter where held.
func (s *Scene) DrawPad(screen *ebiten.Image, pad input.Pad, held input.Buttons) {
	for _, pb := range pad.Buttons {
		face := PadFace
		if held.Has(pb.Button) {
			face = PadHeld
		}
		fillRect(screen, pb.Rect, face)
		s.drawLabel(screen, pb.Rect, pb.Button.Label(), hud.ColorLightGray)
	}
}

// DrawGameOver shades the frame, then lays the panel and the restart
// button over it. hover lights the button under the pointer.
func (s *Scene) DrawGameOver(screen *ebiten.Image, panel *hud.CellBuffer, restart image.Rectangle, hover bool) {
	b := screen.Bounds()
	fillRect(screen, b, OverlayShade)

	face := ButtonFace
	if hover {
		face = ButtonHover
	}
	fillRect(screen, restart, face)
	s.Grid.Draw(screen, panel)
}

// drawLabel centers a short label inside r.
func (s *Scene) drawLabel(screen *ebiten.Image, r image.Rectangle, label string, fg uint8) {
	w := len(label) * s.Grid.CellW
	px := float64(r.Min.X + (r.Dx()-w)/2)
	py := float64(r.Min.Y + (r.Dy()-s.Grid.CellH)/2)
	s.Grid.DrawText(screen, label, fg, px, py)
}

func fillRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), clr, false)
}
