package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/art3mis-rover/art3mis/internal/app"
	"github.com/art3mis-rover/art3mis/internal/hud"
	"github.com/art3mis-rover/art3mis/internal/input"
	"github.com/art3mis-rover/art3mis/internal/render"
)

const (
	title = "ART3MIS"

	cellWidth  = 16
	cellHeight = 16

	hoverRow = 2
)

// keyBindings maps held keys to controls.
var keyBindings = []struct {
	key ebiten.Key
	btn input.Button
}{
	{ebiten.KeyArrowUp, input.BtnUp},
	{ebiten.KeyW, input.BtnUp},
	{ebiten.KeyArrowDown, input.BtnDown},
	{ebiten.KeyS, input.BtnDown},
	{ebiten.KeyArrowLeft, input.BtnLeft},
	{ebiten.KeyA, input.BtnLeft},
	{ebiten.KeyArrowRight, input.BtnRight},
	{ebiten.KeyD, input.BtnRight},
	{ebiten.KeyE, input.BtnProcess},
	{ebiten.KeySpace, input.BtnProcess},
	{ebiten.Key1, input.BtnDropAluminum},
	{ebiten.Key2, input.BtnDropIron},
	{ebiten.Key3, input.BtnDropSilicon},
	{ebiten.KeyEnter, input.BtnRestart},
	{ebiten.KeyNumpadEnter, input.BtnRestart},
}

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in the runtime's session.
type Game struct {
	rt       *app.Runtime
	width    int
	height   int
	renderer *render.GridRenderer
	scene    *render.Scene
	buffer   *hud.CellBuffer
	panel    *hud.CellBuffer
	surface  *hud.SurfaceView
	pad      input.Pad
	edge     input.Edge
	held     input.Buttons
}

func NewGame(rt *app.Runtime, seed int64) *Game {
	w, h := int(rt.Tuning.WorldWidth), int(rt.Tuning.WorldHeight)
	cols, rows := w/cellWidth, h/cellHeight

	renderer := render.NewGridRenderer(render.NewFontAtlas(), cellWidth, cellHeight)
	return &Game{
		rt:       rt,
		width:    w,
		height:   h,
		renderer: renderer,
		scene:    &render.Scene{Grid: renderer},
		buffer:   hud.NewCellBuffer(cols, rows),
		panel:    hud.NewCellBuffer(cols, rows),
		surface:  hud.NewSurfaceView(seed, cols, rows, rt.Tuning.Bounds()),
		pad:      input.NewPad(w, h),
	}
}

// heldButtons ORs keys, the pressed mouse cursor and every touch.
func (g *Game) heldButtons() input.Buttons {
	var held input.Buttons
	for _, kb := range keyBindings {
		if ebiten.IsKeyPressed(kb.key) {
			held = held.With(kb.btn)
		}
	}
	var points []image.Point
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		points = append(points, image.Pt(ebiten.CursorPosition()))
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		points = append(points, image.Pt(ebiten.TouchPosition(id)))
	}
	return held | g.pad.Hit(points)
}

// restartClicked reports a fresh click or tap on the restart button.
func (g *Game) restartClicked() bool {
	r := input.RestartRect(g.width, g.height)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if image.Pt(ebiten.CursorPosition()).In(r) {
			return true
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if image.Pt(ebiten.TouchPosition(id)).In(r) {
			return true
		}
	}
	return false
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.held = g.heldButtons()
	in, pressed := input.Snapshot(g.held, &g.edge)

	if g.rt.Session.Over() {
		if pressed.Has(input.BtnRestart) || g.restartClicked() {
			g.rt.Restart()
			g.edge.Reset()
		}
	} else {
		g.rt.Tick(in, 1/float64(ebiten.TPS()))
	}

	hud.Compose(g.buffer, g.surface, g.rt.Session)
	mx, my := ebiten.CursorPosition()
	g.surface.DrawHover(g.buffer, hoverRow, mx/cellWidth, my/cellHeight)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	sess := g.rt.Session
	g.scene.DrawBackground(screen)
	g.renderer.Draw(screen, g.buffer)
	g.scene.DrawDrops(screen, sess.DroppedItems())
	g.scene.DrawRover(screen, sess.Position())

	if !sess.Over() {
		g.scene.DrawPad(screen, g.pad, g.held)
		return
	}
	g.panel.Clear()
	hud.DrawGameOver(g.panel, sess.Snapshot())
	r := input.RestartRect(g.width, g.height)
	hover := image.Pt(ebiten.CursorPosition()).In(r)
	g.scene.DrawGameOver(screen, g.panel, r, hover)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	opts := app.RegisterFlags(flag.CommandLine)
	flag.Parse()
	app.SetupLogging(opts)

	rt, err := app.Start(opts)
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	defer rt.Close()

	g := NewGame(rt, opts.Seed)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
