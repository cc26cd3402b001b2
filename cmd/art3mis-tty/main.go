package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/art3mis-rover/art3mis/internal/app"
	"github.com/art3mis-rover/art3mis/internal/hud"
	"github.com/art3mis-rover/art3mis/internal/input"
)

// Terminals repeat held keys roughly every 30-50ms after an initial
// delay of up to 500ms; the latch bridges the gap.
const keyHold = 550 * time.Millisecond

// keyButton maps a key event to a control.
func keyButton(ev *tcell.EventKey) (input.Button, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.BtnUp, true
	case tcell.KeyDown:
		return input.BtnDown, true
	case tcell.KeyLeft:
		return input.BtnLeft, true
	case tcell.KeyRight:
		return input.BtnRight, true
	case tcell.KeyEnter:
		return input.BtnRestart, true
	case tcell.KeyRune:
	default:
		return 0, false
	}
	switch ev.Rune() {
	case 'w', 'W':
		return input.BtnUp, true
	case 's', 'S':
		return input.BtnDown, true
	case 'a', 'A':
		return input.BtnLeft, true
	case 'd', 'D':
		return input.BtnRight, true
	case 'e', 'E', ' ':
		return input.BtnProcess, true
	case '1':
		return input.BtnDropAluminum, true
	case '2':
		return input.BtnDropIron, true
	case '3':
		return input.BtnDropSilicon, true
	}
	return 0, false
}

// isDirection reports whether b steers the rover.
func isDirection(b input.Button) bool {
	return b <= input.BtnRight
}

type Game struct {
	rt      *app.Runtime
	screen  tcell.Screen
	seed    int64
	buffer  *hud.CellBuffer
	surface *hud.SurfaceView

	latch      *input.Latch
	pending    input.Buttons // action presses since the last frame
	edge       input.Edge
	restartRow int
	clicked    bool
	last       time.Time
}

func NewGame(rt *app.Runtime, screen tcell.Screen, seed int64) *Game {
	g := &Game{
		rt:     rt,
		screen: screen,
		seed:   seed,
		latch:  input.NewLatch(keyHold),
		last:   time.Now(),
	}
	g.resize()
	return g
}

func (g *Game) resize() {
	cols, rows := g.screen.Size()
	g.buffer = hud.NewCellBuffer(cols, rows)
	g.surface = hud.NewSurfaceView(g.seed, cols, rows, g.rt.Tuning.Bounds())
}

// handleEvent returns false when the player quits.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		b, ok := keyButton(ev)
		if !ok {
			return true
		}
		if isDirection(b) {
			g.latch.Press(b, time.Now())
		} else {
			g.pending = g.pending.With(b)
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			if _, y := ev.Position(); y == g.restartRow {
				g.clicked = true
			}
		}
	case *tcell.EventResize:
		g.resize()
		g.screen.Sync()
	}
	return true
}

func (g *Game) update(now time.Time) {
	dt := now.Sub(g.last).Seconds()
	g.last = now

	held := g.latch.Held(now) | g.pending
	g.pending = 0
	in, pressed := input.Snapshot(held, &g.edge)

	if g.rt.Session.Over() {
		if pressed.Has(input.BtnRestart) || g.clicked {
			g.rt.Restart()
			g.latch.Release()
			g.edge.Reset()
		}
	} else {
		g.rt.Tick(in, dt)
	}
	g.clicked = false
}

func (g *Game) draw() {
	sess := g.rt.Session
	buf := g.buffer
	hud.Compose(buf, g.surface, sess)
	bounds := g.rt.Tuning.Bounds()
	hud.DrawDrops(buf, sess.DroppedItems(), bounds)
	rx, ry := hud.WorldToCell(sess.Position(), bounds, buf.Cols, buf.Rows)
	buf.Set(rx, ry, '@', hud.ColorLightBlue, hud.ColorBlack)
	g.restartRow = -1
	if sess.Over() {
		g.restartRow = hud.DrawGameOver(buf, sess.Snapshot())
	}

	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			c := buf.Get(x, y)
			g.screen.SetContent(x, y, hud.Rune(c.Glyph), nil, cellStyle(c))
		}
	}
	g.screen.Show()
}

func cellStyle(c hud.Cell) tcell.Style {
	fg := hud.Palette[c.FG]
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
	if c.BG != hud.ColorBlack {
		bg := hud.Palette[c.BG]
		style = style.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	}
	return style
}

func (g *Game) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			g.update(now)
			g.draw()
		}
	}
}

func main() {
	opts := app.RegisterFlags(flag.CommandLine)
	flag.Parse()
	app.SetupLogging(opts)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}
	screen.EnableMouse()

	rt, err := app.Start(opts)
	if err != nil {
		screen.Fini()
		log.Fatalf("start: %v", err)
	}

	NewGame(rt, screen, opts.Seed).run()
	screen.Fini()
	rt.Close()
}
