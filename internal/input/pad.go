// Package input turns raw device state into the per-frame game.Input
// snapshot. It knows nothing about a specific windowing library; the
// frontends feed it key states and pointer positions.
package input

import (
	"image"

	"github.com/art3mis-rover/art3mis/internal/game"
)

// Button is one control, whether reached by key or on-screen pad.
type Button uint8

const (
	BtnUp Button = iota
	BtnDown
	BtnLeft
	BtnRight
	BtnProcess
	BtnDropAluminum
	BtnDropIron
	BtnDropSilicon
	BtnRestart
	ButtonCount // sentinel
)

var buttonLabels = [ButtonCount]string{
	BtnUp:           "^",
	BtnDown:         "v",
	BtnLeft:         "<",
	BtnRight:        ">",
	BtnProcess:      "R",
	BtnDropAluminum: "Al",
	BtnDropIron:     "Fe",
	BtnDropSilicon:  "Si",
	BtnRestart:      "Restart",
}

// Label returns the text drawn on a pad button.
func (b Button) Label() string {
	if b < ButtonCount {
		return buttonLabels[b]
	}
	return "?"
}

// Buttons is a set of buttons held in one frame.
type Buttons uint16

// With returns the set plus b.
func (s Buttons) With(b Button) Buttons { return s | 1<<b }

// Has reports whether b is in the set.
func (s Buttons) Has(b Button) bool { return s&(1<<b) != 0 }

// PadButton is a clickable or touchable screen rectangle.
type PadButton struct {
	Button Button
	Rect   image.Rectangle
}

// Pad is the on-screen control layout.
type Pad struct {
	Buttons []PadButton
}

// Pad geometry, in screen pixels.
const (
	padKey    = 44
	padGap    = 6
	padMargin = 16
)

// NewPad lays out a direction cross in the bottom-left corner and the
// action column in the bottom-right corner of a w x h screen.
func NewPad(w, h int) Pad {
	step := padKey + padGap
	// Cross: center cell at (cx, cy).
	cx := padMargin + step
	cy := h - padMargin - 2*step - padKey
	cell := func(x, y int) image.Rectangle {
		return image.Rect(x, y, x+padKey, y+padKey)
	}
	p := Pad{Buttons: []PadButton{
		{BtnUp, cell(cx, cy-step)},
		{BtnDown, cell(cx, cy+step)},
		{BtnLeft, cell(cx-step, cy)},
		{BtnRight, cell(cx+step, cy)},
	}}

	ax := w - padMargin - padKey
	actions := []Button{BtnDropSilicon, BtnDropIron, BtnDropAluminum, BtnProcess}
	for i, b := range actions {
		y := h - padMargin - padKey - i*step
		p.Buttons = append(p.Buttons, PadButton{b, cell(ax, y)})
	}
	return p
}

// RestartRect is the restart button shown on the game-over overlay of
// a w x h screen.
func RestartRect(w, h int) image.Rectangle {
	return image.Rect(w/2-80, h/2+12, w/2+80, h/2+52)
}

// Hit returns the buttons under any of the given points.
func (p Pad) Hit(points []image.Point) Buttons {
	var held Buttons
	for _, pt := range points {
		for _, pb := range p.Buttons {
			if pt.In(pb.Rect) {
				held = held.With(pb.Button)
			}
		}
	}
	return held
}

// Edge turns held buttons into presses: a button fires on the first
// frame it is held and not again until released.
type Edge struct {
	prev Buttons
}

// Update records this frame's held set and returns the newly pressed set.
func (e *Edge) Update(held Buttons) Buttons {
	pressed := held &^ e.prev
	e.prev = held
	return pressed
}

// Reset forgets the previous frame, e.g. after a scene change.
func (e *Edge) Reset() { e.prev = 0 }

// Snapshot builds the frame input. held is the union of every source
// (keys, pointer, touches) for this frame; directions act while held,
// actions fire on press. The pressed set is returned for controls
// outside the session, such as restart.
func Snapshot(held Buttons, e *Edge) (game.Input, Buttons) {
	pressed := e.Update(held)
	var in game.Input
	in.Intent = game.Intent{
		Up:    held.Has(BtnUp),
		Down:  held.Has(BtnDown),
		Left:  held.Has(BtnLeft),
		Right: held.Has(BtnRight),
	}
	in.Actions.Process = pressed.Has(BtnProcess)
	in.Actions.Drop[game.Aluminum] = pressed.Has(BtnDropAluminum)
	in.Actions.Drop[game.Iron] = pressed.Has(BtnDropIron)
	in.Actions.Drop[game.Silicon] = pressed.Has(BtnDropSilicon)
	return in, pressed
}
