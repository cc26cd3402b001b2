package input

import "time"

// Latch synthesizes held state for devices that only report presses,
// such as terminals, which deliver key repeats but no releases. A button
// counts as held until hold has passed since its last press.
type Latch struct {
	hold time.Duration
	last [ButtonCount]time.Time
}

// NewLatch creates a latch. hold should exceed the terminal's key-repeat
// interval or movement stutters.
func NewLatch(hold time.Duration) *Latch {
	return &Latch{hold: hold}
}

// Press records a press of b at now.
func (l *Latch) Press(b Button, now time.Time) {
	if b < ButtonCount {
		l.last[b] = now
	}
}

// Held returns the buttons pressed within the hold window before now.
func (l *Latch) Held(now time.Time) Buttons {
	var held Buttons
	for b, t := range l.last {
		if !t.IsZero() && now.Sub(t) < l.hold {
			held = held.With(Button(b))
		}
	}
	return held
}

// Release forgets every press.
func (l *Latch) Release() {
	l.last = [ButtonCount]time.Time{}
}
