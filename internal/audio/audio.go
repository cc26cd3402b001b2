// Package audio plays short synthesized cues for rover events. Sound is
// optional: when the speaker cannot be opened the player stays silent.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/art3mis-rover/art3mis/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a sound effect.
type Cue uint8

const (
	CueRefine   Cue = iota // rising two-note chime
	CueDrop                // short low blip
	CueGameOver            // falling tone
)

// note is one tone in a cue.
type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueRefine:   {{660, 70 * time.Millisecond}, {990, 110 * time.Millisecond}},
	CueDrop:     {{330, 60 * time.Millisecond}},
	CueGameOver: {{440, 180 * time.Millisecond}, {330, 180 * time.Millisecond}, {220, 360 * time.Millisecond}},
}

// Sound builds the finite streamer for a cue at the given volume (0..1).
func Sound(c Cue, vol float64) (beep.Streamer, error) {
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	seq := beep.Seq(parts...)
	if vol <= 0 {
		return &effects.Volume{Streamer: seq, Base: 2, Silent: true}, nil
	}
	return &effects.Volume{Streamer: seq, Base: 2, Volume: math.Log2(vol)}, nil
}

// CuesFor lists the cues a tick result should trigger, in play order.
func CuesFor(res game.TickResult) []Cue {
	var cues []Cue
	if res.Refined {
		cues = append(cues, CueRefine)
	}
	for range res.Dropped {
		cues = append(cues, CueDrop)
	}
	if res.GameOver {
		cues = append(cues, CueGameOver)
	}
	return cues
}

// Player sends cues to the system speaker.
type Player struct {
	mu     sync.Mutex
	ready  bool
	muted  bool
	volume float64
}

// NewPlayer creates a player. A muted player never opens the speaker.
func NewPlayer(muted bool) *Player {
	return &Player{muted: muted, volume: 0.3}
}

// Init opens the speaker. On error the player stays silent and the
// caller may carry on.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted || p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.ready = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready && !p.muted
}

// Play queues a cue. It never blocks on playback.
func (p *Player) Play(c Cue) {
	if !p.Enabled() {
		return
	}
	s, err := Sound(c, p.volume)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// PlayResult plays every cue a tick result calls for.
func (p *Player) PlayResult(res game.TickResult) {
	for _, c := range CuesFor(res) {
		p.Play(c)
	}
}

// Close silences any playing cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		speaker.Clear()
		p.ready = false
	}
}
