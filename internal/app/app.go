// Package app holds the start-up and per-frame plumbing both frontends
// share: flags, tuning, store selection, and logging of what a tick did.
package app

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/art3mis-rover/art3mis/internal/audio"
	"github.com/art3mis-rover/art3mis/internal/game"
	"github.com/art3mis-rover/art3mis/internal/store"
	"github.com/art3mis-rover/art3mis/internal/world"
)

// Options are the command-line settings shared by every frontend.
type Options struct {
	TuningPath string
	Store      string
	DataDir    string
	Seed       int64
	Mute       bool
	Verbose    bool
}

// RegisterFlags binds Options to fs.
func RegisterFlags(fs *flag.FlagSet) *Options {
	o := &Options{}
	fs.StringVar(&o.TuningPath, "tuning", "", "YAML tuning file (defaults apply when empty)")
	fs.StringVar(&o.Store, "store", "dir", "position store: "+strings.Join(store.Kinds, "|"))
	fs.StringVar(&o.DataDir, "data", defaultDataDir(), "directory for dir and sqlite stores")
	fs.Int64Var(&o.Seed, "seed", 1, "refinery random seed")
	fs.BoolVar(&o.Mute, "mute", false, "disable sound")
	fs.BoolVar(&o.Verbose, "v", false, "debug logging")
	return o
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "art3mis")
	}
	return ".art3mis"
}

// SetupLogging installs the process-wide slog handler on stderr.
func SetupLogging(o *Options) {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// Runtime is one running program: the session, its store and sound.
type Runtime struct {
	Session *game.Session
	Store   store.Backend
	Audio   *audio.Player
	Tuning  world.Tuning
}

// Start loads tuning, opens the store and begins a session. Errors are
// start-up failures; a rejected stored position is only logged.
func Start(o *Options) (*Runtime, error) {
	t, err := world.LoadTuning(o.TuningPath)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(o.Store, o.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	rt := &Runtime{
		Session: game.NewSession(t, st, game.NewRand(o.Seed)),
		Store:   st,
		Audio:   audio.NewPlayer(o.Mute),
		Tuning:  t,
	}
	if err := rt.Session.LoadErr(); err != nil {
		slog.Warn("stored position rejected, starting at center", "err", err)
	}
	if err := rt.Audio.Init(); err != nil {
		slog.Warn("audio unavailable", "err", err)
	}
	p := rt.Session.Position()
	slog.Info("session started", "store", o.Store, "x", p.X, "y", p.Y, "seed", o.Seed)
	return rt, nil
}

// Tick advances the session and reports the result to the log and speaker.
func (rt *Runtime) Tick(in game.Input, dt float64) game.TickResult {
	res := rt.Session.Tick(in, dt)
	if res.SaveErr != nil {
		slog.Warn("position not saved", "err", res.SaveErr)
	}
	if res.Refined {
		b := res.Batch
		slog.Debug("refined", "al", b[game.Aluminum], "fe", b[game.Iron], "si", b[game.Silicon])
	}
	if res.GameOver {
		snap := rt.Session.Snapshot()
		slog.Info("session over", "ticks", snap.Ticks, "ingots", rt.Session.Inventory.Total(), "dropped", snap.DroppedCount)
	}
	rt.Audio.PlayResult(res)
	return res
}

// Restart begins a new run from the persisted position.
func (rt *Runtime) Restart() {
	rt.Session.Restart()
	if err := rt.Session.LoadErr(); err != nil {
		slog.Warn("stored position rejected, starting at center", "err", err)
	}
	p := rt.Session.Position()
	slog.Info("session restarted", "x", p.X, "y", p.Y)
}

// Close releases the store and the speaker.
func (rt *Runtime) Close() {
	rt.Audio.Close()
	if err := rt.Store.Close(); err != nil {
		slog.Warn("close store", "err", err)
	}
}
