package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/art3mis-rover/art3mis/internal/game"
	"github.com/art3mis-rover/art3mis/internal/world"
)

var _ game.Store = (*Memory)(nil)
var _ game.Store = (*Dir)(nil)
var _ game.Store = (*SQLite)(nil)

func openAll(t *testing.T) map[string]Backend {
	t.Helper()
	out := map[string]Backend{}
	for _, kind := range Kinds {
		b, err := Open(kind, filepath.Join(t.TempDir(), kind))
		if err != nil {
			t.Fatalf("open %s: %v", kind, err)
		}
		t.Cleanup(func() { _ = b.Close() })
		out[kind] = b
	}
	return out
}

func TestBackends_RoundTrip(t *testing.T) {
	for kind, b := range openAll(t) {
		t.Run(kind, func(t *testing.T) {
			if _, ok, err := b.Load(game.PositionKey); ok || err != nil {
				t.Fatalf("empty store: ok=%v err=%v", ok, err)
			}
			if err := b.Save(game.PositionKey, []byte(`{"x":1,"y":2}`)); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := b.Save(game.PositionKey, []byte(`{"x":3,"y":4}`)); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			data, ok, err := b.Load(game.PositionKey)
			if err != nil || !ok {
				t.Fatalf("load: ok=%v err=%v", ok, err)
			}
			if string(data) != `{"x":3,"y":4}` {
				t.Fatalf("data = %s", data)
			}
		})
	}
}

func TestBackends_DriveSessionAndRestart(t *testing.T) {
	for kind, b := range openAll(t) {
		t.Run(kind, func(t *testing.T) {
			s := game.NewSession(world.DefaultTuning(), b, game.NewRand(1))
			s.Tick(game.Input{Intent: game.Intent{Left: true}}, 0.1)

			// A fresh session over the same store resumes where the rover stopped.
			s2 := game.NewSession(world.DefaultTuning(), b, game.NewRand(1))
			if s2.Position() != (game.Position{X: 380, Y: 300}) {
				t.Fatalf("resumed at %+v", s2.Position())
			}
		})
	}
}

func TestDir_SurvivesReopen(t *testing.T) {
	root := t.TempDir()
	d, err := OpenDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Save("a/b key", []byte("v")); err != nil {
		t.Fatal(err)
	}
	d2, _ := OpenDir(root)
	data, ok, err := d2.Load("a/b key")
	if err != nil || !ok || string(data) != "v" {
		t.Fatalf("reload: %q ok=%v err=%v", data, ok, err)
	}
	entries, _ := os.ReadDir(root)
	if len(entries) != 1 {
		t.Fatalf("expected one file, got %d (temp files left behind?)", len(entries))
	}
}

func TestSQLite_SurvivesReopenAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(game.PositionKey, []byte(`{"x":5,"y":6}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Save("k", nil); !errors.Is(err, ErrClosed) {
		t.Fatalf("save after close: %v", err)
	}

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	data, ok, err := s2.Load(game.PositionKey)
	if err != nil || !ok || string(data) != `{"x":5,"y":6}` {
		t.Fatalf("reload: %q ok=%v err=%v", data, ok, err)
	}
}

func TestOpen_UnknownKind(t *testing.T) {
	if _, err := Open("cloud", t.TempDir()); err == nil {
		t.Fatal("expected error")
	}
	if _, err := OpenDir(""); err == nil {
		t.Fatal("expected error for empty dir")
	}
}

func TestMemory_CopiesValues(t *testing.T) {
	m := NewMemory()
	buf := []byte("abc")
	_ = m.Save("k", buf)
	buf[0] = 'z'
	data, _, _ := m.Load("k")
	if string(data) != "abc" {
		t.Fatalf("stored value aliased caller buffer: %q", data)
	}
}
