package game

import (
	"errors"
	"testing"

	"github.com/art3mis-rover/art3mis/internal/world"
)

// mapStore is an in-memory Store with injectable failures.
type mapStore struct {
	data    map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newMapStore() *mapStore {
	return &mapStore{data: map[string][]byte{}}
}

func (m *mapStore) Load(key string) ([]byte, bool, error) {
	if m.loadErr != nil {
		return nil, false, m.loadErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapStore) Save(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func TestEncodePosition_Format(t *testing.T) {
	data, err := EncodePosition(Position{X: 380, Y: 300.5})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"x":380,"y":300.5}` {
		t.Fatalf("encoded = %s", data)
	}
	p, err := DecodePosition(data)
	if err != nil {
		t.Fatal(err)
	}
	if p != (Position{380, 300.5}) {
		t.Fatalf("decoded = %+v", p)
	}
}

func TestDecodePosition_Rejects(t *testing.T) {
	bad := []string{
		``,
		`not json`,
		`[1,2]`,
		`{"x":1}`,
		`{"x":"1","y":2}`,
		`{"x":1,"y":null}`,
	}
	for _, raw := range bad {
		if _, err := DecodePosition([]byte(raw)); err == nil {
			t.Errorf("DecodePosition(%q) should fail", raw)
		}
	}
}

func TestLoadPosition_Fallbacks(t *testing.T) {
	tu := world.DefaultTuning()
	center := Position{400, 300}

	if p, err := LoadPosition(nil, tu); p != center || err != nil {
		t.Fatalf("nil store: %+v, %v", p, err)
	}

	s := newMapStore()
	if p, err := LoadPosition(s, tu); p != center || err != nil {
		t.Fatalf("empty store: %+v, %v", p, err)
	}

	s.data[PositionKey] = []byte(`{"x":"oops"}`)
	if p, err := LoadPosition(s, tu); p != center || err == nil {
		t.Fatalf("corrupt value: %+v, %v", p, err)
	}

	s.loadErr = errors.New("disk gone")
	if p, err := LoadPosition(s, tu); p != center || err == nil {
		t.Fatalf("load failure: %+v, %v", p, err)
	}
}

func TestLoadPosition_ClampsIntoWorld(t *testing.T) {
	s := newMapStore()
	s.data[PositionKey] = []byte(`{"x":-40,"y":9000}`)
	p, err := LoadPosition(s, world.DefaultTuning())
	if err != nil {
		t.Fatal(err)
	}
	if p != (Position{0, 600}) {
		t.Fatalf("p = %+v, want (0,600)", p)
	}
}

func TestSavePosition_WrapsErrors(t *testing.T) {
	s := newMapStore()
	boom := errors.New("read-only")
	s.saveErr = boom
	err := SavePosition(s, Position{1, 2})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
	if err := SavePosition(nil, Position{1, 2}); err != nil {
		t.Fatalf("nil store should be a no-op, got %v", err)
	}
}
