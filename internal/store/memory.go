// Package store holds key-value backends for state that outlives a
// session. Every backend satisfies game.Store.
package store

import (
	"errors"
	"sync"
)

// ErrClosed is returned by a backend used after Close.
var ErrClosed = errors.New("store closed")

// Memory keeps values in process memory. Nothing survives a restart of
// the program, only restarts of the session.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Load(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *Memory) Close() error { return nil }
