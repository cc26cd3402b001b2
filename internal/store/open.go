package store

import (
	"fmt"
	"path/filepath"
)

// Backend is a store the program owns and must close.
type Backend interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, data []byte) error
	Close() error
}

// Kinds lists the accepted values for Open.
var Kinds = []string{"memory", "dir", "sqlite"}

// Open selects a backend by name. dataDir is ignored for memory.
func Open(kind, dataDir string) (Backend, error) {
	switch kind {
	case "memory":
		return NewMemory(), nil
	case "dir":
		return OpenDir(dataDir)
	case "sqlite":
		return OpenSQLite(filepath.Join(dataDir, "art3mis.db"))
	default:
		return nil, fmt.Errorf("unknown store %q (want one of %v)", kind, Kinds)
	}
}
