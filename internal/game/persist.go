package game

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/art3mis-rover/art3mis/internal/world"
)

// PositionKey is the store key the rover position lives under.
const PositionKey = "art3mis-rover-position"

// Store is a key-value side channel for state that outlives a session.
type Store interface {
	// Load returns the value under key; ok is false if nothing is stored.
	Load(key string) (data []byte, ok bool, err error)
	Save(key string, data []byte) error
}

const positionSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["x", "y"],
	"properties": {
		"x": {"type": "number"},
		"y": {"type": "number"}
	}
}`

var positionSchema = jsonschema.MustCompileString("position.schema.json", positionSchemaJSON)

type storedPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EncodePosition serializes a position as {"x":..,"y":..}.
func EncodePosition(p Position) ([]byte, error) {
	return json.Marshal(storedPosition{X: p.X, Y: p.Y})
}

// DecodePosition parses and validates a stored position.
func DecodePosition(data []byte) (Position, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Position{}, fmt.Errorf("decode position: %w", err)
	}
	if err := positionSchema.Validate(doc); err != nil {
		return Position{}, fmt.Errorf("validate position: %w", err)
	}
	var sp storedPosition
	if err := json.Unmarshal(data, &sp); err != nil {
		return Position{}, fmt.Errorf("decode position: %w", err)
	}
	return Position{X: sp.X, Y: sp.Y}, nil
}

// LoadPosition reads the rover position from the store. Anything missing,
// unreadable or malformed yields the world center; err carries the reason
// for callers that want to log it, and the returned position is usable
// either way. Stored positions outside the world are clamped.
func LoadPosition(s Store, t world.Tuning) (Position, error) {
	cx, cy := t.Center()
	center := Position{X: cx, Y: cy}
	if s == nil {
		return center, nil
	}
	data, ok, err := s.Load(PositionKey)
	if err != nil {
		return center, fmt.Errorf("load %s: %w", PositionKey, err)
	}
	if !ok {
		return center, nil
	}
	p, err := DecodePosition(data)
	if err != nil {
		return center, err
	}
	p.X, p.Y = t.Bounds().Clamp(p.X, p.Y)
	return p, nil
}

// SavePosition writes the rover position to the store.
func SavePosition(s Store, p Position) error {
	if s == nil {
		return nil
	}
	data, err := EncodePosition(p)
	if err != nil {
		return fmt.Errorf("encode position: %w", err)
	}
	if err := s.Save(PositionKey, data); err != nil {
		return fmt.Errorf("save %s: %w", PositionKey, err)
	}
	return nil
}
