package world

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds every constant the simulation reads.
// Fields absent from a YAML file keep their defaults.
type Tuning struct {
	WorldWidth  float64 `yaml:"world_width"`
	WorldHeight float64 `yaml:"world_height"`

	RoverSpeed float64 `yaml:"rover_speed"` // world units per second

	MaxEnergy      float64 `yaml:"max_energy"`
	MovementDrain  float64 `yaml:"movement_drain"`  // energy per second while moving
	SolarCharge    float64 `yaml:"solar_charge"`    // energy per second while stationary
	MaxRegolith    float64 `yaml:"max_regolith"`
	CollectionRate float64 `yaml:"collection_rate"` // regolith per second while moving

	BatchSize      int `yaml:"batch_size"` // regolith consumed and ingots produced per refine
	MaxTotalIngots int `yaml:"max_total_ingots"`

	LowEnergyWarn      float64 `yaml:"low_energy_warn"`
	CriticalEnergyWarn float64 `yaml:"critical_energy_warn"`
}

// DefaultTuning returns the stock rover constants.
func DefaultTuning() Tuning {
	return Tuning{
		WorldWidth:         800,
		WorldHeight:        600,
		RoverSpeed:         200,
		MaxEnergy:          100,
		MovementDrain:      3,
		SolarCharge:        1,
		MaxRegolith:        10,
		CollectionRate:     1,
		BatchSize:          10,
		MaxTotalIngots:     20,
		LowEnergyWarn:      25,
		CriticalEnergyWarn: 10,
	}
}

// Bounds returns the rectangle the rover is confined to.
func (t Tuning) Bounds() Bounds {
	return Bounds{Width: t.WorldWidth, Height: t.WorldHeight}
}

// Center returns the default rover spawn point.
func (t Tuning) Center() (float64, float64) {
	return t.WorldWidth / 2, t.WorldHeight / 2
}

// Validate reports the first tuning value that cannot drive a session.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"world_width", t.WorldWidth},
		{"world_height", t.WorldHeight},
		{"max_energy", t.MaxEnergy},
		{"max_regolith", t.MaxRegolith},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%s must be positive, got %v", p.name, p.v)
		}
	}
	rates := []struct {
		name string
		v    float64
	}{
		{"rover_speed", t.RoverSpeed},
		{"movement_drain", t.MovementDrain},
		{"solar_charge", t.SolarCharge},
		{"collection_rate", t.CollectionRate},
	}
	for _, r := range rates {
		if r.v < 0 || math.IsNaN(r.v) || math.IsInf(r.v, 0) {
			return fmt.Errorf("%s must be a finite non-negative rate, got %v", r.name, r.v)
		}
	}
	if t.BatchSize <= 0 {
		return errors.New("batch_size must be positive")
	}
	if t.MaxTotalIngots < t.BatchSize {
		return fmt.Errorf("max_total_ingots (%d) is below batch_size (%d)", t.MaxTotalIngots, t.BatchSize)
	}
	return nil
}

// ParseTuning overlays YAML onto the defaults.
func ParseTuning(raw []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

// LoadTuning reads a tuning file. An empty path yields the defaults.
func LoadTuning(path string) (Tuning, error) {
	if path == "" {
		return DefaultTuning(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return DefaultTuning(), err
	}
	return ParseTuning(raw)
}
