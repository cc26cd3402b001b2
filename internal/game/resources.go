package game

import "github.com/art3mis-rover/art3mis/internal/world"

// Resources tracks the rover's energy cell and regolith hopper.
type Resources struct {
	Energy      float64
	MaxEnergy   float64
	Regolith    float64
	MaxRegolith float64
}

// NewRoverResources creates the starting resource state: full cell, empty hopper.
func NewRoverResources(t world.Tuning) Resources {
	return Resources{
		Energy:      t.MaxEnergy,
		MaxEnergy:   t.MaxEnergy,
		MaxRegolith: t.MaxRegolith,
	}
}

// Apply advances energy and regolith by dt seconds and reports whether
// the cell is empty afterwards.
//
// Driving drains energy and scoops regolith; standing still recharges
// from the solar panels. Regolith never drops here; only the refinery
// consumes it.
func (r *Resources) Apply(moved bool, dt float64, t world.Tuning) (depleted bool) {
	if moved {
		r.Energy -= t.MovementDrain * dt
		r.Regolith = min(r.MaxRegolith, r.Regolith+t.CollectionRate*dt)
	} else {
		r.Energy += t.SolarCharge * dt
	}
	r.Energy = max(0, min(r.Energy, r.MaxEnergy))
	return r.Energy == 0
}

// EnergyPct returns the charge level as a whole percentage.
func (r *Resources) EnergyPct() int { return int(r.Energy * 100 / r.MaxEnergy) }

// HopperFull reports whether the rover can collect no more regolith.
func (r *Resources) HopperFull() bool { return r.Regolith >= r.MaxRegolith }
