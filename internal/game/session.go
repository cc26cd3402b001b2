package game

import (
	"fmt"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/art3mis-rover/art3mis/internal/world"
)

// commsWidth is the wrap width of comms log lines.
const commsWidth = 32

// Phase is the session lifecycle state.
type Phase uint8

const (
	PhaseActive Phase = iota
	PhaseOver         // energy ran out; ticks are ignored until Restart
)

func (p Phase) String() string {
	if p == PhaseOver {
		return "over"
	}
	return "active"
}

// Actions are edge-triggered requests: each flag fires once per press.
type Actions struct {
	Process bool
	Drop    [MaterialCount]bool
}

// Input is the per-frame snapshot the frontend assembles before Tick.
type Input struct {
	Intent  Intent
	Actions Actions
}

// Dropped is the ECS component marking an ingot left on the surface.
type Dropped struct {
	Material Material
}

// DroppedItem records one ingot left on the surface. Never mutated.
type DroppedItem struct {
	Material Material
	Position Position
}

// TickResult reports what a single Tick did.
type TickResult struct {
	Moved    bool
	Position Position
	Refined  bool
	Batch    Batch
	Dropped  []DroppedItem
	GameOver bool
	SaveErr  error // position write failed; the session carries on
}

// Snapshot is a read-only copy of the state the presentation layer draws.
type Snapshot struct {
	Energy, MaxEnergy     float64
	Regolith, MaxRegolith float64
	Ingots                [MaterialCount]int
	MaxIngots             int
	Position              Position
	Phase                 Phase
	Ticks                 uint64
	DroppedCount          int
}

// Session is one rover run. It owns all gameplay state.
type Session struct {
	Tuning    world.Tuning
	Resources Resources
	Inventory Inventory
	Log       *MessageLog
	Phase     Phase
	Ticks     uint64

	store   Store
	rng     Rand
	loadErr error

	ecs        *ecs.World
	rover      ecs.Entity
	posMap     *ecs.Map[Position]
	dropMap    *ecs.Map2[Position, Dropped]
	dropFilter *ecs.Filter2[Position, Dropped]
	drops      int
}

// NewSession starts a run. The rover spawns at the stored position, or at
// the world center when none is stored. A nil store disables persistence;
// a nil rng falls back to a fixed seed.
func NewSession(t world.Tuning, store Store, rng Rand) *Session {
	if rng == nil {
		rng = NewRand(1)
	}
	s := &Session{
		Tuning: t,
		store:  store,
		rng:    rng,
	}
	s.reset()
	return s
}

// Restart reinitializes the run. Resources, hold, dropped items and log
// start over; the rover keeps its persisted position.
func (s *Session) Restart() {
	s.reset()
}

func (s *Session) reset() {
	pos, err := LoadPosition(s.store, s.Tuning)
	if s.store == nil && s.ecs != nil {
		pos = s.Position()
	}

	w := ecs.NewWorld(64)

	s.ecs = w
	s.posMap = ecs.NewMap[Position](w)
	s.dropMap = ecs.NewMap2[Position, Dropped](w)
	s.dropFilter = ecs.NewFilter2[Position, Dropped](w)
	s.rover = ecs.NewMap2[Position, RoverControlled](w).NewEntity(&pos, &RoverControlled{})
	s.drops = 0
	s.loadErr = err

	s.Resources = NewRoverResources(s.Tuning)
	s.Inventory = NewInventory(s.Tuning.MaxTotalIngots)
	s.Phase = PhaseActive
	s.Ticks = 0

	s.Log = NewMessageLog(50, commsWidth)
	s.Log.Add("Rover online. Solar array deployed.", MsgInfo)
	s.Log.Add("Drive to collect regolith, stop to recharge.", MsgInfo)
}

// LoadErr returns why the stored position was rejected at the last
// (re)start, or nil.
func (s *Session) LoadErr() error { return s.loadErr }

// Over reports whether the run has ended.
func (s *Session) Over() bool { return s.Phase == PhaseOver }

// Position returns the rover's current world position.
func (s *Session) Position() Position {
	return *s.posMap.Get(s.rover)
}

// Tick advances the simulation by dt seconds.
//
// Order: move, drain/charge, refine, drop. The tick that empties the
// cell ends the run and skips the remaining steps. Once over, Tick
// changes nothing.
func (s *Session) Tick(in Input, dt float64) TickResult {
	if s.Phase == PhaseOver {
		return TickResult{Position: s.Position()}
	}
	if !(dt > 0) || math.IsInf(dt, 1) {
		dt = 0
	}
	s.Ticks++

	var res TickResult
	pos := s.posMap.Get(s.rover)
	next, moved := Step(*pos, in.Intent, dt, s.Tuning.RoverSpeed, s.Tuning.Bounds())
	*pos = next
	res.Moved = moved
	res.Position = next
	if moved {
		res.SaveErr = SavePosition(s.store, next)
	}

	before := s.Resources.Energy
	if s.Resources.Apply(moved, dt, s.Tuning) {
		s.Phase = PhaseOver
		res.GameOver = true
		s.Log.Add("ENERGY DEPLETED. Rover offline.", MsgCritical)
		return res
	}
	s.checkWarnings(before)

	if in.Actions.Process {
		res.Batch, res.Refined = s.refine()
	}
	for _, m := range Materials() {
		if !in.Actions.Drop[m] {
			continue
		}
		if item, ok := s.drop(m); ok {
			res.Dropped = append(res.Dropped, item)
		}
	}
	return res
}

// checkWarnings logs a warning when energy falls through a threshold.
func (s *Session) checkWarnings(before float64) {
	e := s.Resources.Energy
	switch {
	case before >= s.Tuning.CriticalEnergyWarn && e < s.Tuning.CriticalEnergyWarn:
		s.Log.Add(fmt.Sprintf("Power critical: %d%%. Stop now.", s.Resources.EnergyPct()), MsgCritical)
	case before >= s.Tuning.LowEnergyWarn && e < s.Tuning.LowEnergyWarn:
		s.Log.Add(fmt.Sprintf("Power low: %d%%.", s.Resources.EnergyPct()), MsgWarning)
	}
}

func (s *Session) refine() (Batch, bool) {
	b, ok := Refine(&s.Resources, &s.Inventory, s.rng, s.Tuning)
	if !ok {
		return b, false
	}
	s.Log.Add(fmt.Sprintf("Refined: %s +%d %s +%d %s +%d.",
		Aluminum.Symbol(), b[Aluminum], Iron.Symbol(), b[Iron], Silicon.Symbol(), b[Silicon]), MsgHaul)
	return b, true
}

// drop leaves one ingot at the rover's position.
func (s *Session) drop(m Material) (DroppedItem, bool) {
	if !s.Inventory.Withdraw(m) {
		return DroppedItem{}, false
	}
	item := DroppedItem{Material: m, Position: s.Position()}
	pos := item.Position
	s.dropMap.NewEntity(&pos, &Dropped{Material: m})
	s.drops++
	s.Log.Add(fmt.Sprintf("Dropped 1 %s.", m), MsgInfo)
	return item, true
}

// DroppedItems returns every ingot dropped this run, oldest first.
func (s *Session) DroppedItems() []DroppedItem {
	items := make([]DroppedItem, 0, s.drops)
	query := s.dropFilter.Query()
	for query.Next() {
		pos, d := query.Get()
		items = append(items, DroppedItem{Material: d.Material, Position: *pos})
	}
	return items
}

// Snapshot copies the presentation-facing state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Energy:       s.Resources.Energy,
		MaxEnergy:    s.Resources.MaxEnergy,
		Regolith:     s.Resources.Regolith,
		MaxRegolith:  s.Resources.MaxRegolith,
		Ingots:       s.Inventory.Counts(),
		MaxIngots:    s.Inventory.Capacity(),
		Position:     s.Position(),
		Phase:        s.Phase,
		Ticks:        s.Ticks,
		DroppedCount: s.drops,
	}
}

// CheckInvariants returns an error describing the first broken invariant.
// A non-nil result is a bug in the simulation, never a player condition.
func (s *Session) CheckInvariants() error {
	r := &s.Resources
	if r.Energy < 0 || r.Energy > r.MaxEnergy || math.IsNaN(r.Energy) {
		return fmt.Errorf("energy %v outside [0, %v]", r.Energy, r.MaxEnergy)
	}
	if r.Regolith < 0 || r.Regolith > r.MaxRegolith || math.IsNaN(r.Regolith) {
		return fmt.Errorf("regolith %v outside [0, %v]", r.Regolith, r.MaxRegolith)
	}
	for _, m := range Materials() {
		if c := s.Inventory.Count(m); c < 0 {
			return fmt.Errorf("%s count %d is negative", m, c)
		}
	}
	if total := s.Inventory.Total(); total > s.Inventory.Capacity() {
		return fmt.Errorf("hold holds %d ingots, capacity %d", total, s.Inventory.Capacity())
	}
	p := s.Position()
	if !s.Tuning.Bounds().Contains(p.X, p.Y) {
		return fmt.Errorf("rover at (%v, %v) outside world", p.X, p.Y)
	}
	if s.Phase == PhaseActive && r.Energy == 0 {
		return fmt.Errorf("session active with empty cell")
	}
	return nil
}
