package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/art3mis-rover/art3mis/internal/world"
)

func newTestSession(t *testing.T, store Store) *Session {
	t.Helper()
	s := NewSession(world.DefaultTuning(), store, NewRand(42))
	if err := s.CheckInvariants(); err != nil {
		t.Fatalf("fresh session: %v", err)
	}
	return s
}

func mustInvariants(t *testing.T, s *Session) {
	t.Helper()
	if err := s.CheckInvariants(); err != nil {
		t.Fatalf("invariant violated after tick %d: %v", s.Ticks, err)
	}
}

func TestSession_InitialState(t *testing.T) {
	s := newTestSession(t, newMapStore())
	snap := s.Snapshot()
	if snap.Energy != 100 || snap.Regolith != 0 || snap.Ingots != [MaterialCount]int{} {
		t.Fatalf("unexpected start: %+v", snap)
	}
	if snap.Position != (Position{400, 300}) {
		t.Fatalf("spawn = %+v, want world center", snap.Position)
	}
	if snap.Phase != PhaseActive || s.Over() {
		t.Fatal("session should start active")
	}
	if s.Log.Len() == 0 {
		t.Fatal("expected startup comms")
	}
}

func TestSession_SpawnsAtStoredPosition(t *testing.T) {
	store := newMapStore()
	store.data[PositionKey] = []byte(`{"x":12.5,"y":34}`)
	s := newTestSession(t, store)
	if s.Position() != (Position{12.5, 34}) {
		t.Fatalf("spawn = %+v", s.Position())
	}
	if s.LoadErr() != nil {
		t.Fatalf("unexpected load error: %v", s.LoadErr())
	}
}

func TestSession_CorruptStoreFallsBackToCenter(t *testing.T) {
	store := newMapStore()
	store.data[PositionKey] = []byte(`{{{`)
	s := newTestSession(t, store)
	if s.Position() != (Position{400, 300}) {
		t.Fatalf("spawn = %+v, want center", s.Position())
	}
	if s.LoadErr() == nil {
		t.Fatal("expected LoadErr to explain the fallback")
	}
}

func TestSession_DriveTick(t *testing.T) {
	store := newMapStore()
	s := newTestSession(t, store)

	res := s.Tick(Input{Intent: Intent{Left: true}}, 0.1)
	if !res.Moved || res.Position != (Position{380, 300}) {
		t.Fatalf("result = %+v", res)
	}
	if got := string(store.data[PositionKey]); got != `{"x":380,"y":300}` {
		t.Fatalf("stored = %s", got)
	}
	mustInvariants(t, s)

	s2 := newTestSession(t, nil)
	s2.Tick(Input{Intent: Intent{Down: true}}, 1)
	if s2.Resources.Energy != 97 || s2.Resources.Regolith != 1 {
		t.Fatalf("energy=%v regolith=%v, want 97/1", s2.Resources.Energy, s2.Resources.Regolith)
	}
}

func TestSession_IdleTickDoesNotSave(t *testing.T) {
	store := newMapStore()
	s := newTestSession(t, store)
	s.Resources.Energy = 50
	s.Tick(Input{}, 10)
	if s.Resources.Energy != 60 {
		t.Fatalf("energy = %v, want 60", s.Resources.Energy)
	}
	if store.saves != 0 {
		t.Fatalf("idle tick saved %d times", store.saves)
	}
}

func TestSession_ZeroAndNegativeDt(t *testing.T) {
	s := newTestSession(t, nil)
	s.Resources.Energy = 42
	s.Resources.Regolith = 3
	before := s.Snapshot()
	for _, dt := range []float64{0, -1} {
		s.Tick(Input{Intent: Intent{Right: true}}, dt)
	}
	after := s.Snapshot()
	if after.Energy != before.Energy || after.Regolith != before.Regolith || after.Position != before.Position {
		t.Fatalf("dt<=0 changed state: %+v -> %+v", before, after)
	}
}

func TestSession_SaveErrorIsReportedNotFatal(t *testing.T) {
	store := newMapStore()
	boom := errors.New("quota exceeded")
	store.saveErr = boom
	s := newTestSession(t, store)
	res := s.Tick(Input{Intent: Intent{Up: true}}, 0.1)
	if !errors.Is(res.SaveErr, boom) {
		t.Fatalf("SaveErr = %v", res.SaveErr)
	}
	if s.Position() != (Position{400, 280}) {
		t.Fatalf("rover should still move, at %+v", s.Position())
	}
}

func TestSession_RefineOnProcess(t *testing.T) {
	s := newTestSession(t, nil)
	s.Resources.Regolith = 10
	res := s.Tick(Input{Actions: Actions{Process: true}}, 0)
	if !res.Refined || res.Batch.Total() != 10 {
		t.Fatalf("result = %+v", res)
	}
	if s.Resources.Regolith != 0 || s.Inventory.Total() != 10 {
		t.Fatalf("regolith=%v total=%d", s.Resources.Regolith, s.Inventory.Total())
	}
	last := s.Log.Recent(1)[0]
	if !strings.HasPrefix(last.Text, "Refined:") || last.Priority != MsgHaul {
		t.Fatalf("last comms = %+v", last)
	}
}

func TestSession_RefineBelowBatchIsSilent(t *testing.T) {
	s := newTestSession(t, nil)
	s.Resources.Regolith = 9
	logLen := s.Log.Len()
	res := s.Tick(Input{Actions: Actions{Process: true}}, 0)
	if res.Refined {
		t.Fatal("refine should not fire")
	}
	if s.Resources.Regolith != 9 || s.Inventory.Total() != 0 || s.Log.Len() != logLen {
		t.Fatal("failed refine changed state")
	}
}

func TestSession_DropAtRoverPosition(t *testing.T) {
	s := newTestSession(t, nil)
	s.Inventory.Deposit(Silicon, 2)

	var in Input
	in.Intent = Intent{Right: true}
	in.Actions.Drop[Silicon] = true
	res := s.Tick(in, 0.1)

	if len(res.Dropped) != 1 {
		t.Fatalf("dropped %d items, want 1", len(res.Dropped))
	}
	want := DroppedItem{Material: Silicon, Position: Position{420, 300}}
	if res.Dropped[0] != want {
		t.Fatalf("dropped = %+v, want %+v", res.Dropped[0], want)
	}
	if s.Inventory.Count(Silicon) != 1 {
		t.Fatalf("silicon = %d, want 1", s.Inventory.Count(Silicon))
	}
	items := s.DroppedItems()
	if len(items) != 1 || items[0] != want {
		t.Fatalf("DroppedItems = %+v", items)
	}
	if s.Snapshot().DroppedCount != 1 {
		t.Fatal("snapshot should count the drop")
	}
}

func TestSession_DropEmptyStackIsNoop(t *testing.T) {
	s := newTestSession(t, nil)
	s.Inventory.Deposit(Iron, 1)
	before := s.Snapshot()
	logLen := s.Log.Len()

	var in Input
	in.Actions.Drop[Aluminum] = true
	res := s.Tick(in, 0)

	if len(res.Dropped) != 0 || len(s.DroppedItems()) != 0 {
		t.Fatal("nothing should be dropped")
	}
	after := s.Snapshot()
	if after.Ingots != before.Ingots || after.Energy != before.Energy || s.Log.Len() != logLen {
		t.Fatalf("state changed: %+v -> %+v", before, after)
	}
}

func TestSession_DropAllMaterialsOneTick(t *testing.T) {
	s := newTestSession(t, nil)
	for _, m := range Materials() {
		s.Inventory.Deposit(m, 1)
	}
	var in Input
	for _, m := range Materials() {
		in.Actions.Drop[m] = true
	}
	res := s.Tick(in, 0)
	if len(res.Dropped) != 3 || s.Inventory.Total() != 0 {
		t.Fatalf("dropped %d, remaining %d", len(res.Dropped), s.Inventory.Total())
	}
	for i, m := range Materials() {
		if res.Dropped[i].Material != m {
			t.Fatalf("drop %d = %s, want %s", i, res.Dropped[i].Material, m)
		}
	}
}

func TestSession_DepletionEndsRun(t *testing.T) {
	s := newTestSession(t, nil)
	s.Resources.Energy = 0.5
	s.Resources.Regolith = 10

	res := s.Tick(Input{Intent: Intent{Left: true}, Actions: Actions{Process: true}}, 1)
	if !res.GameOver || !s.Over() {
		t.Fatal("expected game over")
	}
	if s.Resources.Energy != 0 {
		t.Fatalf("energy = %v, want 0", s.Resources.Energy)
	}
	if res.Refined || s.Inventory.Total() != 0 {
		t.Fatal("refinery should not run on the depleting tick")
	}
	if last := s.Log.Recent(1)[0]; last.Priority != MsgCritical {
		t.Fatalf("last comms = %+v", last)
	}
	mustInvariants(t, s)

	// Over: ticks are ignored.
	frozen := s.Snapshot()
	res = s.Tick(Input{Intent: Intent{Right: true}}, 5)
	if res.Moved || res.GameOver || s.Snapshot() != frozen {
		t.Fatalf("over session changed: %+v", res)
	}
}

func TestSession_NearlyEmptyDoesNotEnd(t *testing.T) {
	s := newTestSession(t, nil)
	s.Resources.Energy = 0.0001
	if res := s.Tick(Input{}, 0); res.GameOver {
		t.Fatal("0.0001 energy must not end the run")
	}
}

func TestSession_RestartKeepsPosition(t *testing.T) {
	store := newMapStore()
	s := newTestSession(t, store)
	s.Resources.Regolith = 10
	s.Tick(Input{Actions: Actions{Process: true}}, 0)
	var in Input
	in.Intent = Intent{Up: true}
	in.Actions.Drop[Iron] = s.Inventory.Count(Iron) > 0
	s.Tick(in, 0.5)
	pos := s.Position()

	s.Resources.Energy = 0.1
	s.Tick(Input{Intent: Intent{Up: true}}, 1)
	if !s.Over() {
		t.Fatal("expected game over")
	}
	over := s.Position()

	s.Restart()
	snap := s.Snapshot()
	if snap.Phase != PhaseActive || snap.Energy != 100 || snap.Regolith != 0 || snap.Ingots != [MaterialCount]int{} {
		t.Fatalf("restart did not reset resources: %+v", snap)
	}
	if len(s.DroppedItems()) != 0 || snap.Ticks != 0 {
		t.Fatal("restart should clear dropped items and ticks")
	}
	if snap.Position != over || snap.Position == pos {
		t.Fatalf("restart position = %+v, want persisted %+v", snap.Position, over)
	}
}

func TestSession_RestartWithoutStoreKeepsPosition(t *testing.T) {
	s := newTestSession(t, nil)
	s.Tick(Input{Intent: Intent{Left: true, Up: true}}, 1)
	pos := s.Position()
	s.Restart()
	if s.Position() != pos {
		t.Fatalf("position = %+v, want %+v", s.Position(), pos)
	}
}

func TestSession_LowPowerWarnings(t *testing.T) {
	s := newTestSession(t, nil)
	s.Resources.Energy = 26
	s.Tick(Input{Intent: Intent{Right: true}}, 1)
	if last := s.Log.Recent(1)[0]; last.Priority != MsgWarning || !strings.HasPrefix(last.Text, "Power low") {
		t.Fatalf("last comms = %+v", last)
	}
	s.Resources.Energy = 11
	s.Tick(Input{Intent: Intent{Left: true}}, 1)
	if last := s.Log.Recent(1)[0]; last.Priority != MsgCritical {
		t.Fatalf("last comms = %+v", last)
	}
}

// A long scripted drive with every action keeps every invariant.
func TestSession_RandomDriveKeepsInvariants(t *testing.T) {
	s := newTestSession(t, newMapStore())
	rng := NewRand(2024)
	for i := 0; i < 5000 && !s.Over(); i++ {
		var in Input
		in.Intent = Intent{
			Up:    rng.IntN(3) == 0,
			Down:  rng.IntN(3) == 0,
			Left:  rng.IntN(3) == 0,
			Right: rng.IntN(3) == 0,
		}
		in.Actions.Process = rng.IntN(10) == 0
		for _, m := range Materials() {
			in.Actions.Drop[m] = rng.IntN(20) == 0
		}
		dt := float64(rng.IntN(50)) / 1000
		before := s.Inventory.Total()
		res := s.Tick(in, dt)
		mustInvariants(t, s)
		if res.Refined && s.Inventory.Total() != before+10-len(res.Dropped) {
			t.Fatalf("tick %d: refine moved total %d -> %d", i, before, s.Inventory.Total())
		}
	}
}
