package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/peanut-runner/internal/core"
)

// fixedSource returns the same value for every draw.
// 0.99 never spawns anything; 0 spawns on every tick.
type fixedSource float64

func (s fixedSource) Float64() float64 { return float64(s) }

var superVariant = core.Variant{StrongJump: true, BonusCollectible: true}

func quietWorld(v core.Variant) *World {
	return NewWorld(800, 400, v, fixedSource(0.99))
}

func keys(pressed ...core.Key) core.KeyState {
	ks := core.NewKeyState()
	for _, k := range pressed {
		ks.SetPressed(k, true)
	}
	return ks
}

func TestJumpScenario(t *testing.T) {
	w := quietWorld(core.Variant{})

	w.Advance(keys(core.KeyUp))

	p := w.Player()
	if p.VelocityY != -11.5 {
		t.Errorf("VelocityY = %v, expected -11.5", p.VelocityY)
	}
	if p.Y != 288.5 {
		t.Errorf("Y = %v, expected 288.5", p.Y)
	}
	if !p.Jumping {
		t.Error("Player should be jumping")
	}

	// No new jump while airborne
	w.Advance(keys(core.KeyUp))
	if p := w.Player(); p.VelocityY != -11.0 {
		t.Errorf("VelocityY after second tick = %v, expected -11", p.VelocityY)
	}
}

func TestStrongJumpVariant(t *testing.T) {
	tests := []struct {
		name     string
		variant  core.Variant
		pressed  []core.Key
		expected float64
	}{
		{"super space", superVariant, []core.Key{core.KeySpace}, SuperJumpForce + Gravity},
		{"super space wins over up", superVariant, []core.Key{core.KeySpace, core.KeyUp}, SuperJumpForce + Gravity},
		{"super up", superVariant, []core.Key{core.KeyUp}, JumpForce + Gravity},
		{"classic space ignored", core.Variant{}, []core.Key{core.KeySpace}, Gravity},
		{"classic space falls back to up", core.Variant{}, []core.Key{core.KeySpace, core.KeyUp}, JumpForce + Gravity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := quietWorld(tc.variant)
			w.Advance(keys(tc.pressed...))
			if got := w.Player().VelocityY; got != tc.expected {
				t.Errorf("VelocityY = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestGroundClamp(t *testing.T) {
	w := quietWorld(core.Variant{})
	w.Advance(keys(core.KeyUp))

	for i := 0; i < 200; i++ {
		w.Advance(core.NewKeyState())
	}

	p := w.Player()
	if p.Y != w.Floor() {
		t.Errorf("Y = %v, expected floor %v", p.Y, w.Floor())
	}
	if p.VelocityY != 0 {
		t.Errorf("VelocityY = %v, expected 0 on the ground", p.VelocityY)
	}
	if p.Jumping {
		t.Error("Landing should clear the jumping flag")
	}
}

func TestHorizontalMovement(t *testing.T) {
	tests := []struct {
		name       string
		pressed    []core.Key
		expectedX  float64
		facingLeft bool
	}{
		{"left", []core.Key{core.KeyLeft}, PlayerStartX - MovementSpeed, true},
		{"right", []core.Key{core.KeyRight}, PlayerStartX + MovementSpeed, false},
		{"both (right wins facing)", []core.Key{core.KeyLeft, core.KeyRight}, PlayerStartX, false},
		{"none", nil, PlayerStartX, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := quietWorld(core.Variant{})
			w.Advance(keys(tc.pressed...))
			p := w.Player()
			if p.X != tc.expectedX {
				t.Errorf("X = %v, expected %v", p.X, tc.expectedX)
			}
			if p.FacingLeft != tc.facingLeft {
				t.Errorf("FacingLeft = %v, expected %v", p.FacingLeft, tc.facingLeft)
			}
		})
	}
}

func TestCollectibles(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected int
	}{
		{"peanut", KindPeanut, 10},
		{"butter", KindButter, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := quietWorld(superVariant)
			s := w.Store(tc.kind)
			s.Append(Entity{Kind: tc.kind, X: PlayerStartX + 2, Y: PlayerStartY + 10, W: 30, H: 30})

			w.Advance(core.NewKeyState())

			if got := w.Player().Score; got != tc.expected {
				t.Errorf("Score = %d, expected %d", got, tc.expected)
			}
			if s.Len() != 0 {
				t.Errorf("Collected entity should be removed, store has %d", s.Len())
			}
			if !w.Running() {
				t.Error("Collecting should not end the run")
			}
		})
	}
}

func TestRemovalDuringIteration(t *testing.T) {
	w := quietWorld(core.Variant{})
	s := w.Store(KindPeanut)

	// Two touching the player around one far away, plus one about to despawn
	s.Append(Entity{Kind: KindPeanut, X: 110, Y: 310, W: 30, H: 30})
	s.Append(Entity{Kind: KindPeanut, X: 600, Y: 100, W: 30, H: 30})
	s.Append(Entity{Kind: KindPeanut, X: 120, Y: 320, W: 30, H: 30})
	s.Append(Entity{Kind: KindPeanut, X: -29, Y: 100, W: 30, H: 30})

	w.Advance(core.NewKeyState())

	if got := w.Player().Score; got != 20 {
		t.Errorf("Score = %d, expected 20", got)
	}
	if s.Len() != 1 {
		t.Fatalf("Expected 1 peanut left, got %d", s.Len())
	}
	if got := s.Items()[0].X; got != 598 {
		t.Errorf("Remaining peanut X = %v, expected 598 (moved exactly once)", got)
	}
}

func TestHazardEndsRun(t *testing.T) {
	w := quietWorld(core.Variant{})
	p := w.Player()
	w.Store(KindHazard).Append(Entity{Kind: KindHazard, X: p.X, Y: p.Y, W: 50, H: 70})

	w.Advance(core.NewKeyState())

	if w.Running() {
		t.Fatal("Hazard contact should end the run")
	}
	if w.Store(KindHazard).Len() != 0 {
		t.Error("Hazard should be removed on contact")
	}

	// Ended world is frozen
	w.Store(KindPeanut).Append(Entity{Kind: KindPeanut, X: 500, Y: 100, W: 30, H: 30})
	before := w.Player()
	for i := 0; i < 10; i++ {
		w.Advance(keys(core.KeyRight, core.KeyUp))
	}

	if w.Player() != before {
		t.Errorf("Player changed after the run ended: %+v -> %+v", before, w.Player())
	}
	if got := w.Store(KindPeanut).Items()[0].X; got != 500 {
		t.Errorf("Entities should not move after the run ended, X = %v", got)
	}
	if w.Running() {
		t.Error("Run should stay ended until reset")
	}
}

func TestDespawn(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		startX  float64
		removed bool
	}{
		{"peanut past threshold", KindPeanut, -29, true},
		{"peanut at threshold", KindPeanut, -28, false},
		{"hazard past threshold", KindHazard, -27.5, true},
		{"hazard at threshold", KindHazard, -27, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := quietWorld(core.Variant{})
			s := w.Store(tc.kind)
			s.Append(Entity{Kind: tc.kind, X: tc.startX, Y: 0, W: 30, H: 30})

			w.Advance(core.NewKeyState())

			if removed := s.Len() == 0; removed != tc.removed {
				t.Errorf("removed = %v, expected %v", removed, tc.removed)
			}
			// Anything removed off-screen started below threshold plus speed
			if s.Len() == 0 && !(tc.startX < DespawnX+tc.kind.Speed()) {
				t.Errorf("entity at %v removed too early", tc.startX)
			}
			if w.Player().Score != 0 {
				t.Error("Despawn should not score")
			}
		})
	}
}

func TestSpawnPlacement(t *testing.T) {
	w := NewWorld(800, 400, superVariant, fixedSource(0))
	w.Advance(core.NewKeyState())

	for _, s := range w.Stores() {
		if s.Len() != 1 {
			t.Fatalf("%s store should have spawned once, got %d", s.Kind(), s.Len())
		}
		e := s.Items()[0]
		if e.X != 800 {
			t.Errorf("%s spawned at x=%v, expected 800", s.Kind(), e.X)
		}
		switch s.Kind() {
		case KindHazard:
			if e.Y != 330 || e.W != 50 || e.H != 70 {
				t.Errorf("hazard = %+v, expected ground-aligned 50x70", e)
			}
		default:
			if e.Y != 50 || e.W != 30 || e.H != 30 {
				t.Errorf("%s = %+v, expected y=50 size 30x30", s.Kind(), e)
			}
		}
	}
}

func TestSpawnRespectsCapacity(t *testing.T) {
	w := NewWorld(800, 400, superVariant, fixedSource(0))

	for i := 0; i < 60; i++ {
		w.Advance(core.NewKeyState())
		for _, s := range w.Stores() {
			if s.Len() > s.Kind().Capacity() {
				t.Fatalf("tick %d: %s store has %d, capacity %d", i, s.Kind(), s.Len(), s.Kind().Capacity())
			}
		}
	}

	for _, s := range w.Stores() {
		if s.Len() != s.Kind().Capacity() {
			t.Errorf("%s store = %d, expected to fill to %d", s.Kind(), s.Len(), s.Kind().Capacity())
		}
	}
}

func TestClassicHasNoButter(t *testing.T) {
	w := NewWorld(800, 400, core.Variant{}, fixedSource(0))
	w.Advance(core.NewKeyState())

	if w.Store(KindButter) != nil {
		t.Error("Classic variant should have no butter store")
	}
	if len(w.Stores()) != 2 {
		t.Errorf("Classic variant should have 2 stores, got %d", len(w.Stores()))
	}
}

func TestWorldReset(t *testing.T) {
	w := NewWorld(800, 400, superVariant, rand.New(rand.NewSource(7)))
	for i := 0; i < 300; i++ {
		w.Advance(keys(core.KeyRight, core.KeySpace))
	}
	w.Store(KindHazard).Append(Entity{Kind: KindHazard, X: 0, Y: 0, W: 800, H: 400})
	w.Advance(core.NewKeyState())

	w.Reset()

	expected := Player{X: PlayerStartX, Y: PlayerStartY, W: PlayerWidth, H: PlayerHeight}
	if w.Player() != expected {
		t.Errorf("Player after reset = %+v, expected %+v", w.Player(), expected)
	}
	for _, s := range w.Stores() {
		if s.Len() != 0 {
			t.Errorf("%s store should be empty after reset, has %d", s.Kind(), s.Len())
		}
	}
	if !w.Running() {
		t.Error("Reset should resume running")
	}
}

func TestScoreMonotonic(t *testing.T) {
	w := NewWorld(800, 400, superVariant, rand.New(rand.NewSource(12345)))

	last := 0
	for i := 0; i < 5000 && w.Running(); i++ {
		var in core.KeyState
		switch {
		case i%90 < 10:
			in = keys(core.KeyUp)
		case i%90 < 30:
			in = keys(core.KeyRight)
		case i%90 < 50:
			in = keys(core.KeyLeft)
		default:
			in = core.NewKeyState()
		}
		w.Advance(in)

		score := w.Player().Score
		if score < last {
			t.Fatalf("tick %d: score decreased from %d to %d", i, last, score)
		}
		if (score-last)%10 != 0 {
			t.Fatalf("tick %d: score grew by %d, not a multiple of 10", i, score-last)
		}
		last = score
	}
}
