package runner

import "github.com/vovakirdan/peanut-runner/internal/core"

// Physics constants, in world units per tick.
const (
	Gravity        = 0.5
	JumpForce      = -12.0
	SuperJumpForce = -16.0
	MovementSpeed  = 5.0

	// DespawnX is the x position left of the surface past which entities are dropped.
	DespawnX = -30.0
)

// Source supplies uniform random numbers in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// World is the simulated playfield: the player, the entity stores and the
// running flag. It is advanced one tick at a time by Advance.
type World struct {
	width   float64
	height  float64
	variant core.Variant
	rng     Source

	player  Player
	peanuts *Store
	butter  *Store // nil unless the variant has the bonus collectible
	hazards *Store
	running bool
}

// NewWorld creates a running world for a width x height surface.
func NewWorld(width, height float64, variant core.Variant, rng Source) *World {
	w := &World{
		width:   width,
		height:  height,
		variant: variant,
		rng:     rng,
		peanuts: NewStore(KindPeanut),
		hazards: NewStore(KindHazard),
	}
	if variant.BonusCollectible {
		w.butter = NewStore(KindButter)
	}
	w.Reset()
	return w
}

// Reset restores the player, empties every store and resumes running.
func (w *World) Reset() {
	w.player.reset()
	for _, s := range w.Stores() {
		s.Clear()
	}
	w.running = true
}

// Running reports whether the run is still in progress.
func (w *World) Running() bool {
	return w.running
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Stores returns the entity stores in update order.
func (w *World) Stores() []*Store {
	if w.butter != nil {
		return []*Store{w.butter, w.peanuts, w.hazards}
	}
	return []*Store{w.peanuts, w.hazards}
}

// Store returns the store for a kind, or nil if the variant lacks it.
func (w *World) Store(k Kind) *Store {
	switch k {
	case KindPeanut:
		return w.peanuts
	case KindButter:
		return w.butter
	case KindHazard:
		return w.hazards
	}
	return nil
}

// Floor returns the highest y the player can reach while standing.
func (w *World) Floor() float64 {
	return w.height - w.player.H
}

// Advance runs one simulation tick. It does nothing once the run has ended.
func (w *World) Advance(keys core.KeyState) {
	if !w.running {
		return
	}

	w.movePlayer(keys)

	for _, s := range w.Stores() {
		w.updateStore(s)
	}

	w.trySpawn(w.peanuts)
	w.trySpawn(w.hazards)
	if w.butter != nil {
		w.trySpawn(w.butter)
	}
}

// movePlayer applies input, gravity and the ground clamp.
func (w *World) movePlayer(keys core.KeyState) {
	p := &w.player

	// Both directions are checked, so right wins the facing when both are held.
	if keys.IsPressed(core.KeyLeft) {
		p.X -= MovementSpeed
		p.FacingLeft = true
	}
	if keys.IsPressed(core.KeyRight) {
		p.X += MovementSpeed
		p.FacingLeft = false
	}

	if !p.Jumping {
		if w.variant.StrongJump && keys.IsPressed(core.KeySpace) {
			p.VelocityY = SuperJumpForce
			p.Jumping = true
		} else if keys.IsPressed(core.KeyUp) {
			p.VelocityY = JumpForce
			p.Jumping = true
		}
	}

	p.VelocityY += Gravity
	p.Y += p.VelocityY

	if floor := w.Floor(); p.Y > floor {
		p.Y = floor
		p.VelocityY = 0
		p.Jumping = false
	}
}

// updateStore moves every entity in s, resolves contact with the player and
// drops entities that left the surface.
func (w *World) updateStore(s *Store) {
	kind := s.Kind()
	playerBox := w.player.Box()

	for i := s.Len() - 1; i >= 0; i-- {
		e := &s.items[i]
		e.X -= kind.Speed()

		if core.Collides(playerBox, e.Box()) {
			s.RemoveAt(i)
			if kind.IsCollectible() {
				w.player.Score += kind.Reward()
			} else {
				w.running = false
			}
			continue
		}

		if e.X < DespawnX {
			s.RemoveAt(i)
		}
	}
}

// trySpawn adds an entity to s with the kind's probability when s has room.
func (w *World) trySpawn(s *Store) {
	kind := s.Kind()
	if w.rng.Float64() >= kind.Probability() || s.Full() {
		return
	}

	spec := kinds[kind]
	e := Entity{
		Kind: kind,
		X:    w.width + w.rng.Float64()*spec.spreadX,
		W:    spec.width,
		H:    spec.height,
	}
	if kind == KindHazard {
		e.Y = w.height - spec.height
	} else {
		e.Y = w.rng.Float64()*(w.height-100) + 50
	}
	s.Append(e)
}
