// Package runner implements Peanut Runner, a side-scrolling game where a jar
// of peanut butter jumps over hazards and collects peanuts for points.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/peanut-runner/internal/core"
	"github.com/vovakirdan/peanut-runner/internal/registry"
)

// Replay button geometry, relative to the surface center.
const (
	ButtonWidth   = 120.0
	ButtonHeight  = 40.0
	ButtonOffsetY = 80.0
)

// ReplayButton returns the clickable replay area for a width x height surface.
func ReplayButton(width, height float64) core.Box {
	return core.NewBox(width/2-ButtonWidth/2, height/2+ButtonOffsetY, ButtonWidth, ButtonHeight)
}

// Game is one play session: it waits for assets, runs the world, and
// restarts it when the replay button is clicked after a run ends.
type Game struct {
	id      string
	title   string
	variant core.Variant
	runtime core.RuntimeConfig
	world   *World
	gate    *AssetGate
	phase   core.Phase
	sprites map[string]core.Sprite
	tick    uint64
}

// New creates a game for the given variant. Call Init before stepping.
func New(id, title string, variant core.Variant) *Game {
	return &Game{
		id:      id,
		title:   title,
		variant: variant,
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.title
}

// Variant returns the enabled optional features.
func (g *Game) Variant() core.Variant {
	return g.variant
}

// Assets lists the assets required before play starts.
func (g *Game) Assets() []string {
	return AssetNames(g.variant)
}

// Init creates a fresh world and waits for assets.
func (g *Game) Init(runtime core.RuntimeConfig) {
	if runtime.SurfaceW <= 0 || runtime.SurfaceH <= 0 {
		def := core.DefaultConfig()
		runtime.SurfaceW, runtime.SurfaceH = def.SurfaceW, def.SurfaceH
	}
	g.runtime = runtime
	g.world = NewWorld(runtime.SurfaceW, runtime.SurfaceH, g.variant, rand.New(rand.NewSource(runtime.Seed))) //nolint:gosec // gameplay randomness
	g.gate = NewAssetGate(g.Assets(), runtime.AssetTimeout)
	g.sprites = make(map[string]core.Sprite)
	g.phase = core.PhaseLoading
	g.tick = 0
}

// AssetLoaded records a finished asset and starts play once all are in.
func (g *Game) AssetLoaded(name string, art core.Sprite) {
	if g.gate.Complete(name) {
		g.sprites[name] = art
	}
	g.startIfReady()
}

// startIfReady leaves the loading phase exactly once.
func (g *Game) startIfReady() {
	if g.phase == core.PhaseLoading && g.gate.Ready() {
		g.phase = core.PhaseRunning
	}
}

// Step advances the game by one tick.
func (g *Game) Step(keys core.KeyState) core.StepResult {
	g.tick++

	switch g.phase {
	case core.PhaseLoading:
		g.gate.Tick()
		g.startIfReady()
	case core.PhaseRunning:
		g.world.Advance(keys)
		if !g.world.Running() {
			g.phase = core.PhaseEnded
		}
	}

	return core.StepResult{State: g.State(), Frame: g.Frame()}
}

// Click restarts the game if the run has ended and (x, y) hits the replay button.
func (g *Game) Click(x, y float64) bool {
	if g.phase != core.PhaseEnded {
		return false
	}
	if !ReplayButton(g.runtime.SurfaceW, g.runtime.SurfaceH).Contains(x, y) {
		return false
	}
	g.Reset()
	return true
}

// Reset restores the player, clears every entity and resumes play.
func (g *Game) Reset() {
	g.world.Reset()
	g.phase = core.PhaseRunning
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// World exposes the simulated playfield.
func (g *Game) World() *World {
	return g.world
}

// MissingAssets lists assets that never loaded. Non-empty only after the
// loading timeout let the game start without them.
func (g *Game) MissingAssets() []string {
	if !g.gate.TimedOut() {
		return nil
	}
	return g.gate.Missing()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.player.Score,
		GameOver: g.phase == core.PhaseEnded,
		Loading:  g.phase == core.PhaseLoading,
	}
}

// Frame returns the current renderable state.
func (g *Game) Frame() core.Frame {
	p := g.world.player
	f := core.Frame{
		Tick:   g.tick,
		Phase:  g.phase,
		Width:  g.runtime.SurfaceW,
		Height: g.runtime.SurfaceH,
		Score:  p.Score,
		Player: core.Object{
			Kind:     AssetPlayer,
			X:        p.X,
			Y:        p.Y,
			W:        p.W,
			H:        p.H,
			Mirrored: p.FacingLeft,
		},
	}

	for _, s := range g.world.Stores() {
		for _, e := range s.Items() {
			f.Entities = append(f.Entities, core.ObjectAt(e.Kind.String(), e.Box()))
		}
	}

	if g.phase == core.PhaseEnded {
		btn := core.ObjectAt("button", ReplayButton(f.Width, f.Height))
		f.Button = &btn
	}

	return f
}

// Register the variants with the registry
func init() {
	registry.Register("classic", func() registry.Game {
		return New("classic", "Peanut Runner", core.Variant{})
	})
	registry.Register("super", func() registry.Game {
		return New("super", "Peanut Runner Deluxe", core.Variant{StrongJump: true, BonusCollectible: true})
	})
}
