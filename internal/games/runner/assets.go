package runner

import (
	"sort"

	"github.com/vovakirdan/peanut-runner/internal/core"
)

// Asset names. Entity assets share the kind name.
const (
	AssetPlayer = "player"
	AssetHazard = "hazard"
	AssetPeanut = "peanut"
	AssetButter = "butter"
)

// AssetNames returns the assets a variant needs before play can start.
func AssetNames(v core.Variant) []string {
	names := []string{AssetPlayer, AssetHazard, AssetPeanut}
	if v.BonusCollectible {
		names = append(names, AssetButter)
	}
	return names
}

// AssetGate holds the game back until every required asset has reported
// completion once. With a timeout it gives up waiting after that many ticks.
type AssetGate struct {
	pending  map[string]bool
	timeout  int // Ticks to wait; 0 waits forever
	waited   int
	timedOut bool
}

// NewAssetGate creates a gate waiting for the named assets.
func NewAssetGate(names []string, timeout int) *AssetGate {
	g := &AssetGate{
		pending: make(map[string]bool, len(names)),
		timeout: timeout,
	}
	for _, n := range names {
		g.pending[n] = true
	}
	return g
}

// Complete records that an asset finished loading.
// Returns true only for the first completion of a required asset.
func (g *AssetGate) Complete(name string) bool {
	if !g.pending[name] {
		return false
	}
	delete(g.pending, name)
	return true
}

// Tick counts one frame spent waiting and opens the gate on timeout.
func (g *AssetGate) Tick() {
	if g.Ready() {
		return
	}
	g.waited++
	if g.timeout > 0 && g.waited >= g.timeout {
		g.timedOut = true
	}
}

// Ready reports whether play may start.
func (g *AssetGate) Ready() bool {
	return len(g.pending) == 0 || g.timedOut
}

// TimedOut reports whether the gate opened without every asset.
func (g *AssetGate) TimedOut() bool {
	return g.timedOut
}

// Missing returns the assets that never reported, sorted by name.
func (g *AssetGate) Missing() []string {
	names := make([]string, 0, len(g.pending))
	for n := range g.pending {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
