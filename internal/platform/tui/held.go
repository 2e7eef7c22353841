package tui

import "github.com/vovakirdan/peanut-runner/internal/core"

// HeldKeys turns key presses into a held key state.
// Terminals only report presses, and auto-repeat while a key is held, so a
// key stays down for a fixed number of ticks after its last press.
type HeldKeys struct {
	hold      int
	remaining map[core.Key]int
}

// NewHeldKeys creates a tracker that holds each press for hold ticks.
func NewHeldKeys(hold int) *HeldKeys {
	if hold < 1 {
		hold = 1
	}
	return &HeldKeys{
		hold:      hold,
		remaining: make(map[core.Key]int),
	}
}

// Press marks k as held for the next hold ticks.
// Pressing a direction releases the opposite one.
func (h *HeldKeys) Press(k core.Key) {
	switch k {
	case core.KeyLeft:
		delete(h.remaining, core.KeyRight)
	case core.KeyRight:
		delete(h.remaining, core.KeyLeft)
	}
	h.remaining[k] = h.hold
}

// Release marks k as up immediately.
func (h *HeldKeys) Release(k core.Key) {
	delete(h.remaining, k)
}

// Clear releases every key.
func (h *HeldKeys) Clear() {
	clear(h.remaining)
}

// State returns the keys currently held.
func (h *HeldKeys) State() core.KeyState {
	ks := core.NewKeyState()
	for k := range h.remaining {
		ks.SetPressed(k, true)
	}
	return ks
}

// Tick counts down every held key, releasing expired ones.
func (h *HeldKeys) Tick() {
	for k, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, k)
			continue
		}
		h.remaining[k] = n - 1
	}
}
