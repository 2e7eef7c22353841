package core

// Key identifies a physical key by the name the browser reports for it.
// Terminal hosts translate their key names to these.
type Key string

// Keys read by the simulation.
const (
	KeyLeft  Key = "ArrowLeft"
	KeyRight Key = "ArrowRight"
	KeyUp    Key = "ArrowUp"
	KeySpace Key = " "
)

// IsKnown reports whether the simulation reads this key.
func (k Key) IsKnown() bool {
	switch k {
	case KeyLeft, KeyRight, KeyUp, KeySpace:
		return true
	}
	return false
}

// KeyState records which keys are currently held down.
// Hosts write it as press and release events arrive; the game polls it once
// per tick. The last write for a key wins.
type KeyState struct {
	pressed map[Key]bool
}

// NewKeyState creates a key state with nothing pressed.
func NewKeyState() KeyState {
	return KeyState{pressed: make(map[Key]bool)}
}

// SetPressed records the pressed state of a key.
// Keys the simulation does not read are ignored.
func (s *KeyState) SetPressed(k Key, pressed bool) {
	if !k.IsKnown() {
		return
	}
	if s.pressed == nil {
		s.pressed = make(map[Key]bool)
	}
	s.pressed[k] = pressed
}

// IsPressed reports whether the key is held.
func (s KeyState) IsPressed(k Key) bool {
	return s.pressed[k]
}

// ReleaseAll marks every key as released.
func (s *KeyState) ReleaseAll() {
	for k := range s.pressed {
		delete(s.pressed, k)
	}
}

// Clone creates a copy of this key state.
func (s KeyState) Clone() KeyState {
	clone := NewKeyState()
	for k, v := range s.pressed {
		clone.pressed[k] = v
	}
	return clone
}
