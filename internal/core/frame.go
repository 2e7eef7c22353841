package core

// Phase names the lifecycle phase of a game session.
type Phase string

const (
	PhaseLoading Phase = "loading" // Waiting for assets
	PhaseRunning Phase = "running" // Simulation advancing
	PhaseEnded   Phase = "ended"   // Run over, waiting for replay
)

// Object is a drawable rectangle in world units.
// Kind selects the sprite used to draw it.
type Object struct {
	Kind     string  `json:"kind"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	W        float64 `json:"w"`
	H        float64 `json:"h"`
	Mirrored bool    `json:"mirrored,omitempty"`
}

// Box returns the object's bounds.
func (o Object) Box() Box {
	return NewBox(o.X, o.Y, o.W, o.H)
}

// ObjectAt creates an object of the given kind covering b.
func ObjectAt(kind string, b Box) Object {
	return Object{Kind: kind, X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Frame is the renderable state of a game after a tick.
// It holds only plain values so any surface can draw it or serialize it.
type Frame struct {
	Tick     uint64   `json:"tick"`
	Phase    Phase    `json:"phase"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Score    int      `json:"score"`
	Player   Object   `json:"player"`
	Entities []Object `json:"entities"`
	Button   *Object  `json:"button,omitempty"` // Replay control, set only when the run has ended
}
