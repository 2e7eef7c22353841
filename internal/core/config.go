package core

// RuntimeConfig contains configuration passed to a game at initialization.
// Games use this to size the playfield and for deterministic simulation.
type RuntimeConfig struct {
	SurfaceW float64 // Playfield width in world units (pixels)
	SurfaceH float64 // Playfield height in world units (pixels)
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay

	// AssetTimeout is the number of ticks to wait for assets before starting
	// anyway. Zero waits forever.
	AssetTimeout int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		SurfaceW: 800,
		SurfaceH: 400,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Variant selects the optional features of the game.
type Variant struct {
	StrongJump       bool // Space performs a stronger jump
	BonusCollectible bool // High-value collectibles spawn alongside regular ones
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Loading  bool // Whether the game is still waiting for assets
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Frame Frame
}
