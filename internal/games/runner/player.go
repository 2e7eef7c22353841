package runner

import "github.com/vovakirdan/peanut-runner/internal/core"

// Player starting attributes.
const (
	PlayerStartX = 100.0
	PlayerStartY = 300.0
	PlayerWidth  = 50.0
	PlayerHeight = 70.0
)

// Player is the jar controlled by the user.
type Player struct {
	X, Y       float64 // Top-left corner
	W, H       float64
	VelocityY  float64 // Positive is downward
	Jumping    bool
	FacingLeft bool
	Score      int
}

// reset restores the starting attributes in place.
func (p *Player) reset() {
	*p = Player{
		X: PlayerStartX,
		Y: PlayerStartY,
		W: PlayerWidth,
		H: PlayerHeight,
	}
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}
