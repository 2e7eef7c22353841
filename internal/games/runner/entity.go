package runner

import "github.com/vovakirdan/peanut-runner/internal/core"

// Kind identifies the type of a scrolling entity.
type Kind int

const (
	KindPeanut Kind = iota // Low-value collectible
	KindButter             // High-value collectible (bonus variant only)
	KindHazard             // Ends the run on contact
)

// kindSpec holds the fixed tuning for one entity kind.
type kindSpec struct {
	name        string
	probability float64 // Chance to spawn on any given tick
	capacity    int     // Maximum live entities of this kind
	reward      int     // Score added on collection (0 for hazards)
	speed       float64 // Leftward movement per tick
	width       float64
	height      float64
	spreadX     float64 // Spawn x is surface width + U[0, spreadX)
}

var kinds = [...]kindSpec{
	KindPeanut: {name: "peanut", probability: 0.02, capacity: 5, reward: 10, speed: 2, width: 30, height: 30, spreadX: 300},
	KindButter: {name: "butter", probability: 0.005, capacity: 2, reward: 50, speed: 2, width: 30, height: 30, spreadX: 300},
	KindHazard: {name: "hazard", probability: 0.01, capacity: 3, reward: 0, speed: 3, width: 50, height: 70, spreadX: 400},
}

// String returns the kind name, which is also the name of its asset.
func (k Kind) String() string {
	return kinds[k].name
}

// IsCollectible reports whether touching the entity scores points.
func (k Kind) IsCollectible() bool {
	return k != KindHazard
}

// Reward returns the points granted when the entity is collected.
func (k Kind) Reward() int {
	return kinds[k].reward
}

// Speed returns how far the entity moves left each tick.
func (k Kind) Speed() float64 {
	return kinds[k].speed
}

// Capacity returns the maximum number of live entities of this kind.
func (k Kind) Capacity() int {
	return kinds[k].capacity
}

// Probability returns the per-tick spawn chance.
func (k Kind) Probability() float64 {
	return kinds[k].probability
}

// Entity is a collectible or hazard scrolling across the playfield.
type Entity struct {
	Kind Kind
	X, Y float64 // Top-left corner
	W, H float64
}

// Box returns the entity's collision box.
func (e Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}
