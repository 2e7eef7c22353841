// Package registry provides a global registry for game variant factories.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/peanut-runner/internal/core"
)

// ErrUnknownVariant is returned when a variant ID is not registered.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input tracking, timing, asset loading and display.
type Game interface {
	// ID returns the variant identifier (e.g., "classic", "super").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Assets lists the named assets that must finish loading before play starts.
	Assets() []string

	// Init sets up a fresh session and enters the loading phase.
	Init(cfg core.RuntimeConfig)

	// AssetLoaded reports that a named asset finished loading.
	// Hosts that draw their own images pass a zero sprite.
	AssetLoaded(name string, art core.Sprite)

	// Step advances the simulation by one tick using the held keys.
	Step(keys core.KeyState) core.StepResult

	// Click handles a pointer click in surface coordinates.
	// Returns true if the click restarted the game.
	Click(x, y float64) bool

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// Frame returns the current renderable state.
	Frame() core.Frame

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered variants, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its variant ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
