// Package registry provides a global registry of game variants.
// Games register themselves in init() functions, allowing the session
// wrapper to construct any variant by ID without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pixelsnake/internal/core"
)

// ErrUnknownGame is returned when creating a variant that was never registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the contract every game variant implements so a host loop can
// run it uniformly. Games contain pure logic with no UI dependencies.
type Game interface {
	// Update advances exactly one frame using the input snapshot and the
	// borrowed context. It never blocks.
	Update(in core.InputState, ctx *core.Context) core.Outcome

	// Display returns the current frame, one pixel per grid cell.
	// It must not alter the game state.
	Display() core.Buffer
}

// Factory constructs a fresh, playable game instance.
// It only fails when the configuration cannot host the game.
type Factory func(cfg core.RuntimeConfig, ctx *core.Context) (Game, error)

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
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

// Create constructs a new instance of the game registered under id.
func Create(id string, cfg core.RuntimeConfig, ctx *core.Context) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	g, err := f(cfg, ctx)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
