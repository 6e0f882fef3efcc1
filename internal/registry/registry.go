// Package registry maps game IDs to factories. A game package registers
// itself from init(); the CLI and the SSH server create sessions by ID
// without importing the game's internals.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Game is what the platform drives. Implementations hold pure logic with
// no Bubble Tea dependency; the platform owns input mapping, the frame
// clock and terminal output.
type Game interface {
	// ID returns a unique identifier such as "memory".
	// Used for CLI commands and as the journal key.
	ID() string

	// Title returns a human-readable name, shown as the terminal title.
	Title() string

	// Reset starts a fresh run. The RuntimeConfig provides the screen
	// size, the frame rate and the deal seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances game time by one frame.
	// Runs that finished during the frame are reported in the result.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current level, clock and dialog status.
	State() core.GameState
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
