// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/badgekit/arcade/internal/core"
	"github.com/badgekit/arcade/internal/device"
)

// Game is the interface every arcade game implements. Games contain pure
// simulation and draw logic; the engine owns timing, phase transitions, and
// the peripherals. A game instance is single-session: Reset starts a fresh
// play session and the engine discards nothing between sessions except the
// instance itself.
type Game interface {
	// ID returns a unique identifier (e.g. "breakout"), used on the CLI.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// TickInterval is the fixed simulation period for this game.
	TickInterval() time.Duration

	// Reset initializes a new play session for the given hardware surface.
	Reset(cfg core.RuntimeConfig)

	// HandleInput applies sampled button levels to the game's input intents
	// (paddle movement, buffered direction, launch). Called once per tick,
	// before Tick.
	HandleInput(in device.InputState)

	// Tick advances the simulation by exactly one step.
	Tick()

	// DrawInit draws the complete initial frame for a new session.
	DrawInit(d device.Display) error

	// DrawFrame brings the display up to date with the state produced by the
	// preceding Tick. Implementations must leave no stale pixels and may
	// draw nothing when nothing changed.
	DrawFrame(d device.Display) error

	// DrawTitle draws the title screen.
	DrawTitle(d device.Display) error

	// DrawGameOver draws the result banner.
	DrawGameOver(d device.Display) error

	// UpdateLEDs stages the LED pattern derived from current state.
	UpdateLEDs(l device.LEDs)

	// State reports score and terminal status.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
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
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
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
