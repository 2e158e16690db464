// Package registry maps game ids to factories so the terminal, SSH and
// window frontends can start a game by name. The maze registers itself from
// init(); "maze play <id>", "maze serve --game" and recorded runs all resolve
// their game here.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Game is driven one frame at a time by a frontend. It never reads input or
// clocks itself.
type Game interface {
	// ID is the key used on the command line and stored with each run.
	ID() string

	Title() string

	// Reset builds a fresh game. Called once before the first Step and
	// again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame using the polled input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a character buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// CanvasGame is a Game that draws in pixel space for the window frontend.
type CanvasGame interface {
	Game
	Draw(c core.Canvas)

	// WorldSize is the drawing area in pixels, valid after Reset.
	WorldSize() (w, h float64)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string

	// Canvas reports whether the game can open in a window.
	Canvas bool
}

// Factory returns a new, not yet Reset, game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	sample := f()
	_, canvas := sample.(CanvasGame)
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: sample.Title(), Canvas: canvas},
		factory: f,
	}
}

// List returns the registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// CreateCanvas is Create for the window frontend. It fails for games that
// only render to a character buffer.
func CreateCanvas(id string) (CanvasGame, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	cg, ok := g.(CanvasGame)
	if !ok {
		return nil, fmt.Errorf("registry: game %q cannot draw in a window", id)
	}
	return cg, nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
