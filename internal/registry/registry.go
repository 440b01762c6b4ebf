// Package registry provides a global registry for front-end backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picodino/internal/config"
	"github.com/vovakirdan/picodino/internal/storage"
)

// Backend runs the game against one kind of display and input.
// The game core is the same for every backend; only the loop that owns
// it, the clock and the place frames go differ.
type Backend interface {
	// ID returns a unique identifier used on the command line (e.g., "tui").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays until the user quits, ctx is cancelled or the backend's
	// own stop condition is met.
	Run(ctx context.Context, opts Options) error
}

// Options is everything a backend needs to run a session.
type Options struct {
	Config config.DinoConfig
	Seed   int64
	Store  *storage.Store // Session run log, may be nil
	Logger *log.Logger
	Out    io.Writer // Summaries and reports

	// Interactive backends
	FPS        int    // tui frame rate
	MaxFPS     int    // direct throttle, 0 = unthrottled
	Ink        string // Lit pixel colour name
	Quadrant   bool   // 2x2 pixels per cell instead of 1x2
	Scoreboard bool   // Show the run log after quitting

	// Simulation
	Ticks   int    // Tick limit, 0 = no limit
	StepMs  uint32 // Clock advance per tick
	Runs    int    // Games to play before stopping
	Lead    int    // Autopilot jump distance
	Verbose bool   // Log every event, not just run ends
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a backend.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered backends, sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, BackendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new backend by its ID.
// Returns an error if the backend ID is not registered.
func Create(id string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", id)
	}

	return f(), nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
