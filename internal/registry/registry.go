// Package registry provides a global registry for renderer backends.
// Backends register themselves in init() functions, allowing the command
// line to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tetris/internal/config"
	"github.com/vovakirdan/tetris/internal/core"
	"github.com/vovakirdan/tetris/internal/tetris"
)

// Renderer is the interface every display backend implements.
// Backends hold no game state of their own beyond the last snapshot; the
// engine stays the sole owner.
type Renderer interface {
	// PollInput returns the next pending input event without blocking,
	// or core.EventNone when there is none.
	PollInput() core.Event

	// Render draws one frame. An error is fatal for the game loop.
	Render(s tetris.Snapshot) error

	// Teardown releases the display. It is safe to call more than once.
	Teardown() error
}

// Host is implemented by backends whose UI loop must own the calling
// goroutine. Host runs the game loop elsewhere and returns once both the
// UI and run have finished, with run's error taking precedence.
type Host interface {
	Host(run func() error) error
}

// Factory creates a renderer for the given runtime config and settings.
type Factory func(cfg core.RuntimeConfig, settings config.Settings) (Renderer, error)

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
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

// IDs returns the registered backend IDs, sorted.
func IDs() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}

// Create instantiates a renderer by backend ID.
// Returns an error if the ID is not registered or the backend fails to start.
func Create(id string, cfg core.RuntimeConfig, settings config.Settings) (Renderer, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", id)
	}

	r, err := f(cfg, settings)
	if err != nil {
		return nil, fmt.Errorf("registry: start %s: %w", id, err)
	}
	return r, nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
