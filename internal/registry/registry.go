// Package registry lets frontends register themselves at init time so the
// CLI can pick one by ID without importing it directly.
package registry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Frontend presents a game session on some display and feeds it input.
type Frontend interface {
	// ID is the value of the --frontend flag (e.g. "tui", "tcell").
	ID() string
	// Title is a one-line description for listings.
	Title() string
	// Run plays the session until the user quits or ctx is cancelled.
	// Display initialisation failures are returned as errors.
	Run(ctx context.Context, s *Session) error
}

// Factory creates a fresh frontend.
type Factory func() Frontend

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a frontend factory under the factory's own ID. It panics if
// the ID is empty or already taken.
func Register(f Factory) {
	id := f().ID()

	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: frontend with empty ID")
	}
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}
	factories[id] = f
}

// List returns one instance of every registered frontend, sorted by ID.
func List() []Frontend {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Frontend, 0, len(factories))
	for _, f := range factories {
		out = append(out, f())
	}
	slices.SortFunc(out, func(a, b Frontend) int {
		return strings.Compare(a.ID(), b.ID())
	})
	return out
}

// Create instantiates the frontend registered as id.
func Create(id string) (Frontend, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}
	return f(), nil
}

// Exists reports whether a frontend is registered as id.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
