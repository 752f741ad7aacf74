// Package registry provides a global registry for strategy factories.
// Strategies register themselves in init() functions, allowing the
// engine and the CLI to look them up by name without hardcoded
// dependencies on concrete types.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/reversi-arena/internal/core"
)

// Strategy is the capability every player implementation provides.
// The engine treats implementations as untrusted: Decide may return late,
// return an illegal move, return an error or panic.
type Strategy interface {
	// ID returns the registry name (e.g., "random", "minimax").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Decide picks a move for color on board. budget is the time left
	// for this call; ctx is cancelled when it runs out.
	Decide(ctx context.Context, board core.Board, color core.Color, budget time.Duration) (core.Move, error)
}

// ParamDoc documents one key a strategy reads from its params.
type ParamDoc struct {
	Key     string
	Default string
	Usage   string
}

// Tunable is implemented by strategies that accept params.
type Tunable interface {
	Params() []ParamDoc
}

// Info contains metadata about a registered strategy.
type Info struct {
	ID     string
	Title  string
	Params []ParamDoc
}

// Factory creates a new strategy instance tuned by params.
type Factory func(params core.Params) Strategy

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Typically called from a strategy's init() function.
// Panics if a strategy with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", id))
	}

	factories[id] = f

	// Metadata comes from a temporary instance
	s := f(nil)
	info := Info{ID: id, Title: s.Title()}
	if t, ok := s.(Tunable); ok {
		info.Params = t.Params()
	}
	infos[id] = info
}

// List returns information about all registered strategies, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for _, info := range infos {
		info.Params = append([]ParamDoc(nil), info.Params...)
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the factory registered under id.
func Lookup(id string) (Factory, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", id)
	}
	return f, nil
}

// Create instantiates a new strategy by its ID.
// Returns an error if the ID is not registered.
func Create(id string, params core.Params) (Strategy, error) {
	f, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return f(params), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
