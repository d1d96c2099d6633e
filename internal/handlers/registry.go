package handlers

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds menu handlers keyed by their menu choice.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]Handler
}

// NewRegistry creates a new handler registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey: make(map[string]Handler),
	}
}

// Register adds a handler to the registry.
// Returns an error if the menu key is already taken.
func (r *Registry) Register(h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := h.Key()
	if _, exists := r.byKey[key]; exists {
		return fmt.Errorf("menu key already registered: %s", key)
	}
	r.byKey[key] = h
	return nil
}

// Find looks up a handler by menu choice.
func (r *Registry) Find(key string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.byKey[key]
	return h, ok
}

// All returns all handlers sorted by menu key.
func (r *Registry) All() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.byKey))
	for key := range r.byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]Handler, len(keys))
	for i, key := range keys {
		result[i] = r.byKey[key]
	}
	return result
}

// DefaultRegistry is the global handler registry.
var DefaultRegistry = NewRegistry()

// Register adds a handler to the default registry.
func Register(h Handler) {
	if err := DefaultRegistry.Register(h); err != nil {
		panic(err)
	}
}
