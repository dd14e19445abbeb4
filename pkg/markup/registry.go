package markup

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps markup type names to renderers. It is safe for concurrent
// reads once assembled; applications build one at startup and share it across
// fields and records.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Renderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Renderer),
	}
}

// Register adds a renderer under the given markup type name. Duplicate names
// and entries with no variant set return an error.
func (r *Registry) Register(name string, renderer Renderer) error {
	if name == "" {
		return fmt.Errorf("markup: markup type name is required")
	}
	if renderer.zero() {
		return fmt.Errorf("markup: renderer for %q is required", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("markup: markup type %q already registered", name)
	}

	r.entries[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, renderer Renderer) {
	if err := r.Register(name, renderer); err != nil {
		panic(err)
	}
}

// Get retrieves the renderer for a markup type.
func (r *Registry) Get(name string) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.entries[name]
	return renderer, ok
}

// Has reports whether a markup type is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Types returns the sorted registered markup type names.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
