// Package runtime is the support library generated code links against:
// the type registry and materializer, the shared constraint evaluation
// used by both fail-fast setters and deferred validation, per-instance
// property memoization, the instance builder core, and the extras
// side-channel for unmapped predicates.
package runtime

import (
	"sync"

	"github.com/ontoforge/shaclgen/rdf"
)

// Factory constructs a wrapper instance over a focus node and its
// backing graph.
type Factory func(focus rdf.Term, graph rdf.Graph) any

// Registry maps generated type names to their wrapper factories. It is
// explicit and injectable rather than process-global: each generated
// package owns one and hands it to the materializers that need it.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register upserts the factory for a type name. Re-registration under
// the same name replaces the prior factory, last write wins. A reader
// never observes a partially written entry.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Lookup returns the factory registered for a type name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered type names, unordered.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
