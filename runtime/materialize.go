package runtime

import (
	"errors"
	"fmt"

	"github.com/ontoforge/shaclgen/rdf"
)

// ErrNoFactory is returned when materialization is requested for a type
// name no factory was registered under.
var ErrNoFactory = errors.New("no factory registered for type")

// Materializer resolves type names to wrapper instances through an
// injected registry.
type Materializer struct {
	registry *Registry
}

// NewMaterializer creates a materializer over the given registry.
func NewMaterializer(registry *Registry) *Materializer {
	return &Materializer{registry: registry}
}

// Materialize constructs the wrapper registered under name for a focus
// node in the given graph.
func (m *Materializer) Materialize(focus rdf.Term, graph rdf.Graph, name string) (any, error) {
	factory, ok := m.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoFactory, name)
	}
	return factory(focus, graph), nil
}
