package runtime

import (
	"sync"

	"github.com/ontoforge/shaclgen/rdf"
)

// PropertyCache memoizes wrapper accessor reads, one slot per
// predicate. A value is computed on the first read and kept for the
// instance lifetime: it is a snapshot as of first access and is not
// recomputed when the backing graph changes afterwards.
type PropertyCache struct {
	mu     sync.Mutex
	values map[rdf.IRI]any
}

// Load returns the cached value for a predicate, computing and storing
// it on the first call.
func (c *PropertyCache) Load(predicate rdf.IRI, compute func() any) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.values == nil {
		c.values = make(map[rdf.IRI]any)
	}
	if v, ok := c.values[predicate]; ok {
		return v
	}
	v := compute()
	c.values[predicate] = v
	return v
}
