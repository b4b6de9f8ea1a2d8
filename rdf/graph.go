package rdf

// Triple is a single RDF statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Graph is the storage collaborator consumed by the parser, the generated
// wrappers, and the instance DSL. Implementations must preserve insertion
// order: Triples returns matches in the order they were added, and scalar
// accessors in generated code take the first match under that order.
type Graph interface {
	// Add appends a triple to the graph.
	Add(t Triple)

	// Triples returns all triples matching the pattern in insertion
	// order. A nil component is a wildcard.
	Triples(subject, predicate, object Term) []Triple

	// Len returns the number of triples in the graph.
	Len() int
}

// MemoryGraph is an append-only, insertion-ordered Graph backed by a slice.
// It is the reference implementation used by the parser and the DSL; it is
// not safe for concurrent mutation.
type MemoryGraph struct {
	triples []Triple
}

// NewGraph creates an empty MemoryGraph.
func NewGraph() *MemoryGraph {
	return &MemoryGraph{}
}

// Add appends a triple.
func (g *MemoryGraph) Add(t Triple) {
	g.triples = append(g.triples, t)
}

// AddTriple appends a triple built from its components.
func (g *MemoryGraph) AddTriple(subject, predicate, object Term) {
	g.Add(Triple{Subject: subject, Predicate: predicate, Object: object})
}

// Triples returns matching triples in insertion order. Nil components
// match any term.
func (g *MemoryGraph) Triples(subject, predicate, object Term) []Triple {
	var out []Triple
	for _, t := range g.triples {
		if subject != nil && !t.Subject.Equal(subject) {
			continue
		}
		if predicate != nil && !t.Predicate.Equal(predicate) {
			continue
		}
		if object != nil && !t.Object.Equal(object) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Len returns the number of triples.
func (g *MemoryGraph) Len() int {
	return len(g.triples)
}

// All returns every triple in insertion order.
func (g *MemoryGraph) All() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}
