package runtime

import (
	"github.com/ontoforge/shaclgen/rdf"
)

// Extras returns every triple on the focus node whose predicate is not
// in the known set, in insertion order. Generated wrappers expose this
// as the read-only side-channel for data the shape does not map to an
// accessor. The rdf:type triple counts as known implicitly only if the
// caller lists it.
func Extras(g rdf.Graph, focus rdf.Term, known []rdf.IRI) []rdf.Triple {
	knownSet := make(map[rdf.IRI]struct{}, len(known))
	for _, iri := range known {
		knownSet[iri] = struct{}{}
	}
	var out []rdf.Triple
	for _, t := range g.Triples(focus, nil, nil) {
		pred, ok := t.Predicate.(rdf.IRI)
		if !ok {
			continue
		}
		if _, found := knownSet[pred]; !found {
			out = append(out, t)
		}
	}
	return out
}
