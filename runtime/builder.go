package runtime

import (
	"github.com/ontoforge/shaclgen/rdf"
	"github.com/ontoforge/shaclgen/vocab"
)

// Scope is the graph-building scope opened by a generated DSL entry
// point. It owns the graph under construction and the list of focus
// nodes built into it.
type Scope struct {
	Graph     *rdf.MemoryGraph
	Instances []rdf.Term
}

// NewScope opens an empty building scope.
func NewScope() *Scope {
	return &Scope{Graph: rdf.NewGraph()}
}

// Record adds a built focus node to the scope's instance list.
func (s *Scope) Record(focus rdf.Term) {
	s.Instances = append(s.Instances, focus)
}

// InstanceBuilder is the core generated class builders wrap. It
// accumulates triples for one focus node, owned exclusively by the
// builder until Build writes them out.
type InstanceBuilder struct {
	focus   rdf.Term
	triples []rdf.Triple
	rules   []PropertyRule
}

// NewInstanceBuilder starts building an instance of the class
// identified by typeIRI. The rules drive the deferred Validate check.
func NewInstanceBuilder(focus rdf.Term, typeIRI rdf.IRI, rules []PropertyRule) *InstanceBuilder {
	b := &InstanceBuilder{focus: focus, rules: rules}
	b.triples = append(b.triples, rdf.Triple{Subject: focus, Predicate: vocab.RDFType, Object: typeIRI})
	return b
}

// Focus returns the node under construction.
func (b *InstanceBuilder) Focus() rdf.Term { return b.focus }

// Set records a scalar literal value, replacing any earlier value for
// the same predicate. The rule's per-value checks run first and the
// value is rejected on the first violation.
func (b *InstanceBuilder) Set(rule PropertyRule, lit rdf.Literal) error {
	if err := rule.CheckValue(lit); err != nil {
		return err
	}
	b.remove(rule.Predicate)
	b.triples = append(b.triples, rdf.Triple{Subject: b.focus, Predicate: rule.Predicate, Object: lit})
	return nil
}

// Add records one value of a list property. Each call is checked
// independently.
func (b *InstanceBuilder) Add(rule PropertyRule, lit rdf.Literal) error {
	if err := rule.CheckValue(lit); err != nil {
		return err
	}
	b.triples = append(b.triples, rdf.Triple{Subject: b.focus, Predicate: rule.Predicate, Object: lit})
	return nil
}

// SetRef records a scalar object reference, replacing any earlier value
// for the same predicate. Object references carry no per-value checks.
func (b *InstanceBuilder) SetRef(predicate rdf.IRI, ref rdf.Term) {
	b.remove(predicate)
	b.triples = append(b.triples, rdf.Triple{Subject: b.focus, Predicate: predicate, Object: ref})
}

// AddRef records one object reference of a list property.
func (b *InstanceBuilder) AddRef(predicate rdf.IRI, ref rdf.Term) {
	b.triples = append(b.triples, rdf.Triple{Subject: b.focus, Predicate: predicate, Object: ref})
}

func (b *InstanceBuilder) remove(predicate rdf.IRI) {
	kept := b.triples[:0]
	for _, t := range b.triples {
		if !t.Predicate.Equal(predicate) {
			kept = append(kept, t)
		}
	}
	b.triples = kept
}

// Validate runs the full deferred shape check against the accumulated
// triples, catching cross-call issues such as a required property never
// set. It does not depend on Build having been called.
func (b *InstanceBuilder) Validate() error {
	g := rdf.NewGraph()
	for _, t := range b.triples {
		g.Add(t)
	}
	return CheckShape(b.focus, g, b.rules)
}

// Build writes the accumulated triples into the target graph and
// returns the focus node. Build always succeeds; conformance is checked
// only by Validate.
func (b *InstanceBuilder) Build(g rdf.Graph) rdf.Term {
	for _, t := range b.triples {
		g.Add(t)
	}
	return b.focus
}
