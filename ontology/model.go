// Package ontology builds the intermediate model that code generation
// consumes. It joins SHACL shapes with an optional JSON-LD context into
// per-class descriptions with Go names and types already resolved.
package ontology

import (
	"github.com/ontoforge/shaclgen/rdf"
)

// Model is the complete set of classes extracted from one shapes graph.
type Model struct {
	Classes []Class

	byIRI map[rdf.IRI]*Class
}

// ClassFor returns the class targeting the given IRI, if any.
func (m *Model) ClassFor(iri rdf.IRI) (*Class, bool) {
	c, ok := m.byIRI[iri]
	return c, ok
}

// Class describes one RDF class for code generation.
type Class struct {
	IRI         rdf.IRI
	Name        string // Go identifier, e.g. "Person"
	Description string
	Properties  []Property
}

// Property describes one property of a class.
type Property struct {
	IRI         rdf.IRI
	Name        string // Go identifier, e.g. "GivenName"
	FieldName   string // context term or local name, e.g. "givenName"
	Description string
	GoType      string // element type, without the slice marker

	IsList     bool
	IsRequired bool

	// IsObject marks an object property. ObjectClass carries the target
	// class IRI and ObjectType the generated interface name when the
	// class is part of the model.
	IsObject    bool
	ObjectClass rdf.IRI
	ObjectType  string

	Constraints Constraints
}

// Constraints carries the value constraints used by the validation and
// builder generators. Pointer fields are nil when the shape does not
// declare the constraint.
type Constraints struct {
	Datatype     rdf.IRI
	MinCount     int
	MaxCount     *int
	MinLength    *int
	MaxLength    *int
	Pattern      string
	In           []rdf.Literal
	MinInclusive *float64
	MaxInclusive *float64
	MinExclusive *float64
	MaxExclusive *float64
}

// HasValueConstraints reports whether any constraint beyond cardinality
// is present, which decides whether a setter needs a check call.
func (c Constraints) HasValueConstraints() bool {
	return c.MinLength != nil || c.MaxLength != nil || c.Pattern != "" ||
		len(c.In) > 0 || c.MinInclusive != nil || c.MaxInclusive != nil ||
		c.MinExclusive != nil || c.MaxExclusive != nil
}
