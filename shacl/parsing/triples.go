package parsing

import (
	"fmt"
	"strings"

	"github.com/ontoforge/shaclgen/rdf"
	"github.com/ontoforge/shaclgen/vocab"
)

// converter flattens the raw parse tree into triples, resolving prefixed
// names and allocating labels for anonymous blank nodes. Triples are
// emitted in document order, which makes the resulting graph's insertion
// order the deterministic tie-break for scalar reads downstream.
type converter struct {
	graph    *rdf.MemoryGraph
	prefixes map[string]string
	base     string
	blankSeq int
}

func newConverter() *converter {
	return &converter{
		graph:    rdf.NewGraph(),
		prefixes: make(map[string]string),
	}
}

func (c *converter) convert(doc *document) (*rdf.MemoryGraph, error) {
	for _, stmt := range doc.Statements {
		switch {
		case stmt.Prefix != nil:
			name := strings.TrimSuffix(stmt.Prefix.Name, ":")
			c.prefixes[name] = trimIRIRef(stmt.Prefix.IRI)
		case stmt.Base != nil:
			c.base = trimIRIRef(stmt.Base.IRI)
		case stmt.Triples != nil:
			if err := c.convertTriples(stmt.Triples); err != nil {
				return nil, err
			}
		}
	}
	return c.graph, nil
}

func (c *converter) convertTriples(block *triplesBlock) error {
	subj, err := c.subjectTerm(block.Subject)
	if err != nil {
		return err
	}
	return c.emitPredicateObjects(subj, block.Predicates)
}

func (c *converter) emitPredicateObjects(subj rdf.Term, pos []*predicateObjects) error {
	for _, po := range pos {
		if po == nil {
			continue
		}
		pred, err := c.verbTerm(po.Verb)
		if err != nil {
			return err
		}
		for _, obj := range po.Objects {
			term, err := c.objectTerm(obj)
			if err != nil {
				return err
			}
			c.graph.AddTriple(subj, pred, term)
		}
	}
	return nil
}

func (c *converter) subjectTerm(s *subject) (rdf.Term, error) {
	switch {
	case s.IRIRef != nil:
		return c.resolveIRIRef(*s.IRIRef), nil
	case s.PName != nil:
		return c.resolvePName(*s.PName)
	case s.Blank != nil:
		return rdf.NewBlankNode(strings.TrimPrefix(*s.Blank, "_:")), nil
	case s.BNPL != nil:
		return c.convertBNPL(s.BNPL)
	}
	return nil, fmt.Errorf("empty subject")
}

func (c *converter) verbTerm(v *verb) (rdf.Term, error) {
	switch {
	case v.A:
		return vocab.RDFType, nil
	case v.IRIRef != nil:
		return c.resolveIRIRef(*v.IRIRef), nil
	case v.PName != nil:
		return c.resolvePName(*v.PName)
	}
	return nil, fmt.Errorf("empty predicate")
}

func (c *converter) objectTerm(o *object) (rdf.Term, error) {
	switch {
	case o.IRIRef != nil:
		return c.resolveIRIRef(*o.IRIRef), nil
	case o.PName != nil:
		return c.resolvePName(*o.PName)
	case o.Blank != nil:
		return rdf.NewBlankNode(strings.TrimPrefix(*o.Blank, "_:")), nil
	case o.BNPL != nil:
		return c.convertBNPL(o.BNPL)
	case o.Coll != nil:
		return c.convertCollection(o.Coll)
	case o.Literal != nil:
		return c.literalTerm(o.Literal)
	}
	return nil, fmt.Errorf("empty object")
}

// convertBNPL allocates a fresh blank node and emits the nested
// predicate-object list against it.
func (c *converter) convertBNPL(bnpl *blankNodePropertyList) (rdf.Term, error) {
	node := c.newBlankNode()
	if err := c.emitPredicateObjects(node, bnpl.Predicates); err != nil {
		return nil, err
	}
	return node, nil
}

// convertCollection builds an rdf:first/rdf:rest chain for `( ... )`.
// The empty collection is rdf:nil.
func (c *converter) convertCollection(coll *collection) (rdf.Term, error) {
	if len(coll.Objects) == 0 {
		return vocab.RDFNil, nil
	}
	head := c.newBlankNode()
	current := head
	for i, obj := range coll.Objects {
		term, err := c.objectTerm(obj)
		if err != nil {
			return nil, err
		}
		c.graph.AddTriple(current, vocab.RDFFirst, term)
		if i == len(coll.Objects)-1 {
			c.graph.AddTriple(current, vocab.RDFRest, vocab.RDFNil)
		} else {
			next := c.newBlankNode()
			c.graph.AddTriple(current, vocab.RDFRest, next)
			current = next
		}
	}
	return head, nil
}

func (c *converter) literalTerm(l *literalNode) (rdf.Term, error) {
	switch {
	case l.Str != nil:
		return c.stringTerm(l.Str)
	case l.Number != nil:
		return numberLiteral(*l.Number), nil
	case l.Boolean != nil:
		return rdf.NewTypedLiteral(*l.Boolean, vocab.XSDBoolean), nil
	}
	return nil, fmt.Errorf("empty literal")
}

func (c *converter) stringTerm(s *stringLiteral) (rdf.Term, error) {
	if s.LangTag != nil {
		return rdf.NewLangLiteral(s.Value, strings.TrimPrefix(*s.LangTag, "@")), nil
	}
	if s.Datatype != nil {
		var dt rdf.IRI
		switch {
		case s.Datatype.IRIRef != nil:
			dt = c.resolveIRIRef(*s.Datatype.IRIRef)
		case s.Datatype.PName != nil:
			term, err := c.resolvePName(*s.Datatype.PName)
			if err != nil {
				return nil, err
			}
			dt = term.(rdf.IRI)
		}
		return rdf.NewTypedLiteral(s.Value, dt), nil
	}
	return rdf.NewLiteral(s.Value), nil
}

// numberLiteral classifies a numeric lexical form per Turtle: a plain
// integer is xsd:integer, a dotted form is xsd:decimal, an exponent form
// is xsd:double.
func numberLiteral(lexical string) rdf.Literal {
	switch {
	case strings.ContainsAny(lexical, "eE"):
		return rdf.NewTypedLiteral(lexical, vocab.XSDDouble)
	case strings.Contains(lexical, "."):
		return rdf.NewTypedLiteral(lexical, vocab.XSDDecimal)
	default:
		return rdf.NewTypedLiteral(lexical, vocab.XSDInteger)
	}
}

func (c *converter) newBlankNode() rdf.BlankNode {
	c.blankSeq++
	return rdf.NewBlankNode(fmt.Sprintf("genid%d", c.blankSeq))
}

func (c *converter) resolveIRIRef(ref string) rdf.IRI {
	value := trimIRIRef(ref)
	if c.base != "" && !strings.Contains(value, ":") {
		value = c.base + value
	}
	return rdf.NewIRI(value)
}

func (c *converter) resolvePName(pname string) (rdf.Term, error) {
	prefix, local, found := strings.Cut(pname, ":")
	if !found {
		return nil, fmt.Errorf("malformed prefixed name %q", pname)
	}
	ns, ok := c.prefixes[prefix]
	if !ok {
		return nil, fmt.Errorf("undeclared prefix %q in %q", prefix, pname)
	}
	return rdf.NewIRI(ns + local), nil
}

func trimIRIRef(ref string) string {
	return strings.TrimSuffix(strings.TrimPrefix(ref, "<"), ">")
}
