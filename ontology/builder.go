package ontology

import (
	"strings"

	"github.com/ontoforge/shaclgen/jsonld"
	"github.com/ontoforge/shaclgen/rdf"
	"github.com/ontoforge/shaclgen/shacl"
)

// Build joins SHACL shapes and a JSON-LD context into the code
// generation model. It runs two passes: the first registers every class
// and claims its Go name, the second resolves properties, so an object
// property can reference a class declared later in the shapes file.
func Build(shapes []shacl.Shape, ctx jsonld.Context) *Model {
	model := &Model{byIRI: make(map[rdf.IRI]*Class)}
	classNames := newNameTable()
	terms := termIndex(ctx)

	// First pass: one class per shape, names fixed up front.
	for _, shape := range shapes {
		model.Classes = append(model.Classes, Class{
			IRI:         shape.TargetClass,
			Name:        classNames.claim(GoName(shape.TargetClass)),
			Description: shape.Description,
		})
	}
	for i := range model.Classes {
		model.byIRI[model.Classes[i].IRI] = &model.Classes[i]
	}

	// Second pass: properties, with object types resolved against the
	// full class set.
	for i, shape := range shapes {
		class := &model.Classes[i]
		propNames := newNameTable()
		for _, sp := range shape.Properties {
			class.Properties = append(class.Properties, buildProperty(sp, model, terms, propNames))
		}
	}
	return model
}

func buildProperty(sp shacl.Property, model *Model, terms map[rdf.IRI]termEntry, names *nameTable) Property {
	p := Property{
		IRI:         sp.Path,
		Description: sp.Description,
		IsList:      sp.MaxCount == nil || *sp.MaxCount > 1,
		IsRequired:  sp.MinCount >= 1,
		Constraints: Constraints{
			Datatype:     sp.Datatype,
			MinCount:     sp.MinCount,
			MaxCount:     sp.MaxCount,
			MinLength:    sp.MinLength,
			MaxLength:    sp.MaxLength,
			Pattern:      sp.Pattern,
			In:           sp.In,
			MinInclusive: sp.MinInclusive,
			MaxInclusive: sp.MaxInclusive,
			MinExclusive: sp.MinExclusive,
			MaxExclusive: sp.MaxExclusive,
		},
	}

	term, hasTerm := terms[sp.Path]
	switch {
	case hasTerm:
		p.FieldName = term.name
	case sp.Name != "":
		p.FieldName = sp.Name
	default:
		p.FieldName = shacl.LocalName(sp.Path)
	}
	p.Name = names.claim(goIdent(p.FieldName))

	if sp.Class != "" || (hasTerm && term.def.IsObjectReference()) {
		p.IsObject = true
		p.ObjectClass = sp.Class
		if c, ok := model.ClassFor(sp.Class); ok {
			p.ObjectType = c.Name
			p.GoType = c.Name
		} else {
			// Reference to a class outside the shapes file: expose the
			// raw IRI instead of a generated type.
			p.GoType = "rdf.IRI"
		}
		return p
	}

	p.GoType = GoTypeFor(sp.Datatype)
	return p
}

type termEntry struct {
	name string
	def  jsonld.TermDefinition
}

// termIndex inverts the context property mappings to a lookup keyed by
// expanded property IRI.
func termIndex(ctx jsonld.Context) map[rdf.IRI]termEntry {
	index := make(map[rdf.IRI]termEntry, len(ctx.PropertyMappings))
	for name, def := range ctx.PropertyMappings {
		if def.ID == "" {
			continue
		}
		index[expand(def.ID, ctx.Prefixes)] = termEntry{name: name, def: def}
	}
	return index
}

// expand resolves a compact IRI like "ex:name" against the context
// prefixes. Values without a declared prefix pass through unchanged.
func expand(compact string, prefixes map[string]string) rdf.IRI {
	prefix, local, ok := strings.Cut(compact, ":")
	if ok {
		if ns, declared := prefixes[prefix]; declared {
			return rdf.NewIRI(ns + local)
		}
	}
	return rdf.NewIRI(compact)
}
