// Package jsonld parses JSON-LD @context documents into the term
// mappings the ontology builder uses to enrich SHACL shapes. Only the
// @context block is read; the rest of the document is ignored.
package jsonld

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// TermDefinition is a compound term entry: {"@id": ..., "@type": ...,
// "@container": ...}. A Type of "@id" marks the term as an object/IRI
// reference rather than a literal.
type TermDefinition struct {
	ID        string
	Type      string
	Container string
}

// IsObjectReference reports whether the term maps to an IRI reference.
func (d TermDefinition) IsObjectReference() bool {
	return d.Type == "@id"
}

// Context holds the parsed @context entries, split the way the builder
// consumes them: namespace prefixes, bare type mappings, and compound
// property mappings.
type Context struct {
	Prefixes         map[string]string
	TypeMappings     map[string]string
	PropertyMappings map[string]TermDefinition
}

// Empty reports whether the context carries no mappings at all. The zero
// Context is valid and means "SHACL-only defaults".
func (c Context) Empty() bool {
	return len(c.Prefixes) == 0 && len(c.TypeMappings) == 0 && len(c.PropertyMappings) == 0
}

// PropertyFor returns the term definition for a property name, if any.
func (c Context) PropertyFor(name string) (TermDefinition, bool) {
	def, ok := c.PropertyMappings[name]
	return def, ok
}

// Parse reads a JSON-LD document and extracts its @context. A document
// without an @context key yields an empty Context, not an error.
func Parse(r io.Reader) (Context, error) {
	var doc struct {
		Context map[string]json.RawMessage `json:"@context"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return Context{}, fmt.Errorf("parsing JSON-LD document: %w", err)
	}
	return fromEntries(doc.Context)
}

// ParseString reads a JSON-LD document from a string.
func ParseString(input string) (Context, error) {
	return Parse(strings.NewReader(input))
}

func fromEntries(entries map[string]json.RawMessage) (Context, error) {
	ctx := Context{
		Prefixes:         make(map[string]string),
		TypeMappings:     make(map[string]string),
		PropertyMappings: make(map[string]TermDefinition),
	}
	for name, raw := range entries {
		if strings.HasPrefix(name, "@") {
			// Keywords like @vocab and @base are not used downstream.
			continue
		}

		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			// Simple string entry: namespace prefix or type mapping.
			if strings.HasSuffix(str, "#") || strings.HasSuffix(str, "/") {
				ctx.Prefixes[name] = str
			} else {
				ctx.TypeMappings[name] = str
			}
			continue
		}

		var def struct {
			ID        string `json:"@id"`
			Type      string `json:"@type"`
			Container string `json:"@container"`
		}
		if err := json.Unmarshal(raw, &def); err != nil {
			return Context{}, fmt.Errorf("malformed @context entry %q: %w", name, err)
		}
		ctx.PropertyMappings[name] = TermDefinition{
			ID:        def.ID,
			Type:      def.Type,
			Container: def.Container,
		}
	}
	return ctx, nil
}
