package shacl

import (
	"testing"

	"github.com/ontoforge/shaclgen/rdf"
)

const fixture = `
@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex: <http://example.org/> .

ex:PersonShape
    a sh:NodeShape ;
    sh:targetClass ex:Person ;
    sh:description "A natural person." ;
    sh:property [
        sh:path ex:name ;
        sh:description "Full name" ;
        sh:datatype xsd:string ;
        sh:minCount 1 ;
        sh:maxCount 1 ;
    ] ;
    sh:property [
        sh:path ex:email ;
        sh:datatype xsd:string ;
        sh:pattern "^[^@]+@[^@]+\\.[a-z]+$" ;
    ] ;
    sh:property [
        sh:path ex:age ;
        sh:datatype xsd:integer ;
        sh:minInclusive 0 ;
        sh:maxInclusive 120 ;
        sh:maxCount 1 ;
    ] ;
    sh:property [
        sh:path ex:knows ;
        sh:class ex:Person ;
    ] .

# No target class: dropped with a warning.
ex:OrphanShape
    a sh:NodeShape ;
    sh:property [ sh:path ex:ignored ] .

# Property without a path: dropped with a warning.
ex:AddressShape
    a sh:NodeShape ;
    sh:targetClass ex:Address ;
    sh:property [ sh:datatype xsd:string ] ;
    sh:property [
        sh:path ex:city ;
        sh:datatype xsd:string ;
        sh:minCount 1 ;
    ] .
`

func TestParseShapesString(t *testing.T) {
	shapes, diags, err := ParseShapesString("fixture.ttl", fixture)
	if err != nil {
		t.Fatalf("ParseShapesString failed: %v", err)
	}

	if len(shapes) != 2 {
		t.Fatalf("expected 2 shapes (orphan dropped), got %d", len(shapes))
	}
	if got := len(diags.Warnings()); got != 2 {
		t.Errorf("expected 2 warnings (missing target class, missing path), got %d", got)
	}

	person := shapes[0]
	if person.TargetClass != rdf.NewIRI("http://example.org/Person") {
		t.Errorf("target class = %v", person.TargetClass)
	}
	if person.Description != "A natural person." {
		t.Errorf("shape description = %q", person.Description)
	}
	if len(person.Properties) != 4 {
		t.Fatalf("expected 4 properties on PersonShape, got %d", len(person.Properties))
	}

	address := shapes[1]
	if len(address.Properties) != 1 {
		t.Fatalf("expected 1 property on AddressShape (pathless dropped), got %d", len(address.Properties))
	}
}

func TestPropertyDefaults(t *testing.T) {
	shapes, _, err := ParseShapesString("fixture.ttl", fixture)
	if err != nil {
		t.Fatal(err)
	}
	props := shapes[0].Properties

	name := props[0]
	if name.Name != "name" {
		t.Errorf("name defaulted from path local name, got %q", name.Name)
	}
	if name.MinCount != 1 || name.MaxCount == nil || *name.MaxCount != 1 {
		t.Errorf("name cardinality = %d..%v", name.MinCount, name.MaxCount)
	}
	if name.Description != "Full name" {
		t.Errorf("description = %q", name.Description)
	}

	email := props[1]
	if email.MinCount != 0 || email.MaxCount != nil {
		t.Errorf("email should default to 0..unbounded, got %d..%v", email.MinCount, email.MaxCount)
	}
	if email.Pattern == "" {
		t.Error("email pattern not read")
	}

	age := props[2]
	if age.MinInclusive == nil || *age.MinInclusive != 0 {
		t.Errorf("age minInclusive = %v", age.MinInclusive)
	}
	if age.MaxInclusive == nil || *age.MaxInclusive != 120 {
		t.Errorf("age maxInclusive = %v", age.MaxInclusive)
	}

	knows := props[3]
	if knows.Class != rdf.NewIRI("http://example.org/Person") {
		t.Errorf("knows class = %v", knows.Class)
	}
	if knows.Datatype != "" {
		t.Errorf("knows should have no datatype, got %v", knows.Datatype)
	}
}

func TestLocalName(t *testing.T) {
	tests := []struct {
		iri  string
		want string
	}{
		{"http://example.org/vocab#Person", "Person"},
		{"http://example.org/vocab/person", "person"},
		{"urn:thing", "urn:thing"},
	}
	for _, tt := range tests {
		if got := LocalName(rdf.NewIRI(tt.iri)); got != tt.want {
			t.Errorf("LocalName(%s) = %q, want %q", tt.iri, got, tt.want)
		}
	}
}
