package ontology

import (
	"testing"

	"github.com/ontoforge/shaclgen/jsonld"
	"github.com/ontoforge/shaclgen/rdf"
	"github.com/ontoforge/shaclgen/shacl"
)

const builderShapes = `
@prefix sh:  <http://www.w3.org/ns/shacl#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex:  <http://example.org/ns#> .

ex:PersonShape a sh:NodeShape ;
    sh:targetClass ex:Person ;
    sh:description "A natural person." ;
    sh:property [
        sh:path ex:name ;
        sh:datatype xsd:string ;
        sh:minCount 1 ;
        sh:maxCount 1 ;
    ] ;
    sh:property [
        sh:path ex:age ;
        sh:datatype xsd:integer ;
        sh:maxCount 1 ;
    ] ;
    sh:property [
        sh:path ex:knows ;
        sh:class ex:Person ;
    ] ;
    sh:property [
        sh:path ex:employer ;
        sh:class ex:Organization ;
        sh:maxCount 1 ;
    ] .

ex:OrgShape a sh:NodeShape ;
    sh:targetClass ex:Organization ;
    sh:property [
        sh:path ex:name ;
        sh:datatype xsd:string ;
    ] .
`

const builderContext = `{
  "@context": {
    "ex": "http://example.org/ns#",
    "name": { "@id": "ex:name", "@type": "xsd:string" },
    "knows": { "@id": "ex:knows", "@type": "@id" }
  }
}`

func buildTestModel(t *testing.T) *Model {
	t.Helper()
	shapes, diags, err := shacl.ParseShapesString("shapes.ttl", builderShapes)
	if err != nil {
		t.Fatalf("parsing shapes: %v", err)
	}
	if diags.HasErrors() {
		t.Fatalf("shape diagnostics: %v", diags.Errors())
	}
	ctx, err := jsonld.ParseString(builderContext)
	if err != nil {
		t.Fatalf("parsing context: %v", err)
	}
	return Build(shapes, ctx)
}

func TestBuildClasses(t *testing.T) {
	model := buildTestModel(t)

	if len(model.Classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(model.Classes))
	}
	person := model.Classes[0]
	if person.Name != "Person" {
		t.Errorf("class name = %q, want Person", person.Name)
	}
	if person.Description != "A natural person." {
		t.Errorf("class description = %q", person.Description)
	}
	if org := model.Classes[1]; org.Description != "" {
		t.Errorf("undescribed class carries description %q", org.Description)
	}
	if len(person.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(person.Properties))
	}
}

func TestBuildProperties(t *testing.T) {
	model := buildTestModel(t)
	props := model.Classes[0].Properties

	name := props[0]
	if name.Name != "Name" || name.FieldName != "name" {
		t.Errorf("name naming = %q / %q", name.Name, name.FieldName)
	}
	if name.GoType != "string" || name.IsList || !name.IsRequired {
		t.Errorf("name = %+v", name)
	}

	age := props[1]
	if age.GoType != "int" || age.IsList || age.IsRequired {
		t.Errorf("age = %+v", age)
	}

	knows := props[2]
	if !knows.IsObject || !knows.IsList {
		t.Errorf("knows = %+v", knows)
	}
	if knows.ObjectType != "Person" || knows.GoType != "Person" {
		t.Errorf("knows object type = %q / %q", knows.ObjectType, knows.GoType)
	}

	// Organization resolves even though its shape comes later in the file.
	employer := props[3]
	if employer.ObjectType != "Organization" {
		t.Errorf("employer object type = %q", employer.ObjectType)
	}
	if employer.IsList {
		t.Error("employer should be scalar")
	}
}

func TestBuildUnknownObjectClass(t *testing.T) {
	shapes, _, err := shacl.ParseShapesString("shapes.ttl", `
@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix ex: <http://example.org/ns#> .

ex:DocShape a sh:NodeShape ;
    sh:targetClass ex:Document ;
    sh:property [ sh:path ex:author ; sh:class ex:Agent ; sh:maxCount 1 ] .
`)
	if err != nil {
		t.Fatalf("parsing shapes: %v", err)
	}
	model := Build(shapes, jsonld.Context{})
	author := model.Classes[0].Properties[0]
	if !author.IsObject {
		t.Error("author should be an object property")
	}
	if author.GoType != "rdf.IRI" {
		t.Errorf("author GoType = %q, want rdf.IRI", author.GoType)
	}
}

func TestGoName(t *testing.T) {
	tests := []struct {
		iri  string
		want string
	}{
		{"http://example.org/ns#Person", "Person"},
		{"http://example.org/ns#givenName", "GivenName"},
		{"http://example.org/ns#has-part", "HasPart"},
		{"http://example.org/ns#3dModel", "X3dModel"},
		{"http://example.org/vocab/", "Unnamed"},
	}
	for _, tt := range tests {
		if got := GoName(rdf.NewIRI(tt.iri)); got != tt.want {
			t.Errorf("GoName(%q) = %q, want %q", tt.iri, got, tt.want)
		}
	}
}

func TestNameTableCollisions(t *testing.T) {
	names := newNameTable()
	if got := names.claim("Name"); got != "Name" {
		t.Errorf("first claim = %q", got)
	}
	if got := names.claim("Name"); got != "Name_2" {
		t.Errorf("second claim = %q", got)
	}
	if got := names.claim("Name"); got != "Name_3" {
		t.Errorf("third claim = %q", got)
	}
}
