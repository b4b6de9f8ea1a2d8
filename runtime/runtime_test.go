package runtime

import (
	"errors"
	"sync"
	"testing"

	"github.com/ontoforge/shaclgen/rdf"
	"github.com/ontoforge/shaclgen/vocab"
)

func TestRegistryUpsert(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Person", func(focus rdf.Term, g rdf.Graph) any { return "first" })
	reg.Register("Person", func(focus rdf.Term, g rdf.Graph) any { return "second" })

	f, ok := reg.Lookup("Person")
	if !ok {
		t.Fatal("factory not found")
	}
	if got := f(nil, nil); got != "second" {
		t.Errorf("last write should win, got %v", got)
	}
}

func TestRegistryConcurrentRegister(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Register("Person", func(focus rdf.Term, g rdf.Graph) any { return nil })
			reg.Lookup("Person")
		}()
	}
	wg.Wait()
	if _, ok := reg.Lookup("Person"); !ok {
		t.Error("factory missing after concurrent registration")
	}
}

func TestMaterialize(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Person", func(focus rdf.Term, g rdf.Graph) any { return focus })
	m := NewMaterializer(reg)

	focus := rdf.NewIRI("http://example.org/data#alice")
	got, err := m.Materialize(focus, rdf.NewGraph(), "Person")
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if got != focus {
		t.Errorf("materialized %v, want %v", got, focus)
	}

	_, err = m.Materialize(focus, rdf.NewGraph(), "Unknown")
	if !errors.Is(err, ErrNoFactory) {
		t.Errorf("error = %v, want ErrNoFactory", err)
	}
}

func TestPropertyCacheSnapshot(t *testing.T) {
	var cache PropertyCache
	pred := rdf.NewIRI("http://example.org/ns#name")

	calls := 0
	load := func() any {
		calls++
		return "alice"
	}
	if got := cache.Load(pred, load); got != "alice" {
		t.Errorf("first load = %v", got)
	}
	if got := cache.Load(pred, load); got != "alice" {
		t.Errorf("second load = %v", got)
	}
	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}
}

func TestInstanceBuilder(t *testing.T) {
	focus := rdf.NewIRI("http://example.org/data#alice")
	typeIRI := rdf.NewIRI("http://example.org/ns#Person")
	nameRule := PropertyRule{Name: "name", Predicate: rdf.NewIRI("http://example.org/ns#name"), MinCount: 1}

	b := NewInstanceBuilder(focus, typeIRI, []PropertyRule{nameRule})
	if err := b.Set(nameRule, rdf.NewLiteral("Alice")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// Scalar set replaces the earlier value.
	if err := b.Set(nameRule, rdf.NewLiteral("Alicia")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	g := rdf.NewGraph()
	if got := b.Build(g); !got.Equal(focus) {
		t.Errorf("Build returned %v", got)
	}
	names := g.Triples(focus, nameRule.Predicate, nil)
	if len(names) != 1 {
		t.Fatalf("got %d name triples, want 1", len(names))
	}
	if lit := names[0].Object.(rdf.Literal); lit.Value != "Alicia" {
		t.Errorf("name = %q, want Alicia", lit.Value)
	}
	types := g.Triples(focus, vocab.RDFType, nil)
	if len(types) != 1 || !types[0].Object.Equal(typeIRI) {
		t.Errorf("type triples = %v", types)
	}
}

func TestInstanceBuilderRequiredUnset(t *testing.T) {
	focus := rdf.NewBlankNode("b0")
	nameRule := PropertyRule{Name: "name", Predicate: rdf.NewIRI("http://example.org/ns#name"), MinCount: 1}
	b := NewInstanceBuilder(focus, rdf.NewIRI("http://example.org/ns#Person"), []PropertyRule{nameRule})

	// Build is independent of conformance and still succeeds.
	g := rdf.NewGraph()
	b.Build(g)
	if g.Len() == 0 {
		t.Error("Build wrote nothing")
	}

	err := b.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate error = %T, want *ValidationError", err)
	}
	if len(verr.Violations) != 1 || verr.Violations[0].Property != "name" {
		t.Errorf("violations = %v", verr.Violations)
	}
}

func TestInstanceBuilderLanguageTags(t *testing.T) {
	focus := rdf.NewIRI("http://example.org/data#paris")
	labelRule := PropertyRule{Name: "label", Predicate: rdf.NewIRI("http://example.org/ns#label")}
	b := NewInstanceBuilder(focus, rdf.NewIRI("http://example.org/ns#City"), []PropertyRule{labelRule})

	if err := b.Add(labelRule, rdf.NewLangLiteral("Paris", "en")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := b.Add(labelRule, rdf.NewLangLiteral("Paris", "fr")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	g := rdf.NewGraph()
	b.Build(g)
	labels := Literals(g, focus, labelRule.Predicate)
	if len(labels) != 2 {
		t.Fatalf("got %d labels, want 2", len(labels))
	}
	if labels[0].Language != "en" || labels[1].Language != "fr" {
		t.Errorf("labels = %v", labels)
	}
}

func TestExtras(t *testing.T) {
	focus := rdf.NewIRI("http://example.org/data#alice")
	name := rdf.NewIRI("http://example.org/ns#name")
	nick := rdf.NewIRI("http://example.org/ns#nickname")

	g := rdf.NewGraph()
	g.AddTriple(focus, name, rdf.NewLiteral("Alice"))
	g.AddTriple(focus, nick, rdf.NewLiteral("Al"))
	g.AddTriple(rdf.NewIRI("http://example.org/data#bob"), nick, rdf.NewLiteral("Bob"))

	extras := Extras(g, focus, []rdf.IRI{name})
	if len(extras) != 1 {
		t.Fatalf("got %d extras, want 1", len(extras))
	}
	if !extras[0].Predicate.Equal(nick) {
		t.Errorf("extra predicate = %v", extras[0].Predicate)
	}
}

func TestScalarReads(t *testing.T) {
	focus := rdf.NewIRI("http://example.org/data#alice")
	age := rdf.NewIRI("http://example.org/ns#age")
	knows := rdf.NewIRI("http://example.org/ns#knows")
	bob := rdf.NewIRI("http://example.org/data#bob")

	g := rdf.NewGraph()
	g.AddTriple(focus, age, rdf.NewIntegerLiteral(30))
	g.AddTriple(focus, age, rdf.NewIntegerLiteral(31))
	g.AddTriple(focus, knows, bob)

	// First insertion-order match wins for scalars.
	lit, ok := ScalarLiteral(g, focus, age)
	if !ok || AsInt(lit) != 30 {
		t.Errorf("ScalarLiteral = %v, %v", lit, ok)
	}
	ref, ok := ScalarRef(g, focus, knows)
	if !ok || !ref.Equal(bob) {
		t.Errorf("ScalarRef = %v, %v", ref, ok)
	}
	if _, ok := ScalarLiteral(g, focus, knows); ok {
		t.Error("ScalarLiteral matched an object reference")
	}
}
