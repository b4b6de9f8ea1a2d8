package runtime

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ontoforge/shaclgen/rdf"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

var ageRule = PropertyRule{
	Name:         "age",
	Predicate:    rdf.NewIRI("http://example.org/ns#age"),
	Numeric:      true,
	MinInclusive: floatPtr(0),
	MaxInclusive: floatPtr(120),
}

var emailRule = PropertyRule{
	Name:      "email",
	Predicate: rdf.NewIRI("http://example.org/ns#email"),
	Pattern:   `[^@]+@[^@]+\.[a-z]+`,
}

func TestCheckValueNumericBounds(t *testing.T) {
	tests := []struct {
		value   int64
		ok      bool
		message string
	}{
		{0, true, ""},
		{120, true, ""},
		{-1, false, "below minimum 0"},
		{121, false, "above maximum 120"},
	}
	for _, tt := range tests {
		err := ageRule.CheckValue(rdf.NewIntegerLiteral(tt.value))
		if tt.ok {
			if err != nil {
				t.Errorf("CheckValue(%d) = %v, want nil", tt.value, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("CheckValue(%d) = nil, want error", tt.value)
			continue
		}
		if !strings.Contains(err.Error(), tt.message) {
			t.Errorf("CheckValue(%d) error %q does not name the bound %q", tt.value, err, tt.message)
		}
		if !strings.Contains(err.Error(), `"age"`) {
			t.Errorf("CheckValue(%d) error %q does not name the property", tt.value, err)
		}
	}
}

func TestCheckValuePattern(t *testing.T) {
	if err := emailRule.CheckValue(rdf.NewLiteral("a@b.co")); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	err := emailRule.CheckValue(rdf.NewLiteral("not-an-email"))
	if err == nil {
		t.Fatal("invalid email accepted")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error is %T, want *ValidationError", err)
	}
	if len(verr.Violations) != 1 {
		t.Errorf("fail-fast check returned %d violations, want 1", len(verr.Violations))
	}
}

func TestCheckValueFailFast(t *testing.T) {
	rule := PropertyRule{
		Name:      "code",
		Predicate: rdf.NewIRI("http://example.org/ns#code"),
		MinLength: intPtr(10),
		Pattern:   `[A-Z]+`,
	}
	// "ab" violates both length and pattern; only the first is reported.
	err := rule.CheckValue(rdf.NewLiteral("ab"))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error is %T, want *ValidationError", err)
	}
	if len(verr.Violations) != 1 || !strings.Contains(verr.Violations[0].Message, "shorter") {
		t.Errorf("violations = %v", verr.Violations)
	}
}

func TestCheckValueLengthCountsRunes(t *testing.T) {
	rule := PropertyRule{
		Name:      "nickname",
		Predicate: rdf.NewIRI("http://example.org/ns#nickname"),
		MinLength: intPtr(4),
		MaxLength: intPtr(4),
	}
	// "café" is 4 characters but 5 bytes.
	if err := rule.CheckValue(rdf.NewLiteral("café")); err != nil {
		t.Errorf("4-character value rejected by 4..4 length bounds: %v", err)
	}
	err := PropertyRule{
		Name:      "nickname",
		Predicate: rule.Predicate,
		MinLength: intPtr(5),
	}.CheckValue(rdf.NewLiteral("café"))
	if err == nil {
		t.Error("4-character value accepted by minLength 5")
	} else if !strings.Contains(err.Error(), "shorter than 5") {
		t.Errorf("error %q does not name the length bound", err)
	}
}

func TestCheckValueMembership(t *testing.T) {
	rule := PropertyRule{
		Name:      "status",
		Predicate: rdf.NewIRI("http://example.org/ns#status"),
		In:        []rdf.Literal{rdf.NewLiteral("open"), rdf.NewLiteral("closed")},
	}
	if err := rule.CheckValue(rdf.NewLiteral("open")); err != nil {
		t.Errorf("allowed value rejected: %v", err)
	}
	if err := rule.CheckValue(rdf.NewLiteral("pending")); err == nil {
		t.Error("disallowed value accepted")
	}
}

func TestCheckShapeAccumulates(t *testing.T) {
	focus := rdf.NewIRI("http://example.org/data#alice")
	g := rdf.NewGraph()
	g.AddTriple(focus, emailRule.Predicate, rdf.NewLiteral("nope"))
	g.AddTriple(focus, ageRule.Predicate, rdf.NewIntegerLiteral(200))

	nameRule := PropertyRule{
		Name:      "name",
		Predicate: rdf.NewIRI("http://example.org/ns#name"),
		MinCount:  1,
	}

	err := CheckShape(focus, g, []PropertyRule{nameRule, emailRule, ageRule})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error is %T, want *ValidationError", err)
	}
	if len(verr.Violations) != 3 {
		t.Fatalf("got %d violations, want 3: %v", len(verr.Violations), verr.Violations)
	}
	if verr.Violations[0].Property != "name" || !strings.Contains(verr.Violations[0].Message, "required") {
		t.Errorf("first violation = %v", verr.Violations[0])
	}
}

func TestCheckShapeDeterministic(t *testing.T) {
	focus := rdf.NewIRI("http://example.org/data#bob")
	g := rdf.NewGraph()
	g.AddTriple(focus, ageRule.Predicate, rdf.NewIntegerLiteral(-5))

	first := CheckShape(focus, g, []PropertyRule{ageRule, emailRule})
	second := CheckShape(focus, g, []PropertyRule{ageRule, emailRule})

	var v1, v2 *ValidationError
	if !errors.As(first, &v1) || !errors.As(second, &v2) {
		t.Fatalf("unexpected error types: %T, %T", first, second)
	}
	if !reflect.DeepEqual(v1.Violations, v2.Violations) {
		t.Errorf("repeated checks differ: %v vs %v", v1.Violations, v2.Violations)
	}
}

func TestCheckShapeSkipsObjectValues(t *testing.T) {
	focus := rdf.NewIRI("http://example.org/data#carol")
	knows := PropertyRule{
		Name:      "knows",
		Predicate: rdf.NewIRI("http://example.org/ns#knows"),
		MinCount:  1,
	}
	g := rdf.NewGraph()
	g.AddTriple(focus, knows.Predicate, rdf.NewIRI("http://example.org/data#dave"))

	if err := CheckShape(focus, g, []PropertyRule{knows}); err != nil {
		t.Errorf("object reference satisfied minCount but check failed: %v", err)
	}
}
