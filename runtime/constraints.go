package runtime

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/ontoforge/shaclgen/rdf"
)

// PropertyRule is the compiled form of one property's constraints.
// Generated validation routines and builders both evaluate values
// through it, so immediate and deferred checks cannot drift apart.
type PropertyRule struct {
	Name      string // property name used in violation messages
	Predicate rdf.IRI

	MinCount int

	MinLength *int
	MaxLength *int
	Pattern   string
	In        []rdf.Literal

	// Numeric enables the bound checks. Bounds on non-numeric
	// properties are ignored.
	Numeric      bool
	MinInclusive *float64
	MaxInclusive *float64
	MinExclusive *float64
	MaxExclusive *float64
}

// Violation is one failed constraint check.
type Violation struct {
	Property string
	Message  string
}

func (v Violation) String() string {
	return fmt.Sprintf("property %q: %s", v.Property, v.Message)
}

// ValidationError aggregates every violation found by a shape check. It
// is also the error type of the fail-fast setter checks, then carrying
// exactly one violation.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// CheckValue evaluates the per-value constraints of a rule against one
// literal and fails on the first violation. Builders call it from every
// setter.
func (r PropertyRule) CheckValue(lit rdf.Literal) error {
	if v := r.valueViolations(lit, true); v != nil {
		return &ValidationError{Violations: v[:1]}
	}
	return nil
}

// CheckShape evaluates the full rule set against a focus node and
// accumulates every violation. It never fails partially: either all
// rules hold and the result is nil, or a single aggregate error carries
// the complete violation list.
func CheckShape(focus rdf.Term, graph rdf.Graph, rules []PropertyRule) error {
	var violations []Violation
	for _, rule := range rules {
		triples := graph.Triples(focus, rule.Predicate, nil)
		if len(triples) < rule.MinCount {
			violations = append(violations, rule.countViolation(len(triples)))
		}
		for _, t := range triples {
			lit, ok := t.Object.(rdf.Literal)
			if !ok {
				continue
			}
			violations = append(violations, rule.valueViolations(lit, false)...)
		}
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func (r PropertyRule) countViolation(count int) Violation {
	if r.MinCount == 1 {
		return Violation{Property: r.Name, Message: "required value is missing"}
	}
	return Violation{
		Property: r.Name,
		Message:  fmt.Sprintf("needs at least %d values, has %d", r.MinCount, count),
	}
}

// valueViolations runs the per-value checks in a fixed order: length,
// pattern, membership, numeric bounds. With failFast it stops at the
// first hit.
func (r PropertyRule) valueViolations(lit rdf.Literal, failFast bool) []Violation {
	var violations []Violation
	report := func(format string, args ...any) {
		violations = append(violations, Violation{
			Property: r.Name,
			Message:  fmt.Sprintf(format, args...),
		})
	}
	done := func() bool { return failFast && len(violations) > 0 }

	// SHACL string length counts characters, not bytes.
	length := utf8.RuneCountInString(lit.Value)
	if r.MinLength != nil && length < *r.MinLength {
		report("value %q is shorter than %d characters", lit.Value, *r.MinLength)
	}
	if done() {
		return violations
	}
	if r.MaxLength != nil && length > *r.MaxLength {
		report("value %q is longer than %d characters", lit.Value, *r.MaxLength)
	}
	if done() {
		return violations
	}
	if r.Pattern != "" && !matchPattern(r.Pattern, lit.Value) {
		report("value %q does not match pattern %q", lit.Value, r.Pattern)
	}
	if done() {
		return violations
	}
	if len(r.In) > 0 && !literalIn(lit, r.In) {
		report("value %q is not one of the allowed values", lit.Value)
	}
	if done() {
		return violations
	}

	if !r.Numeric {
		return violations
	}
	num, err := lit.Float()
	if err != nil {
		report("value %q is not a number", lit.Value)
		return violations
	}
	if r.MinInclusive != nil && num < *r.MinInclusive {
		report("value %v is below minimum %v", num, *r.MinInclusive)
	}
	if done() {
		return violations
	}
	if r.MaxInclusive != nil && num > *r.MaxInclusive {
		report("value %v is above maximum %v", num, *r.MaxInclusive)
	}
	if done() {
		return violations
	}
	if r.MinExclusive != nil && num <= *r.MinExclusive {
		report("value %v must be greater than %v", num, *r.MinExclusive)
	}
	if done() {
		return violations
	}
	if r.MaxExclusive != nil && num >= *r.MaxExclusive {
		report("value %v must be less than %v", num, *r.MaxExclusive)
	}
	return violations
}

func literalIn(lit rdf.Literal, allowed []rdf.Literal) bool {
	for _, a := range allowed {
		if a.Value == lit.Value {
			return true
		}
	}
	return false
}

// patternCache holds compiled full-match regexes keyed by the raw SHACL
// pattern. Patterns come from the shapes file and are compiled once per
// process.
var patternCache sync.Map

func matchPattern(pattern, value string) bool {
	if cached, ok := patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp).MatchString(value)
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		// An uncompilable pattern rejects nothing.
		return true
	}
	patternCache.Store(pattern, re)
	return re.MatchString(value)
}
