// Package diagnostics provides error and warning collection for SHACL
// shape parsing. Parsing never stops at the first problem: non-fatal
// issues (a shape without a target class, a property without a path) are
// accumulated as warnings so the caller can report all of them at once.
package diagnostics

import (
	"fmt"

	"github.com/ontoforge/shaclgen/rdf"
)

// ShapeError is a fatal problem with the shapes document.
type ShapeError struct {
	message string
	subject rdf.Term
}

// NewShapeError creates an error attached to the offending graph node.
func NewShapeError(message string, subject rdf.Term) ShapeError {
	return ShapeError{message: message, subject: subject}
}

// Message returns the human-readable description.
func (e ShapeError) Message() string { return e.message }

// Subject returns the graph node the error refers to, or nil.
func (e ShapeError) Subject() rdf.Term { return e.subject }

// ShapeWarning is a non-fatal problem: the offending shape or property is
// dropped and extraction continues.
type ShapeWarning struct {
	message string
	subject rdf.Term
}

// NewShapeWarning creates a warning attached to the offending graph node.
func NewShapeWarning(message string, subject rdf.Term) ShapeWarning {
	return ShapeWarning{message: message, subject: subject}
}

// NewMissingTargetClassWarning reports a node shape without sh:targetClass.
func NewMissingTargetClassWarning(shape rdf.Term) ShapeWarning {
	return NewShapeWarning(
		fmt.Sprintf("node shape %s has no sh:targetClass and was skipped", shape),
		shape)
}

// NewMissingPathWarning reports a property shape without sh:path.
func NewMissingPathWarning(shape rdf.Term, property rdf.Term) ShapeWarning {
	return NewShapeWarning(
		fmt.Sprintf("property shape %s on %s has no sh:path and was skipped", property, shape),
		property)
}

// Message returns the human-readable description.
func (w ShapeWarning) Message() string { return w.message }

// Subject returns the graph node the warning refers to, or nil.
func (w ShapeWarning) Subject() rdf.Term { return w.subject }

// Diagnostics accumulates errors and warnings during shape extraction.
type Diagnostics struct {
	errors   []ShapeError
	warnings []ShapeWarning
}

// NewDiagnostics creates an empty collection.
func NewDiagnostics() Diagnostics {
	return Diagnostics{}
}

// PushError adds a fatal error.
func (d *Diagnostics) PushError(err ShapeError) {
	d.errors = append(d.errors, err)
}

// PushWarning adds a non-fatal warning.
func (d *Diagnostics) PushWarning(warning ShapeWarning) {
	d.warnings = append(d.warnings, warning)
}

// Errors returns all collected errors.
func (d *Diagnostics) Errors() []ShapeError { return d.errors }

// Warnings returns all collected warnings.
func (d *Diagnostics) Warnings() []ShapeWarning { return d.warnings }

// HasErrors reports whether at least one fatal error was collected.
func (d *Diagnostics) HasErrors() bool { return len(d.errors) > 0 }

// ToResult returns an error summarizing the collection, or nil.
func (d *Diagnostics) ToResult() error {
	if d.HasErrors() {
		return fmt.Errorf("shape extraction failed with %d errors", len(d.errors))
	}
	return nil
}
