// Package pipeline runs the comparison as an ordered sequence of named steps.
package pipeline

import (
	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/model"
	"github.com/gofhir/contentvalidator/presence"
)

// StepID uniquely identifies a comparison step.
type StepID string

// Standard step identifiers.
const (
	StepPatient  StepID = "patient"
	StepBirthSex StepID = "birth-sex"
	StepProblem  StepID = "problem"
	StepAllergy  StepID = "allergy"
)

// Input is the read-only pair of documents under comparison.
type Input struct {
	Reference *model.Document
	Submitted *model.Document
}

// Step is a single comparison step.
//
// Steps must not modify the input documents and must only append to the
// result. A step never looks at what earlier steps reported.
type Step interface {
	// ID returns the unique identifier for this step.
	ID() StepID

	// Run appends the step's findings to res.
	Run(in *Input, res *cv.Result)
}

// StepFunc is a Step backed by a function.
type StepFunc struct {
	id StepID
	fn func(in *Input, res *cv.Result)
}

// NewStepFunc creates a Step from a function.
func NewStepFunc(id StepID, fn func(in *Input, res *cv.Result)) Step {
	return &StepFunc{id: id, fn: fn}
}

// ID returns the step identifier.
func (s *StepFunc) ID() StepID {
	return s.id
}

// Run calls the wrapped function.
func (s *StepFunc) Run(in *Input, res *cv.Result) {
	s.fn(in, res)
}

// ReconcileStep builds a step that applies rule to the category selected by
// get on both documents.
func ReconcileStep[T any](id StepID, rule presence.Rule[T], get func(*model.Document) model.Optional[T]) Step {
	return NewStepFunc(id, func(in *Input, res *cv.Result) {
		presence.Reconcile(rule, get(in.Reference), get(in.Submitted), res)
	})
}
