// Package engine is the comparison entry point.
//
// Compare is a pure function of its inputs. Validator wraps it with
// logging, metrics, tracing and batch comparison.
package engine

import (
	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/comparator"
	"github.com/gofhir/contentvalidator/model"
	"github.com/gofhir/contentvalidator/objective"
	"github.com/gofhir/contentvalidator/pipeline"
)

// steps is the fixed comparison order.
var steps = pipeline.Sequence{
	pipeline.ReconcileStep(pipeline.StepPatient, comparator.PatientRule, func(d *model.Document) model.Optional[model.Patient] {
		return d.Patient
	}),
	pipeline.NewStepFunc(pipeline.StepBirthSex, func(in *pipeline.Input, res *cv.Result) {
		comparator.ValidateBirthSex(in.Submitted, res)
	}),
	pipeline.ReconcileStep(pipeline.StepProblem, comparator.ProblemRule, func(d *model.Document) model.Optional[model.Problem] {
		return d.Problem
	}),
	pipeline.ReconcileStep(pipeline.StepAllergy, comparator.AllergyRule, func(d *model.Document) model.Optional[model.Allergy] {
		return d.Allergy
	}),
}

// Steps returns the comparison step order.
func Steps() []pipeline.StepID {
	return steps.IDs()
}

// Compare compares a submitted document against the scenario (reference)
// document for the given objective. Objectives that do not require the
// baseline checks yield an empty result.
//
// Both documents must be non-nil. They are never modified.
func Compare(objectiveCode string, reference, submitted *model.Document) *cv.Result {
	return compare(objectiveCode, reference, submitted)
}

func compare(objectiveCode string, reference, submitted *model.Document, observers ...pipeline.Observer) *cv.Result {
	if reference == nil {
		panic("engine: Compare called with nil reference document")
	}
	if submitted == nil {
		panic("engine: Compare called with nil submitted document")
	}

	res := cv.NewResult()
	if !objective.RequiresBaselineCheck(objectiveCode) {
		return res
	}

	steps.Run(&pipeline.Input{Reference: reference, Submitted: submitted}, res, observers...)
	return res
}
