// Package presence implements the presence reconciliation policy shared by
// every compared category: given whether the scenario and the submission
// carry some data, decide whether to compare it, report it missing, report it
// unexpected, or do nothing.
package presence

import (
	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/model"
	"github.com/gofhir/contentvalidator/pkg/message"
)

// Outcome is the decision for one (scenario has, submission has) pair.
type Outcome int

const (
	// BothAbsent means neither side has the data; nothing is reported.
	BothAbsent Outcome = iota
	// BothPresent means the data is compared field by field.
	BothPresent
	// MissingFromSubmission means the scenario has data the submission lacks.
	MissingFromSubmission
	// UnexpectedInSubmission means the submission has data the scenario lacks.
	UnexpectedInSubmission
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case BothAbsent:
		return "both-absent"
	case BothPresent:
		return "both-present"
	case MissingFromSubmission:
		return "missing-from-submission"
	case UnexpectedInSubmission:
		return "unexpected-in-submission"
	default:
		return "unknown"
	}
}

// Decide maps presence on each side to exactly one outcome.
func Decide(referenceHas, submittedHas bool) Outcome {
	switch {
	case referenceHas && submittedHas:
		return BothPresent
	case referenceHas:
		return MissingFromSubmission
	case submittedHas:
		return UnexpectedInSubmission
	default:
		return BothAbsent
	}
}

// Rule parameterizes the decision table for one kind of data.
type Rule[T any] struct {
	// Category is recorded on every finding the rule emits
	Category string

	// Missing is reported when only the scenario has the data
	Missing message.ID

	// Unexpected is reported when only the submission has the data
	Unexpected message.ID

	// Params are substituted into the Missing and Unexpected templates
	Params message.Params

	// Compare runs when both sides have the data. May be nil.
	Compare func(ref, sub T, res *cv.Result)
}

// Reconcile applies the decision table to ref and sub, appending at most the
// findings of one branch to res, and returns the branch taken.
func Reconcile[T any](rule Rule[T], ref, sub model.Optional[T], res *cv.Result) Outcome {
	r, refHas := ref.Get()
	s, subHas := sub.Get()

	outcome := Decide(refHas, subHas)
	switch outcome {
	case BothPresent:
		if rule.Compare != nil {
			rule.Compare(r, s, res)
		}
	case MissingFromSubmission:
		res.Add(message.Finding(rule.Missing, rule.Category, rule.Params))
	case UnexpectedInSubmission:
		res.Add(message.Finding(rule.Unexpected, rule.Category, rule.Params))
	case BothAbsent:
	}
	return outcome
}
