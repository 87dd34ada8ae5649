package comparator

import (
	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/model"
	"github.com/gofhir/contentvalidator/pkg/message"
	"github.com/gofhir/contentvalidator/presence"
)

var problemCategory = string(model.CategoryProblem)

// ProblemRule reconciles problem section presence and compares problems.
var ProblemRule = presence.Rule[model.Problem]{
	Category:   problemCategory,
	Missing:    message.ProblemMissing,
	Unexpected: message.ProblemUnexpected,
	Compare:    CompareProblems,
}

var (
	problemSectionCode = presence.CodeField(problemCategory, "problem section code")
	problemStatus      = presence.CodeField(problemCategory, "problem status")
	problemOnset       = presence.StringField(problemCategory, "problem onset time")
)

// CompareProblems checks that every scenario problem observation has a
// submitted counterpart with the same problem code, then compares status and
// onset of each matched pair. Scenario order drives finding order.
// Scenario observations without a problem code are skipped.
func CompareProblems(ref, sub model.Problem, res *cv.Result) {
	problemSectionCode.Reconcile(ref.SectionCode, sub.SectionCode, res)

	submitted := sub.Observations()
	for _, want := range ref.Observations() {
		code, ok := want.ProblemCode.Get()
		if !ok {
			continue
		}
		got, found := findProblem(submitted, code)
		if !found {
			res.Add(message.Finding(message.ProblemObservationMissing, problemCategory, message.Params{"code": code.String()}))
			continue
		}
		problemStatus.Reconcile(want.StatusCode, got.StatusCode, res)
		problemOnset.Reconcile(want.OnsetTime, got.OnsetTime, res)
	}
}

func findProblem(observations []model.ProblemObservation, code model.Code) (model.ProblemObservation, bool) {
	for _, obs := range observations {
		if c, ok := obs.ProblemCode.Get(); ok && c.Matches(code) {
			return obs, true
		}
	}
	return model.ProblemObservation{}, false
}
