package comparator

import (
	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/model"
	"github.com/gofhir/contentvalidator/pkg/message"
	"github.com/gofhir/contentvalidator/presence"
)

var allergyCategory = string(model.CategoryAllergy)

// AllergyRule reconciles allergy section presence and compares allergies.
var AllergyRule = presence.Rule[model.Allergy]{
	Category:   allergyCategory,
	Missing:    message.AllergyMissing,
	Unexpected: message.AllergyUnexpected,
	Compare:    CompareAllergies,
}

var (
	allergySectionCode = presence.CodeField(allergyCategory, "allergy section code")
	allergyReaction    = presence.CodeField(allergyCategory, "allergy reaction")
	allergySeverity    = presence.CodeField(allergyCategory, "allergy severity")
	allergyStatus      = presence.CodeField(allergyCategory, "allergy status")
)

// CompareAllergies checks that every scenario allergy observation has a
// submitted counterpart for the same substance, then compares reaction,
// severity and status of each matched pair. Scenario observations without a
// substance have nothing to match on and are skipped.
func CompareAllergies(ref, sub model.Allergy, res *cv.Result) {
	allergySectionCode.Reconcile(ref.SectionCode, sub.SectionCode, res)

	submitted := sub.Observations()
	for _, want := range ref.Observations() {
		substance, ok := want.Substance.Get()
		if !ok {
			continue
		}
		got, found := findAllergy(submitted, substance)
		if !found {
			res.Add(message.Finding(message.AllergyObservationMissing, allergyCategory, message.Params{"substance": substance.String()}))
			continue
		}
		allergyReaction.Reconcile(want.Reaction, got.Reaction, res)
		allergySeverity.Reconcile(want.Severity, got.Severity, res)
		allergyStatus.Reconcile(want.StatusCode, got.StatusCode, res)
	}
}

func findAllergy(observations []model.AllergyObservation, substance model.Code) (model.AllergyObservation, bool) {
	for _, obs := range observations {
		if c, ok := obs.Substance.Get(); ok && c.Matches(substance) {
			return obs, true
		}
	}
	return model.AllergyObservation{}, false
}
