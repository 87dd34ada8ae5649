package comparator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/model"
	"github.com/gofhir/contentvalidator/pkg/message"
	"github.com/gofhir/contentvalidator/presence"
)

func TestCompareAllergies_Identical(t *testing.T) {
	res := cv.NewResult()
	CompareAllergies(scenarioAllergy(), scenarioAllergy(), res)
	assert.True(t, res.IsEmpty(), "identical allergies reported %v", res.Findings)
}

func TestCompareAllergies_MissingSubstance(t *testing.T) {
	sub := scenarioAllergy()
	sub.Concerns[0].Observations[0].Substance = model.Some(model.NewCode("2670", rxnorm))

	res := cv.NewResult()
	CompareAllergies(scenarioAllergy(), sub, res)

	require.Equal(t, 1, res.Len(), "findings: %v", res.Findings)
	assert.Equal(t, string(message.AllergyObservationMissing), res.Findings[0].MessageID)
	assert.Contains(t, res.Findings[0].Message, "Penicillin G benzathine")
}

func TestCompareAllergies_ScenarioObservationWithoutSubstanceSkipped(t *testing.T) {
	ref := model.Allergy{Concerns: []model.AllergyConcern{{
		Observations: []model.AllergyObservation{{Reaction: model.Some(model.NewCode("247472004", snomed))}},
	}}}

	res := cv.NewResult()
	CompareAllergies(ref, model.Allergy{}, res)
	assert.True(t, res.IsEmpty())
}

func TestCompareAllergies_ReactionAndSeverity(t *testing.T) {
	sub := scenarioAllergy()
	sub.Concerns[0].Observations[0].Reaction = model.Some(model.NewCode("422587007", snomed))
	sub.Concerns[0].Observations[0].Severity = model.None[model.Code]()

	res := cv.NewResult()
	CompareAllergies(scenarioAllergy(), sub, res)

	require.Equal(t, 2, res.Len(), "findings: %v", res.Findings)
	assert.Equal(t, string(message.FieldMismatch), res.Findings[0].MessageID)
	assert.Contains(t, res.Findings[0].Message, "allergy reaction")
	assert.Equal(t, string(message.FieldMissing), res.Findings[1].MessageID)
	assert.Contains(t, res.Findings[1].Message, "allergy severity")
}

func TestCompareAllergies_SectionCodeUnexpected(t *testing.T) {
	ref := scenarioAllergy()
	ref.SectionCode = model.None[model.Code]()

	res := cv.NewResult()
	CompareAllergies(ref, scenarioAllergy(), res)

	require.Equal(t, 1, res.Len())
	assert.Equal(t, cv.SeverityWarning, res.Findings[0].Severity)
}

func TestAllergyRule_Table(t *testing.T) {
	present := model.Some(scenarioAllergy())
	absent := model.None[model.Allergy]()

	tests := []struct {
		name     string
		ref, sub model.Optional[model.Allergy]
		wantIDs  []string
	}{
		{"both present identical", present, present, nil},
		{"missing", present, absent, []string{string(message.AllergyMissing)}},
		{"unexpected", absent, present, []string{string(message.AllergyUnexpected)}},
		{"both absent", absent, absent, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := cv.NewResult()
			presence.Reconcile(AllergyRule, tt.ref, tt.sub, res)

			var ids []string
			for _, f := range res.Findings {
				ids = append(ids, f.MessageID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
