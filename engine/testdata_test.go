package engine

import "github.com/gofhir/contentvalidator/model"

const (
	toc    = "170.315_b1_ToC_Amb"
	snomed = "2.16.840.1.113883.6.96"
	rxnorm = "2.16.840.1.113883.6.88"
)

// scenario returns a document that passes every check when compared
// against itself.
func scenario() *model.Document {
	d := model.NewDocument()
	d.Patient = model.Some(model.Patient{
		FirstName:         model.Some("Alice"),
		LastName:          model.Some("Newman"),
		BirthDate:         model.Some("19700501"),
		AdministrativeSex: model.Some(model.NewCode("F", "2.16.840.1.113883.5.1")),
	})
	d.SocialHistory = model.Some(model.SocialHistory{
		BirthSex: model.Some(model.BirthSex{SexCode: model.Some(model.NewCode("F", "2.16.840.1.113883.5.1"))}),
	})
	d.Problem = model.Some(model.Problem{
		SectionCode: model.Some(model.NewCode("11450-4", "2.16.840.1.113883.6.1")),
		Concerns: []model.ProblemConcern{{
			Observations: []model.ProblemObservation{{
				ProblemCode: model.Some(model.Code{Code: "233604007", CodeSystem: snomed, DisplayName: "Pneumonia"}),
				OnsetTime:   model.Some("20150101"),
			}},
		}},
	})
	d.Allergy = model.Some(model.Allergy{
		SectionCode: model.Some(model.NewCode("48765-2", "2.16.840.1.113883.6.1")),
		Concerns: []model.AllergyConcern{{
			Observations: []model.AllergyObservation{{
				Substance: model.Some(model.Code{Code: "7982", CodeSystem: rxnorm, DisplayName: "Penicillin G benzathine"}),
				Reaction:  model.Some(model.NewCode("247472004", snomed)),
			}},
		}},
	})
	return d
}
