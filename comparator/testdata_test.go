package comparator

import "github.com/gofhir/contentvalidator/model"

const (
	snomed    = "2.16.840.1.113883.6.96"
	rxnorm    = "2.16.840.1.113883.6.88"
	actStatus = "2.16.840.1.113883.5.14"
)

func scenarioPatient() model.Patient {
	return model.Patient{
		FirstName:         model.Some("Alice"),
		MiddleName:        model.Some("Jones"),
		LastName:          model.Some("Newman"),
		BirthDate:         model.Some("19700501"),
		AdministrativeSex: model.Some(model.NewCode("F", "2.16.840.1.113883.5.1")),
		Race:              model.Some(model.NewCode("2106-3", "2.16.840.1.113883.6.238")),
		Ethnicity:         model.Some(model.NewCode("2186-5", "2.16.840.1.113883.6.238")),
		PreferredLanguage: model.Some(model.NewCode("en", "")),
	}
}

func scenarioProblem() model.Problem {
	return model.Problem{
		SectionCode: model.Some(model.NewCode("11450-4", "2.16.840.1.113883.6.1")),
		Concerns: []model.ProblemConcern{
			{
				StatusCode: model.Some(model.NewCode("active", actStatus)),
				Observations: []model.ProblemObservation{
					{
						ProblemCode: model.Some(model.Code{Code: "233604007", CodeSystem: snomed, DisplayName: "Pneumonia"}),
						StatusCode:  model.Some(model.NewCode("completed", actStatus)),
						OnsetTime:   model.Some("20150101"),
					},
				},
			},
			{
				Observations: []model.ProblemObservation{
					{
						ProblemCode: model.Some(model.Code{Code: "195967001", CodeSystem: snomed, DisplayName: "Asthma"}),
						StatusCode:  model.Some(model.NewCode("completed", actStatus)),
					},
				},
			},
		},
	}
}

func scenarioAllergy() model.Allergy {
	return model.Allergy{
		SectionCode: model.Some(model.NewCode("48765-2", "2.16.840.1.113883.6.1")),
		Concerns: []model.AllergyConcern{
			{
				StatusCode: model.Some(model.NewCode("active", actStatus)),
				Observations: []model.AllergyObservation{
					{
						Substance:  model.Some(model.Code{Code: "7982", CodeSystem: rxnorm, DisplayName: "Penicillin G benzathine"}),
						Reaction:   model.Some(model.NewCode("247472004", snomed)),
						Severity:   model.Some(model.NewCode("6736007", snomed)),
						StatusCode: model.Some(model.NewCode("completed", actStatus)),
					},
				},
			},
		},
	}
}
