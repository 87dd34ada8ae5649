package model

// Allergy is the allergies and intolerances section.
type Allergy struct {
	SectionCode Optional[Code]   `json:"sectionCode,omitzero"`
	Concerns    []AllergyConcern `json:"concerns,omitempty"`
}

// AllergyConcern is an allergy concern act wrapping intolerance observations.
type AllergyConcern struct {
	StatusCode   Optional[Code]       `json:"statusCode,omitzero"`
	Observations []AllergyObservation `json:"observations,omitempty"`
}

// AllergyObservation is a single allergy or intolerance.
type AllergyObservation struct {
	Substance  Optional[Code] `json:"substance,omitzero"`
	Reaction   Optional[Code] `json:"reaction,omitzero"`
	Severity   Optional[Code] `json:"severity,omitzero"`
	StatusCode Optional[Code] `json:"statusCode,omitzero"`
}

// Observations flattens all allergy observations in concern order.
func (a Allergy) Observations() []AllergyObservation {
	var out []AllergyObservation
	for _, c := range a.Concerns {
		out = append(out, c.Observations...)
	}
	return out
}
