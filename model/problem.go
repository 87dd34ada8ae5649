package model

// Problem is the problem list section.
type Problem struct {
	SectionCode Optional[Code]   `json:"sectionCode,omitzero"`
	Concerns    []ProblemConcern `json:"concerns,omitempty"`
}

// ProblemConcern is a problem concern act wrapping problem observations.
type ProblemConcern struct {
	StatusCode   Optional[Code]       `json:"statusCode,omitzero"`
	Observations []ProblemObservation `json:"observations,omitempty"`
}

// ProblemObservation is a single coded problem.
type ProblemObservation struct {
	ProblemCode Optional[Code]   `json:"problemCode,omitzero"`
	StatusCode  Optional[Code]   `json:"statusCode,omitzero"`
	OnsetTime   Optional[string] `json:"onsetTime,omitzero"`
}

// Observations flattens all problem observations in concern order.
func (p Problem) Observations() []ProblemObservation {
	var out []ProblemObservation
	for _, c := range p.Concerns {
		out = append(out, c.Observations...)
	}
	return out
}
