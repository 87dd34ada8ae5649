package pipeline

import (
	cv "github.com/gofhir/contentvalidator"
)

// Observer is told which findings each step added. Observers must not
// modify the findings.
type Observer func(id StepID, added []cv.Finding)

// Sequence runs steps in order. Every step runs regardless of earlier
// findings.
type Sequence []Step

// Run executes every step against in, appending to res.
func (s Sequence) Run(in *Input, res *cv.Result, observers ...Observer) {
	for _, step := range s {
		before := res.Len()
		step.Run(in, res)

		if len(observers) == 0 {
			continue
		}
		added := res.Findings[before:]
		for _, observe := range observers {
			if observe != nil {
				observe(step.ID(), added)
			}
		}
	}
}

// IDs returns the step identifiers in execution order.
func (s Sequence) IDs() []StepID {
	ids := make([]StepID, len(s))
	for i, step := range s {
		ids[i] = step.ID()
	}
	return ids
}
