package contentvalidator

import "time"

// Report is the outcome of one comparison run.
type Report struct {
	// RunID uniquely identifies the run in logs and outcomes
	RunID string `json:"runId"`

	// Objective is the objective code the caller supplied
	Objective string `json:"objective"`

	// Baseline reports whether the objective required the baseline checks
	Baseline bool `json:"baseline"`

	// Result holds the findings, never nil
	Result *Result `json:"result"`

	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`
}

// Passed returns true if the run produced no errors.
func (r *Report) Passed() bool {
	return r.Result == nil || !r.Result.HasErrors()
}
