package contentvalidator

// Result is the ordered collection of findings produced by one comparison run.
// Findings are append-only and keep emission order. A Result is owned by a
// single run and is not safe for concurrent mutation.
type Result struct {
	// Findings in the order they were emitted
	Findings []Finding `json:"findings"`
}

// defaultFindingCapacity covers the usual comparison with a handful of findings.
const defaultFindingCapacity = 8

// NewResult creates a new empty result.
func NewResult() *Result {
	return &Result{
		Findings: make([]Finding, 0, defaultFindingCapacity),
	}
}

// Add appends a finding.
func (r *Result) Add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// AddError appends an error finding at the document root.
func (r *Result) AddError(category, message string) {
	r.Add(Error().Category(category).Message(message).Build())
}

// AddWarning appends a warning finding at the document root.
func (r *Result) AddWarning(category, message string) {
	r.Add(Warning().Category(category).Message(message).Build())
}

// AddInfo appends an informational finding at the document root.
func (r *Result) AddInfo(category, message string) {
	r.Add(Info().Category(category).Message(message).Build())
}

// Len returns the number of findings.
func (r *Result) Len() int {
	return len(r.Findings)
}

// IsEmpty returns true when nothing was reported.
func (r *Result) IsEmpty() bool {
	return len(r.Findings) == 0
}

// HasErrors returns true if there are any error findings.
func (r *Result) HasErrors() bool {
	for _, f := range r.Findings {
		if f.IsError() {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error findings.
func (r *Result) ErrorCount() int {
	return r.count(SeverityError)
}

// WarningCount returns the number of warning findings.
func (r *Result) WarningCount() int {
	return r.count(SeverityWarning)
}

// InfoCount returns the number of informational findings.
func (r *Result) InfoCount() int {
	return r.count(SeverityInfo)
}

func (r *Result) count(severity Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == severity {
			n++
		}
	}
	return n
}

// Errors returns all error findings.
func (r *Result) Errors() []Finding {
	return r.Filter(SeverityError).Findings
}

// Warnings returns all warning findings.
func (r *Result) Warnings() []Finding {
	return r.Filter(SeverityWarning).Findings
}

// Filter returns a new Result with only findings of the given severity.
func (r *Result) Filter(severity Severity) *Result {
	filtered := NewResult()
	for _, f := range r.Findings {
		if f.Severity == severity {
			filtered.Findings = append(filtered.Findings, f)
		}
	}
	return filtered
}

// ByCategory returns a new Result with only findings of the given category.
func (r *Result) ByCategory(category string) *Result {
	filtered := NewResult()
	for _, f := range r.Findings {
		if f.Category == category {
			filtered.Findings = append(filtered.Findings, f)
		}
	}
	return filtered
}

// Merge appends the findings of other, preserving their order.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Findings = append(r.Findings, other.Findings...)
}

// Clone creates an independent copy of the result.
func (r *Result) Clone() *Result {
	clone := &Result{
		Findings: make([]Finding, len(r.Findings)),
	}
	copy(clone.Findings, r.Findings)
	return clone
}

// Promote returns a copy of the result where findings of severity from are
// reported with severity to. Used by strict mode.
func (r *Result) Promote(from, to Severity) *Result {
	clone := r.Clone()
	for i := range clone.Findings {
		if clone.Findings[i].Severity == from {
			clone.Findings[i].Severity = to
		}
	}
	return clone
}
