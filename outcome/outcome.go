// Package outcome converts comparison results to FHIR R4 OperationOutcome
// resources and evaluates FHIRPath gates over them.
package outcome

import (
	"encoding/json"
	"fmt"

	"github.com/gofhir/fhir/r4"
	"github.com/google/uuid"

	cv "github.com/gofhir/contentvalidator"
)

// Code systems used in issue details.
const (
	// MessageSystem identifies the message catalog IDs.
	MessageSystem = "urn:ccda-compare:message"

	// CategorySystem identifies clinical data categories.
	CategorySystem = "urn:ccda-compare:category"
)

// Issue severities and types, as FHIR codes.
const (
	severityError       = "error"
	severityWarning     = "warning"
	severityInformation = "information"

	typeBusinessRule  = "business-rule"
	typeInformational = "informational"
)

// FromResult converts res to an OperationOutcome with a fresh id. An empty
// result yields a single informational issue, since an OperationOutcome
// must carry at least one.
func FromResult(res *cv.Result) *r4.OperationOutcome {
	return build(uuid.NewString(), res)
}

// FromReport converts a report, using its run id as the resource id.
func FromReport(rep *cv.Report) *r4.OperationOutcome {
	id := rep.RunID
	if id == "" {
		id = uuid.NewString()
	}
	return build(id, rep.Result)
}

// Marshal encodes an OperationOutcome as JSON.
func Marshal(oo *r4.OperationOutcome) ([]byte, error) {
	data, err := json.Marshal(oo)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OperationOutcome: %w", err)
	}
	return data, nil
}

func build(id string, res *cv.Result) *r4.OperationOutcome {
	oo := &r4.OperationOutcome{Id: ptr(id)}

	if res == nil || res.IsEmpty() {
		oo.Issue = []r4.OperationOutcomeIssue{{
			Severity:    ptr(r4.IssueSeverity(severityInformation)),
			Code:        ptr(r4.IssueType(typeInformational)),
			Diagnostics: ptr("No issues detected"),
		}}
		return oo
	}

	oo.Issue = make([]r4.OperationOutcomeIssue, 0, res.Len())
	for _, f := range res.Findings {
		oo.Issue = append(oo.Issue, issue(f))
	}
	return oo
}

func issue(f cv.Finding) r4.OperationOutcomeIssue {
	iss := r4.OperationOutcomeIssue{
		Severity:    ptr(r4.IssueSeverity(severity(f.Severity))),
		Code:        ptr(r4.IssueType(typeBusinessRule)),
		Diagnostics: ptr(f.Message),
	}

	if f.LocationPath != "" {
		loc := f.LocationPath
		if f.LocationLine != "" && f.LocationLine != cv.DefaultLocationLine {
			loc = loc + ":" + f.LocationLine
		}
		iss.Location = []string{loc}
		iss.Expression = []string{f.LocationPath}
	}

	var coding []r4.Coding
	if f.MessageID != "" {
		coding = append(coding, r4.Coding{System: ptr(MessageSystem), Code: ptr(f.MessageID)})
	}
	if f.Category != "" {
		coding = append(coding, r4.Coding{System: ptr(CategorySystem), Code: ptr(f.Category)})
	}
	if len(coding) > 0 {
		iss.Details = &r4.CodeableConcept{Coding: coding, Text: ptr(f.Message)}
	}

	return iss
}

func severity(s cv.Severity) string {
	switch s {
	case cv.SeverityError:
		return severityError
	case cv.SeverityWarning:
		return severityWarning
	default:
		return severityInformation
	}
}

func ptr[T any](v T) *T {
	return &v
}
