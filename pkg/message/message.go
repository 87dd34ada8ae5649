// Package message holds the catalog of finding messages used by the
// comparators. Templates use {placeholder} syntax for variable substitution.
package message

import (
	"fmt"
	"sort"
	"strings"

	cv "github.com/gofhir/contentvalidator"
)

// ID identifies a catalog entry.
type ID string

// Presence messages for the patient, problem and allergy categories.
const (
	PatientMissing    ID = "PATIENT_MISSING"
	PatientUnexpected ID = "PATIENT_UNEXPECTED"
	ProblemMissing    ID = "PROBLEM_MISSING"
	ProblemUnexpected ID = "PROBLEM_UNEXPECTED"
	AllergyMissing    ID = "ALLERGY_MISSING"
	AllergyUnexpected ID = "ALLERGY_UNEXPECTED"
)

// Birth sex messages.
const (
	BirthSexMissing ID = "BIRTH_SEX_MISSING"
	BirthSexInvalid ID = "BIRTH_SEX_INVALID"
)

// Field level messages.
const (
	FieldMissing    ID = "FIELD_MISSING"
	FieldUnexpected ID = "FIELD_UNEXPECTED"
	FieldMismatch   ID = "FIELD_MISMATCH"

	ProblemObservationMissing ID = "PROBLEM_OBSERVATION_MISSING"
	AllergyObservationMissing ID = "ALLERGY_OBSERVATION_MISSING"
)

// Params are the values substituted into a template.
type Params map[string]any

// Template defines the severity and text of a catalog entry.
type Template struct {
	ID       ID
	Severity cv.Severity
	Text     string
}

var templates = map[ID]Template{
	PatientMissing: {
		Severity: cv.SeverityError,
		Text:     "The scenario requires patient data, but the submitted C-CDA does not contain patient data.",
	},
	PatientUnexpected: {
		Severity: cv.SeverityError,
		Text:     "The scenario does not require patient data, but the submitted C-CDA does contain patient data.",
	},
	ProblemMissing: {
		Severity: cv.SeverityError,
		Text:     "The scenario requires data related to patient's problems, but the submitted C-CDA does not contain problem data.",
	},
	ProblemUnexpected: {
		Severity: cv.SeverityError,
		Text:     "The scenario does not require data related to patient's problems, but the submitted C-CDA does contain problem data.",
	},
	AllergyMissing: {
		Severity: cv.SeverityError,
		Text:     "The scenario requires data related to patient's allergies, but the submitted C-CDA does not contain allergy data.",
	},
	AllergyUnexpected: {
		Severity: cv.SeverityError,
		Text:     "The scenario does not require data related to patient's allergies, but the submitted C-CDA does contain allergy data.",
	},

	BirthSexMissing: {
		Severity: cv.SeverityError,
		Text:     "The scenario requires patient's birth sex to be captured as part of social history data, but the submitted C-CDA does not contain birth sex information.",
	},
	BirthSexInvalid: {
		Severity: cv.SeverityError,
		Text:     "The scenario requires patient's birth sex to use the codes M or F, but the submitted C-CDA does not contain either of these codes.",
	},

	FieldMissing: {
		Severity: cv.SeverityError,
		Text:     "The scenario requires {field} '{expected}', but the submitted C-CDA does not contain {field}.",
	},
	FieldUnexpected: {
		Severity: cv.SeverityWarning,
		Text:     "The scenario does not contain {field}, but the submitted C-CDA contains '{actual}'.",
	},
	FieldMismatch: {
		Severity: cv.SeverityError,
		Text:     "The scenario requires {field} '{expected}', but the submitted C-CDA contains '{actual}'.",
	},
	ProblemObservationMissing: {
		Severity: cv.SeverityError,
		Text:     "The scenario contains a problem observation with code '{code}', but the submitted C-CDA does not contain a matching problem observation.",
	},
	AllergyObservationMissing: {
		Severity: cv.SeverityError,
		Text:     "The scenario contains an allergy observation for substance '{substance}', but the submitted C-CDA does not contain a matching allergy observation.",
	},
}

// Lookup returns the template for id.
func Lookup(id ID) (Template, bool) {
	tmpl, ok := templates[id]
	if ok {
		tmpl.ID = id
	}
	return tmpl, ok
}

// Format renders the template for id. Unknown ids render as the id itself.
func Format(id ID, params Params) string {
	tmpl, ok := templates[id]
	if !ok {
		return string(id)
	}
	return format(tmpl.Text, params)
}

// Finding builds a finding for id in category, located at the document root.
func Finding(id ID, category string, params Params) cv.Finding {
	tmpl, ok := templates[id]
	if !ok {
		return cv.Error().Message(string(id)).Category(category).ID(string(id)).Build()
	}
	return cv.NewFinding(tmpl.Severity).
		Message(format(tmpl.Text, params)).
		Category(category).
		ID(string(id)).
		Build()
}

// format replaces {placeholder} with values from params. Keys are applied in
// sorted order so output does not depend on map iteration.
func format(text string, params Params) string {
	if len(params) == 0 {
		return text
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", fmt.Sprint(params[k]))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
