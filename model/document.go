// Package model defines the clinical document model compared by the engine.
//
// A Document holds one optional sub-record per clinical data category. Absent
// categories are represented with Optional rather than nil pointers, so
// comparators have to handle both branches explicitly.
package model

import (
	"bytes"
	"encoding/json"
)

// Category names a clinical data category.
type Category string

// Clinical data categories, in the order Document.Categories reports them.
const (
	CategoryPatient           Category = "patient"
	CategoryCareTeam          Category = "care-team"
	CategoryEncounter         Category = "encounter"
	CategoryAllergy           Category = "allergy"
	CategoryMedication        Category = "medication"
	CategoryImmunization      Category = "immunization"
	CategoryLabResults        Category = "lab-results"
	CategoryLabTests          Category = "lab-tests"
	CategoryProcedure         Category = "procedure"
	CategorySocialHistory     Category = "social-history"
	CategoryVitalSigns        Category = "vital-signs"
	CategoryProblem           Category = "problem"
	CategoryPlanOfTreatment   Category = "plan-of-treatment"
	CategoryGoals             Category = "goals"
	CategoryHealthConcerns    Category = "health-concerns"
	CategoryDeviceIdentifiers Category = "device-identifiers"

	// CategoryBirthSex is reported by the birth sex rule; it lives inside
	// social history.
	CategoryBirthSex Category = "birth-sex"
)

// Document is a decoded clinical document. Documents are read-only during
// comparison.
type Document struct {
	Patient           Optional[Patient]         `json:"patient,omitzero"`
	CareTeam          Optional[CareTeam]        `json:"careTeam,omitzero"`
	Encounter         Optional[Encounter]       `json:"encounter,omitzero"`
	Allergy           Optional[Allergy]         `json:"allergy,omitzero"`
	Medication        Optional[Medication]      `json:"medication,omitzero"`
	Immunization      Optional[Immunization]    `json:"immunization,omitzero"`
	LabResults        Optional[LabResult]       `json:"labResults,omitzero"`
	LabTests          Optional[LabResult]       `json:"labTests,omitzero"`
	Procedure         Optional[Procedure]       `json:"procedure,omitzero"`
	SocialHistory     Optional[SocialHistory]   `json:"socialHistory,omitzero"`
	VitalSigns        Optional[VitalSigns]      `json:"vitalSigns,omitzero"`
	Problem           Optional[Problem]         `json:"problem,omitzero"`
	PlanOfTreatment   Optional[PlanOfTreatment] `json:"planOfTreatment,omitzero"`
	Goals             Optional[Goals]           `json:"goals,omitzero"`
	HealthConcerns    Optional[HealthConcerns]  `json:"healthConcerns,omitzero"`
	DeviceIdentifiers []DeviceIdentifier        `json:"deviceIdentifiers,omitempty"`
}

// NewDocument returns an empty document with no categories present.
func NewDocument() *Document {
	return &Document{
		DeviceIdentifiers: []DeviceIdentifier{},
	}
}

// CategoryPresence reports whether a document carries a category.
type CategoryPresence struct {
	Category Category
	Present  bool
}

// Categories lists every category with its presence, in a fixed order.
func (d *Document) Categories() []CategoryPresence {
	return []CategoryPresence{
		{CategoryPatient, d.Patient.IsPresent()},
		{CategoryCareTeam, d.CareTeam.IsPresent()},
		{CategoryEncounter, d.Encounter.IsPresent()},
		{CategoryAllergy, d.Allergy.IsPresent()},
		{CategoryMedication, d.Medication.IsPresent()},
		{CategoryImmunization, d.Immunization.IsPresent()},
		{CategoryLabResults, d.LabResults.IsPresent()},
		{CategoryLabTests, d.LabTests.IsPresent()},
		{CategoryProcedure, d.Procedure.IsPresent()},
		{CategorySocialHistory, d.SocialHistory.IsPresent()},
		{CategoryVitalSigns, d.VitalSigns.IsPresent()},
		{CategoryProblem, d.Problem.IsPresent()},
		{CategoryPlanOfTreatment, d.PlanOfTreatment.IsPresent()},
		{CategoryGoals, d.Goals.IsPresent()},
		{CategoryHealthConcerns, d.HealthConcerns.IsPresent()},
		{CategoryDeviceIdentifiers, len(d.DeviceIdentifiers) > 0},
	}
}

// Equal reports structural equality of two documents. Lists are compared
// by content, so a nil and an empty list are equal at every level.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	a, errA := json.Marshal(d)
	b, errB := json.Marshal(other)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(a, b)
}
