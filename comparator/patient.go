package comparator

import (
	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/model"
	"github.com/gofhir/contentvalidator/pkg/message"
	"github.com/gofhir/contentvalidator/presence"
)

var patientCategory = string(model.CategoryPatient)

// PatientRule reconciles patient presence and compares demographics.
var PatientRule = presence.Rule[model.Patient]{
	Category:   patientCategory,
	Missing:    message.PatientMissing,
	Unexpected: message.PatientUnexpected,
	Compare:    ComparePatients,
}

var (
	patientFirstName    = presence.StringField(patientCategory, "patient first name")
	patientMiddleName   = presence.StringField(patientCategory, "patient middle name")
	patientLastName     = presence.StringField(patientCategory, "patient last name")
	patientPreviousName = presence.StringField(patientCategory, "patient previous name")
	patientBirthDate    = presence.StringField(patientCategory, "patient birth date")
	patientSex          = presence.CodeField(patientCategory, "patient administrative sex")
	patientMarital      = presence.CodeField(patientCategory, "patient marital status")
	patientRace         = presence.CodeField(patientCategory, "patient race")
	patientEthnicity    = presence.CodeField(patientCategory, "patient ethnicity")
	patientLanguage     = presence.CodeField(patientCategory, "patient preferred language")
)

// ComparePatients compares demographics field by field in a fixed order.
func ComparePatients(ref, sub model.Patient, res *cv.Result) {
	patientFirstName.Reconcile(ref.FirstName, sub.FirstName, res)
	patientMiddleName.Reconcile(ref.MiddleName, sub.MiddleName, res)
	patientLastName.Reconcile(ref.LastName, sub.LastName, res)
	patientPreviousName.Reconcile(ref.PreviousName, sub.PreviousName, res)
	patientBirthDate.Reconcile(ref.BirthDate, sub.BirthDate, res)
	patientSex.Reconcile(ref.AdministrativeSex, sub.AdministrativeSex, res)
	patientMarital.Reconcile(ref.MaritalStatus, sub.MaritalStatus, res)
	patientRace.Reconcile(ref.Race, sub.Race, res)
	patientEthnicity.Reconcile(ref.Ethnicity, sub.Ethnicity, res)
	patientLanguage.Reconcile(ref.PreferredLanguage, sub.PreferredLanguage, res)
}
