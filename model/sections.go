package model

// The categories below are carried by the model but not compared field by
// field. They are plain holders of coded entries.

type CareTeam struct {
	SectionCode Optional[Code]   `json:"sectionCode,omitzero"`
	Members     []CareTeamMember `json:"members,omitempty"`
}

type CareTeamMember struct {
	Name Optional[string] `json:"name,omitzero"`
	Role Optional[Code]   `json:"role,omitzero"`
}

type Encounter struct {
	SectionCode Optional[Code]      `json:"sectionCode,omitzero"`
	Encounters  []EncounterActivity `json:"encounters,omitempty"`
}

type EncounterActivity struct {
	EncounterType Optional[Code]   `json:"encounterType,omitzero"`
	EffectiveTime Optional[string] `json:"effectiveTime,omitzero"`
}

type Medication struct {
	SectionCode Optional[Code]       `json:"sectionCode,omitzero"`
	Medications []MedicationActivity `json:"medications,omitempty"`
}

type MedicationActivity struct {
	Consumable Optional[Code] `json:"consumable,omitzero"`
	Route      Optional[Code] `json:"route,omitzero"`
	StatusCode Optional[Code] `json:"statusCode,omitzero"`
}

type Immunization struct {
	SectionCode   Optional[Code]         `json:"sectionCode,omitzero"`
	Immunizations []ImmunizationActivity `json:"immunizations,omitempty"`
}

type ImmunizationActivity struct {
	Vaccine    Optional[Code] `json:"vaccine,omitzero"`
	StatusCode Optional[Code] `json:"statusCode,omitzero"`
}

// LabResult is used for both lab results and lab tests.
type LabResult struct {
	SectionCode Optional[Code]    `json:"sectionCode,omitzero"`
	Organizers  []ResultOrganizer `json:"organizers,omitempty"`
}

type ResultOrganizer struct {
	OrganizerCode Optional[Code]      `json:"organizerCode,omitzero"`
	Observations  []ResultObservation `json:"observations,omitempty"`
}

type ResultObservation struct {
	ResultCode Optional[Code]   `json:"resultCode,omitzero"`
	Value      Optional[string] `json:"value,omitzero"`
	Unit       Optional[string] `json:"unit,omitzero"`
}

type Procedure struct {
	SectionCode Optional[Code]      `json:"sectionCode,omitzero"`
	Procedures  []ProcedureActivity `json:"procedures,omitempty"`
}

type ProcedureActivity struct {
	ProcedureCode Optional[Code] `json:"procedureCode,omitzero"`
	StatusCode    Optional[Code] `json:"statusCode,omitzero"`
}

type VitalSigns struct {
	SectionCode  Optional[Code]         `json:"sectionCode,omitzero"`
	Observations []VitalSignObservation `json:"observations,omitempty"`
}

type VitalSignObservation struct {
	VitalSignCode Optional[Code]   `json:"vitalSignCode,omitzero"`
	Value         Optional[string] `json:"value,omitzero"`
	Unit          Optional[string] `json:"unit,omitzero"`
}

type PlanOfTreatment struct {
	SectionCode       Optional[Code] `json:"sectionCode,omitzero"`
	PlannedActivities []Code         `json:"plannedActivities,omitempty"`
}

type Goals struct {
	SectionCode  Optional[Code] `json:"sectionCode,omitzero"`
	Observations []Code         `json:"observations,omitempty"`
}

type HealthConcerns struct {
	SectionCode Optional[Code] `json:"sectionCode,omitzero"`
	Concerns    []Code         `json:"concerns,omitempty"`
}

// DeviceIdentifier is a unique device identifier (UDI) entry.
type DeviceIdentifier struct {
	DeviceCode    Optional[Code]   `json:"deviceCode,omitzero"`
	UDI           string           `json:"udi,omitempty"`
	ScopingEntity Optional[string] `json:"scopingEntity,omitzero"`
}
