package model

// Patient holds record target demographics.
type Patient struct {
	FirstName         Optional[string] `json:"firstName,omitzero"`
	MiddleName        Optional[string] `json:"middleName,omitzero"`
	LastName          Optional[string] `json:"lastName,omitzero"`
	PreviousName      Optional[string] `json:"previousName,omitzero"`
	BirthDate         Optional[string] `json:"birthDate,omitzero"`
	AdministrativeSex Optional[Code]   `json:"administrativeSex,omitzero"`
	MaritalStatus     Optional[Code]   `json:"maritalStatus,omitzero"`
	Race              Optional[Code]   `json:"race,omitzero"`
	Ethnicity         Optional[Code]   `json:"ethnicity,omitzero"`
	PreferredLanguage Optional[Code]   `json:"preferredLanguage,omitzero"`
}
