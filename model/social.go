package model

// SocialHistory is the social history section, which carries smoking status
// and the birth sex observation.
type SocialHistory struct {
	SectionCode   Optional[Code]     `json:"sectionCode,omitzero"`
	SmokingStatus Optional[Code]     `json:"smokingStatus,omitzero"`
	BirthSex      Optional[BirthSex] `json:"birthSex,omitzero"`
}

// BirthSex is the birth sex observation.
type BirthSex struct {
	SexCode Optional[Code] `json:"sexCode,omitzero"`
}
