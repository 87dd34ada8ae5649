package model

import "strings"

// Code is a coded value (HL7 CD/CE): a code within a code system.
type Code struct {
	Code           string `json:"code,omitempty"`
	CodeSystem     string `json:"codeSystem,omitempty"`
	CodeSystemName string `json:"codeSystemName,omitempty"`
	DisplayName    string `json:"displayName,omitempty"`
}

// NewCode creates a Code from a code and code system OID.
func NewCode(code, codeSystem string) Code {
	return Code{Code: code, CodeSystem: codeSystem}
}

// Matches compares code and code system case-insensitively. An empty code
// system on either side matches any system.
func (c Code) Matches(other Code) bool {
	if !strings.EqualFold(c.Code, other.Code) {
		return false
	}
	if c.CodeSystem == "" || other.CodeSystem == "" {
		return true
	}
	return strings.EqualFold(c.CodeSystem, other.CodeSystem)
}

// String returns "code (displayName)" or just the code.
func (c Code) String() string {
	if c.DisplayName == "" {
		return c.Code
	}
	return c.Code + " (" + c.DisplayName + ")"
}
