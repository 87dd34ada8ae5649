package model

import (
	"encoding/json"
	"testing"
)

func TestOptional_Presence(t *testing.T) {
	var zero Optional[string]
	if zero.IsPresent() {
		t.Error("zero Optional should be absent")
	}
	if _, ok := None[Code]().Get(); ok {
		t.Error("None().Get() reported present")
	}

	v, ok := Some("Smith").Get()
	if !ok || v != "Smith" {
		t.Errorf("Some(Smith).Get() = %q, %v; want Smith, true", v, ok)
	}

	empty := Some("")
	if !empty.IsPresent() {
		t.Error("Some(\"\") should be present")
	}
}

func TestOptional_OrElse(t *testing.T) {
	if got := None[string]().OrElse("x"); got != "x" {
		t.Errorf("None.OrElse(x) = %q; want x", got)
	}
	if got := Some("y").OrElse("x"); got != "y" {
		t.Errorf("Some(y).OrElse(x) = %q; want y", got)
	}
}

func TestOptional_JSON(t *testing.T) {
	type holder struct {
		Name Optional[string] `json:"name,omitzero"`
		Sex  Optional[Code]   `json:"sex,omitzero"`
	}

	data, err := json.Marshal(holder{Sex: Some(NewCode("F", "2.16.840.1.113883.5.1"))})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"sex":{"code":"F","codeSystem":"2.16.840.1.113883.5.1"}}`
	if string(data) != want {
		t.Errorf("Marshal = %s; want %s", data, want)
	}

	var decoded holder
	if err := json.Unmarshal([]byte(`{"name":null,"sex":{"code":"M"}}`), &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Name.IsPresent() {
		t.Error("null should decode as absent")
	}
	sex, ok := decoded.Sex.Get()
	if !ok || sex.Code != "M" {
		t.Errorf("Sex = %+v, %v; want M, true", sex, ok)
	}
}

func TestCode_Matches(t *testing.T) {
	tests := []struct {
		name string
		a, b Code
		want bool
	}{
		{"same", NewCode("F", "2.16.840.1.113883.5.1"), NewCode("F", "2.16.840.1.113883.5.1"), true},
		{"case insensitive code", NewCode("f", "2.16.840.1.113883.5.1"), NewCode("F", "2.16.840.1.113883.5.1"), true},
		{"missing system", NewCode("233604007", ""), NewCode("233604007", "2.16.840.1.113883.6.96"), true},
		{"different code", NewCode("M", ""), NewCode("F", ""), false},
		{"different system", NewCode("1", "1.2.3"), NewCode("1", "4.5.6"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Matches(tt.b); got != tt.want {
				t.Errorf("Matches() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestCode_String(t *testing.T) {
	c := Code{Code: "233604007", DisplayName: "Pneumonia"}
	if got := c.String(); got != "233604007 (Pneumonia)" {
		t.Errorf("String() = %q", got)
	}
	if got := NewCode("M", "").String(); got != "M" {
		t.Errorf("String() = %q; want M", got)
	}
}
