package model

import (
	"encoding/json"
	"testing"
)

func sampleDocument() *Document {
	doc := NewDocument()
	doc.Patient = Some(Patient{
		FirstName: Some("Alice"),
		LastName:  Some("Newman"),
		BirthDate: Some("19700501"),
	})
	doc.Problem = Some(Problem{
		Concerns: []ProblemConcern{{
			Observations: []ProblemObservation{{ProblemCode: Some(NewCode("233604007", "2.16.840.1.113883.6.96"))}},
		}},
	})
	return doc
}

func TestNewDocument_Empty(t *testing.T) {
	doc := NewDocument()
	for _, c := range doc.Categories() {
		if c.Present {
			t.Errorf("category %s present on a new document", c.Category)
		}
	}
	if doc.DeviceIdentifiers == nil {
		t.Error("DeviceIdentifiers should not be nil")
	}
}

func TestDocument_Categories(t *testing.T) {
	doc := sampleDocument()
	cats := doc.Categories()

	if len(cats) != 16 {
		t.Fatalf("len(Categories()) = %d; want 16", len(cats))
	}
	if cats[0].Category != CategoryPatient || !cats[0].Present {
		t.Errorf("Categories()[0] = %+v; want present patient", cats[0])
	}

	present := map[Category]bool{}
	for _, c := range cats {
		present[c.Category] = c.Present
	}
	if !present[CategoryProblem] {
		t.Error("problem should be present")
	}
	if present[CategoryAllergy] {
		t.Error("allergy should be absent")
	}
}

func TestDocument_Equal(t *testing.T) {
	a := sampleDocument()
	b := sampleDocument()

	if !a.Equal(b) {
		t.Error("identical documents should be equal")
	}

	b.DeviceIdentifiers = nil
	if !a.Equal(b) {
		t.Error("nil and empty device identifiers should be equal")
	}

	b.Allergy = Some(Allergy{})
	if a.Equal(b) {
		t.Error("documents differing in allergy presence should not be equal")
	}

	var nilDoc *Document
	if a.Equal(nilDoc) {
		t.Error("document should not equal nil")
	}
	if !nilDoc.Equal(nil) {
		t.Error("nil should equal nil")
	}
}

func TestDocument_EqualNestedEmptyLists(t *testing.T) {
	a := NewDocument()
	a.Problem = Some(Problem{Concerns: []ProblemConcern{{Observations: []ProblemObservation{}}}})
	a.Allergy = Some(Allergy{Concerns: []AllergyConcern{}})

	b := NewDocument()
	b.Problem = Some(Problem{Concerns: []ProblemConcern{{}}})
	b.Allergy = Some(Allergy{})

	if !a.Equal(b) {
		t.Error("nil and empty nested lists should be equal")
	}

	b.Allergy = None[Allergy]()
	if a.Equal(b) {
		t.Error("an empty allergy section should not equal an absent one")
	}
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	doc := sampleDocument()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !doc.Equal(&decoded) {
		t.Errorf("decoded document differs:\n%s", data)
	}
	if decoded.Allergy.IsPresent() {
		t.Error("absent allergy should stay absent")
	}
}

func TestProblem_Observations(t *testing.T) {
	p := Problem{Concerns: []ProblemConcern{
		{Observations: []ProblemObservation{{OnsetTime: Some("2010")}, {OnsetTime: Some("2011")}}},
		{Observations: []ProblemObservation{{OnsetTime: Some("2012")}}},
	}}

	obs := p.Observations()
	if len(obs) != 3 {
		t.Fatalf("len(Observations()) = %d; want 3", len(obs))
	}
	if obs[2].OnsetTime.OrElse("") != "2012" {
		t.Errorf("last observation onset = %q; want 2012", obs[2].OnsetTime.OrElse(""))
	}
}
