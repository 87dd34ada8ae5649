package presence

import (
	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/model"
	"github.com/gofhir/contentvalidator/pkg/message"
)

// Field applies the decision table to an optional scalar inside a category.
// Missing values are errors, unexpected values are warnings, and present
// values must be equal.
type Field[T any] struct {
	Category string
	Name     string
	Equal    func(ref, sub T) bool
	Format   func(T) string
}

// StringField compares strings exactly.
func StringField(category, name string) Field[string] {
	return Field[string]{
		Category: category,
		Name:     name,
		Equal:    func(a, b string) bool { return a == b },
		Format:   func(s string) string { return s },
	}
}

// CodeField compares coded values case-insensitively.
func CodeField(category, name string) Field[model.Code] {
	return Field[model.Code]{
		Category: category,
		Name:     name,
		Equal:    model.Code.Matches,
		Format:   model.Code.String,
	}
}

// Reconcile compares ref and sub and appends findings to res.
func (f Field[T]) Reconcile(ref, sub model.Optional[T], res *cv.Result) Outcome {
	r, _ := ref.Get()
	s, _ := sub.Get()
	params := message.Params{
		"field":    f.Name,
		"expected": f.Format(r),
		"actual":   f.Format(s),
	}

	return Reconcile(Rule[T]{
		Category:   f.Category,
		Missing:    message.FieldMissing,
		Unexpected: message.FieldUnexpected,
		Params:     params,
		Compare: func(ref, sub T, res *cv.Result) {
			if !f.Equal(ref, sub) {
				res.Add(message.Finding(message.FieldMismatch, f.Category, params))
			}
		},
	}, ref, sub, res)
}
