// Package trace reports which clinical data categories a document carries.
//
// Hooks are diagnostic only. They are invoked by engine.Validator before a
// comparison and never influence its findings.
package trace

import (
	"context"

	"github.com/gofhir/contentvalidator/model"
)

// Role says which side of a comparison a document is.
type Role string

const (
	RoleReference Role = "reference"
	RoleSubmitted Role = "submitted"
)

// Hook observes a document before comparison.
type Hook interface {
	Trace(ctx context.Context, role Role, doc *model.Document)
}

// HookFunc adapts a function to Hook.
type HookFunc func(ctx context.Context, role Role, doc *model.Document)

// Trace calls f.
func (f HookFunc) Trace(ctx context.Context, role Role, doc *model.Document) {
	f(ctx, role, doc)
}

// Multi fans out to several hooks in order. Nil hooks are skipped.
func Multi(hooks ...Hook) Hook {
	return HookFunc(func(ctx context.Context, role Role, doc *model.Document) {
		for _, h := range hooks {
			if h != nil {
				h.Trace(ctx, role, doc)
			}
		}
	})
}
