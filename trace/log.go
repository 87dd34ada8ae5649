package trace

import (
	"context"

	"github.com/gofhir/contentvalidator/model"
	"github.com/gofhir/contentvalidator/pkg/logger"
)

// LogHook writes one debug line per category.
type LogHook struct {
	log *logger.Logger
}

// NewLogHook creates a LogHook. A nil logger uses logger.Default().
func NewLogHook(l *logger.Logger) *LogHook {
	if l == nil {
		l = logger.Default()
	}
	return &LogHook{log: l}
}

// Trace logs the presence of every category of doc.
func (h *LogHook) Trace(_ context.Context, role Role, doc *model.Document) {
	if doc == nil || !h.log.Enabled(logger.LevelDebug) {
		return
	}
	for _, c := range doc.Categories() {
		if c.Present {
			h.log.Debug("%s model has %s data", role, c.Category)
		} else {
			h.log.Debug("%s model has no %s data", role, c.Category)
		}
	}
}
