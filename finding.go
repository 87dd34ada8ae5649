package contentvalidator

// Severity represents the severity of a comparison finding.
type Severity string

const (
	// SeverityInfo is informational feedback.
	SeverityInfo Severity = "INFO"
	// SeverityWarning indicates a difference that should be reviewed.
	SeverityWarning Severity = "WARNING"
	// SeverityError indicates the submission does not satisfy the scenario.
	SeverityError Severity = "ERROR"
)

// Default location reported when no finer-grained position is known.
const (
	DefaultLocationPath = "/ClinicalDocument"
	DefaultLocationLine = "0"
)

// IsValid returns true for the three known severities.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityError:
		return true
	default:
		return false
	}
}

// Finding is a single discrepancy between the scenario and the submission.
type Finding struct {
	// Message is the human-readable description
	Message string `json:"message"`

	// Severity of the finding
	Severity Severity `json:"severity"`

	// LocationPath points into the submitted document
	LocationPath string `json:"locationPath"`

	// LocationLine is the source line, "0" when unknown
	LocationLine string `json:"locationLine"`

	// Category is the clinical data category that produced the finding
	Category string `json:"category,omitempty"`

	// MessageID is the identifier from the message catalog
	MessageID string `json:"messageId,omitempty"`
}

// IsError returns true if this is an error finding.
func (f Finding) IsError() bool {
	return f.Severity == SeverityError
}

// IsWarning returns true if this is a warning.
func (f Finding) IsWarning() bool {
	return f.Severity == SeverityWarning
}

// String returns a human-readable representation of the finding.
func (f Finding) String() string {
	s := string(f.Severity) + ": " + f.Message
	if f.LocationPath != "" {
		s += " at " + f.LocationPath
		if f.LocationLine != "" && f.LocationLine != DefaultLocationLine {
			s += ":" + f.LocationLine
		}
	}
	return s
}

// FindingBuilder provides a fluent API for building findings.
type FindingBuilder struct {
	finding Finding
}

// NewFinding creates a new FindingBuilder located at the document root.
func NewFinding(severity Severity) *FindingBuilder {
	return &FindingBuilder{
		finding: Finding{
			Severity:     severity,
			LocationPath: DefaultLocationPath,
			LocationLine: DefaultLocationLine,
		},
	}
}

// Error creates an error finding.
func Error() *FindingBuilder {
	return NewFinding(SeverityError)
}

// Warning creates a warning finding.
func Warning() *FindingBuilder {
	return NewFinding(SeverityWarning)
}

// Info creates an informational finding.
func Info() *FindingBuilder {
	return NewFinding(SeverityInfo)
}

// Message sets the message text.
func (b *FindingBuilder) Message(msg string) *FindingBuilder {
	b.finding.Message = msg
	return b
}

// At sets the location path and line. Empty values keep the defaults.
func (b *FindingBuilder) At(path, line string) *FindingBuilder {
	if path != "" {
		b.finding.LocationPath = path
	}
	if line != "" {
		b.finding.LocationLine = line
	}
	return b
}

// Category sets the clinical data category.
func (b *FindingBuilder) Category(category string) *FindingBuilder {
	b.finding.Category = category
	return b
}

// ID sets the message catalog identifier.
func (b *FindingBuilder) ID(id string) *FindingBuilder {
	b.finding.MessageID = id
	return b
}

// Build returns the constructed finding.
func (b *FindingBuilder) Build() Finding {
	return b.finding
}
