package outcome

import (
	"errors"
	"fmt"

	"github.com/gofhir/fhir/r4"
	"github.com/gofhir/fhirpath"
)

// DefaultFailOn matches any outcome carrying an error issue.
const DefaultFailOn = "issue.where(severity = 'error').exists()"

// ErrEmptyExpression is returned by NewGate for a blank expression.
var ErrEmptyExpression = errors.New("empty FHIRPath expression")

// Gate is a compiled FHIRPath expression evaluated over an OperationOutcome.
// It is safe for concurrent use.
type Gate struct {
	expr     string
	compiled *fhirpath.Expression
}

// NewGate compiles expr.
func NewGate(expr string) (*Gate, error) {
	if expr == "" {
		return nil, ErrEmptyExpression
	}
	compiled, err := fhirpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile FHIRPath expression '%s': %w", expr, err)
	}
	return &Gate{expr: expr, compiled: compiled}, nil
}

// Expression returns the source expression.
func (g *Gate) Expression() string {
	return g.expr
}

// Match evaluates the gate against oo. An empty result is false; a single
// boolean is its value; any other non-empty result is true.
func (g *Gate) Match(oo *r4.OperationOutcome) (bool, error) {
	data, err := Marshal(oo)
	if err != nil {
		return false, err
	}

	result, err := g.compiled.Evaluate(data)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate FHIRPath expression '%s': %w", g.expr, err)
	}

	if result.Empty() {
		return false, nil
	}
	b, err := result.ToBoolean()
	if err != nil {
		return true, nil
	}
	return b, nil
}
