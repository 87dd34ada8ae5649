// Package contentvalidator compares a submitted C-CDA document model against a
// reference scenario model for a regulatory validation objective.
//
// The comparison engine lives in the engine package; this package holds the
// types shared by every stage: findings, the result aggregator, functional
// options and metrics.
//
// # Quick Start
//
//	import (
//	    cv "github.com/gofhir/contentvalidator"
//	    "github.com/gofhir/contentvalidator/engine"
//	)
//
//	result := engine.Compare("170.315_b1_ToC_Amb", scenario, submitted)
//	for _, f := range result.Errors() {
//	    fmt.Println(f.Message)
//	}
//
// # Validator
//
// The Validator wraps the pure Compare function with logging, Prometheus
// metrics and an optional presence tracing hook:
//
//	v := engine.New(
//	    cv.WithLogger(logger.Default()),
//	    cv.WithMetrics(cv.NewMetrics(prometheus.DefaultRegisterer)),
//	    cv.WithTraceHook(trace.NewLogHook(logger.Default())),
//	)
//	report := v.Compare(ctx, objective, scenario, submitted)
//
// # Comparison Order
//
// Findings are emitted in a fixed order: patient, birth sex, problems,
// allergies. Each step runs regardless of what earlier steps reported.
//
// # Findings
//
// Business rule violations are reported as ERROR findings rather than Go
// errors. Findings carry a location path and line; both default to the
// document root ("/ClinicalDocument", "0").
package contentvalidator
