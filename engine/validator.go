package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/model"
	"github.com/gofhir/contentvalidator/objective"
	"github.com/gofhir/contentvalidator/pipeline"
	"github.com/gofhir/contentvalidator/pkg/logger"
	"github.com/gofhir/contentvalidator/trace"
	"github.com/gofhir/contentvalidator/worker"
)

// Validator runs comparisons with logging, metrics and tracing.
// It is safe for concurrent use.
type Validator struct {
	options *cv.Options
}

// New creates a Validator.
func New(opts ...cv.Option) *Validator {
	return &Validator{options: cv.Apply(opts...)}
}

// Options returns the validator's configuration.
func (v *Validator) Options() *cv.Options {
	return v.options
}

// Metrics returns the validator's metrics, or nil.
func (v *Validator) Metrics() *cv.Metrics {
	return v.options.Metrics
}

// Compare compares submitted against reference for the objective and
// returns a report. ctx carries tracing only; the comparison is never
// cancelled.
func (v *Validator) Compare(ctx context.Context, objectiveCode string, reference, submitted *model.Document) *cv.Report {
	start := time.Now()
	runID := uuid.NewString()
	log := v.options.Logger.With("run", runID)
	baseline := objective.RequiresBaselineCheck(objectiveCode)

	if hook := v.options.TraceHook; hook != nil && reference != nil && submitted != nil {
		hook.Trace(ctx, trace.RoleReference, reference)
		hook.Trace(ctx, trace.RoleSubmitted, submitted)
	}

	log.Debug("comparing for objective %q (baseline checks: %t)", objectiveCode, baseline)

	var observe pipeline.Observer
	if log.Enabled(logger.LevelDebug) {
		observe = func(id pipeline.StepID, added []cv.Finding) {
			log.Debug("step %s reported %d finding(s)", id, len(added))
		}
	}

	res := compare(objectiveCode, reference, submitted, observe)
	if v.options.StrictMode {
		res = res.Promote(cv.SeverityWarning, cv.SeverityError)
	}

	report := &cv.Report{
		RunID:     runID,
		Objective: objectiveCode,
		Baseline:  baseline,
		Result:    res,
		StartedAt: start,
		Duration:  time.Since(start),
	}

	v.options.Metrics.RecordRun(baseline, report.Duration, res)

	if res.HasErrors() {
		log.Info("comparison failed: %d error(s), %d warning(s) in %s",
			res.ErrorCount(), res.WarningCount(), report.Duration)
	} else {
		log.Info("comparison passed: %d warning(s) in %s", res.WarningCount(), report.Duration)
	}

	return report
}

// CompareBatch compares each submission against one scenario over the
// worker pool. Reports are returned in submission order. If ctx is
// cancelled before every submission ran, the partial reports are returned
// with ctx.Err(); unstarted submissions have nil reports.
func (v *Validator) CompareBatch(ctx context.Context, objectiveCode string, reference *model.Document, submissions []*model.Document) ([]*cv.Report, error) {
	batch := worker.CompareBatch(ctx, v, objectiveCode, reference, submissions, v.options.WorkerCount)

	v.options.Logger.Info("batch of %d submission(s) finished: %d completed, %d failed",
		batch.TotalJobs, batch.CompletedJobs, batch.FailedJobs)

	for _, r := range batch.Results {
		if r != nil && r.Error != nil {
			return batch.Reports(), r.Error
		}
	}
	if batch.CompletedJobs < batch.TotalJobs {
		return batch.Reports(), ctx.Err()
	}
	return batch.Reports(), nil
}
