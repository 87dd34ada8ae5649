package worker

import (
	"time"

	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/model"
)

// Job is one submission to compare against the pool's scenario.
type Job struct {
	// ID is a caller-chosen identifier echoed in the JobResult.
	ID string

	// Submitted is the document under evaluation.
	Submitted *model.Document

	// index orders batch results; set by CompareBatch only.
	index int
}

// JobResult is the result of one Job.
type JobResult struct {
	// ID matches the Job.ID that produced this result.
	ID string

	// Report is the comparison report; nil when Error is set.
	Report *cv.Report

	// Error is set when the job could not be compared at all.
	Error error

	// Duration is the wall time spent on the job.
	Duration time.Duration

	index int
}

// BatchResult aggregates results from multiple jobs.
type BatchResult struct {
	// Results contains all job results.
	Results []*JobResult

	// TotalJobs is the number of jobs submitted.
	TotalJobs int

	// CompletedJobs is the number of jobs completed (including failures).
	CompletedJobs int

	// FailedJobs is the number of jobs that failed with an error.
	FailedJobs int

	// TotalDuration is the summed job time.
	TotalDuration time.Duration
}

// HasErrors returns true if any job failed or any report has error findings.
func (br *BatchResult) HasErrors() bool {
	for _, r := range br.Results {
		if r == nil {
			continue
		}
		if r.Error != nil {
			return true
		}
		if r.Report != nil && !r.Report.Passed() {
			return true
		}
	}
	return false
}

// ErrorCount returns the total number of error findings across all reports.
func (br *BatchResult) ErrorCount() int {
	count := 0
	for _, r := range br.Results {
		if r != nil && r.Report != nil && r.Report.Result != nil {
			count += r.Report.Result.ErrorCount()
		}
	}
	return count
}

// Reports returns the reports of the completed jobs in result order.
// Failed or skipped jobs yield nil entries.
func (br *BatchResult) Reports() []*cv.Report {
	out := make([]*cv.Report, len(br.Results))
	for i, r := range br.Results {
		if r != nil {
			out[i] = r.Report
		}
	}
	return out
}
