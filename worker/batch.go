package worker

import (
	"context"
	"strconv"
	"time"

	"github.com/gofhir/contentvalidator/model"
)

// CompareBatch compares every submission against reference using up to
// workers goroutines. Results are returned in submission order. When ctx
// is cancelled, jobs not yet started are skipped and their slots stay nil.
func CompareBatch(ctx context.Context, c Comparer, objective string, reference *model.Document, submissions []*model.Document, workers int) *BatchResult {
	if len(submissions) == 0 {
		return &BatchResult{Results: make([]*JobResult, 0)}
	}
	if workers <= 0 || workers > len(submissions) {
		workers = len(submissions)
	}

	p := newPool(ctx, c, objective, reference, workers)

	go func() {
		defer p.Stop()
		for i, doc := range submissions {
			if !p.Submit(Job{ID: strconv.Itoa(i), Submitted: doc, index: i}) {
				return
			}
		}
	}()

	results := make([]*JobResult, len(submissions))
	completed := 0
	failed := 0
	var total time.Duration

	for r := range p.Results() {
		results[r.index] = r
		completed++
		if r.Error != nil {
			failed++
		}
		total += r.Duration
	}
	p.cancel()

	return &BatchResult{
		Results:       results,
		TotalJobs:     len(submissions),
		CompletedJobs: completed,
		FailedJobs:    failed,
		TotalDuration: total,
	}
}
