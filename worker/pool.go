package worker

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/model"
)

// Comparer compares a submission against a scenario. engine.Validator
// implements it.
type Comparer interface {
	Compare(ctx context.Context, objective string, reference, submitted *model.Document) *cv.Report
}

var (
	// ErrNoComparer is returned when the pool has no comparer configured.
	ErrNoComparer = errors.New("no comparer configured")

	// ErrNoScenario is returned when the pool has no reference document.
	ErrNoScenario = errors.New("no scenario document configured")

	// ErrNilSubmission is returned for a job without a submitted document.
	ErrNilSubmission = errors.New("job has no submitted document")
)

// Pool manages worker goroutines that compare submissions against one scenario.
type Pool struct {
	workers    int
	jobsChan   chan Job
	resultChan chan *JobResult
	comparer   Comparer
	objective  string
	reference  *model.Document
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	closed     atomic.Bool

	jobsSubmitted atomic.Uint64
	jobsCompleted atomic.Uint64
	jobsFailed    atomic.Uint64
	totalDuration atomic.Int64
}

// NewPool creates a pool with the specified number of workers.
// If workers <= 0, it defaults to runtime.NumCPU().
func NewPool(c Comparer, objective string, reference *model.Document, workers int) *Pool {
	return newPool(context.Background(), c, objective, reference, workers)
}

func newPool(parent context.Context, c Comparer, objective string, reference *model.Document, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(parent)

	p := &Pool{
		workers:    workers,
		jobsChan:   make(chan Job, workers*2),
		resultChan: make(chan *JobResult, workers*2),
		comparer:   c,
		objective:  objective,
		reference:  reference,
		ctx:        ctx,
		cancel:     cancel,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// Submit submits a job to the pool for processing.
// This method blocks if the job queue is full, which only drains while
// Results is being read.
func (p *Pool) Submit(job Job) bool {
	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- job:
		p.jobsSubmitted.Add(1)
		return true
	}
}

// SubmitAsync submits a job without blocking.
// Returns false if the job queue is full or the pool is closed.
func (p *Pool) SubmitAsync(job Job) bool {
	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- job:
		p.jobsSubmitted.Add(1)
		return true
	default:
		return false
	}
}

// Results returns the channel for receiving job results.
func (p *Pool) Results() <-chan *JobResult {
	return p.resultChan
}

// Close shuts down the pool and discards pending results.
func (p *Pool) Close() {
	if p.closed.Swap(true) {
		return
	}

	p.cancel()
	close(p.jobsChan)

	done := make(chan struct{})
	go func() {
		for range p.resultChan {
		}
		close(done)
	}()

	p.wg.Wait()
	close(p.resultChan)
	<-done
}

// CloseAndWait stops accepting jobs, lets queued jobs finish and returns
// every result. Results are only collected once it is called, so jobs
// submitted before it must fit in the queues (about five per worker); submit
// larger batches with CompareBatch or while reading Results.
func (p *Pool) CloseAndWait() *BatchResult {
	if !p.Stop() {
		return &BatchResult{}
	}

	results := make([]*JobResult, 0)
	for result := range p.resultChan {
		results = append(results, result)
	}
	p.cancel()

	return &BatchResult{
		Results:       results,
		TotalJobs:     int(p.jobsSubmitted.Load()),
		CompletedJobs: int(p.jobsCompleted.Load()),
		FailedJobs:    int(p.jobsFailed.Load()),
		TotalDuration: time.Duration(p.totalDuration.Load()),
	}
}

// Stop stops accepting jobs. Queued jobs still run, and Results is closed
// once every worker has exited. It reports false if the pool was already
// closed.
func (p *Pool) Stop() bool {
	if p.closed.Swap(true) {
		return false
	}
	close(p.jobsChan)
	go func() {
		p.wg.Wait()
		close(p.resultChan)
	}()
	return true
}

// Stats returns current pool statistics.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Workers:       p.workers,
		JobsSubmitted: p.jobsSubmitted.Load(),
		JobsCompleted: p.jobsCompleted.Load(),
		JobsFailed:    p.jobsFailed.Load(),
		AvgDuration:   p.averageDuration(),
	}
}

// PoolStats contains pool statistics.
type PoolStats struct {
	Workers       int
	JobsSubmitted uint64
	JobsCompleted uint64
	JobsFailed    uint64
	AvgDuration   time.Duration
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobsChan {
		if p.ctx.Err() != nil {
			continue
		}

		result := p.processJob(job)
		p.jobsCompleted.Add(1)
		if result.Error != nil {
			p.jobsFailed.Add(1)
		}
		p.totalDuration.Add(int64(result.Duration))

		select {
		case <-p.ctx.Done():
		case p.resultChan <- result:
		}
	}
}

func (p *Pool) processJob(job Job) *JobResult {
	start := time.Now()

	result := &JobResult{
		ID:    job.ID,
		index: job.index,
	}

	switch {
	case p.comparer == nil:
		result.Error = ErrNoComparer
	case p.reference == nil:
		result.Error = ErrNoScenario
	case job.Submitted == nil:
		result.Error = ErrNilSubmission
	default:
		result.Report = p.comparer.Compare(p.ctx, p.objective, p.reference, job.Submitted)
	}

	result.Duration = time.Since(start)
	return result
}

func (p *Pool) averageDuration() time.Duration {
	completed := p.jobsCompleted.Load()
	if completed == 0 {
		return 0
	}
	return time.Duration(uint64(p.totalDuration.Load()) / completed)
}
