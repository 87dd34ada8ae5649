// Package worker compares many submitted documents against one scenario
// in parallel.
//
// A Pool is bound to a Comparer, an objective code and the scenario
// (reference) document. Each Job carries one submission. Job and result
// queues are bounded, so results must be consumed while jobs are submitted:
//
//	pool := worker.NewPool(validator, "170.315_b1_ToC_Amb", scenario, 4)
//
//	go func() {
//	    defer pool.Stop()
//	    for i, doc := range submissions {
//	        pool.Submit(worker.Job{ID: strconv.Itoa(i), Submitted: doc})
//	    }
//	}()
//
//	for r := range pool.Results() {
//	    if r.Error != nil {
//	        // Handle error
//	    }
//	    // Process r.Report
//	}
//
// CompareBatch does this and returns the results in submission order.
// CloseAndWait suits small batches that fit in the queues.
package worker
