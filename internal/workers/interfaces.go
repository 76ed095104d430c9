// Package workers provides background jobs that run next to the notevault
// client and the Workers aggregate that runs them in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until the job is finished or ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // do the job
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
