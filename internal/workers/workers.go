package workers

import (
	"context"
	"errors"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run runs every worker in order. A failing worker does not stop the rest;
// all errors are joined.
func (w *Workers) Run(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := worker.Run(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
