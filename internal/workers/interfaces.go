// Package workers runs the daemon's and the client's long-lived background
// jobs under one context. The first worker to fail cancels the others.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done or the job
// fails; a nil error means a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts a function to [Worker].
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
