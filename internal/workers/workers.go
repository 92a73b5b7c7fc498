package workers

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add appends workers. It must not be called while Run is in progress.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

// Run starts every worker and waits for all of them. The error is the first
// failure, which also cancels the context of the others.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}

// Periodic runs job every interval until the context is done. Job errors
// are logged and do not stop the worker.
type Periodic struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context) error
	// immediate runs job once before the first tick.
	immediate bool

	logger *logger.Logger
}

func NewPeriodic(name string, interval time.Duration, immediate bool, job func(ctx context.Context) error, log *logger.Logger) *Periodic {
	return &Periodic{
		name:      name,
		interval:  interval,
		job:       job,
		immediate: immediate,
		logger:    log.WithComponent(name),
	}
}

func (p *Periodic) Run(ctx context.Context) error {
	if p.interval <= 0 {
		return fmt.Errorf("worker %s: interval must be positive, got %s", p.name, p.interval)
	}

	if p.immediate {
		p.runOnce(ctx)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

func (p *Periodic) runOnce(ctx context.Context) {
	if err := p.job(ctx); err != nil && ctx.Err() == nil {
		p.logger.Err(err).Str("func", "*Periodic.Run").Msg("periodic job failed")
	}
}
