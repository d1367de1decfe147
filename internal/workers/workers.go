package workers

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool executes jobs concurrently, at most limit at a time.
type Pool struct {
	limit int
}

// NewPool returns a Pool with the given concurrency. A non-positive limit
// means runtime.NumCPU().
func NewPool(limit int) *Pool {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	return &Pool{limit: limit}
}

// Limit returns the configured concurrency.
func (p *Pool) Limit() int {
	return p.limit
}

// Run executes all jobs and waits for them. It returns the first non-nil
// error; jobs not yet started when the context is cancelled are skipped.
func (p *Pool) Run(ctx context.Context, jobs ...Job) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)

	for _, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return job(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Map applies fn to every element of in on r and returns the results in
// input order.
func Map[T, R any](ctx context.Context, r Runner, in []T, fn func(ctx context.Context, v T) (R, error)) ([]R, error) {
	out := make([]R, len(in))
	jobs := make([]Job, len(in))
	for i, v := range in {
		jobs[i] = func(ctx context.Context) error {
			res, err := fn(ctx, v)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		}
	}

	if err := r.Run(ctx, jobs...); err != nil {
		return nil, err
	}
	return out, nil
}
