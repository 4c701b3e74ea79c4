package sim

import (
	"context"
	"sync"
)

// Ensemble runs independently built contexts in parallel. Each run owns its
// context, so no state is shared between goroutines.
type Ensemble struct {
	build   func(run int) (*Context, error)
	metrics func() []Metric
	numRuns int
}

func NewEnsemble(numRuns int, build func(run int) (*Context, error), metrics func() []Metric) *Ensemble {
	return &Ensemble{build: build, metrics: metrics, numRuns: numRuns}
}

func (e *Ensemble) Run(ctx context.Context, ticks int) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			c, err := e.build(idx)
			if err != nil {
				errs[idx] = err
				return
			}

			sim := New(c)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					sim.AddMetric(m)
				}
			}

			results[idx], errs[idx] = sim.Run(ctx, ticks)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
