package sim

import (
	"context"
	"fmt"
)

// Simulator drives a Context for a fixed number of ticks.
type Simulator struct {
	world     *Context
	metrics   []Metric
	observers []Observer
}

func New(c *Context) *Simulator {
	return &Simulator{
		world:     c,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Context() *Context { return s.world }

// Run advances the context by ticks whole ticks. Cancellation is checked
// between ticks only; on cancellation the partial result is returned along
// with ctx.Err().
func (s *Simulator) Run(ctx context.Context, ticks int) (*Result, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidTicks, ticks)
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{Metrics: make(map[string]float64)}
	observed := len(s.metrics) > 0 || len(s.observers) > 0

	var err error
	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
		default:
		}
		if err != nil {
			break
		}

		s.world.Tick()
		result.Ticks++

		if !observed {
			continue
		}
		snap := s.world.Snapshot()
		for _, m := range s.metrics {
			m.Observe(snap)
		}
		for _, o := range s.observers {
			o.OnTick(snap)
		}
	}

	result.Final = s.world.Snapshot()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, err
}

// RunWithCallback ticks until callback returns false or ctx is done.
func (s *Simulator) RunWithCallback(ctx context.Context, callback func(Snapshot) bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.world.Tick()
		if !callback(s.world.Snapshot()) {
			return nil
		}
	}
}
