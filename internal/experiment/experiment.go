package experiment

import (
	"context"
	"errors"
	"log"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/logger"
	"github.com/san-kum/orbitsim/internal/sim"
)

var ErrNotSetup = errors.New("experiment: not set up")

type Experiment struct {
	cfg       *config.Config
	simulator *sim.Simulator
	log       *log.Logger
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg, log: logger.New("experiment")}
}

// WithLogger replaces the experiment logger.
func (e *Experiment) WithLogger(l *log.Logger) *Experiment {
	e.log = l
	return e
}

func (e *Experiment) Config() *config.Config { return e.cfg }

// Setup builds the context from the config and attaches metrics.
func (e *Experiment) Setup(metrics []sim.Metric) error {
	c, err := Build(e.cfg)
	if err != nil {
		return err
	}
	e.simulator = sim.New(c)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	e.log.Printf("scenario %s: %d players, %d planets", e.cfg.Name, len(c.Players()), len(c.Planets()))
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, ErrNotSetup
	}

	result, err := e.simulator.Run(ctx, e.cfg.Ticks)
	if err != nil {
		if result != nil {
			e.log.Printf("scenario %s stopped after %d ticks: %v", e.cfg.Name, result.Ticks, err)
		}
		return result, err
	}
	e.log.Printf("scenario %s finished %d ticks", e.cfg.Name, result.Ticks)
	return result, nil
}

// Simulator returns the underlying simulator for adding observers.
func (e *Experiment) Simulator() *sim.Simulator {
	return e.simulator
}
