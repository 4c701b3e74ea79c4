// Package optim runs families of scenario variants and ranks them by a
// metric.
package optim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/experiment"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

var (
	ErrUnknownPlayer = errors.New("optim: no player with that label")
	ErrUnknownMetric = errors.New("optim: metric not recorded")
)

// Trial is one variant of a sweep.
type Trial struct {
	Factor float64
	Speed  float64
	Result *sim.Result
}

// SpeedSweep scales one player's initial velocity by each factor and runs
// every variant in parallel.
type SpeedSweep struct {
	label   string
	factors []float64
}

func NewSpeedSweep(label string, factors []float64) *SpeedSweep {
	return &SpeedSweep{label: label, factors: factors}
}

// Factors returns n factors spread evenly over [lo, hi].
func Factors(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

func (s *SpeedSweep) variant(base *config.Config, factor float64) (*config.Config, float64, error) {
	cfg := base.Clone()
	for i := range cfg.Players {
		p := &cfg.Players[i]
		if p.Label != s.label {
			continue
		}
		p.DX *= factor
		p.DY *= factor
		return cfg, math.Hypot(p.DX, p.DY), nil
	}
	return nil, 0, fmt.Errorf("%w: %s", ErrUnknownPlayer, s.label)
}

// Run executes the sweep. metrics builds a fresh metric set per variant.
func (s *SpeedSweep) Run(ctx context.Context, base *config.Config, metrics func(physics.Params) []sim.Metric) ([]Trial, error) {
	trials := make([]Trial, len(s.factors))
	variants := make([]*config.Config, len(s.factors))
	for i, f := range s.factors {
		cfg, speed, err := s.variant(base, f)
		if err != nil {
			return nil, err
		}
		variants[i] = cfg
		trials[i] = Trial{Factor: f, Speed: speed}
	}

	ens := sim.NewEnsemble(len(variants),
		func(run int) (*sim.Context, error) { return experiment.Build(variants[run]) },
		func() []sim.Metric { return metrics(base.Params()) },
	)
	results, err := ens.Run(ctx, base.Ticks)
	if err != nil {
		return nil, err
	}

	for i := range trials {
		trials[i].Result = results[i]
	}
	return trials, nil
}

// CheckMetric reports an error unless every completed trial recorded metric.
func CheckMetric(trials []Trial, metric string) error {
	for _, t := range trials {
		if t.Result == nil {
			continue
		}
		if _, ok := t.Result.Metrics[metric]; !ok {
			names := make([]string, 0, len(t.Result.Metrics))
			for name := range t.Result.Metrics {
				names = append(names, name)
			}
			sort.Strings(names)
			return fmt.Errorf("%w: %s (available: %v)", ErrUnknownMetric, metric, names)
		}
	}
	return nil
}

// Rank sorts trials by metric, lowest first unless descending is set.
// Trials missing the metric sort last.
func Rank(trials []Trial, metric string, descending bool) []Trial {
	out := append([]Trial(nil), trials...)
	value := func(t Trial) (float64, bool) {
		if t.Result == nil {
			return 0, false
		}
		v, ok := t.Result.Metrics[metric]
		return v, ok
	}
	sort.SliceStable(out, func(i, j int) bool {
		vi, oki := value(out[i])
		vj, okj := value(out[j])
		if oki != okj {
			return oki
		}
		if descending {
			return vi > vj
		}
		return vi < vj
	})
	return out
}
