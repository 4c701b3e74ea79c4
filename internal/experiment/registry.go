package experiment

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

var ErrUnknownScenario = errors.New("experiment: unknown scenario")

// Registry maps scenario names to config constructors.
type Registry struct {
	scenarios map[string]func() *config.Config
}

// NewRegistry returns a registry seeded with every built-in preset.
func NewRegistry() *Registry {
	r := &Registry{scenarios: make(map[string]func() *config.Config)}
	for _, name := range config.ListPresets() {
		name := name
		r.scenarios[name] = func() *config.Config { return config.GetPreset(name) }
	}
	return r
}

func (r *Registry) Register(name string, fn func() *config.Config) {
	r.scenarios[name] = fn
}

func (r *Registry) GetScenario(name string) (*config.Config, error) {
	fn, ok := r.scenarios[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}
	return fn(), nil
}

func (r *Registry) ListScenarios() []string {
	names := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(p physics.Params) []sim.Metric {
	return metrics.Default(p)
}
