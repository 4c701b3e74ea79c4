package metrics

import (
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

// DefaultStabilityRadius bounds the scene used by the stability metric.
const DefaultStabilityRadius = 2000.0

func Default(p physics.Params) []sim.Metric {
	return []sim.Metric{
		NewEnergy(p),
		NewEnergyDrift(p),
		NewMomentum(),
		NewStability(DefaultStabilityRadius),
		NewVehicleSpeed(),
	}
}
