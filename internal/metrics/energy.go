package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

// KineticEnergy sums ½mv² over every body.
func KineticEnergy(s sim.Snapshot) float64 {
	ke := 0.0
	for _, b := range s.Bodies {
		v := b.Velocity.Magnitude()
		ke += 0.5 * b.Mass * v * v
	}
	return ke
}

// PotentialEnergy sums -G·m·M/r over every pair with at least one planet.
// Vehicles do not attract each other, so vehicle pairs are skipped. The
// force cap is ignored.
func PotentialEnergy(s sim.Snapshot, p physics.Params) float64 {
	pe := 0.0
	for i := range s.Bodies {
		for j := i + 1; j < len(s.Bodies); j++ {
			a, b := s.Bodies[i], s.Bodies[j]
			if a.Vehicle && b.Vehicle {
				continue
			}
			r := a.Position.Distance(b.Position)
			if r == 0 {
				continue
			}
			pe -= p.G * a.Mass * b.Mass / r
		}
	}
	return pe
}

func TotalEnergy(s sim.Snapshot, p physics.Params) float64 {
	return KineticEnergy(s) + PotentialEnergy(s, p)
}

// Energy is the mean total energy over a run.
type Energy struct {
	name        string
	params      physics.Params
	samples     int
	totalEnergy float64
}

func NewEnergy(p physics.Params) *Energy {
	return &Energy{name: "energy", params: p}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(s sim.Snapshot) {
	e.totalEnergy += TotalEnergy(s, e.params)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}

// EnergyDrift is the largest relative deviation from the first observed
// total energy.
type EnergyDrift struct {
	name          string
	params        physics.Params
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift(p physics.Params) *EnergyDrift {
	return &EnergyDrift{name: "energy_drift", params: p}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(s sim.Snapshot) {
	energy := TotalEnergy(s, e.params)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}
