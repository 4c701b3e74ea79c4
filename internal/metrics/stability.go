package metrics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbitsim/internal/sim"
)

// Stability is the fraction of ticks in which every body stayed within
// radius of the mass-weighted centre of the scene.
type Stability struct {
	name       string
	radius     float64
	violations int
	samples    int
}

func NewStability(radius float64) *Stability {
	return &Stability{
		name:   "stability",
		radius: radius,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(snap sim.Snapshot) {
	s.samples++
	centre := CentreOfMass(snap)
	for _, b := range snap.Bodies {
		if r2.Norm(r2.Sub(b.Position.Vec(), centre)) > s.radius {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}

func CentreOfMass(snap sim.Snapshot) r2.Vec {
	var weighted r2.Vec
	total := 0.0
	for _, b := range snap.Bodies {
		weighted = r2.Add(weighted, r2.Scale(b.Mass, b.Position.Vec()))
		total += b.Mass
	}
	if total == 0 {
		return r2.Vec{}
	}
	return r2.Scale(1/total, weighted)
}
