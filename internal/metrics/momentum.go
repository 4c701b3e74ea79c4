package metrics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbitsim/internal/sim"
)

func LinearMomentum(snap sim.Snapshot) r2.Vec {
	var p r2.Vec
	for _, b := range snap.Bodies {
		p = r2.Add(p, r2.Scale(b.Mass, b.Velocity.Vec()))
	}
	return p
}

// Momentum reports the magnitude of the total linear momentum at the last
// observed tick.
type Momentum struct {
	name string
	last float64
}

func NewMomentum() *Momentum {
	return &Momentum{name: "momentum"}
}

func (m *Momentum) Name() string { return m.name }

func (m *Momentum) Observe(snap sim.Snapshot) {
	m.last = r2.Norm(LinearMomentum(snap))
}

func (m *Momentum) Value() float64 { return m.last }

func (m *Momentum) Reset() { m.last = 0 }
