package sim

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/motion"
)

// BodyState is a read-only copy of one body at the end of a tick.
type BodyState struct {
	ID           body.ID
	Label        string
	Vehicle      bool
	Pilot        body.Pilot
	Mass         float64
	Radius       float64
	Position     motion.Position
	Velocity     motion.Velocity
	Acceleration motion.Acceleration
	Trail        []r2.Vec
}

// Snapshot is a consistent copy of the whole context between ticks.
type Snapshot struct {
	Tick   int
	Bodies []BodyState
}

// Snapshot copies the current state. Call it only between ticks.
func (c *Context) Snapshot() Snapshot {
	s := Snapshot{Tick: c.tick, Bodies: make([]BodyState, len(c.bodies))}
	for i := range c.bodies {
		b := &c.bodies[i]
		st := BodyState{
			ID:           b.ID,
			Label:        b.Label,
			Mass:         b.Mass,
			Radius:       b.Radius,
			Position:     b.Motion.Position,
			Velocity:     b.Motion.Velocity,
			Acceleration: b.Motion.Acceleration,
			Trail:        b.Motion.Trail.Points(),
		}
		if p := c.pilots[i]; p != nil {
			st.Vehicle = true
			st.Pilot = *p
		}
		s.Bodies[i] = st
	}
	return s
}

// Find returns the first body with label.
func (s Snapshot) Find(label string) (BodyState, bool) {
	for _, b := range s.Bodies {
		if b.Label == label {
			return b, true
		}
	}
	return BodyState{}, false
}
