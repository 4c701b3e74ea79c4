package sim

import (
	"github.com/san-kum/orbitsim/internal/motion"
	"github.com/san-kum/orbitsim/internal/physics"
)

// Phase names one stage of a tick.
type Phase int

const (
	PhasePosition Phase = iota
	PhaseAcceleration
	PhaseContact
	PhaseFriction
	PhaseVelocity
)

func (p Phase) String() string {
	switch p {
	case PhasePosition:
		return "position"
	case PhaseAcceleration:
		return "acceleration"
	case PhaseContact:
		return "contact"
	case PhaseFriction:
		return "friction"
	case PhaseVelocity:
		return "velocity"
	default:
		return "unknown"
	}
}

// LastPhase is the most recently completed phase. It is PhaseVelocity
// between ticks.
func (c *Context) LastPhase() Phase { return c.completed }

// Tick runs the five phases in order.
func (c *Context) Tick() {
	c.TickPositionChanges()
	c.TickAccelerationChanges()
	c.TickContactChanges()
	c.TickFrictionChanges()
	c.TickVelocityChanges()
}

// TickPositionChanges integrates every position and samples trails.
func (c *Context) TickPositionChanges() {
	for i := range c.bodies {
		c.bodies[i].Motion.IntegratePosition()
	}
	c.completed = PhasePosition
}

// TickAccelerationChanges overwrites every acceleration with the gravity of
// the planets. Vehicles are pulled by all planets, planets by all other
// planets. Vehicles exert no gravity.
func (c *Context) TickAccelerationChanges() {
	planets := c.refs(c.planets)
	for i := range c.bodies {
		b := &c.bodies[i]
		b.Motion.Seed(physics.NetGravity(b, planets, c.params).Per(b.Mass))
	}
	c.completed = PhaseAcceleration
}

// TickContactChanges resolves every overlapping ordered pair. Deltas are
// staged and only added once all pairs were evaluated, so every pair sees
// the seeded accelerations.
func (c *Context) TickContactChanges() {
	staged := c.deltas.get(len(c.bodies))
	defer c.deltas.put(staged)

	for s := range c.bodies {
		server := &c.bodies[s]
		for k := range c.bodies {
			client := &c.bodies[k]
			if server.ID == client.ID || !server.Overlaps(client) {
				continue
			}
			force := physics.ContactNormalForce(server, client)
			if force.Magnitude() == 0 {
				continue
			}
			staged[client.ID] = staged[client.ID].Add(force.Per(client.Mass))
			client.Motion.RecordContact(motion.ContactEvent{Server: server.ID, NormalForce: force})
		}
	}

	for i := range c.bodies {
		c.bodies[i].Motion.Accelerate(staged[i])
	}
	c.completed = PhaseContact
}

// TickFrictionChanges consumes the contact events of this tick.
func (c *Context) TickFrictionChanges() {
	mu := c.params.KineticFriction
	for i := range c.bodies {
		client := &c.bodies[i]
		client.Motion.DrainContacts(func(e motion.ContactEvent) {
			server := &c.bodies[e.Server]
			client.Motion.Accelerate(physics.FrictionAcceleration(client, server, e.NormalForce, mu))
		})
	}
	c.completed = PhaseFriction
}

// TickVelocityChanges integrates every velocity and closes the tick.
func (c *Context) TickVelocityChanges() {
	for i := range c.bodies {
		c.bodies[i].Motion.IntegrateVelocity()
	}
	c.completed = PhaseVelocity
	c.tick++
}

