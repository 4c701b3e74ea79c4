package sim

import (
	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/motion"
	"github.com/san-kum/orbitsim/internal/physics"
)

// Context is the simulation state: a body arena, the player and planet
// indexes into it, and the force-law parameters.
type Context struct {
	params  physics.Params
	bodies  []body.Body
	pilots  []*body.Pilot
	players []body.ID
	planets []body.ID

	tick      int
	completed Phase
	deltas    *deltaPool
}

func NewContext(params physics.Params) *Context {
	return &Context{
		params:    params,
		bodies:    make([]body.Body, 0),
		pilots:    make([]*body.Pilot, 0),
		players:   make([]body.ID, 0),
		planets:   make([]body.ID, 0),
		completed: PhaseVelocity,
		deltas:    newDeltaPool(),
	}
}

// AddPlayer appends a vehicle with mass 1, temperature 325 and radius 10.
func (c *Context) AddPlayer(x, y, heading, dx, dy, dh float64, label string, trailPopulation int) body.ID {
	id := c.add(label, body.VehicleMass, body.VehicleTemperature, body.VehicleRadius,
		x, y, heading, dx, dy, dh, trailPopulation)
	c.pilots[id] = body.NewPilot(label)
	c.players = append(c.players, id)
	return id
}

// AddPlanet appends a free body. Mass and radius must be positive.
func (c *Context) AddPlanet(x, y, heading, dx, dy, dh float64, label string, trailPopulation int, radius, mass float64) body.ID {
	id := c.add(label, mass, body.PlanetTemperature, radius,
		x, y, heading, dx, dy, dh, trailPopulation)
	c.planets = append(c.planets, id)
	return id
}

func (c *Context) add(label string, mass, temperature, radius, x, y, h, dx, dy, dh float64, trailPopulation int) body.ID {
	id := body.ID(len(c.bodies))
	m := motion.New(motion.Position{X: x, Y: y, H: h}, motion.Velocity{DX: dx, DY: dy, DH: dh}, trailPopulation)
	c.bodies = append(c.bodies, body.New(id, label, mass, temperature, radius, m))
	c.pilots = append(c.pilots, nil)
	return id
}

func (c *Context) Params() physics.Params { return c.params }

// Ticks is the number of completed ticks.
func (c *Context) Ticks() int { return c.tick }

func (c *Context) Len() int { return len(c.bodies) }

// Body returns the live body record for id. Callers must not mutate it
// while a tick is in progress.
func (c *Context) Body(id body.ID) (*body.Body, error) {
	if id < 0 || int(id) >= len(c.bodies) {
		return nil, ErrUnknownBody
	}
	return &c.bodies[id], nil
}

// Pilot returns the vehicle attachment for id, or nil for planets.
func (c *Context) Pilot(id body.ID) *body.Pilot {
	if id < 0 || int(id) >= len(c.pilots) {
		return nil
	}
	return c.pilots[id]
}

// Lookup returns the first body carrying label.
func (c *Context) Lookup(label string) (body.ID, error) {
	for i := range c.bodies {
		if c.bodies[i].Label == label {
			return c.bodies[i].ID, nil
		}
	}
	return 0, ErrUnknownBody
}

func (c *Context) Players() []body.ID { return append([]body.ID(nil), c.players...) }
func (c *Context) Planets() []body.ID { return append([]body.ID(nil), c.planets...) }

func (c *Context) refs(ids []body.ID) []*body.Body {
	out := make([]*body.Body, len(ids))
	for i, id := range ids {
		out[i] = &c.bodies[id]
	}
	return out
}

// Clone returns a deep copy that can be ticked without touching c.
func (c *Context) Clone() *Context {
	clone := &Context{
		params:    c.params,
		bodies:    make([]body.Body, len(c.bodies)),
		pilots:    make([]*body.Pilot, len(c.pilots)),
		players:   append([]body.ID(nil), c.players...),
		planets:   append([]body.ID(nil), c.planets...),
		tick:      c.tick,
		completed: c.completed,
		deltas:    c.deltas,
	}
	for i := range c.bodies {
		clone.bodies[i] = c.bodies[i].Clone()
	}
	for i, p := range c.pilots {
		if p != nil {
			cp := *p
			clone.pilots[i] = &cp
		}
	}
	return clone
}

// SetRestitution overrides the restitution coefficient of id. It is meant
// for scenario setup before the first tick.
func (c *Context) SetRestitution(id body.ID, e float64) error {
	b, err := c.Body(id)
	if err != nil {
		return err
	}
	b.Restitution = e
	return nil
}
