package motion

// ID identifies a body inside its simulation context. It is the body's arena
// index and never changes once issued.
type ID int

// ContactEvent records the normal force a server body exerted on the owner
// of the Motion during the current tick.
type ContactEvent struct {
	Server      ID
	NormalForce Force
}

type Motion struct {
	Position     Position
	Velocity     Velocity
	Acceleration Acceleration
	Trail        Trail

	contacts []ContactEvent
}

// New returns a Motion at pos whose trail already holds pos as its first
// sample.
func New(pos Position, vel Velocity, trailPopulation int) Motion {
	m := Motion{
		Position: pos,
		Velocity: vel,
		Trail:    NewTrail(trailPopulation),
	}
	m.Trail.Sample(pos.Vec())
	return m
}

func (m *Motion) IntegratePosition() {
	m.Position = m.Position.Add(m.Velocity)
	m.Trail.Sample(m.Position.Vec())
}

func (m *Motion) IntegrateVelocity() {
	m.Velocity = m.Velocity.Add(m.Acceleration)
}

// Seed overwrites the acceleration.
func (m *Motion) Seed(a Acceleration) { m.Acceleration = a }

// Accelerate adds a delta to the acceleration.
func (m *Motion) Accelerate(delta Acceleration) { m.Acceleration = m.Acceleration.Add(delta) }

func (m *Motion) RecordContact(e ContactEvent) {
	m.contacts = append(m.contacts, e)
}

// PendingContacts is the number of contact events not yet consumed.
func (m *Motion) PendingContacts() int { return len(m.contacts) }

// DrainContacts hands every pending event to fn, then clears the buffer.
func (m *Motion) DrainContacts(fn func(ContactEvent)) {
	for _, e := range m.contacts {
		fn(e)
	}
	m.contacts = m.contacts[:0]
}

func (m *Motion) Clone() Motion {
	c := *m
	c.Trail = m.Trail.Clone()
	if len(m.contacts) > 0 {
		c.contacts = append([]ContactEvent(nil), m.contacts...)
	} else {
		c.contacts = nil
	}
	return c
}
