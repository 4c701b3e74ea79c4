// Package body defines the simulated entities: a physical Body record and the
// optional Pilot attachment that turns a body into a player vehicle.
package body

import "github.com/san-kum/orbitsim/internal/motion"

type ID = motion.ID

const (
	VehicleMass        = 1.0
	VehicleTemperature = 325.0
	VehicleRadius      = 10.0

	PlanetTemperature  = 298.15
	DefaultRestitution = 1.0
)

// Body is a physical entity. Planets are bare bodies; vehicles are bodies
// with a Pilot stored at the same ID.
type Body struct {
	ID          ID
	Label       string
	Mass        float64
	Temperature float64
	Radius      float64
	Restitution float64
	Motion      motion.Motion
}

func New(id ID, label string, mass, temperature, radius float64, m motion.Motion) Body {
	return Body{
		ID:          id,
		Label:       label,
		Mass:        mass,
		Temperature: temperature,
		Radius:      radius,
		Restitution: DefaultRestitution,
		Motion:      m,
	}
}

// AngularMass is a placeholder: mass times radius.
func (b *Body) AngularMass() float64 { return b.Mass * b.Radius }

func (b *Body) Distance(other *Body) float64 {
	return b.Motion.Position.Distance(other.Motion.Position)
}

// Bearing is the direction from b towards other.
func (b *Body) Bearing(other *Body) float64 {
	return b.Motion.Position.Bearing(other.Motion.Position)
}

// Overlaps reports whether the two discs touch or intersect.
func (b *Body) Overlaps(other *Body) bool {
	return b.Distance(other) <= b.Radius+other.Radius
}

// RelativeVelocity is the velocity of client in b's frame of reference.
func (b *Body) RelativeVelocity(client *Body) motion.Velocity {
	return b.Motion.Velocity.Relative(client.Motion.Velocity)
}

// RelativeAcceleration is the acceleration of client in b's frame of reference.
func (b *Body) RelativeAcceleration(client *Body) motion.Acceleration {
	return b.Motion.Acceleration.Relative(client.Motion.Acceleration)
}

func (b *Body) Clone() Body {
	c := *b
	c.Motion = b.Motion.Clone()
	return c
}
