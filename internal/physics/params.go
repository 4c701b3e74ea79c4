package physics

import "math"

const (
	DefaultGravitationalConstant = 0.1
	DefaultKineticFriction       = 0.5

	// DefaultMaxForce caps a single gravitational pull so near-coincident
	// bodies do not receive unbounded acceleration.
	DefaultMaxForce = 2.0

	// sinkDivisor spreads the interpenetration correction over three ticks.
	sinkDivisor  = 3.0
	maxSinkDepth = 1.0
)

// Params are the tunable constants of the force laws.
type Params struct {
	G               float64
	MaxForce        float64
	KineticFriction float64
}

func DefaultParams() Params {
	return Params{
		G:               DefaultGravitationalConstant,
		MaxForce:        DefaultMaxForce,
		KineticFriction: DefaultKineticFriction,
	}
}

// wrapAngle maps theta into [0, 2π).
func wrapAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}
