package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/motion"
)

// SinkDepth is the interpenetration correction term for two overlapping
// bodies, (rs+rc-d)/3 capped at 1.
func SinkDepth(server, client *body.Body) float64 {
	depth := (server.Radius + client.Radius - server.Distance(client)) / sinkDivisor
	return math.Min(depth, maxSinkDepth)
}

// ContactNormalForce returns the normal force server exerts on client while
// the two overlap. Separated bodies and self-pairs produce no force.
//
// The force has a velocity term scaled by the combined restitution and an
// acceleration term scaled by the sink depth. Both vanish when the client is
// moving away from the server.
func ContactNormalForce(server, client *body.Body) motion.Force {
	if server.ID == client.ID || !server.Overlaps(client) {
		return motion.Force{}
	}

	relAcc := server.RelativeAcceleration(client)
	relVel := server.RelativeVelocity(client)
	sink := SinkDepth(server, client)

	normal := server.Bearing(client)
	approach := r2.Add(relVel.Vec(), relAcc.Vec())
	thetaDiff := (normal - math.Pi/2) - math.Atan2(approach.Y, approach.X)
	s := math.Sin(thetaDiff)

	restitution := server.Restitution * client.Restitution

	fromVelocity := math.Max(0, relVel.Magnitude()*client.Mass*s*restitution)
	fromAcceleration := math.Max(0, relAcc.Magnitude()*client.Mass*s*sink)

	total := fromVelocity + fromAcceleration
	return motion.Force{X: total * math.Cos(normal), Y: total * math.Sin(normal)}
}
