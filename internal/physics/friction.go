package physics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/motion"
)

// FrictionAcceleration returns the kinetic friction delta on client caused by
// the normal force server exerted on it.
//
// The direction is the tangent of the normal force on the same rotational
// side as the server's velocity seen from the client, which opposes the
// client's sliding. The magnitude μ·|Fn|/m is capped at the client's mass
// share of the tangential sliding speed. Both bodies of a pair receive
// friction in the same tick, so together they never remove more than the
// relative tangential speed and cannot reverse the slide.
func FrictionAcceleration(client, server *body.Body, normal motion.Force, mu float64) motion.Acceleration {
	sliding := client.RelativeVelocity(server)
	speed := sliding.Magnitude()
	fn := normal.Magnitude()
	if speed == 0 || fn == 0 || mu <= 0 {
		return motion.Acceleration{}
	}

	fnDir := normal.Direction()
	theta := wrapAngle(fnDir - wrapAngle(sliding.Direction()))

	dir := fnDir + math.Pi/2
	if theta < math.Pi {
		dir = fnDir - math.Pi/2
	}

	tangential := speed * math.Abs(math.Sin(theta))
	share := server.Mass / (client.Mass + server.Mass)
	magnitude := math.Min(mu*fn/client.Mass, tangential*share)

	return motion.Acceleration{DDX: magnitude * math.Cos(dir), DDY: magnitude * math.Sin(dir)}
}
