package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/motion"
)

// GravitationalForce returns the pull server exerts on client. The magnitude
// is G·m·M/r², capped at p.MaxForce when that is positive. Coincident centres
// and a body paired with itself produce no force.
func GravitationalForce(server, client *body.Body, p Params) motion.Force {
	if server.ID == client.ID {
		return motion.Force{}
	}

	r := client.Distance(server)
	if r == 0 {
		return motion.Force{}
	}

	magnitude := p.G * client.Mass * server.Mass / (r * r)
	if p.MaxForce > 0 && magnitude > p.MaxForce {
		magnitude = p.MaxForce
	}

	dir := r2.Unit(r2.Sub(server.Motion.Position.Vec(), client.Motion.Position.Vec()))
	return motion.ForceOf(r2.Scale(magnitude, dir))
}

// NetGravity sums the pull of every server on client, skipping client itself.
func NetGravity(client *body.Body, servers []*body.Body, p Params) motion.Force {
	var total motion.Force
	for _, server := range servers {
		if server.ID == client.ID {
			continue
		}
		total = total.Add(GravitationalForce(server, client, p))
	}
	return total
}
