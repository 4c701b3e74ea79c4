package physics

import (
	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/motion"
)

const tolerance = 1e-9

func newBody(id body.ID, x, y, dx, dy, mass, radius float64) *body.Body {
	b := body.New(id, "test", mass, body.PlanetTemperature, radius,
		motion.New(motion.Position{X: x, Y: y}, motion.Velocity{DX: dx, DY: dy}, 8))
	return &b
}
