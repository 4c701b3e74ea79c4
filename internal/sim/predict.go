package sim

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbitsim/internal/body"
)

// Predict ticks a clone of c and returns the path of id: its current
// position followed by one position per tick. c is left untouched.
func (c *Context) Predict(id body.ID, ticks int) ([]r2.Vec, error) {
	if _, err := c.Body(id); err != nil {
		return nil, fmt.Errorf("predict %d: %w", id, err)
	}
	if ticks <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidTicks, ticks)
	}

	clone := c.Clone()
	path := make([]r2.Vec, 0, ticks+1)
	path = append(path, clone.bodies[id].Motion.Position.Vec())
	for i := 0; i < ticks; i++ {
		clone.Tick()
		path = append(path, clone.bodies[id].Motion.Position.Vec())
	}
	return path, nil
}

// PathLength sums the segment lengths of a path.
func PathLength(path []r2.Vec) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += r2.Norm(r2.Sub(path[i], path[i-1]))
	}
	return total
}
