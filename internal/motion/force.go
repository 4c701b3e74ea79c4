package motion

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Force is a planar force vector.
type Force struct {
	X, Y float64
}

func ForceOf(v r2.Vec) Force { return Force{X: v.X, Y: v.Y} }

func (f Force) Vec() r2.Vec { return r2.Vec{X: f.X, Y: f.Y} }

func (f Force) Magnitude() float64 { return r2.Norm(f.Vec()) }

// Direction is in [0, 2π).
func (f Force) Direction() float64 {
	theta := math.Atan2(f.Y, f.X)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

func (f Force) Add(other Force) Force { return Force{X: f.X + other.X, Y: f.Y + other.Y} }

// Per returns the acceleration this force imparts on mass m.
func (f Force) Per(m float64) Acceleration {
	return Acceleration{DDX: f.X / m, DDY: f.Y / m}
}
