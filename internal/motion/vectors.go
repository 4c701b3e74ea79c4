package motion

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Position is a location in the world plane plus a heading in radians.
type Position struct {
	X, Y, H float64
}

func (p Position) Vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Distance ignores heading.
func (p Position) Distance(other Position) float64 {
	return r2.Norm(r2.Sub(other.Vec(), p.Vec()))
}

// Bearing returns the direction from p towards other, atan2 convention.
func (p Position) Bearing(other Position) float64 {
	return math.Atan2(other.Y-p.Y, other.X-p.X)
}

func (p Position) Add(v Velocity) Position {
	return Position{X: p.X + v.DX, Y: p.Y + v.DY, H: p.H + v.DH}
}

type Velocity struct {
	DX, DY, DH float64
}

func (v Velocity) Vec() r2.Vec { return r2.Vec{X: v.DX, Y: v.DY} }

func (v Velocity) Magnitude() float64 { return r2.Norm(v.Vec()) }

func (v Velocity) Direction() float64 { return math.Atan2(v.DY, v.DX) }

// Relative returns the velocity of client as seen from a frame moving with v.
func (v Velocity) Relative(client Velocity) Velocity {
	return Velocity{DX: client.DX - v.DX, DY: client.DY - v.DY, DH: client.DH - v.DH}
}

func (v Velocity) Add(a Acceleration) Velocity {
	return Velocity{DX: v.DX + a.DDX, DY: v.DY + a.DDY, DH: v.DH + a.DDH}
}

type Acceleration struct {
	DDX, DDY, DDH float64
}

// AccelerationOf builds a planar acceleration from a vector.
func AccelerationOf(v r2.Vec) Acceleration {
	return Acceleration{DDX: v.X, DDY: v.Y}
}

func (a Acceleration) Vec() r2.Vec { return r2.Vec{X: a.DDX, Y: a.DDY} }

func (a Acceleration) Magnitude() float64 { return r2.Norm(a.Vec()) }

func (a Acceleration) Direction() float64 { return math.Atan2(a.DDY, a.DDX) }

// Relative returns the acceleration of client as seen from a frame
// accelerating with a.
func (a Acceleration) Relative(client Acceleration) Acceleration {
	return Acceleration{DDX: client.DDX - a.DDX, DDY: client.DDY - a.DDY, DDH: client.DDH - a.DDH}
}

func (a Acceleration) Add(other Acceleration) Acceleration {
	return Acceleration{DDX: a.DDX + other.DDX, DDY: a.DDY + other.DDY, DDH: a.DDH + other.DDH}
}
