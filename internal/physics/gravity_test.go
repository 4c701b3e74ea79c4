package physics

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/body"
)

func TestGravitationalForce_InverseSquare(t *testing.T) {
	p := DefaultParams()
	server := newBody(0, 0, 0, 0, 0, 100, 5)

	near := newBody(1, 100, 0, 0, 0, 1, 5)
	far := newBody(2, 200, 0, 0, 0, 1, 5)

	fNear := GravitationalForce(server, near, p).Magnitude()
	fFar := GravitationalForce(server, far, p).Magnitude()

	expected := p.G * 1 * 100 / (100 * 100)
	if math.Abs(fNear-expected) > tolerance {
		t.Errorf("expected magnitude %v, got %v", expected, fNear)
	}
	if ratio := fNear / fFar; math.Abs(ratio-4) > 1e-9 {
		t.Errorf("expected 1/r² ratio 4, got %v", ratio)
	}
}

func TestGravitationalForce_PointsTowardServer(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		name   string
		cx, cy float64
		signX  float64
		signY  float64
	}{
		{"up right", -100, -100, 1, 1},
		{"down right", -100, 100, 1, -1},
		{"down left", 100, 100, -1, -1},
		{"up left", 100, -100, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newBody(0, 0, 0, 0, 0, 100, 10)
			client := newBody(1, tt.cx, tt.cy, 0, 0, 100, 10)
			f := GravitationalForce(server, client, p)
			if f.X*tt.signX <= 0 || f.Y*tt.signY <= 0 {
				t.Errorf("force %+v does not point toward server", f)
			}
		})
	}
}

func TestGravitationalForce_Capped(t *testing.T) {
	p := DefaultParams()
	server := newBody(0, 0, 0, 0, 0, 1000, 10)
	client := newBody(1, 1, 0, 0, 0, 1, 10)

	f := GravitationalForce(server, client, p)
	if math.Abs(f.Magnitude()-p.MaxForce) > tolerance {
		t.Errorf("expected capped magnitude %v, got %v", p.MaxForce, f.Magnitude())
	}
	if f.X >= 0 {
		t.Errorf("capped force lost its direction: %+v", f)
	}
}

func TestGravitationalForce_Degenerate(t *testing.T) {
	p := DefaultParams()
	a := newBody(0, 10, 10, 0, 0, 100, 10)
	b := newBody(1, 10, 10, 0, 0, 100, 10)

	if f := GravitationalForce(a, a, p); f.Magnitude() != 0 {
		t.Errorf("self force should be zero, got %+v", f)
	}
	if f := GravitationalForce(a, b, p); f.Magnitude() != 0 {
		t.Errorf("coincident force should be zero, got %+v", f)
	}
}

func TestNetGravity_SkipsSelfByID(t *testing.T) {
	p := DefaultParams()
	client := newBody(0, 0, 0, 0, 0, 1, 1)
	twin := newBody(0, 50, 0, 0, 0, 100, 1) // same ID, different record
	other := newBody(1, -50, 0, 0, 0, 100, 1)

	f := NetGravity(client, []*body.Body{client, twin, other}, p)
	expected := GravitationalForce(other, client, p)
	if math.Abs(f.X-expected.X) > tolerance || math.Abs(f.Y-expected.Y) > tolerance {
		t.Errorf("expected %+v, got %+v", expected, f)
	}
}
