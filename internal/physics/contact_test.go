package physics

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/motion"
)

func TestContactNormalForce_ZeroWhenApart(t *testing.T) {
	server := newBody(0, 0, 0, 0, 0, 1000, 20)
	client := newBody(1, 30.5, 0, -5, 0, 1, 10)

	if f := ContactNormalForce(server, client); f.Magnitude() != 0 {
		t.Errorf("expected no force for separated bodies, got %+v", f)
	}
}

func TestContactNormalForce_SelfIsZero(t *testing.T) {
	b := newBody(0, 0, 0, 1, 1, 10, 10)
	if f := ContactNormalForce(b, b); f.Magnitude() != 0 {
		t.Errorf("expected no self contact, got %+v", f)
	}
}

func TestContactNormalForce_HeadOn(t *testing.T) {
	server := newBody(0, 0, 0, 0, 0, 1000, 20)
	client := newBody(1, 25, 0, -1, 0, 1, 10)

	f := ContactNormalForce(server, client)
	if math.Abs(f.X-1) > tolerance || math.Abs(f.Y) > tolerance {
		t.Errorf("expected (1, 0), got %+v", f)
	}
}

func TestContactNormalForce_Receding(t *testing.T) {
	server := newBody(0, 0, 0, 0, 0, 1000, 20)
	client := newBody(1, 25, 0, 1, 0, 1, 10)

	if f := ContactNormalForce(server, client); f.Magnitude() != 0 {
		t.Errorf("expected no force while separating, got %+v", f)
	}
}

func TestContactNormalForce_Restitution(t *testing.T) {
	server := newBody(0, 0, 0, 0, 0, 1000, 20)
	client := newBody(1, 25, 0, -1, 0, 1, 10)
	server.Restitution = 0.5

	f := ContactNormalForce(server, client)
	if math.Abs(f.X-0.5) > tolerance {
		t.Errorf("expected restitution-scaled force 0.5, got %+v", f)
	}
}

func TestContactNormalForce_AccelerationTermUsesSinkDepth(t *testing.T) {
	server := newBody(0, 0, 0, 0, 0, 1000, 20)
	client := newBody(1, 29, 0, 0, 0, 2, 10)
	client.Motion.Seed(motion.Acceleration{DDX: -0.3})

	f := ContactNormalForce(server, client)
	expected := 0.3 * 2 * (1.0 / 3.0)
	if math.Abs(f.X-expected) > tolerance {
		t.Errorf("expected %v, got %+v", expected, f)
	}
}

func TestSinkDepth(t *testing.T) {
	tests := []struct {
		distance float64
		want     float64
	}{
		{29, 1.0 / 3.0},
		{27, 1},
		{10, 1},
	}

	for _, tt := range tests {
		server := newBody(0, 0, 0, 0, 0, 1, 20)
		client := newBody(1, tt.distance, 0, 0, 0, 1, 10)
		if got := SinkDepth(server, client); math.Abs(got-tt.want) > tolerance {
			t.Errorf("SinkDepth at %v = %v, want %v", tt.distance, got, tt.want)
		}
	}
}
