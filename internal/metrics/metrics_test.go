package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/motion"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

func twoBodySnapshot() sim.Snapshot {
	return sim.Snapshot{
		Tick: 1,
		Bodies: []sim.BodyState{
			{ID: 0, Label: "terra", Mass: 1000, Position: motion.Position{}},
			{ID: 1, Label: "alice", Vehicle: true, Mass: 1, Position: motion.Position{X: 100}, Velocity: motion.Velocity{DY: 2}},
		},
	}
}

func TestEnergy(t *testing.T) {
	p := physics.DefaultParams()
	snap := twoBodySnapshot()

	expected := 0.5*1*4 - p.G*1000*1/100
	if got := TotalEnergy(snap, p); math.Abs(got-expected) > 1e-12 {
		t.Errorf("expected energy %f, got %f", expected, got)
	}

	m := NewEnergy(p)
	m.Observe(snap)
	m.Observe(snap)
	if math.Abs(m.Value()-expected) > 1e-12 {
		t.Errorf("expected mean %f, got %f", expected, m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestPotentialEnergy_SkipsVehiclePairs(t *testing.T) {
	snap := sim.Snapshot{Bodies: []sim.BodyState{
		{Vehicle: true, Mass: 1},
		{Vehicle: true, Mass: 1, Position: motion.Position{X: 10}},
	}}
	if pe := PotentialEnergy(snap, physics.DefaultParams()); pe != 0 {
		t.Errorf("expected no potential between vehicles, got %f", pe)
	}
}

func TestEnergyDrift(t *testing.T) {
	p := physics.DefaultParams()
	d := NewEnergyDrift(p)

	snap := twoBodySnapshot()
	d.Observe(snap)
	if d.Value() != 0 {
		t.Errorf("expected zero drift on first sample, got %f", d.Value())
	}

	snap.Bodies[1].Velocity = motion.Velocity{DY: 4}
	d.Observe(snap)
	if d.Value() <= 0 {
		t.Error("expected positive drift after speed change")
	}
}

func TestMomentum(t *testing.T) {
	m := NewMomentum()
	m.Observe(twoBodySnapshot())
	if math.Abs(m.Value()-2) > 1e-12 {
		t.Errorf("expected momentum 2, got %f", m.Value())
	}
}

func TestStability(t *testing.T) {
	s := NewStability(50)
	s.Observe(twoBodySnapshot())
	if s.Value() != 0 {
		t.Errorf("expected violation for body 100 units out, got %f", s.Value())
	}

	s.Reset()
	s = NewStability(500)
	s.Observe(twoBodySnapshot())
	if s.Value() != 1 {
		t.Errorf("expected stable scene, got %f", s.Value())
	}
}

func TestVehicleSpeed(t *testing.T) {
	v := NewVehicleSpeed()
	v.Observe(twoBodySnapshot())
	if v.Value() != 2 {
		t.Errorf("expected mean vehicle speed 2, got %f", v.Value())
	}
}
