package sim

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/physics"
)

func TestAddPlayer_Defaults(t *testing.T) {
	c := NewContext(physics.DefaultParams())
	id := c.AddPlayer(1, 2, 0.5, 0, 0, 0, "alice", 10)

	b, err := c.Body(id)
	if err != nil {
		t.Fatalf("body lookup failed: %v", err)
	}
	if b.Mass != 1 || b.Radius != 10 || b.Temperature != 325 {
		t.Errorf("unexpected vehicle defaults: mass=%v radius=%v temp=%v", b.Mass, b.Radius, b.Temperature)
	}
	if c.Pilot(id) == nil {
		t.Error("expected vehicle to carry a pilot")
	}
	if len(c.Players()) != 1 || len(c.Planets()) != 0 {
		t.Errorf("expected 1 player, 0 planets, got %d/%d", len(c.Players()), len(c.Planets()))
	}
}

func TestAddPlanet_NoPilot(t *testing.T) {
	c := NewContext(physics.DefaultParams())
	id := c.AddPlanet(0, 0, 0, 0, 0, 0, "terra", 10, 20, 1000)

	if c.Pilot(id) != nil {
		t.Error("planet should not carry a pilot")
	}
	b, _ := c.Body(id)
	if b.Mass != 1000 || b.Radius != 20 {
		t.Errorf("unexpected planet: %+v", b)
	}
}

func TestIdentity_SharedLabels(t *testing.T) {
	c := NewContext(physics.DefaultParams())
	a := c.AddPlanet(250, 50, 0, 0, 0, 0, "twin", 4, 20, 1000)
	b := c.AddPlanet(250, 450, 0, 0, 0, 0, "twin", 4, 20, 1000)

	if a == b {
		t.Fatal("bodies with the same label must get distinct IDs")
	}

	c.TickAccelerationChanges()
	ba, _ := c.Body(a)
	if ba.Motion.Acceleration.DDY <= 0 {
		t.Errorf("twin should still be pulled by its namesake, got %+v", ba.Motion.Acceleration)
	}
}

func TestTick_MatchesManualPhases(t *testing.T) {
	build := func() *Context {
		c := NewContext(physics.DefaultParams())
		c.AddPlanet(0, 0, 0, 0, 0, 0, "terra", 20, 20, 1000)
		c.AddPlanet(29, 3, 0, -1, 0.4, 0, "luna", 20, 10, 100)
		c.AddPlayer(-60, 0, 0, 0, 1.2, 0, "alice", 20)
		return c
	}

	a, b := build(), build()
	for i := 0; i < 5; i++ {
		a.Tick()

		b.TickPositionChanges()
		b.TickAccelerationChanges()
		b.TickContactChanges()
		b.TickFrictionChanges()
		b.TickVelocityChanges()
	}

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Error("Tick() diverged from the five explicit phases")
	}
	if a.Ticks() != 5 {
		t.Errorf("expected 5 ticks, got %d", a.Ticks())
	}
}

func TestTick_AccelerationIsReseeded(t *testing.T) {
	c := NewContext(physics.DefaultParams())
	id := c.AddPlayer(100, 0, 0, 0, 0, 0, "alice", 4)
	c.AddPlanet(0, 0, 0, 0, 0, 0, "terra", 4, 20, 1000)

	c.TickAccelerationChanges()
	b, _ := c.Body(id)
	first := b.Motion.Acceleration

	c.TickAccelerationChanges()
	if b.Motion.Acceleration != first {
		t.Errorf("acceleration accumulated across seeds: %+v then %+v", first, b.Motion.Acceleration)
	}
}

func TestTick_MirroredAccelerations(t *testing.T) {
	c := NewContext(physics.DefaultParams())
	c.AddPlanet(0, 0, 0, 0, 0, 0, "sun", 4, 20, 1000)
	left := c.AddPlanet(-100, 0, 0, 0, 0, 0, "left", 4, 5, 10)
	right := c.AddPlanet(100, 0, 0, 0, 0, 0, "right", 4, 5, 10)

	c.TickAccelerationChanges()

	l, _ := c.Body(left)
	r, _ := c.Body(right)
	if l.Motion.Acceleration.DDX != -r.Motion.Acceleration.DDX || l.Motion.Acceleration.DDY != -r.Motion.Acceleration.DDY {
		t.Errorf("expected mirrored accelerations, got %+v and %+v", l.Motion.Acceleration, r.Motion.Acceleration)
	}
	if l.Motion.Acceleration.DDX <= 0 {
		t.Errorf("left body should be pulled right, got %+v", l.Motion.Acceleration)
	}
}

func TestTick_ContactStagingIsOrderIndependent(t *testing.T) {
	type setup struct {
		label     string
		x, y      float64
		dx, dy    float64
		radius, m float64
	}
	bodies := []setup{
		{"a", 0, 0, 0.5, 0, 15, 300},
		{"b", 24, 2, -0.5, 0.1, 12, 200},
		{"c", 10, 22, 0, -0.7, 10, 100},
	}

	run := func(order []int) Snapshot {
		c := NewContext(physics.DefaultParams())
		for _, i := range order {
			s := bodies[i]
			c.AddPlanet(s.x, s.y, 0, s.dx, s.dy, 0, s.label, 4, s.radius, s.m)
		}
		c.Tick()
		return c.Snapshot()
	}

	forward := run([]int{0, 1, 2})
	reverse := run([]int{2, 1, 0})

	for _, want := range forward.Bodies {
		got, ok := reverse.Find(want.Label)
		if !ok {
			t.Fatalf("missing %s", want.Label)
		}
		if math.Abs(got.Velocity.DX-want.Velocity.DX) > 1e-12 || math.Abs(got.Velocity.DY-want.Velocity.DY) > 1e-12 {
			t.Errorf("%s: velocity depends on insertion order: %+v vs %+v", want.Label, want.Velocity, got.Velocity)
		}
	}
}

func TestTick_FrictionNeverFlipsRelativeTangentialVelocity(t *testing.T) {
	tests := []struct {
		name   string
		ma, mb float64
	}{
		{"equal masses", 1, 1},
		{"light server", 1, 5},
		{"heavy server", 1000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := physics.DefaultParams()
			params.G = 0
			c := NewContext(params)
			a := c.AddPlanet(0, 0, 0, 0.5, 0.1, 0, "a", 4, 10, tt.ma)
			b := c.AddPlanet(19, 0, 0, -0.5, -0.1, 0, "b", 4, 10, tt.mb)

			c.Tick()

			va, _ := c.Body(a)
			vb, _ := c.Body(b)
			rel := vb.Motion.Velocity.DY - va.Motion.Velocity.DY
			if rel > 1e-9 {
				t.Errorf("relative tangential velocity flipped from -0.2 to %v", rel)
			}
			if rel < -0.2-1e-9 {
				t.Errorf("friction increased the slide: %v", rel)
			}
		})
	}
}

func TestTick_ContactEventsLiveOneTick(t *testing.T) {
	c := NewContext(physics.DefaultParams())
	c.AddPlanet(0, 0, 0, 0, 0, 0, "terra", 4, 20, 1000)
	id := c.AddPlayer(25, 0, 0, -1, 0.5, 0, "alice", 4)

	c.TickPositionChanges()
	c.TickAccelerationChanges()
	c.TickContactChanges()

	b, _ := c.Body(id)
	if b.Motion.PendingContacts() == 0 {
		t.Fatal("expected a recorded contact event")
	}

	c.TickFrictionChanges()
	if b.Motion.PendingContacts() != 0 {
		t.Errorf("friction left %d events behind", b.Motion.PendingContacts())
	}
	c.TickVelocityChanges()
}

func TestTick_PhaseOrder(t *testing.T) {
	c := NewContext(physics.DefaultParams())
	steps := []struct {
		run  func()
		want Phase
	}{
		{c.TickPositionChanges, PhasePosition},
		{c.TickAccelerationChanges, PhaseAcceleration},
		{c.TickContactChanges, PhaseContact},
		{c.TickFrictionChanges, PhaseFriction},
		{c.TickVelocityChanges, PhaseVelocity},
	}

	for _, s := range steps {
		s.run()
		if got := c.LastPhase(); got != s.want {
			t.Errorf("expected phase %s, got %s", s.want, got)
		}
	}
}

func TestTick_EmptyContext(t *testing.T) {
	c := NewContext(physics.DefaultParams())
	c.Tick()
	if c.Ticks() != 1 || c.Len() != 0 {
		t.Errorf("unexpected state after empty tick: ticks=%d len=%d", c.Ticks(), c.Len())
	}
}

func TestTrailBoundedThroughTicks(t *testing.T) {
	c := NewContext(physics.DefaultParams())
	id := c.AddPlayer(0, 0, 0, 7, 0, 0, "alice", 6)

	for i := 0; i < 40; i++ {
		c.Tick()
	}

	b, _ := c.Body(id)
	if b.Motion.Trail.Len() != 6 {
		t.Fatalf("expected full trail of 6, got %d", b.Motion.Trail.Len())
	}
	points := b.Motion.Trail.Points()
	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			t.Errorf("trail not oldest-first at %d: %v", i, points)
		}
	}
}

func TestSnapshot_IsIsolated(t *testing.T) {
	c := NewContext(physics.DefaultParams())
	c.AddPlayer(0, 0, 0, 10, 0, 0, "alice", 8)

	snap := c.Snapshot()
	c.Tick()

	if snap.Bodies[0].Position.X != 0 || len(snap.Bodies[0].Trail) != 1 {
		t.Errorf("snapshot changed after tick: %+v", snap.Bodies[0])
	}
	if !snap.Bodies[0].Vehicle || snap.Bodies[0].Pilot.Name != "alice" {
		t.Errorf("snapshot lost pilot data: %+v", snap.Bodies[0])
	}
}

func TestPredict_LeavesContextUntouched(t *testing.T) {
	c := NewContext(physics.DefaultParams())
	c.AddPlanet(0, 0, 0, 0, 0, 0, "terra", 4, 20, 1000)
	id := c.AddPlayer(80, 0, 0, 0, 1, 0, "alice", 4)

	before := c.Snapshot()
	path, err := c.Predict(id, 30)
	if err != nil {
		t.Fatalf("predict failed: %v", err)
	}
	if len(path) != 31 {
		t.Errorf("expected 31 points, got %d", len(path))
	}
	if PathLength(path) <= 0 {
		t.Error("expected a moving path")
	}
	if !reflect.DeepEqual(before, c.Snapshot()) {
		t.Error("prediction mutated the source context")
	}
}

func TestPredict_UnknownBody(t *testing.T) {
	c := NewContext(physics.DefaultParams())
	if _, err := c.Predict(body.ID(3), 10); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("expected ErrUnknownBody, got %v", err)
	}
}

type countingObserver struct{ ticks []int }

func (o *countingObserver) OnTick(s Snapshot) { o.ticks = append(o.ticks, s.Tick) }

func TestSimulatorRun(t *testing.T) {
	c := NewContext(physics.DefaultParams())
	c.AddPlanet(0, 0, 0, 0, 0, 0, "terra", 4, 20, 1000)

	obs := &countingObserver{}
	s := New(c)
	s.AddObserver(obs)

	result, err := s.Run(context.Background(), 12)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Ticks != 12 || result.Final.Tick != 12 {
		t.Errorf("expected 12 ticks, got %d (final %d)", result.Ticks, result.Final.Tick)
	}
	if len(obs.ticks) != 12 || obs.ticks[0] != 1 || obs.ticks[11] != 12 {
		t.Errorf("observer saw ticks %v", obs.ticks)
	}
}

func TestSimulatorRun_InvalidTicks(t *testing.T) {
	s := New(NewContext(physics.DefaultParams()))
	for _, n := range []int{0, -3} {
		if _, err := s.Run(context.Background(), n); !errors.Is(err, ErrInvalidTicks) {
			t.Errorf("ticks=%d: expected ErrInvalidTicks, got %v", n, err)
		}
	}
}

func TestSimulatorRun_CancelledBetweenTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewContext(physics.DefaultParams())
	result, err := New(c).Run(ctx, 100)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result.Ticks != 0 || c.LastPhase() != PhaseVelocity {
		t.Errorf("cancelled run left partial state: ticks=%d phase=%s", result.Ticks, c.LastPhase())
	}
}

func TestEnsembleRun(t *testing.T) {
	build := func(run int) (*Context, error) {
		c := NewContext(physics.DefaultParams())
		c.AddPlanet(0, 0, 0, 0, 0, 0, "terra", 4, 20, 1000)
		c.AddPlayer(80, 0, 0, 0, 0.5+float64(run)*0.25, 0, "alice", 4)
		return c, nil
	}

	results, err := NewEnsemble(4, build, nil).Run(context.Background(), 20)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Ticks != 20 {
			t.Errorf("run %d: expected 20 ticks, got %d", i, r.Ticks)
		}
	}
}

func TestEnsembleRun_BuildError(t *testing.T) {
	boom := errors.New("boom")
	build := func(run int) (*Context, error) {
		if run == 1 {
			return nil, boom
		}
		return NewContext(physics.DefaultParams()), nil
	}

	if _, err := NewEnsemble(2, build, nil).Run(context.Background(), 3); !errors.Is(err, boom) {
		t.Errorf("expected build error, got %v", err)
	}
}
