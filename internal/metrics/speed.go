package metrics

import "github.com/san-kum/orbitsim/internal/sim"

// VehicleSpeed is the mean speed of all vehicles over a run.
type VehicleSpeed struct {
	name    string
	sum     float64
	samples int
}

func NewVehicleSpeed() *VehicleSpeed {
	return &VehicleSpeed{
		name: "vehicle_speed",
	}
}

func (v *VehicleSpeed) Name() string {
	return v.name
}

func (v *VehicleSpeed) Observe(snap sim.Snapshot) {
	for _, b := range snap.Bodies {
		if b.Vehicle {
			v.sum += b.Velocity.Magnitude()
			v.samples++
		}
	}
}

func (v *VehicleSpeed) Value() float64 {
	if v.samples == 0 {
		return 0
	}
	return v.sum / float64(v.samples)
}

func (v *VehicleSpeed) Reset() {
	v.sum = 0
	v.samples = 0
}
