package storage

import "github.com/san-kum/orbitsim/internal/sim"

// Recorder is a sim.Observer that keeps every Every-th snapshot.
type Recorder struct {
	Every     int
	Snapshots []sim.Snapshot
}

func NewRecorder(every int) *Recorder {
	if every < 1 {
		every = 1
	}
	return &Recorder{Every: every}
}

func (r *Recorder) OnTick(s sim.Snapshot) {
	if s.Tick%r.Every == 0 {
		r.Snapshots = append(r.Snapshots, s)
	}
}
