package sim

// Observer is notified with a snapshot after every completed tick.
type Observer interface {
	OnTick(s Snapshot)
}

// Metric accumulates a scalar over the ticks of a run.
type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}

type Result struct {
	Ticks   int
	Final   Snapshot
	Metrics map[string]float64
}
