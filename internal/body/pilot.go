package body

const (
	DefaultHitpoints = 100
	DefaultCurrency  = 800
)

// Pilot carries the gameplay attributes of a vehicle.
type Pilot struct {
	Name      string
	Hitpoints int
	Currency  int
	Kills     int
	Deaths    int
}

func NewPilot(name string) *Pilot {
	return &Pilot{
		Name:      name,
		Hitpoints: DefaultHitpoints,
		Currency:  DefaultCurrency,
	}
}
