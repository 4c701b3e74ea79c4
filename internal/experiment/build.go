package experiment

import (
	"fmt"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/sim"
)

// Build validates cfg and populates a fresh context with its planets
// followed by its players.
func Build(cfg *config.Config) (*sim.Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := sim.NewContext(cfg.Params())
	for _, p := range cfg.Planets {
		id := c.AddPlanet(p.X, p.Y, p.Heading, p.DX, p.DY, p.DH, p.Label, p.Trail, p.Radius, p.Mass)
		if p.Restitution == nil {
			continue
		}
		if err := c.SetRestitution(id, *p.Restitution); err != nil {
			return nil, fmt.Errorf("planet %q: %w", p.Label, err)
		}
	}
	for _, p := range cfg.Players {
		c.AddPlayer(p.X, p.Y, p.Heading, p.DX, p.DY, p.DH, p.Label, p.Trail)
	}
	return c, nil
}
