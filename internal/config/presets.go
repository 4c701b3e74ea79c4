package config

import "sort"

func restitution(e float64) *float64 { return &e }

func player(label string, x, y, dx, dy float64) PlayerConfig {
	return PlayerConfig{BodyConfig{Label: label, X: x, Y: y, DX: dx, DY: dy, Trail: DefaultTrail}}
}

func planet(label string, x, y, dx, dy, radius, mass float64) PlanetConfig {
	return PlanetConfig{
		BodyConfig: BodyConfig{Label: label, X: x, Y: y, DX: dx, DY: dy, Trail: DefaultTrail},
		Radius:     radius,
		Mass:       mass,
	}
}

var Presets = map[string]*Config{
	"binary": {
		Name: "binary", Ticks: 900, Physics: DefaultPhysics(),
		Planets: []PlanetConfig{
			planet("A", 250, 50, 0, 0, 20, 1000),
			planet("B", 250, 450, 0, 0, 20, 1000),
		},
	},
	"orbit": {
		Name: "orbit", Ticks: 1200, Physics: DefaultPhysics(),
		Players: []PlayerConfig{
			player("alice", 150, 0, 0, 1.155),
		},
		Planets: []PlanetConfig{
			planet("terra", 0, 0, 0, 0, 40, 2000),
			planet("luna", -300, 0, 0, -0.816, 12, 50),
		},
	},
	"duel": {
		Name: "duel", Ticks: 1500, Physics: DefaultPhysics(),
		Players: []PlayerConfig{
			player("alice", -300, 50, -0.2, 0.9),
			player("bob", 250, 0, 0.2, -0.8),
		},
		Planets: []PlanetConfig{
			func() PlanetConfig {
				p := planet("terra", 0, 0, 0, 0, 45, 1800)
				p.DH = 0.01
				p.Restitution = restitution(0.3)
				return p
			}(),
			func() PlanetConfig {
				p := planet("luna", -200, 0, 0, 0.949, 12.5, 100)
				p.DH = -0.04
				p.Restitution = restitution(0.5)
				return p
			}(),
		},
	},
	"impact": {
		Name: "impact", Ticks: 200, Physics: DefaultPhysics(),
		Players: []PlayerConfig{
			player("alice", 40, 0, -2, 0),
		},
		Planets: []PlanetConfig{
			planet("terra", 0, 0, 0, 0, 20, 1000),
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
