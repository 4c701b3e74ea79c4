package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitsim/internal/physics"
)

const (
	DefaultTicks = 600
	DefaultTrail = 80
	DefaultScene = "orbit"
)

var (
	ErrInvalidBody    = errors.New("config: invalid body")
	ErrInvalidPhysics = errors.New("config: invalid physics parameters")
	ErrInvalidTicks   = errors.New("config: ticks must be positive")
	ErrEmptyScenario  = errors.New("config: scenario has no bodies")
	ErrUnknownPreset  = errors.New("config: unknown preset")
)

// Config describes a scenario: the force-law parameters and the bodies that
// exist before the first tick.
type Config struct {
	Name    string         `yaml:"name"`
	Ticks   int            `yaml:"ticks"`
	Physics PhysicsConfig  `yaml:"physics"`
	Players []PlayerConfig `yaml:"players"`
	Planets []PlanetConfig `yaml:"planets"`
}

type PhysicsConfig struct {
	G               float64 `yaml:"gravitational_constant"`
	MaxForce        float64 `yaml:"max_force"`
	KineticFriction float64 `yaml:"kinetic_friction"`
}

type BodyConfig struct {
	Label   string  `yaml:"label"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Heading float64 `yaml:"heading"`
	DX      float64 `yaml:"dx"`
	DY      float64 `yaml:"dy"`
	DH      float64 `yaml:"dh"`
	Trail   int     `yaml:"trail"`
}

type PlayerConfig struct {
	BodyConfig `yaml:",inline"`
}

type PlanetConfig struct {
	BodyConfig  `yaml:",inline"`
	Radius      float64  `yaml:"radius"`
	Mass        float64  `yaml:"mass"`
	Restitution *float64 `yaml:"restitution,omitempty"`
}

func DefaultPhysics() PhysicsConfig {
	p := physics.DefaultParams()
	return PhysicsConfig{
		G:               p.G,
		MaxForce:        p.MaxForce,
		KineticFriction: p.KineticFriction,
	}
}

// DefaultConfig returns a copy of the default preset.
func DefaultConfig() *Config {
	return GetPreset(DefaultScene)
}

// Load reads a scenario file. Ticks and physics fall back to defaults when
// the file leaves them out; bodies do not.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Ticks:   DefaultTicks,
		Physics: DefaultPhysics(),
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() physics.Params {
	return physics.Params{
		G:               c.Physics.G,
		MaxForce:        c.Physics.MaxForce,
		KineticFriction: c.Physics.KineticFriction,
	}
}

func (c *Config) Validate() error {
	if c.Ticks <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidTicks, c.Ticks)
	}
	if c.Physics.G < 0 || c.Physics.MaxForce < 0 || c.Physics.KineticFriction < 0 {
		return fmt.Errorf("%w: values must not be negative", ErrInvalidPhysics)
	}
	if len(c.Players)+len(c.Planets) == 0 {
		return ErrEmptyScenario
	}

	for _, p := range c.Players {
		if p.Trail < 0 {
			return fmt.Errorf("%w: player %q has negative trail", ErrInvalidBody, p.Label)
		}
	}
	for _, p := range c.Planets {
		switch {
		case p.Mass <= 0:
			return fmt.Errorf("%w: planet %q mass must be positive", ErrInvalidBody, p.Label)
		case p.Radius <= 0:
			return fmt.Errorf("%w: planet %q radius must be positive", ErrInvalidBody, p.Label)
		case p.Trail < 0:
			return fmt.Errorf("%w: planet %q has negative trail", ErrInvalidBody, p.Label)
		case p.Restitution != nil && *p.Restitution < 0:
			return fmt.Errorf("%w: planet %q restitution must not be negative", ErrInvalidBody, p.Label)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Players = append([]PlayerConfig(nil), c.Players...)
	out.Planets = make([]PlanetConfig, len(c.Planets))
	for i, p := range c.Planets {
		if p.Restitution != nil {
			e := *p.Restitution
			p.Restitution = &e
		}
		out.Planets[i] = p
	}
	return &out
}
