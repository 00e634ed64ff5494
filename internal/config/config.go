// Package config loads YAML scenario files describing a simulation's
// domain, fluid parameters, obstacles, sources, and sinks.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned by GetPreset when no preset exists under
// the requested name.
var ErrUnknownPreset = errors.New("config: unknown preset")

// ErrInvalidScenario is returned by Load when a scenario fails basic
// shape validation (non-positive domain, negative particle count).
var ErrInvalidScenario = errors.New("config: invalid scenario")

const (
	DefaultParticleMass = 1.0
	DefaultGasConstant  = 20.0
	DefaultRestDensity  = 1.0
	DefaultViscosity    = 0.5
	DefaultNumParticles = 500
	DefaultSeed         = 1
)

// FluidParams mirrors engine.FluidParams as a YAML-addressable value.
type FluidParams struct {
	ParticleMass float64 `yaml:"particle_mass"`
	GasConstant  float64 `yaml:"gas_constant"`
	RestDensity  float64 `yaml:"rest_density"`
	Viscosity    float64 `yaml:"viscosity"`
}

// Obstacle describes a static collider in scenario coordinates. Kind is
// "circle" or "rect"; fields unused by the other kind are ignored.
type Obstacle struct {
	Kind   string  `yaml:"kind"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// Emitter describes a point or line source/sink. Velocity is only
// meaningful for sources; Radius doubles as a sink's capture range for
// point kind and a source's spawn radius.
type Emitter struct {
	Kind     string  `yaml:"kind"` // "point" or "line"
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	DirX     float64 `yaml:"dir_x"`
	DirY     float64 `yaml:"dir_y"`
	Length   float64 `yaml:"length"`
	Radius   float64 `yaml:"radius"`
	Rate     float64 `yaml:"rate"`
	Velocity float64 `yaml:"velocity"`
}

// Scenario is a full initial-conditions description: domain bounds,
// fluid parameters, particle count and seed, obstacles, sources, and
// sinks.
type Scenario struct {
	Name         string      `yaml:"name"`
	Description  string      `yaml:"description"`
	Width        float64     `yaml:"width"`
	Height       float64     `yaml:"height"`
	NumParticles int         `yaml:"num_particles"`
	Seed         int64       `yaml:"seed"`
	Fluid        FluidParams `yaml:"fluid"`
	Obstacles    []Obstacle  `yaml:"obstacles"`
	Sources      []Emitter   `yaml:"sources"`
	Sinks        []Emitter   `yaml:"sinks"`
}

// DefaultScenario returns a small open domain with no obstacles and no
// emitters.
func DefaultScenario() *Scenario {
	return &Scenario{
		Name:         "default",
		Width:        600,
		Height:       600,
		NumParticles: DefaultNumParticles,
		Seed:         DefaultSeed,
		Fluid: FluidParams{
			ParticleMass: DefaultParticleMass,
			GasConstant:  DefaultGasConstant,
			RestDensity:  DefaultRestDensity,
			Viscosity:    DefaultViscosity,
		},
	}
}

// Load reads and validates a scenario file, filling unset fields from
// DefaultScenario.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := DefaultScenario()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	if err := validate(sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// Save writes a scenario back out as YAML.
func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func validate(sc *Scenario) error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("%w: domain width/height must be positive", ErrInvalidScenario)
	}
	if sc.NumParticles < 0 {
		return fmt.Errorf("%w: num_particles must be non-negative", ErrInvalidScenario)
	}
	return nil
}
