package engine

import (
	"fmt"

	"github.com/san-kum/sphcrowd/internal/config"
	"github.com/san-kum/sphcrowd/internal/vec2"
)

// FromScenario builds and initializes an Engine from a loaded scenario:
// domain bounds, fluid parameters, obstacles, sources and sinks, then
// seeds the particle population.
func FromScenario(sc *config.Scenario, clock Clock) (*Engine, error) {
	e := New(sc.Seed, clock)
	e.Init(sc.Width, sc.Height, 0, sc.Width, 0, sc.Height)
	e.SetFluidProperties(FluidParams{
		Mass:        sc.Fluid.ParticleMass,
		GasConstant: sc.Fluid.GasConstant,
		RestDensity: sc.Fluid.RestDensity,
		Viscosity:   sc.Fluid.Viscosity,
	})

	for _, o := range sc.Obstacles {
		switch o.Kind {
		case "circle":
			e.AddCircleObstacle(vec2.Vec2{X: o.X / e.Scale, Y: o.Y / e.Scale}, o.Radius/e.Scale, o.Color)
		case "rect":
			e.AddRectangleObstacle(
				vec2.Vec2{X: o.X / e.Scale, Y: o.Y / e.Scale},
				vec2.Vec2{X: o.Width / e.Scale, Y: o.Height / e.Scale},
				o.Color,
			)
		default:
			return nil, fmt.Errorf("engine: unknown obstacle kind %q", o.Kind)
		}
	}

	for _, em := range sc.Sources {
		if err := addEmitterSource(e, em); err != nil {
			return nil, err
		}
	}
	for _, em := range sc.Sinks {
		if err := addEmitterSink(e, em); err != nil {
			return nil, err
		}
	}

	e.SetNumParticles(sc.NumParticles)
	return e, nil
}

func addEmitterSource(e *Engine, em config.Emitter) error {
	pos := vec2.Vec2{X: em.X / e.Scale, Y: em.Y / e.Scale}
	switch em.Kind {
	case "point":
		e.AddParticlePointSource(pos, em.Radius/e.Scale, em.Rate, em.Velocity)
	case "line":
		dir := vec2.Vec2{X: em.DirX, Y: em.DirY}
		e.AddParticleSource(pos, dir, em.Length/e.Scale, em.Rate, em.Velocity)
	default:
		return fmt.Errorf("engine: unknown source kind %q", em.Kind)
	}
	return nil
}

func addEmitterSink(e *Engine, em config.Emitter) error {
	pos := vec2.Vec2{X: em.X / e.Scale, Y: em.Y / e.Scale}
	switch em.Kind {
	case "point":
		e.AddParticlePointSink(pos, em.Rate, em.Radius/e.Scale)
	case "line":
		dir := vec2.Vec2{X: em.DirX, Y: em.DirY}
		e.AddParticleSink(pos, dir, em.Length/e.Scale, em.Rate, em.Radius/e.Scale)
	default:
		return fmt.Errorf("engine: unknown sink kind %q", em.Kind)
	}
	return nil
}
