package engine

import (
	"time"

	"github.com/san-kum/sphcrowd/internal/particle"
	"github.com/san-kum/sphcrowd/internal/vec2"
)

// DoPhysics advances the simulation by one fixed timestep (Dt). It is a
// no-op until Init has run. The tick is split into two grid-bound
// phases: the first binds pre-integration positions so the pairwise
// density/force/forced-velocity passes see this tick's layout, and the
// second rebinds post-integration positions so the next tick (and any
// external query in between) sees where particles actually ended up.
func (e *Engine) DoPhysics() {
	if !e.initialized || e.grid == nil {
		return
	}

	now := e.clock.Now()
	e.grid.Reset()

	e.runSources(now)
	e.runSinks(now)

	e.bindAll()

	e.densityPressurePass()
	e.forcePass()
	e.boundaryForcePass()
	e.applyForcedVelocity()

	e.grid.Reset()
	e.integrate()
	e.bindAll()
}

// runSources lets every source attempt one emission, appending an
// accepted particle to the population. The population cap is checked
// before each source is given the chance to emit, not after: the cap is
// part of the same joint gating condition as the rate check, so a source
// that's blocked by a full population must not advance its internal
// rate-limit clock either, or it would wrongly still be "due" to wait a
// full interval once headroom frees up instead of firing immediately.
func (e *Engine) runSources(now time.Time) {
	for _, s := range e.sources {
		if len(e.particles) >= SimMaxParticles {
			return
		}
		pos, vel, attempted, accepted := s.Emit(now, e.rng, e.XMin, e.XMax, e.YMin, e.YMax)
		if !attempted || !accepted {
			continue
		}
		e.particles = append(e.particles, particle.NewWithVelocity(pos, vel, e.Fluid.Mass))
	}
}

// runSinks lets every sink drain at most one eligible particle, each
// against the population as left by the previous sink's removal.
func (e *Engine) runSinks(now time.Time) {
	if len(e.sinks) == 0 {
		return
	}

	for _, s := range e.sinks {
		if len(e.particles) == 0 {
			break
		}
		positions := make([]vec2.Vec2, len(e.particles))
		for i, p := range e.particles {
			positions[i] = p.Position
		}
		idx, ok := s.Drain(now, positions)
		if !ok {
			continue
		}
		e.particles = append(e.particles[:idx], e.particles[idx+1:]...)
	}
}

func (e *Engine) bindAll() {
	for i, p := range e.particles {
		e.grid.Bind(i, p.Position.X-e.XMin, p.Position.Y-e.YMin)
	}
}

func (e *Engine) integrate() {
	for i := range e.particles {
		p := &e.particles[i]
		p.ApplyAcceleration(Dt)
		p.Advance(Dt)
		e.resolveObstacles(p)
		e.resolveBoundary(p)
		p.ResetAccumulators()
	}
}
