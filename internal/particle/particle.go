// Package particle defines the dynamic fluid particle: its kinematic and
// SPH state, and the small per-particle operations the engine's tick
// pipeline composes into a full integration step.
package particle

import (
	"github.com/san-kum/sphcrowd/internal/kernel"
	"github.com/san-kum/sphcrowd/internal/vec2"
)

// VMax is the hard velocity cap enforced after every integration step.
const VMax = 10.0

// Particle is a single Lagrangian fluid sample. Its identity is its slot
// in the engine's particle slice; there is no separate ID field.
type Particle struct {
	Position vec2.Vec2
	Velocity vec2.Vec2
	Force    vec2.Vec2
	Mass     float64
	Density  float64
	Pressure float64
}

// New creates a particle at rest with density initialized to the
// self-contribution of the Poly6 kernel, per the data model invariant.
func New(pos vec2.Vec2, mass float64) Particle {
	return Particle{
		Position: pos,
		Mass:     mass,
		Density:  mass * kernel.Poly6(0, 1),
	}
}

// NewWithVelocity creates a particle with an initial velocity, used by
// sources when emitting.
func NewWithVelocity(pos, vel vec2.Vec2, mass float64) Particle {
	p := New(pos, mass)
	p.Velocity = vel
	return p
}

// ResetAccumulators zeroes the force accumulator and restores density to
// its self-contribution baseline, ready for the next tick's density pass.
func (p *Particle) ResetAccumulators() {
	p.Force = vec2.Vec2{}
	p.Density = p.Mass * kernel.Poly6(0, 1)
}

// ApplyAcceleration integrates velocity by a = force/density over dt and
// clamps the result to VMax, per the integrator's step 1-2.
func (p *Particle) ApplyAcceleration(dt float64) {
	accel := p.Force.Scale(1 / p.Density)
	p.Velocity = p.Velocity.Add(accel.Scale(dt)).ClampLength(VMax)
}

// Advance moves the particle by velocity*dt, the integrator's step 3.
func (p *Particle) Advance(dt float64) {
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
}
