package engine

import (
	"github.com/san-kum/sphcrowd/internal/obstacle"
	"github.com/san-kum/sphcrowd/internal/particle"
	"github.com/san-kum/sphcrowd/internal/vec2"
)

// normalEps is the finite-difference step used to estimate an obstacle's
// surface normal during collision resolution.
const normalEps = 1e-4

// collisionMargin is the small clearance left between a resolved particle
// and the obstacle surface it was pushed out of, so the next tick's
// DistanceTo reading is strictly positive instead of sitting on the
// boundary.
const collisionMargin = 0.01

// resolveObstacles pushes a particle back out of any obstacle it has
// penetrated, to surface plus collisionMargin, and kills its velocity's
// normal component while damping the tangential component by Friction --
// an inelastic stop-and-slide, not a bounce. Runs once per obstacle per
// particle per tick, after integration has moved the particle -- cheap
// enough at the expected obstacle counts that no broad-phase culling is
// needed.
func (e *Engine) resolveObstacles(p *particle.Particle) {
	for _, o := range e.obstacles {
		d := o.DistanceTo(p.Position)
		if d >= 0 {
			continue
		}
		n := obstacle.Normal(o, p.Position, normalEps)
		if n.LengthSq() < 0.5 {
			// The finite-difference gradient vanishes at a point of
			// symmetry (e.g. a circle's exact center); any direction
			// leads out, so pick +Y.
			n = vec2.Vec2{X: 0, Y: 1}
		}
		push := -d + collisionMargin
		p.Position.X += push * n.X
		p.Position.Y += push * n.Y

		vn := p.Velocity.Dot(n)
		if vn < 0 {
			normal := n.Scale(vn)
			tangent := p.Velocity.Sub(normal)
			p.Velocity = tangent.Scale(e.Friction)
		}
	}
}
