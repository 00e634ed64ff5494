package engine

import (
	"github.com/san-kum/sphcrowd/internal/kernel"
	"github.com/san-kum/sphcrowd/internal/particle"
)

// boundaryForcePass pushes particles away from the domain walls with the
// same spiky-gradient kernel used for pressure, directed along the
// inward wall normal, so crowding against an edge behaves like crowding
// against any other obstacle instead of needing a separate clamp-only
// rule during the force-accumulation stage.
func (e *Engine) boundaryForcePass() {
	for i := range e.particles {
		p := &e.particles[i]
		e.pushFromWall(p, p.Position.X-e.XMin, 1, 0)
		e.pushFromWall(p, e.XMax-p.Position.X, -1, 0)
		e.pushFromWall(p, p.Position.Y-e.YMin, 0, 1)
		e.pushFromWall(p, e.YMax-p.Position.Y, 0, -1)
	}
}

func (e *Engine) pushFromWall(p *particle.Particle, d, nx, ny float64) {
	if d <= 0 || d >= H {
		return
	}
	grad := kernel.SpikyGrad(d, H)
	mag := e.Fluid.Mass * p.Pressure / p.Density * grad * d
	if mag < 0 {
		mag = -mag
	}
	p.Force.X += mag * nx
	p.Force.Y += mag * ny
}

// resolveBoundary clamps a particle back inside the domain and plainly
// reflects the velocity component that drove it out -- no friction
// factor; Friction is an obstacle-collision-only response (collision.go),
// and the domain walls use the repulsive-kernel boundary design instead
// of a damped bounce.
func (e *Engine) resolveBoundary(p *particle.Particle) {
	if p.Position.X < e.XMin {
		p.Position.X = e.XMin
		p.Velocity.X = -p.Velocity.X
	} else if p.Position.X > e.XMax {
		p.Position.X = e.XMax
		p.Velocity.X = -p.Velocity.X
	}
	if p.Position.Y < e.YMin {
		p.Position.Y = e.YMin
		p.Velocity.Y = -p.Velocity.Y
	} else if p.Position.Y > e.YMax {
		p.Position.Y = e.YMax
		p.Velocity.Y = -p.Velocity.Y
	}
}
