package engine

import "github.com/san-kum/sphcrowd/internal/vec2"

// ForceVelocity arms a one-shot velocity override for whichever grid
// cell contains the given screen-space point: on the next DoPhysics
// tick, every particle currently bound to that cell has its velocity
// set to (dVx, -dVy) once, then the override disarms itself -- Y is
// flipped since dVy is given in screen space but velocity is stored in
// sim space. Used by the pointer-drag interaction. Returns
// ErrNotInitialized if Init hasn't built a grid yet; a point outside the
// domain is not an error, it simply arms nothing.
func (e *Engine) ForceVelocity(screenX, screenY, dVx, dVy float64) error {
	if e.grid == nil {
		return ErrNotInitialized
	}
	simX := screenX / e.Scale
	simY := e.YMax - screenY/e.Scale
	cell := e.grid.CellAt(simX-e.XMin, simY-e.YMin)
	if cell == nil {
		return nil
	}
	e.forced = forcedVelocity{cell: cell, vx: dVx, vy: -dVy, armed: true}
	return nil
}

// applyForcedVelocity consumes the armed override, if any, and disarms
// it regardless of whether the target cell still holds any particles.
// Force is zeroed along with velocity so the override replaces rather
// than competes with that tick's pressure/viscosity acceleration: left
// populated, the next integrate() would apply the stale force on top of
// the forced velocity and the particle would end the tick somewhere
// other than the forced value.
func (e *Engine) applyForcedVelocity() {
	if !e.forced.armed {
		return
	}
	for _, idx := range e.forced.cell.Particles {
		e.particles[idx].Velocity.X = e.forced.vx
		e.particles[idx].Velocity.Y = e.forced.vy
		e.particles[idx].Force = vec2.Vec2{}
	}
	e.forced = forcedVelocity{}
}
