package engine

import (
	"math"

	"github.com/san-kum/sphcrowd/internal/kernel"
	"github.com/san-kum/sphcrowd/internal/vec2"
)

// densityPressurePass accumulates pairwise Poly6-weighted density for
// every bound pair, then derives each particle's pressure from the
// weakly-compressible state equation P = max(0, K*(rho - rho0)).
func (e *Engine) densityPressurePass() {
	h2 := H * H
	e.grid.Pairwise(func(p, q int) {
		r2 := vec2.DistSq(e.particles[p].Position, e.particles[q].Position)
		if r2 >= h2 {
			return
		}
		w := e.Fluid.Mass * kernel.Poly6(r2, h2)
		e.particles[p].Density += w
		e.particles[q].Density += w
	})

	for i := range e.particles {
		pr := e.Fluid.GasConstant * (e.particles[i].Density - e.Fluid.RestDensity)
		e.particles[i].Pressure = math.Max(0, pr)
	}
}

// forcePass accumulates the pairwise pressure-gradient and viscosity
// forces for every bound pair. Density is asymmetric by design: both
// terms divide by q's density only, not an averaged pair quantity. The
// pressure term is M*(P_p+P_q)/(2*rho_q)*SpikyGrad(r) along (p - q),
// while viscosity pulls relative velocities together; the pair force is
// added to p and subtracted from q.
func (e *Engine) forcePass() {
	e.grid.Pairwise(func(p, q int) {
		pp, qp := &e.particles[p], &e.particles[q]
		delta := pp.Position.Sub(qp.Position)
		r := delta.Length()
		if r >= H || r <= kernel.Eps {
			return
		}

		pressGrad := kernel.SpikyGrad(r, H)
		fPress := e.Fluid.Mass * (pp.Pressure + qp.Pressure) / (2 * qp.Density) * pressGrad
		forcePQ := delta.Scale(fPress)

		visc := kernel.ViscLapl(r, H)
		relVel := qp.Velocity.Sub(pp.Velocity)
		fVisc := e.Fluid.Viscosity * e.Fluid.Mass / qp.Density * visc
		forcePQ = forcePQ.Add(relVel.Scale(fVisc))

		pp.Force = pp.Force.Add(forcePQ)
		qp.Force = qp.Force.Sub(forcePQ)
	})
}
