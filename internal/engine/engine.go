// Package engine orchestrates a single Simulation: the physics kernel
// described in the fluid-engine design -- particles, obstacles, sources,
// sinks, and the spatial grid -- behind one process-wide (per Engine
// value) external API. An Engine's lifetime spans a session; methods
// take a pointer receiver so tests can run several independent engines
// in parallel without cross-talk.
package engine

import (
	"math"
	"math/rand"

	"github.com/san-kum/sphcrowd/internal/grid"
	"github.com/san-kum/sphcrowd/internal/obstacle"
	"github.com/san-kum/sphcrowd/internal/particle"
	"github.com/san-kum/sphcrowd/internal/sink"
	"github.com/san-kum/sphcrowd/internal/source"
	"github.com/san-kum/sphcrowd/internal/vec2"
)

const (
	// H is the kernel support radius and the spatial grid's cell size.
	H = 1.0
	// DefaultScale converts between screen and simulation units.
	DefaultScale = 30.0
	// Dt is the fixed per-tick timestep DoPhysics advances by.
	Dt = 0.015
	// SimMaxParticles caps the live particle population.
	SimMaxParticles = 6000
	// CellMaxParticles bounds how many particle references a single grid
	// cell may hold before additional pushes are silently dropped.
	CellMaxParticles = 50
	// ResizeMargin is the small interior margin (in screen units) Resize
	// insets the domain by.
	ResizeMargin = 5.0
	// DefaultFriction is the tangential-velocity retention factor applied
	// on obstacle collision when no override is configured.
	DefaultFriction = 0.3
)

// FluidParams are the tunable constants of the weakly-compressible state
// equation and the pair forces.
type FluidParams struct {
	Mass        float64 // M
	GasConstant float64 // K
	RestDensity float64 // rho0
	Viscosity   float64 // mu
}

// DefaultFluidParams returns a reasonable starting point for crowd-style
// flows.
func DefaultFluidParams() FluidParams {
	return FluidParams{Mass: 1.0, GasConstant: 20.0, RestDensity: 1.0, Viscosity: 0.5}
}

type forcedVelocity struct {
	cell   *grid.Cell
	vx, vy float64
	armed  bool
}

// Engine owns all mutable simulation state: the domain bounds, fluid
// parameters, particle population, static obstacles, sources, sinks, and
// the spatial grid used to bind and query them.
type Engine struct {
	XMin, XMax, YMin, YMax float64
	Scale                  float64
	Fluid                  FluidParams
	Friction               float64

	particles []particle.Particle
	obstacles []obstacle.Obstacle
	sources   []*source.Source
	sinks     []*sink.Sink

	grid *grid.Grid
	nx, ny int

	forced forcedVelocity

	rng   *rand.Rand
	clock Clock

	nextObstacleID int64
	initialized    bool
}

// New constructs an Engine with the given deterministic seed and clock.
// Call Init before the first DoPhysics.
func New(seed int64, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{
		Scale:    DefaultScale,
		Fluid:    DefaultFluidParams(),
		Friction: DefaultFriction,
		rng:      rand.New(rand.NewSource(seed)),
		clock:    clock,
	}
}

func (e *Engine) nextID() int64 {
	e.nextObstacleID++
	return e.nextObstacleID
}

// Init establishes the domain bounds and (re)builds the spatial grid. It
// is idempotent if the resulting cell count is unchanged -- the grid is
// only rebuilt when nx or ny change, so repeated calls with the same
// viewport are cheap.
func (e *Engine) Init(width, height, left, right, bottom, top float64) {
	_ = width
	_ = height
	e.setBounds(left/e.Scale, right/e.Scale, bottom/e.Scale, top/e.Scale)
	e.initialized = true
}

// Resize updates the domain bounds, insetting by a small interior margin
// (ResizeMargin screen units) so particles don't spawn flush against the
// new edge.
func (e *Engine) Resize(left, right, bottom, top float64) {
	margin := ResizeMargin / e.Scale
	e.setBounds(left/e.Scale+margin, right/e.Scale-margin, bottom/e.Scale+margin, top/e.Scale-margin)
}

func (e *Engine) setBounds(xmin, xmax, ymin, ymax float64) {
	e.XMin, e.XMax, e.YMin, e.YMax = xmin, xmax, ymin, ymax

	simW := math.Max(xmax-xmin, H)
	simH := math.Max(ymax-ymin, H)
	nx := int(simW / H)
	ny := int(simH / H)
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}

	if e.grid == nil || nx != e.nx || ny != e.ny {
		e.grid = grid.New(nx, ny, simW, simH, CellMaxParticles)
		e.nx, e.ny = nx, ny
	} else {
		e.grid.SetExtent(simW, simH)
	}
}

// Initialized reports whether Init has established a domain and grid.
func (e *Engine) Initialized() bool { return e.initialized }

// Cleanup discards particles, sources, sinks, and disarms the
// forced-velocity override; the grid structure is retained with its
// counts zeroed.
func (e *Engine) Cleanup() {
	e.particles = nil
	e.sources = nil
	e.sinks = nil
	e.forced = forcedVelocity{}
	if e.grid != nil {
		e.grid.Reset()
	}
}

// ClearParticlesOnly drops particles but keeps sources, sinks, and
// obstacles intact.
func (e *Engine) ClearParticlesOnly() {
	e.particles = nil
	if e.grid != nil {
		e.grid.Reset()
	}
}

// SetNumParticles reallocates the particle population to exactly n
// randomly placed particles within the current domain, with n capped at
// SimMaxParticles. It is a no-op when already at n.
func (e *Engine) SetNumParticles(n int) {
	if n == len(e.particles) {
		return
	}
	if n > SimMaxParticles {
		n = SimMaxParticles
	}
	particles := make([]particle.Particle, n)
	for i := range particles {
		x := e.XMin + e.rng.Float64()*(e.XMax-e.XMin)
		y := e.YMin + e.rng.Float64()*(e.YMax-e.YMin)
		particles[i] = particle.New(vec2.Vec2{X: x, Y: y}, e.Fluid.Mass)
	}
	e.particles = particles
}

// SetFluidProperties updates the fluid state-equation and viscosity
// constants used by subsequent ticks.
func (e *Engine) SetFluidProperties(p FluidParams) {
	e.Fluid = p
}

// GetParticleCount returns the live particle population.
func (e *Engine) GetParticleCount() int { return len(e.particles) }

// GetParticlePosition returns particle i's position in screen units, or
// the zero vector for an out-of-range index.
func (e *Engine) GetParticlePosition(i int) vec2.Vec2 {
	if i < 0 || i >= len(e.particles) {
		return vec2.Vec2{}
	}
	p := e.particles[i].Position
	return vec2.Vec2{X: p.X * e.Scale, Y: (e.YMax - p.Y) * e.Scale}
}

// GetParticlePressure returns particle i's pressure in simulation units,
// or 0 for an out-of-range index.
func (e *Engine) GetParticlePressure(i int) float64 {
	if i < 0 || i >= len(e.particles) {
		return 0
	}
	return e.particles[i].Pressure
}

// GetParticleVelocity returns particle i's velocity in simulation units,
// or the zero vector for an out-of-range index.
func (e *Engine) GetParticleVelocity(i int) vec2.Vec2 {
	if i < 0 || i >= len(e.particles) {
		return vec2.Vec2{}
	}
	return e.particles[i].Velocity
}

// Particles exposes the live particle slice for diagnostics (metrics, the
// live viewer); callers must not mutate it.
func (e *Engine) Particles() []particle.Particle { return e.particles }
