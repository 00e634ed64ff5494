package engine

import (
	"testing"
	"time"

	"github.com/san-kum/sphcrowd/internal/obstacle"
	"github.com/san-kum/sphcrowd/internal/particle"
	"github.com/san-kum/sphcrowd/internal/vec2"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(1, NewManualClock(time.Unix(0, 0)))
	e.Init(600, 600, 0, 600, 0, 600)
	return e
}

func TestInitBuildsGrid(t *testing.T) {
	e := newTestEngine(t)
	if !e.Initialized() {
		t.Fatal("expected engine to be initialized")
	}
	if e.grid == nil {
		t.Fatal("expected grid to be built")
	}
}

func TestSetNumParticlesWithinBounds(t *testing.T) {
	e := newTestEngine(t)
	e.SetNumParticles(200)
	if e.GetParticleCount() != 200 {
		t.Fatalf("want 200 particles, got %d", e.GetParticleCount())
	}
	for i := 0; i < 200; i++ {
		p := e.particles[i].Position
		if p.X < e.XMin || p.X > e.XMax || p.Y < e.YMin || p.Y > e.YMax {
			t.Fatalf("particle %d out of bounds: %+v", i, p)
		}
	}
}

func TestSetNumParticlesCapsAtMax(t *testing.T) {
	e := newTestEngine(t)
	e.SetNumParticles(SimMaxParticles + 500)
	if e.GetParticleCount() != SimMaxParticles {
		t.Fatalf("want cap %d, got %d", SimMaxParticles, e.GetParticleCount())
	}
}

// TestCircleEjection matches the spec's "particle resting inside a
// circle obstacle is pushed back out" scenario: a single particle placed
// at the obstacle's center should, after one tick, sit outside the
// circle's radius (within a small numerical tolerance).
func TestCircleEjection(t *testing.T) {
	e := newTestEngine(t)
	center := vec2.Vec2{X: 10, Y: 10}
	e.AddCircleObstacle(center, 2.0, "red")
	e.particles = []particle.Particle{particle.New(center, e.Fluid.Mass)}
	e.bindAll()

	e.DoPhysics()

	if len(e.particles) != 1 {
		t.Fatalf("expected 1 particle, got %d", len(e.particles))
	}
	d := e.particles[0].Position.Sub(center).Length()
	if d < 2.0-0.01 {
		t.Fatalf("expected particle ejected past radius 2.0, got distance %f", d)
	}
}

// TestForcedVelocityAppliesOnce exercises the pointer-drag override: a
// particle bound to the targeted cell takes the forced velocity on the
// very next tick, and the override does not persist into the tick
// after.
func TestForcedVelocityAppliesOnce(t *testing.T) {
	e := newTestEngine(t)
	e.SetNumParticles(1)
	e.particles[0].Position = vec2.Vec2{X: 10, Y: 10}
	e.particles[0].Velocity = vec2.Vec2{}

	screenX := e.particles[0].Position.X * e.Scale
	screenY := (e.YMax - e.particles[0].Position.Y) * e.Scale
	if err := e.ForceVelocity(screenX, screenY, 5, -3); err != nil {
		t.Fatal(err)
	}

	if !e.forced.armed {
		t.Fatal("expected forced velocity to be armed")
	}

	e.DoPhysics()

	if e.forced.armed {
		t.Fatal("expected forced velocity to disarm after one tick")
	}
}

func TestVelocityNeverExceedsVMax(t *testing.T) {
	e := newTestEngine(t)
	e.SetNumParticles(50)
	for i := 0; i < 20; i++ {
		e.DoPhysics()
	}
	for i, p := range e.particles {
		if p.Velocity.Length() > 10.0+1e-9 {
			t.Fatalf("particle %d velocity %f exceeds VMax", i, p.Velocity.Length())
		}
	}
}

func TestParticlesStayWithinBoundsAfterManyTicks(t *testing.T) {
	e := newTestEngine(t)
	e.SetNumParticles(100)
	for i := 0; i < 50; i++ {
		e.DoPhysics()
	}
	for i, p := range e.particles {
		if p.Position.X < e.XMin-1e-6 || p.Position.X > e.XMax+1e-6 {
			t.Fatalf("particle %d x out of bounds: %+v", i, p.Position)
		}
		if p.Position.Y < e.YMin-1e-6 || p.Position.Y > e.YMax+1e-6 {
			t.Fatalf("particle %d y out of bounds: %+v", i, p.Position)
		}
	}
}

func TestDensityAndPressureStayNonNegative(t *testing.T) {
	e := newTestEngine(t)
	e.SetNumParticles(80)
	for i := 0; i < 10; i++ {
		e.DoPhysics()
	}
	for i, p := range e.particles {
		if p.Density < 0 {
			t.Fatalf("particle %d density negative: %f", i, p.Density)
		}
		if p.Pressure < 0 {
			t.Fatalf("particle %d pressure negative: %f", i, p.Pressure)
		}
	}
}

func TestMultipleEnginesDoNotCrossTalk(t *testing.T) {
	e1 := newTestEngine(t)
	e2 := newTestEngine(t)
	e1.SetNumParticles(10)
	e2.SetNumParticles(30)

	e1.DoPhysics()

	if e2.GetParticleCount() != 30 {
		t.Fatalf("engine 2 mutated by engine 1's tick: count=%d", e2.GetParticleCount())
	}
}

func TestObstacleRemovalDropsAttachedSource(t *testing.T) {
	e := newTestEngine(t)
	id := e.AddRectangleObstacle(vec2.Vec2{X: 0, Y: 0}, vec2.Vec2{X: 10, Y: 20}, "blue")
	idx, ok := e.AddParticleSourceFromPlane(id, obstacle.Left, 5, 1)
	if !ok {
		t.Fatal("expected plane source to attach")
	}
	if len(e.GetParticleSources()) != 1 {
		t.Fatalf("expected 1 source, got %d", len(e.GetParticleSources()))
	}
	_ = idx

	if !e.RemoveStaticObject(id) {
		t.Fatal("expected obstacle to be removed")
	}
	if len(e.GetParticleSources()) != 0 {
		t.Fatalf("expected attached source to be dropped, got %d remaining", len(e.GetParticleSources()))
	}
}
