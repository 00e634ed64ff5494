// Package source implements particle emitters: point and line/plane-edge
// spawners that inject new fluid particles at a configured rate.
package source

import (
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/sphcrowd/internal/obstacle"
	"github.com/san-kum/sphcrowd/internal/vec2"
)

// Kind distinguishes the two emission shapes a Source can have.
type Kind int

const (
	Point Kind = iota
	Line
)

// Source emits particles along a point or a line (optionally the edge of
// an attached rectangle obstacle) at a configured rate.
type Source struct {
	Kind Kind

	Position    vec2.Vec2
	Direction   vec2.Vec2 // unit vector, Line kind only
	Length      float64   // Line kind only
	SpawnRadius float64   // Point kind only

	Rate              float64 // particles/second
	VelocityMagnitude float64

	// AttachedObstacle is non-owning: when set, this source was derived
	// from a plane obstacle's side and must be dropped if that obstacle
	// is removed.
	AttachedObstacle *int64
	Side             obstacle.Side

	lastEmit    time.Time
	haveEmitted bool
}

// NewPoint creates a point emitter.
func NewPoint(pos vec2.Vec2, spawnRadius, rate, velocityMagnitude float64) *Source {
	return &Source{Kind: Point, Position: pos, SpawnRadius: spawnRadius, Rate: rate, VelocityMagnitude: velocityMagnitude}
}

// NewLine creates a line emitter. direction must be a unit vector.
func NewLine(pos, direction vec2.Vec2, length, rate, velocityMagnitude float64) *Source {
	return &Source{Kind: Line, Position: pos, Direction: direction, Length: length, Rate: rate, VelocityMagnitude: velocityMagnitude}
}

// NewFromPlane derives a line source centered on the given side of a
// rectangle obstacle, pointing outward.
func NewFromPlane(rect *obstacle.Rectangle, side obstacle.Side, rate, velocityMagnitude float64) *Source {
	id := rect.ID()
	return &Source{
		Kind:              Line,
		Position:          rect.Midpoint(side),
		Direction:         rect.OutwardNormal(side),
		Length:            rect.Length(side),
		Rate:              rate,
		VelocityMagnitude: velocityMagnitude,
		AttachedObstacle:  &id,
		Side:              side,
	}
}

// due reports whether enough time has elapsed since the last emission
// attempt for this source's rate, and is true unconditionally on the
// very first call.
func (s *Source) due(now time.Time) bool {
	if !s.haveEmitted {
		return true
	}
	if s.Rate <= 0 {
		return false
	}
	interval := time.Duration(1000.0/s.Rate) * time.Millisecond
	return now.Sub(s.lastEmit) >= interval
}

// Emit attempts to emit one particle at time now. It returns the sampled
// position and initial velocity and whether the sample landed within
// [xmin,xmax] x [ymin,ymax] -- in which case the caller should append a
// new particle. The emission timestamp advances whenever an attempt is
// made, regardless of whether the sample was in bounds, so the effective
// rate is capped at, but can fall below, the configured rate.
func (s *Source) Emit(now time.Time, rng *rand.Rand, xmin, xmax, ymin, ymax float64) (pos, vel vec2.Vec2, attempted, accepted bool) {
	if s.Rate <= 0 {
		return vec2.Vec2{}, vec2.Vec2{}, false, false
	}
	if !s.due(now) {
		return vec2.Vec2{}, vec2.Vec2{}, false, false
	}

	switch s.Kind {
	case Line:
		pos, vel = s.sampleLine(rng)
	default:
		pos, vel = s.samplePoint(rng)
	}

	s.lastEmit = now
	s.haveEmitted = true

	inBounds := pos.X >= xmin && pos.X <= xmax && pos.Y >= ymin && pos.Y <= ymax
	return pos, vel, true, inBounds
}

func (s *Source) sampleLine(rng *rand.Rand) (vec2.Vec2, vec2.Vec2) {
	u := (rng.Float64()*2 - 1) * (s.Length / 2)
	jitter := (rng.Float64()*2 - 1) * 0.05
	perp := s.Direction.Perp()
	pos := s.Position.Add(perp.Scale(u)).Add(s.Direction.Scale(jitter))

	noise := (rng.Float64()*2 - 1) * 0.15
	vel := s.Direction.Scale(s.VelocityMagnitude * (1 + noise))
	return pos, vel
}

func (s *Source) samplePoint(rng *rand.Rand) (vec2.Vec2, vec2.Vec2) {
	theta := rng.Float64() * 2 * math.Pi
	r := rng.Float64() * s.SpawnRadius
	dir := vec2.Vec2{X: math.Cos(theta), Y: math.Sin(theta)}
	pos := s.Position.Add(dir.Scale(r))
	vel := dir.Scale(0.5)
	return pos, vel
}
