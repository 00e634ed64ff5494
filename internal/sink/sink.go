// Package sink implements particle drains: point and line/plane-edge
// absorbers that remove at most one eligible particle per interval.
package sink

import (
	"time"

	"github.com/san-kum/sphcrowd/internal/obstacle"
	"github.com/san-kum/sphcrowd/internal/vec2"
)

// Sink removes particles near a point, or within range of a line (or the
// edge of an attached rectangle obstacle), at a configured rate. Only one
// particle is removed per sink per interval, regardless of how many are
// eligible -- this caps drain throughput at Rate/s by design (see the
// open question in the fluid-engine design notes).
type Sink struct {
	IsLine bool

	Position  vec2.Vec2
	Direction vec2.Vec2 // unit normal to the line, Line kind only
	Length    float64   // Line kind only

	Range float64
	Rate  float64

	AttachedObstacle *int64
	Side             obstacle.Side

	lastDrain   time.Time
	haveDrained bool
}

// NewPoint creates a point sink.
func NewPoint(pos vec2.Vec2, rate, rng float64) *Sink {
	return &Sink{Position: pos, Rate: rate, Range: rng}
}

// NewLine creates a line sink. direction is the line's outward normal;
// eligibility is measured perpendicular to it (within Range) and along it
// (within length/2).
func NewLine(pos, direction vec2.Vec2, length, rate, rng float64) *Sink {
	return &Sink{IsLine: true, Position: pos, Direction: direction, Length: length, Rate: rate, Range: rng}
}

// NewFromPlane derives a line sink centered on the given side of a
// rectangle obstacle.
func NewFromPlane(rect *obstacle.Rectangle, side obstacle.Side, rate, rng float64) *Sink {
	id := rect.ID()
	return &Sink{
		IsLine:           true,
		Position:         rect.Midpoint(side),
		Direction:        rect.OutwardNormal(side),
		Length:           rect.Length(side),
		Rate:             rate,
		Range:            rng,
		AttachedObstacle: &id,
		Side:             side,
	}
}

func (s *Sink) due(now time.Time) bool {
	if !s.haveDrained {
		return true
	}
	if s.Rate <= 0 {
		return false
	}
	interval := time.Duration(1000.0/s.Rate) * time.Millisecond
	return now.Sub(s.lastDrain) >= interval
}

func (s *Sink) eligible(p vec2.Vec2) bool {
	if s.IsLine {
		d := p.Sub(s.Position)
		perp := d.Dot(s.Direction)
		if perp < 0 {
			perp = -perp
		}
		para := d.Dot(s.Direction.Perp())
		if para < 0 {
			para = -para
		}
		return perp <= s.Range && para <= s.Length/2
	}
	return p.Sub(s.Position).Length() <= s.Range
}

// Drain finds the first particle (by index into positions) eligible for
// removal and returns it. It advances the internal interval timer only
// when a particle is actually removed -- a due-but-empty sink keeps
// retrying every tick instead of skipping its next legitimate window.
func (s *Sink) Drain(now time.Time, positions []vec2.Vec2) (idx int, ok bool) {
	if s.Rate <= 0 || !s.due(now) {
		return -1, false
	}
	for i, p := range positions {
		if s.eligible(p) {
			s.lastDrain = now
			s.haveDrained = true
			return i, true
		}
	}
	return -1, false
}
