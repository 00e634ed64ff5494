package engine

import (
	"github.com/san-kum/sphcrowd/internal/obstacle"
	"github.com/san-kum/sphcrowd/internal/sink"
	"github.com/san-kum/sphcrowd/internal/source"
	"github.com/san-kum/sphcrowd/internal/vec2"
)

// AddParticleSource registers a line source with the given geometry and
// returns its index.
func (e *Engine) AddParticleSource(pos, direction vec2.Vec2, length, rate, velocity float64) int {
	e.sources = append(e.sources, source.NewLine(pos, direction, length, rate, velocity))
	return len(e.sources) - 1
}

// AddParticlePointSource registers a point source and returns its index.
func (e *Engine) AddParticlePointSource(pos vec2.Vec2, spawnRadius, rate, velocity float64) int {
	e.sources = append(e.sources, source.NewPoint(pos, spawnRadius, rate, velocity))
	return len(e.sources) - 1
}

// AddParticleSourceFromPlane derives a source from the given side of a
// rectangle obstacle. Reports false if obstacleID doesn't name a known
// rectangle.
func (e *Engine) AddParticleSourceFromPlane(obstacleID int64, side obstacle.Side, rate, velocity float64) (int, bool) {
	rect := e.findRectangle(obstacleID)
	if rect == nil {
		return 0, false
	}
	e.sources = append(e.sources, source.NewFromPlane(rect, side, rate, velocity))
	return len(e.sources) - 1, true
}

// GetParticleSources returns the live source list; callers must not
// mutate it.
func (e *Engine) GetParticleSources() []*source.Source { return e.sources }

// RemoveParticleSource removes the source at index i.
func (e *Engine) RemoveParticleSource(i int) bool {
	if i < 0 || i >= len(e.sources) {
		return false
	}
	e.sources = append(e.sources[:i], e.sources[i+1:]...)
	return true
}

// AddParticleSink registers a line sink and returns its index.
func (e *Engine) AddParticleSink(pos, direction vec2.Vec2, length, rate, rng float64) int {
	e.sinks = append(e.sinks, sink.NewLine(pos, direction, length, rate, rng))
	return len(e.sinks) - 1
}

// AddParticlePointSink registers a point sink and returns its index.
func (e *Engine) AddParticlePointSink(pos vec2.Vec2, rate, rng float64) int {
	e.sinks = append(e.sinks, sink.NewPoint(pos, rate, rng))
	return len(e.sinks) - 1
}

// AddParticleSinkFromPlane derives a sink from the given side of a
// rectangle obstacle. Reports false if obstacleID doesn't name a known
// rectangle.
func (e *Engine) AddParticleSinkFromPlane(obstacleID int64, side obstacle.Side, rate, rng float64) (int, bool) {
	rect := e.findRectangle(obstacleID)
	if rect == nil {
		return 0, false
	}
	e.sinks = append(e.sinks, sink.NewFromPlane(rect, side, rate, rng))
	return len(e.sinks) - 1, true
}

// GetParticleSinks returns the live sink list; callers must not mutate
// it.
func (e *Engine) GetParticleSinks() []*sink.Sink { return e.sinks }

// RemoveParticleSink removes the sink at index i.
func (e *Engine) RemoveParticleSink(i int) bool {
	if i < 0 || i >= len(e.sinks) {
		return false
	}
	e.sinks = append(e.sinks[:i], e.sinks[i+1:]...)
	return true
}
