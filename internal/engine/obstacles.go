package engine

import "github.com/san-kum/sphcrowd/internal/obstacle"
import "github.com/san-kum/sphcrowd/internal/vec2"

// AddCircleObstacle adds a circular static collider and returns its id.
func (e *Engine) AddCircleObstacle(center vec2.Vec2, radius float64, color string) int64 {
	id := e.nextID()
	e.obstacles = append(e.obstacles, obstacle.NewCircle(id, center, radius, color))
	return id
}

// AddRectangleObstacle adds an axis-aligned rectangular static collider
// and returns its id.
func (e *Engine) AddRectangleObstacle(min, size vec2.Vec2, color string) int64 {
	id := e.nextID()
	e.obstacles = append(e.obstacles, obstacle.NewRectangle(id, min, size, color))
	return id
}

// RemoveStaticObject removes the obstacle with the given id, cascading to
// drop any source or sink attached to it (the attachment is a lookup, not
// ownership, but its lifetime still tracks the obstacle's). Reports
// whether an obstacle was found and removed.
func (e *Engine) RemoveStaticObject(id int64) bool {
	idx := -1
	for i, o := range e.obstacles {
		if o.ID() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	e.obstacles = append(e.obstacles[:idx], e.obstacles[idx+1:]...)
	e.dropAttachedTo(id)
	return true
}

// ClearStaticObjects removes every obstacle and any source/sink attached
// to one.
func (e *Engine) ClearStaticObjects() {
	ids := make([]int64, len(e.obstacles))
	for i, o := range e.obstacles {
		ids[i] = o.ID()
	}
	e.obstacles = nil
	for _, id := range ids {
		e.dropAttachedTo(id)
	}
}

func (e *Engine) dropAttachedTo(id int64) {
	keptSources := e.sources[:0]
	for _, s := range e.sources {
		if s.AttachedObstacle != nil && *s.AttachedObstacle == id {
			continue
		}
		keptSources = append(keptSources, s)
	}
	e.sources = keptSources

	keptSinks := e.sinks[:0]
	for _, s := range e.sinks {
		if s.AttachedObstacle != nil && *s.AttachedObstacle == id {
			continue
		}
		keptSinks = append(keptSinks, s)
	}
	e.sinks = keptSinks
}

// GetStaticColliders returns the live obstacle list; callers must not
// mutate it.
func (e *Engine) GetStaticColliders() []obstacle.Obstacle { return e.obstacles }

func (e *Engine) findRectangle(id int64) *obstacle.Rectangle {
	for _, o := range e.obstacles {
		if o.ID() == id {
			if r, ok := o.(*obstacle.Rectangle); ok {
				return r
			}
			return nil
		}
	}
	return nil
}
