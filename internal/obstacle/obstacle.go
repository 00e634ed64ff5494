// Package obstacle implements the static-collider shapes particles collide
// with: circles and axis-aligned rectangles, each exposing a signed
// distance function (negative inside, zero on the boundary, positive
// outside).
package obstacle

import (
	"math"

	"github.com/san-kum/sphcrowd/internal/vec2"
)

// Obstacle is the contract every static collider shape implements. New
// shapes are added by extending this closed set, not via open recursion:
// every caller that dispatches on Obstacle must handle every concrete
// variant (see engine's collision pass), so an unrecognized variant is a
// programming error, not a runtime condition to recover from.
type Obstacle interface {
	// DistanceTo returns the signed distance from p to the obstacle's
	// surface: negative strictly inside, zero on the boundary.
	DistanceTo(p vec2.Vec2) float64
	ID() int64
	Color() string
}

// base carries the identity and color every obstacle variant shares.
type base struct {
	id  int64
	col string
}

func (b base) ID() int64     { return b.id }
func (b base) Color() string { return b.col }

// Circle is a disc obstacle of the given radius centered at Center.
type Circle struct {
	base
	Center vec2.Vec2
	Radius float64
}

func NewCircle(id int64, center vec2.Vec2, radius float64, color string) *Circle {
	return &Circle{base: base{id: id, col: color}, Center: center, Radius: radius}
}

func (c *Circle) DistanceTo(p vec2.Vec2) float64 {
	return p.Sub(c.Center).Length() - c.Radius
}

// Rectangle is an axis-aligned box obstacle. Min is its lower-left corner,
// Size its extent along X and Y (both strictly positive).
type Rectangle struct {
	base
	Min  vec2.Vec2
	Size vec2.Vec2
}

func NewRectangle(id int64, min, size vec2.Vec2, color string) *Rectangle {
	return &Rectangle{base: base{id: id, col: color}, Min: min, Size: size}
}

func (r *Rectangle) DistanceTo(p vec2.Vec2) float64 {
	max := r.Min.Add(r.Size)

	inside := p.X >= r.Min.X && p.X <= max.X && p.Y >= r.Min.Y && p.Y <= max.Y
	if inside {
		d := math.Min(math.Min(p.X-r.Min.X, max.X-p.X), math.Min(p.Y-r.Min.Y, max.Y-p.Y))
		return -d
	}

	dx := math.Max(math.Max(r.Min.X-p.X, 0), p.X-max.X)
	dy := math.Max(math.Max(r.Min.Y-p.Y, 0), p.Y-max.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Side identifies one of a rectangle's four edges, used by sources and
// sinks that attach to a rectangle acting as a domain wall.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

// Midpoint returns the world-space midpoint of the given side.
func (r *Rectangle) Midpoint(s Side) vec2.Vec2 {
	max := r.Min.Add(r.Size)
	cx := (r.Min.X + max.X) / 2
	cy := (r.Min.Y + max.Y) / 2
	switch s {
	case Top:
		return vec2.Vec2{X: cx, Y: max.Y}
	case Bottom:
		return vec2.Vec2{X: cx, Y: r.Min.Y}
	case Left:
		return vec2.Vec2{X: r.Min.X, Y: cy}
	case Right:
		return vec2.Vec2{X: max.X, Y: cy}
	}
	return vec2.Vec2{}
}

// OutwardNormal returns the unit vector pointing away from the rectangle
// through the given side.
func (r *Rectangle) OutwardNormal(s Side) vec2.Vec2 {
	switch s {
	case Top:
		return vec2.Vec2{X: 0, Y: 1}
	case Bottom:
		return vec2.Vec2{X: 0, Y: -1}
	case Left:
		return vec2.Vec2{X: -1, Y: 0}
	case Right:
		return vec2.Vec2{X: 1, Y: 0}
	}
	return vec2.Vec2{}
}

// Length returns the length of the given side.
func (r *Rectangle) Length(s Side) float64 {
	switch s {
	case Top, Bottom:
		return r.Size.X
	default:
		return r.Size.Y
	}
}

// Normal computes the outward unit surface normal at p via central finite
// differences with step eps, per the collision resolver's contract.
func Normal(o Obstacle, p vec2.Vec2, eps float64) vec2.Vec2 {
	dx := vec2.Vec2{X: eps}
	dy := vec2.Vec2{Y: eps}
	grad := vec2.Vec2{
		X: (o.DistanceTo(p.Add(dx)) - o.DistanceTo(p.Sub(dx))) / (2 * eps),
		Y: (o.DistanceTo(p.Add(dy)) - o.DistanceTo(p.Sub(dy))) / (2 * eps),
	}
	l := grad.Length() + 1e-9
	return vec2.Vec2{X: grad.X / l, Y: grad.Y / l}
}
