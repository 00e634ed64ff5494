package vec2

import (
	"math"
	"testing"
)

func TestAddSub(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -1}
	if got := a.Add(b); got != (Vec2{4, 1}) {
		t.Errorf("Add = %v, want {4 1}", got)
	}
	if got := a.Sub(b); got != (Vec2{-2, 3}) {
		t.Errorf("Sub = %v, want {-2 3}", got)
	}
}

func TestLength(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestClampLength(t *testing.T) {
	v := Vec2{6, 8} // length 10
	c := v.ClampLength(5)
	if math.Abs(c.Length()-5) > 1e-9 {
		t.Errorf("ClampLength result length = %v, want 5", c.Length())
	}

	v2 := Vec2{1, 0}
	if got := v2.ClampLength(5); got != v2 {
		t.Errorf("ClampLength should be no-op under the cap, got %v", got)
	}
}

func TestNormalized(t *testing.T) {
	v := Vec2{0, 5}
	n := v.Normalized()
	if math.Abs(n.Length()-1) > 1e-6 {
		t.Errorf("Normalized length = %v, want ~1", n.Length())
	}
}

func TestPerp(t *testing.T) {
	v := Vec2{1, 0}
	p := v.Perp()
	if math.Abs(p.Dot(v)) > 1e-9 {
		t.Errorf("Perp(v) should be orthogonal to v, dot = %v", p.Dot(v))
	}
}

func TestClampVec(t *testing.T) {
	v := Vec2{-5, 20}
	got := ClampVec(v, Vec2{0, 0}, Vec2{10, 10})
	if got != (Vec2{0, 10}) {
		t.Errorf("ClampVec = %v, want {0 10}", got)
	}
}
