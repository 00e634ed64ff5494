package kernel

import (
	"math"
	"testing"
)

func TestPoly6ZeroOutsideSupport(t *testing.T) {
	if got := Poly6(1.01, 1.0); got != 0 {
		t.Errorf("Poly6 outside support = %v, want 0", got)
	}
}

func TestPoly6Normalization(t *testing.T) {
	// Numerically integrate Poly6 over the unit disc via a polar grid and
	// check it's close to 1, within the coarse-grid integration tolerance.
	const h = 1.0
	h2 := h * h
	const steps = 400
	const thetaSteps = 200

	sum := 0.0
	dr := h / steps
	dtheta := 2 * math.Pi / thetaSteps
	for i := 0; i < steps; i++ {
		r := (float64(i) + 0.5) * dr
		r2 := r * r
		w := Poly6(r2, h2)
		// polar-coordinate area element r dr dtheta, summed over all theta
		sum += w * r * dr * dtheta * thetaSteps
	}

	if math.Abs(sum-1.0) > 0.05 {
		t.Errorf("Poly6 integral over disc = %v, want ~1", sum)
	}
}

func TestSpikyGradPositiveWithinSupport(t *testing.T) {
	got := SpikyGrad(0.2, 1.0)
	if got <= 0 {
		t.Errorf("SpikyGrad(0.2, 1.0) = %v, want > 0", got)
	}
}

func TestSpikyGradZeroOutsideSupport(t *testing.T) {
	if got := SpikyGrad(1.5, 1.0); got != 0 {
		t.Errorf("SpikyGrad outside support = %v, want 0", got)
	}
}

func TestViscLaplMonotonicDecay(t *testing.T) {
	near := ViscLapl(0.1, 1.0)
	far := ViscLapl(0.9, 1.0)
	if near <= far {
		t.Errorf("ViscLapl should decay with distance: near=%v far=%v", near, far)
	}
	if got := ViscLapl(1.1, 1.0); got != 0 {
		t.Errorf("ViscLapl outside support = %v, want 0", got)
	}
}

func TestSinglePairDensity(t *testing.T) {
	// Scenario 1 from the spec: two particles 0.2 apart, mass 1, H=1.
	// expected is computed independently of Poly6 (by hand, from the
	// kernel's definition), not derived from the code under test, so a
	// wrong normalization constant or exponent in Poly6 actually fails
	// this test instead of trivially matching itself.
	const h2 = 1.0
	const mass = 1.0
	const pairR2 = 0.04 // 0.2^2
	const expected = 2.9527809690413322

	got := mass*Poly6(0, h2) + mass*Poly6(pairR2, h2)
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("density = %v, want %v", got, expected)
	}
}
