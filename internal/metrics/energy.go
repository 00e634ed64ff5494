// Package metrics implements small running diagnostics over a
// simulation's particle population, sampled once per tick by the CLI
// summary and the live viewer's sparkline panel.
package metrics

import (
	"github.com/san-kum/sphcrowd/internal/particle"
)

// Metric is the shape every diagnostic implements: observe a frame,
// read back a running value, reset between runs.
type Metric interface {
	Name() string
	Observe(particles []particle.Particle)
	Value() float64
	Reset()
}

// MeanDensity tracks the population's average SPH density across
// observed frames.
type MeanDensity struct {
	name    string
	sum     float64
	samples int
}

func NewMeanDensity() *MeanDensity { return &MeanDensity{name: "mean_density"} }

func (m *MeanDensity) Name() string { return m.name }

func (m *MeanDensity) Observe(particles []particle.Particle) {
	if len(particles) == 0 {
		return
	}
	var total float64
	for _, p := range particles {
		total += p.Density
	}
	m.sum += total / float64(len(particles))
	m.samples++
}

func (m *MeanDensity) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanDensity) Reset() {
	m.sum = 0
	m.samples = 0
}

// MeanPressure tracks the population's average pressure across observed
// frames.
type MeanPressure struct {
	name    string
	sum     float64
	samples int
}

func NewMeanPressure() *MeanPressure { return &MeanPressure{name: "mean_pressure"} }

func (m *MeanPressure) Name() string { return m.name }

func (m *MeanPressure) Observe(particles []particle.Particle) {
	if len(particles) == 0 {
		return
	}
	var total float64
	for _, p := range particles {
		total += p.Pressure
	}
	m.sum += total / float64(len(particles))
	m.samples++
}

func (m *MeanPressure) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanPressure) Reset() {
	m.sum = 0
	m.samples = 0
}

// KineticEnergy tracks the population's total 0.5*m*v^2 across observed
// frames, returning the mean over samples taken so far.
type KineticEnergy struct {
	name    string
	sum     float64
	samples int
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{name: "kinetic_energy"} }

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(particles []particle.Particle) {
	var total float64
	for _, p := range particles {
		total += 0.5 * p.Mass * p.Velocity.LengthSq()
	}
	k.sum += total
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.sum / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.sum = 0
	k.samples = 0
}
