// Package models provides the rotation and movement noise models that
// sit on top of the configuration-space engine.
package models

import (
	"math/rand/v2"
)

// noiseSource draws a scale factor in [-1, 1] for one rotation. The
// set of sources is closed: unseeded uniform, seeded uniform, fixed.
type noiseSource interface {
	draw() float64
}

// uniformSource draws from the shared unseeded generator.
type uniformSource struct{}

func (uniformSource) draw() float64 { return 2*rand.Float64() - 1 }

// seededSource draws from a private, caller-seeded generator, making
// the sequence reproducible.
type seededSource struct {
	rng *rand.Rand
}

func (s seededSource) draw() float64 { return 2*s.rng.Float64() - 1 }

// fixedSource always returns the same scale. Scale 1 yields the
// worst-case positive error on every call, for bounding analysis and
// reproducible tests.
type fixedSource struct {
	scale float64
}

func (s fixedSource) draw() float64 { return s.scale }

// Rotation perturbs a requested heading by bounded noise. Stochastic
// variants mutate generator state on every Apply and are not safe for
// concurrent use; give each goroutine its own instance.
type Rotation struct {
	maxErr float64
	src    noiseSource
}

// NewRotation returns a stochastic rotation model drawing uniform
// noise from an unseeded source.
func NewRotation(maxErr float64) *Rotation {
	return &Rotation{maxErr: maxErr, src: uniformSource{}}
}

// NewSeededRotation returns a stochastic rotation model whose draws
// are reproducible from the seed.
func NewSeededRotation(maxErr float64, seed uint64) *Rotation {
	return &Rotation{
		maxErr: maxErr,
		src:    seededSource{rng: rand.New(rand.NewPCG(seed, seed))},
	}
}

// NewFixedRotation returns a deterministic rotation model that always
// applies maxErr scaled by scale.
func NewFixedRotation(maxErr, scale float64) *Rotation {
	return &Rotation{maxErr: maxErr, src: fixedSource{scale: scale}}
}

// Apply returns the heading with one draw of noise applied. The result
// always lies within Bounds(heading).
func (r *Rotation) Apply(heading float64) float64 {
	return heading + r.src.draw()*r.maxErr
}

// Bounds returns the guaranteed perturbation interval for a requested
// heading, independent of the noise strategy. Callers needing coverage
// guarantees use this instead of sampling.
func (r *Rotation) Bounds(heading float64) (min, max float64) {
	return heading - r.maxErr, heading + r.maxErr
}

// MaxError returns the fixed maximum-error bound.
func (r *Rotation) MaxError() float64 { return r.maxErr }
