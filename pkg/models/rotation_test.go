package models

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func TestFixedRotationIsWorstCaseEveryCall(t *testing.T) {
	r := NewFixedRotation(0.25, 1)
	for i := 0; i < 10; i++ {
		if got := r.Apply(1.5); got != 1.75 {
			t.Fatalf("call %d: Apply(1.5) = %v, want 1.75", i, got)
		}
	}
}

func TestFixedRotationNegativeScale(t *testing.T) {
	r := NewFixedRotation(0.25, -1)
	if got := r.Apply(1.5); got != 1.25 {
		t.Fatalf("Apply(1.5) = %v, want 1.25", got)
	}
}

func TestBoundsIndependentOfStrategy(t *testing.T) {
	const maxErr = 0.3
	const h = 2.0
	for name, r := range map[string]*Rotation{
		"uniform": NewRotation(maxErr),
		"seeded":  NewSeededRotation(maxErr, 7),
		"fixed":   NewFixedRotation(maxErr, 1),
	} {
		lo, hi := r.Bounds(h)
		if lo != h-maxErr || hi != h+maxErr {
			t.Errorf("%s: Bounds = (%v, %v), want (%v, %v)", name, lo, hi, h-maxErr, h+maxErr)
		}
		if r.MaxError() != maxErr {
			t.Errorf("%s: MaxError = %v, want %v", name, r.MaxError(), maxErr)
		}
	}
}

func TestSeededRotationIsReproducible(t *testing.T) {
	a := NewSeededRotation(0.2, 42)
	b := NewSeededRotation(0.2, 42)
	for i := 0; i < 100; i++ {
		if ga, gb := a.Apply(0.5), b.Apply(0.5); ga != gb {
			t.Fatalf("draw %d diverged: %v vs %v", i, ga, gb)
		}
	}
}

func TestUniformRotationStaysWithinBounds(t *testing.T) {
	const maxErr = 0.4
	const h = 1.0
	r := NewRotation(maxErr)
	lo, hi := r.Bounds(h)

	samples := make([]float64, 20000)
	for i := range samples {
		samples[i] = r.Apply(h)
	}
	if min := floats.Min(samples); min < lo {
		t.Fatalf("sample %v below lower bound %v", min, lo)
	}
	if max := floats.Max(samples); max > hi {
		t.Fatalf("sample %v above upper bound %v", max, hi)
	}
	// The draw is uniform on the interval, so the sample mean sits
	// near the requested heading.
	if mean := stat.Mean(samples, nil); math.Abs(mean-h) > 0.05*maxErr {
		t.Fatalf("sample mean %v too far from heading %v", mean, h)
	}
}

func TestSeededRotationSpreadsAcrossInterval(t *testing.T) {
	const maxErr = 1.0
	r := NewSeededRotation(maxErr, 99)
	samples := make([]float64, 5000)
	for i := range samples {
		samples[i] = r.Apply(0)
	}
	if floats.Min(samples) > -0.9 || floats.Max(samples) < 0.9 {
		t.Fatal("seeded uniform draws do not span the noise interval")
	}
}
