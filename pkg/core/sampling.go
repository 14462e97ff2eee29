package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for the generation pipeline
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Range(min, max float64) float64
	Sign() float64
	Intn(n int) int
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded from seed
func NewSeededSampler(seed int64) *RandomSampler {
	return &RandomSampler{random: rand.New(rand.NewSource(seed))}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Range returns a random float64 uniformly distributed in [min, max)
func (r *RandomSampler) Range(minVal, maxVal float64) float64 {
	return minVal + (maxVal-minVal)*r.random.Float64()
}

// Sign returns -1.0 or +1.0 with equal probability
func (r *RandomSampler) Sign() float64 {
	if r.random.Intn(2) == 0 {
		return -1.0
	}
	return 1.0
}

// Intn returns a random int in [0, n)
func (r *RandomSampler) Intn(n int) int {
	return r.random.Intn(n)
}

// SampleYaw returns a uniform rotation angle about the vertical axis in [0, 2π)
func SampleYaw(sample float64) float64 {
	return 2.0 * math.Pi * sample
}

// WeightedIndex selects an index from a weight slice proportionally to its weight
// Weights need not be normalized; sample is a uniform draw in [0, 1)
// Returns -1 when the total weight is zero
func WeightedIndex(weights []float64, sample float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	// Walk the CDF; clamp to the last positive entry to absorb float error
	target := sample * total
	accum := 0.0
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		accum += w
		last = i
		if target < accum {
			return i
		}
	}
	return last
}
