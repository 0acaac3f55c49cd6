package testutil

import (
	"math/rand"
)

// DeterministicField returns n values drawn uniformly from [0, 1) with a fixed seed.
func DeterministicField(seed int64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// IndexRamp returns 0, 1, ..., n-1 plus offset.
func IndexRamp(n int, offset float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) + offset
	}
	return out
}

// ReferenceWave is the 3x3 complex field used across the signal tests:
// real part 0..8 and imaginary part 9..17 in row-major order.
func ReferenceWave() []complex128 {
	re := IndexRamp(9, 0)
	im := IndexRamp(9, 9)
	out := make([]complex128, 9)
	for i := range out {
		out[i] = complex(re[i], im[i])
	}
	return out
}

// DC generates a constant-valued slice.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
