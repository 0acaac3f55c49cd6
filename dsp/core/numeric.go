package core

import "math"

const defaultEpsilon = 1e-12

// TwoPi is one full phase cycle in radians.
const TwoPi = 2 * math.Pi

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}
	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}
	return diff/largest <= eps
}

// WrapPhase maps x (radians) into the half-open interval (-pi, pi].
// NaN and Inf propagate as NaN.
func WrapPhase(x float64) float64 {
	if x > -math.Pi && x <= math.Pi {
		return x
	}
	w := math.Mod(x+math.Pi, TwoPi)
	if w <= 0 {
		w += TwoPi
	}
	return w - math.Pi
}

// WrapPhaseSlice wraps every element of phase in place.
func WrapPhaseSlice(phase []float64) {
	for i, v := range phase {
		phase[i] = WrapPhase(v)
	}
}

// Mean returns the arithmetic mean of a complex slice. It returns 0 for an
// empty slice.
func Mean(data []complex128) complex128 {
	if len(data) == 0 {
		return 0
	}
	var sum complex128
	for _, v := range data {
		sum += v
	}
	return sum / complex(float64(len(data)), 0)
}
