package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if floats.EqualApprox(got, want, eps) {
		return
	}
	for i := range got {
		if !scalar.EqualWithinAbs(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireConstant fails t if any element of got differs from want by more
// than eps.
func RequireConstant(t *testing.T, got []float64, want, eps float64) {
	t.Helper()
	for i, v := range got {
		if !scalar.EqualWithinAbs(v, want, eps) {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, v, want, eps)
		}
	}
}

// RequireComplexNearlyEqual is RequireSliceNearlyEqual for complex slices,
// comparing |got[i]-want[i]| against eps.
func RequireComplexNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := cmplx.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(a, b, math.Inf(1)), nil
}
