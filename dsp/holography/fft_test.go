package holography

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-holo/internal/testutil"
)

func naiveDFT2(in []complex128, rows, cols int) []complex128 {
	out := make([]complex128, len(in))
	for u := 0; u < rows; u++ {
		for v := 0; v < cols; v++ {
			var sum complex128
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					angle := -2 * math.Pi * (float64(u*r)/float64(rows) + float64(v*c)/float64(cols))
					sum += in[r*cols+c] * cmplx.Rect(1, angle)
				}
			}
			out[u*cols+v] = sum
		}
	}
	return out
}

func randomGrid(seed int64, n int) []complex128 {
	field := testutil.DeterministicField(seed, 2*n)
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(field[2*i]-0.5, field[2*i+1]-0.5)
	}
	return out
}

func TestFFT2MatchesNaiveDFT(t *testing.T) {
	const rows, cols = 4, 8
	in := randomGrid(3, rows*cols)
	want := naiveDFT2(in, rows, cols)

	got := append([]complex128(nil), in...)
	if err := FFT2(got, rows, cols); err != nil {
		t.Fatalf("FFT2() error = %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, got, want, 1e-9)
}

func TestFFT2RoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{name: "square", rows: 16, cols: 16},
		{name: "wide", rows: 8, cols: 32},
		{name: "single row", rows: 1, cols: 16},
		{name: "single column", rows: 16, cols: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := randomGrid(11, tt.rows*tt.cols)
			data := append([]complex128(nil), in...)
			if err := FFT2(data, tt.rows, tt.cols); err != nil {
				t.Fatalf("FFT2() error = %v", err)
			}
			if err := IFFT2(data, tt.rows, tt.cols); err != nil {
				t.Fatalf("IFFT2() error = %v", err)
			}
			testutil.RequireComplexNearlyEqual(t, data, in, 1e-12)
		})
	}
}

func TestFFT2Validation(t *testing.T) {
	if err := FFT2(make([]complex128, 7), 2, 4); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
	if err := FFT2(nil, 0, 4); err == nil {
		t.Fatal("expected error for zero rows")
	}
}

func TestSignedFreq(t *testing.T) {
	tests := []struct {
		k, n, want int
	}{
		{0, 8, 0}, {3, 8, 3}, {4, 8, -4}, {7, 8, -1},
		{2, 5, 2}, {3, 5, -2}, {4, 5, -1},
		{0, 1, 0},
	}
	for _, tt := range tests {
		got := signedFreq(tt.k, tt.n)
		if got != tt.want {
			t.Fatalf("signedFreq(%d, %d) = %d, want %d", tt.k, tt.n, got, tt.want)
		}
		if back := binIndex(got, tt.n); back != tt.k {
			t.Fatalf("binIndex(%d, %d) = %d, want %d", got, tt.n, back, tt.k)
		}
	}
}
