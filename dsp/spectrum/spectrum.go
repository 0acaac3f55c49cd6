package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-holo/dsp/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	buf.data = core.EnsureLen(buf.data, need)
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |z| for each element of in.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	MagnitudeInto(out, in)
	return out
}

// MagnitudeInto writes |in[i]| into dst. dst must be at least len(in) long.
func MagnitudeInto(dst []float64, in []complex128) {
	if len(in) == 0 {
		return
	}
	re, im, buf := getScratch(len(in))
	Split(re, im, in)
	vecmath.Magnitude(dst[:len(in)], re, im)
	putScratch(buf)
}

// Phase returns arg(z) in radians, in (-pi, pi], for each element of in.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, z := range in {
		out[i] = cmplx.Phase(z)
	}
	return out
}

// Real returns the real part of each element of in.
func Real(in []complex128) []float64 {
	out := make([]float64, len(in))
	for i, z := range in {
		out[i] = real(z)
	}
	return out
}

// Imag returns the imaginary part of each element of in.
func Imag(in []complex128) []float64 {
	out := make([]float64, len(in))
	for i, z := range in {
		out[i] = imag(z)
	}
	return out
}

// Split writes the real and imaginary parts of in into re and im.
func Split(re, im []float64, in []complex128) {
	for i, z := range in {
		re[i] = real(z)
		im[i] = imag(z)
	}
}

// Rect writes amp[i]*exp(i*phase[i]) into dst. All slices must share a length.
func Rect(dst []complex128, amp, phase []float64) {
	for i := range dst {
		dst[i] = cmplx.Rect(amp[i], phase[i])
	}
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}
