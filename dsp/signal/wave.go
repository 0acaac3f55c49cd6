package signal

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-holo/dsp/core"
	"github.com/cwbudde/algo-holo/dsp/spectrum"
	"github.com/cwbudde/algo-holo/dsp/unwrap"
)

// WaveImage is a complex-valued image signal, typically an electron wave
// reconstructed from a hologram.
type WaveImage struct {
	shape core.Shape
	data  []complex128
}

// NewWaveImage copies data into a new wave with the given shape. Without
// dims the wave is a line signal of len(data) samples.
func NewWaveImage(data []complex128, dims ...int) (*WaveImage, error) {
	shape, err := resolveShape(len(data), dims)
	if err != nil {
		return nil, err
	}
	w := &WaveImage{
		shape: shape,
		data:  make([]complex128, len(data)),
	}
	copy(w.data, data)
	return w, nil
}

// Shape returns a copy of the wave's dimensions.
func (w *WaveImage) Shape() core.Shape { return w.shape.Clone() }

// Len returns the number of complex samples.
func (w *WaveImage) Len() int { return len(w.data) }

// Data returns a copy of the complex samples.
func (w *WaveImage) Data() []complex128 {
	out := make([]complex128, len(w.data))
	copy(out, w.data)
	return out
}

// Clone returns an independent copy of w.
func (w *WaveImage) Clone() *WaveImage {
	return &WaveImage{shape: w.shape.Clone(), data: w.Data()}
}

// Real returns Re(data).
func (w *WaveImage) Real() []float64 { return spectrum.Real(w.data) }

// Imag returns Im(data).
func (w *WaveImage) Imag() []float64 { return spectrum.Imag(w.data) }

// Phase returns arg(data) in radians, in (-pi, pi].
func (w *WaveImage) Phase() []float64 { return spectrum.Phase(w.data) }

// Amplitude returns |data|.
func (w *WaveImage) Amplitude() []float64 { return spectrum.Magnitude(w.data) }

// SetReal replaces the real part and keeps the imaginary part.
func (w *WaveImage) SetReal(re []float64) error {
	if err := checkLen("real", len(re), len(w.data)); err != nil {
		return err
	}
	for i, z := range w.data {
		w.data[i] = complex(re[i], imag(z))
	}
	return nil
}

// SetImag replaces the imaginary part and keeps the real part.
func (w *WaveImage) SetImag(im []float64) error {
	if err := checkLen("imag", len(im), len(w.data)); err != nil {
		return err
	}
	for i, z := range w.data {
		w.data[i] = complex(real(z), im[i])
	}
	return nil
}

// SetPhase replaces the phase and keeps the amplitude. Samples with zero
// amplitude stay zero.
func (w *WaveImage) SetPhase(phase []float64) error {
	if err := checkLen("phase", len(phase), len(w.data)); err != nil {
		return err
	}
	spectrum.Rect(w.data, w.Amplitude(), phase)
	return nil
}

// SetAmplitude replaces the amplitude and keeps the phase.
func (w *WaveImage) SetAmplitude(amp []float64) error {
	if err := checkLen("amplitude", len(amp), len(w.data)); err != nil {
		return err
	}
	spectrum.Rect(w.data, amp, w.Phase())
	return nil
}

// UnwrappedPhase unwraps the phase of every image in the wave and returns
// it as a real image of the same shape.
func (w *WaveImage) UnwrappedPhase(opts ...unwrap.Option) (*Image, error) {
	phase := w.Phase()
	rows, cols := w.shape.Rows(), w.shape.Cols()
	frame := rows * cols
	for start := 0; start < len(phase); start += frame {
		out, err := unwrap.Unwrap2D(phase[start:start+frame], rows, cols, opts...)
		if err != nil {
			return nil, fmt.Errorf("signal: unwrap frame %d: %w", start/frame, err)
		}
		copy(phase[start:], out)
	}
	return &Image{shape: w.shape.Clone(), data: phase, sampling: 1, units: defaultUnits}, nil
}

// Mean returns the mean of the complex samples.
func (w *WaveImage) Mean() complex128 { return core.Mean(w.data) }

// Normalize divides the wave by the mean of reference, scaling the
// amplitude by 1/|mean| and shifting the phase by -arg(mean).
func (w *WaveImage) Normalize(reference []complex128) error {
	if err := checkLen("reference", len(reference), len(w.data)); err != nil {
		return err
	}
	w.NormalizeScalar(core.Mean(reference))
	return nil
}

// NormalizeScalar divides every sample by c.
func (w *WaveImage) NormalizeScalar(c complex128) {
	for i := range w.data {
		w.data[i] /= c
	}
}

// SubtractReference divides the wave elementwise by other. other may be w
// itself, which yields unit amplitude and zero phase.
func (w *WaveImage) SubtractReference(other *WaveImage) error {
	if !w.shape.Equal(other.shape) {
		return fmt.Errorf("%w: reference %v, wave %v", ErrShapeMismatch, other.shape, w.shape)
	}
	for i, ref := range other.data {
		w.data[i] /= ref
	}
	return nil
}

// AddPhaseRamp adds slopeRow*row + slopeCol*col + offset radians to the
// phase of every image, using 0-based pixel indices. The amplitude is
// unchanged and the phase stays wrapped.
func (w *WaveImage) AddPhaseRamp(slopeRow, slopeCol, offset float64) {
	rows, cols := w.shape.Rows(), w.shape.Cols()
	frame := rows * cols
	for start := 0; start < len(w.data); start += frame {
		for r := 0; r < rows; r++ {
			line := w.data[start+r*cols : start+(r+1)*cols]
			base := slopeRow*float64(r) + offset
			for c := range line {
				line[c] *= cmplx.Rect(1, base+slopeCol*float64(c))
			}
		}
	}
}

// Conj conjugates the wave in place, negating its phase.
func (w *WaveImage) Conj() {
	for i, z := range w.data {
		w.data[i] = cmplx.Conj(z)
	}
}
