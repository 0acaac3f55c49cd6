package holography

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-holo/dsp/core"
	"github.com/cwbudde/algo-holo/dsp/signal"
	"github.com/cwbudde/algo-holo/dsp/window"
	"github.com/cwbudde/algo-holo/internal/testutil"
)

const size = 64

func synthHologram(t *testing.T, object *signal.WaveImage, carrierRow, carrierCol float64) *HologramImage {
	t.Helper()
	g := signal.NewGenerator(core.WithSize(size, size), core.WithSampling(0.5, "nm"))
	img, err := g.Hologram(object, carrierRow, carrierCol, 1)
	if err != nil {
		t.Fatalf("Hologram() error = %v", err)
	}
	holo, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	return holo
}

func constantPhaseObject(t *testing.T, phase float64) *signal.WaveImage {
	t.Helper()
	g := signal.NewGenerator(core.WithSize(size, size))
	w, err := g.PhaseRamp(0, 0, phase)
	if err != nil {
		t.Fatalf("PhaseRamp() error = %v", err)
	}
	return w
}

func TestEstimateSidebandPosition(t *testing.T) {
	tests := []struct {
		name       string
		carrierRow float64
		carrierCol float64
		lower      Position
		upper      Position
	}{
		{name: "diagonal", carrierRow: 8, carrierCol: 12, lower: Position{8, 12}, upper: Position{-8, -12}},
		{name: "column only", carrierRow: 0, carrierCol: 10, lower: Position{0, 10}, upper: Position{0, -10}},
		{name: "negative column", carrierRow: 6, carrierCol: -9, lower: Position{6, -9}, upper: Position{-6, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			holo := synthHologram(t, constantPhaseObject(t, 0.3), tt.carrierRow, tt.carrierCol)

			got, err := holo.EstimateSidebandPosition(SidebandLower)
			if err != nil {
				t.Fatalf("EstimateSidebandPosition() error = %v", err)
			}
			if got != tt.lower {
				t.Fatalf("lower sideband = %+v, want %+v", got, tt.lower)
			}

			got, err = holo.EstimateSidebandPosition(SidebandUpper)
			if err != nil {
				t.Fatalf("EstimateSidebandPosition() error = %v", err)
			}
			if got != tt.upper {
				t.Fatalf("upper sideband = %+v, want %+v", got, tt.upper)
			}
		})
	}
}

func TestEstimateSidebandPositionNoCandidate(t *testing.T) {
	holo, err := NewHologramImage(testutil.DC(1, 16), 4, 4)
	if err != nil {
		t.Fatalf("NewHologramImage() error = %v", err)
	}
	_, err = holo.EstimateSidebandPosition(SidebandLower, WithCentreBandRadius(10))
	if !errors.Is(err, ErrNoSideband) {
		t.Fatalf("err = %v, want ErrNoSideband", err)
	}
}

func TestEstimateSidebandSize(t *testing.T) {
	if got := EstimateSidebandSize(Position{6, 8}); got != 5 {
		t.Fatalf("EstimateSidebandSize() = %v, want 5", got)
	}
}

func TestReconstructPhaseConstantObject(t *testing.T) {
	const phase = 0.5
	holo := synthHologram(t, constantPhaseObject(t, phase), 8, 12)

	tests := []struct {
		name      string
		opts      []Option
		wantPhase float64
	}{
		{name: "default", wantPhase: phase},
		{name: "hann edge", opts: []Option{WithSmoothness(3)}, wantPhase: phase},
		{name: "upper sideband", opts: []Option{WithSideband(SidebandUpper)}, wantPhase: -phase},
		{name: "explicit", opts: []Option{WithPosition(Position{8, 12}), WithSize(4)}, wantPhase: phase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wave, err := holo.ReconstructPhase(tt.opts...)
			if err != nil {
				t.Fatalf("ReconstructPhase() error = %v", err)
			}
			if !wave.Shape().Equal(core.Shape{size, size}) {
				t.Fatalf("Shape() = %v, want [%d %d]", wave.Shape(), size, size)
			}
			testutil.RequireConstant(t, wave.Phase(), tt.wantPhase, 1e-9)
			testutil.RequireConstant(t, wave.Amplitude(), 1, 1e-9)
		})
	}
}

func TestReconstructPhaseWithReference(t *testing.T) {
	g := signal.NewGenerator(core.WithSize(size, size))
	distortion, err := g.PhaseRamp(0, 2*math.Pi/size, 0)
	if err != nil {
		t.Fatalf("PhaseRamp() error = %v", err)
	}
	object := distortion.Clone()
	object.AddPhaseRamp(0, 0, 0.7)

	holo := synthHologram(t, object, 8, 12)
	vacuum := synthHologram(t, distortion, 8, 12)

	wave, err := holo.ReconstructPhase(
		WithPosition(Position{8, 12}),
		WithSize(6),
		WithReference(vacuum),
	)
	if err != nil {
		t.Fatalf("ReconstructPhase() error = %v", err)
	}
	testutil.RequireConstant(t, wave.Phase(), 0.7, 1e-9)
	testutil.RequireConstant(t, wave.Amplitude(), 1, 1e-9)

	unwrapped, err := wave.UnwrappedPhase()
	if err != nil {
		t.Fatalf("UnwrappedPhase() error = %v", err)
	}
	testutil.RequireConstant(t, unwrapped.Data(), 0.7, 1e-9)
}

func TestReconstructPhaseApodized(t *testing.T) {
	const phase = 0.5
	holo := synthHologram(t, constantPhaseObject(t, phase), 8, 12)

	wave, err := holo.ReconstructPhase(WithApodization(window.TypeHann, window.WithPeriodic()))
	if err != nil {
		t.Fatalf("ReconstructPhase() error = %v", err)
	}

	w := window.Generate(window.TypeHann, size, window.WithPeriodic())
	amp := wave.Amplitude()
	ph := wave.Phase()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			i := r*size + c
			want := w[r] * w[c]
			if math.Abs(amp[i]-want) > 1e-9 {
				t.Fatalf("amplitude(%d,%d) = %v, want %v", r, c, amp[i], want)
			}
			if want > 1e-3 && math.Abs(ph[i]-phase) > 1e-6 {
				t.Fatalf("phase(%d,%d) = %v, want %v", r, c, ph[i], phase)
			}
		}
	}
}

func TestReconstructPhaseRecoversRamp(t *testing.T) {
	g := signal.NewGenerator(core.WithSize(size, size))
	object, err := g.PhaseRamp(0, 2*math.Pi*2/size, 0)
	if err != nil {
		t.Fatalf("PhaseRamp() error = %v", err)
	}
	holo := synthHologram(t, object, 8, 12)

	wave, err := holo.ReconstructPhase(WithPosition(Position{8, 12}), WithSize(5))
	if err != nil {
		t.Fatalf("ReconstructPhase() error = %v", err)
	}
	wave.AddPhaseRamp(0, -2*math.Pi*2/size, 0)
	testutil.RequireConstant(t, wave.Phase(), 0, 1e-9)
}

func TestReconstructPhaseErrors(t *testing.T) {
	holo := synthHologram(t, constantPhaseObject(t, 0), 8, 12)

	if _, err := holo.ReconstructPhase(WithPosition(Position{})); !errors.Is(err, ErrInvalidAperture) {
		t.Fatalf("err = %v, want ErrInvalidAperture", err)
	}
	if _, err := holo.ReconstructPhase(WithSize(2), WithSmoothness(3)); !errors.Is(err, ErrInvalidAperture) {
		t.Fatalf("err = %v, want ErrInvalidAperture", err)
	}

	small, err := NewHologramImage(testutil.DC(1, 16), 4, 4)
	if err != nil {
		t.Fatalf("NewHologramImage() error = %v", err)
	}
	if _, err := holo.ReconstructPhase(WithReference(small)); !errors.Is(err, signal.ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
}

func TestFromImageRequires2D(t *testing.T) {
	line, err := signal.NewImage([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	if _, err := FromImage(line); !errors.Is(err, signal.ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
}

func TestCarrierFrequency(t *testing.T) {
	holo := synthHologram(t, constantPhaseObject(t, 0), 8, 12)
	fRow, fCol, units := holo.CarrierFrequency(Position{8, 12})
	if fRow != 0.25 || fCol != 0.375 || units != "1/nm" {
		t.Fatalf("CarrierFrequency() = %v %v %s, want 0.25 0.375 1/nm", fRow, fCol, units)
	}
}

func TestParseSideband(t *testing.T) {
	for _, sb := range []Sideband{SidebandLower, SidebandUpper} {
		got, err := ParseSideband(sb.String())
		if err != nil || got != sb {
			t.Fatalf("ParseSideband(%q) = %v, %v", sb.String(), got, err)
		}
	}
	if _, err := ParseSideband("middle"); err == nil {
		t.Fatal("expected error for unknown sideband")
	}
}
