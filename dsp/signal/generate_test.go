package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-holo/dsp/core"
	"github.com/cwbudde/algo-holo/internal/testutil"
)

func TestPlaneWave(t *testing.T) {
	g := NewGenerator(core.WithSize(4, 6))
	w, err := g.PlaneWave(2)
	if err != nil {
		t.Fatalf("PlaneWave() error = %v", err)
	}
	if !w.Shape().Equal(core.Shape{4, 6}) {
		t.Fatalf("Shape() = %v, want [4 6]", w.Shape())
	}
	testutil.RequireConstant(t, w.Amplitude(), 2, 1e-12)
	testutil.RequireConstant(t, w.Phase(), 0, 0)

	if _, err := g.PlaneWave(-1); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestPhaseRamp(t *testing.T) {
	g := NewGenerator(core.WithSize(3, 3))
	w, err := g.PhaseRamp(0.5, 0.25, -0.5)
	if err != nil {
		t.Fatalf("PhaseRamp() error = %v", err)
	}
	want := make([]float64, 9)
	for i := range want {
		want[i] = 0.5*float64(i/3) + 0.25*float64(i%3) - 0.5
	}
	testutil.RequireSliceNearlyEqual(t, w.Phase(), want, 1e-12)
}

func TestHologramFringes(t *testing.T) {
	g := NewGenerator(core.WithSize(8, 8), core.WithSampling(0.5, "nm"))
	object, err := g.PlaneWave(1)
	if err != nil {
		t.Fatalf("PlaneWave() error = %v", err)
	}

	holo, err := g.Hologram(object, 0, 2, 1)
	if err != nil {
		t.Fatalf("Hologram() error = %v", err)
	}
	// Two fringes across eight columns: maxima at 0 and 4, minima at 2 and 6.
	for r := 0; r < 8; r++ {
		for c, want := range map[int]float64{0: 4, 2: 0, 4: 4, 6: 0} {
			if got := holo.At(r, c); math.Abs(got-want) > 1e-12 {
				t.Fatalf("At(%d, %d) = %v, want %v", r, c, got, want)
			}
		}
	}
	if sampling, units := holo.Sampling(); sampling != 0.5 || units != "nm" {
		t.Fatalf("Sampling() = %v %s, want 0.5 nm", sampling, units)
	}
}

func TestHologramValidation(t *testing.T) {
	g := NewGenerator(core.WithSize(4, 4))
	object, err := NewWaveImage(make([]complex128, 9), 3, 3)
	if err != nil {
		t.Fatalf("NewWaveImage() error = %v", err)
	}
	if _, err := g.Hologram(object, 1, 1, 1); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}

	plane, _ := g.PlaneWave(1)
	if _, err := g.Hologram(plane, 1, 1, 1.5); err == nil {
		t.Fatal("expected error for contrast > 1")
	}
}

func TestNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions([]core.ImageOption{core.WithSize(4, 4)}, WithSeed(42))
	g2 := NewGeneratorWithOptions([]core.ImageOption{core.WithSize(4, 4)}, WithSeed(42))

	n1, err := g1.Noise(0.1)
	if err != nil {
		t.Fatalf("Noise() error = %v", err)
	}
	n2, err := g2.Noise(0.1)
	if err != nil {
		t.Fatalf("Noise() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, n1.Data(), n2.Data(), 0)

	for i, v := range n1.Data() {
		if v < -0.1 || v > 0.1 {
			t.Fatalf("noise[%d] = %v outside [-0.1, 0.1]", i, v)
		}
	}

	if _, err := g1.Noise(-1); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestSetSeed(t *testing.T) {
	g := NewGenerator(core.WithSize(2, 4))
	g.SetSeed(99)
	if g.Seed() != 99 {
		t.Fatalf("Seed()=%d, want 99", g.Seed())
	}

	a, err := g.Noise(1)
	if err != nil {
		t.Fatalf("Noise() error = %v", err)
	}
	g.SetSeed(100)
	b, err := g.Noise(1)
	if err != nil {
		t.Fatalf("Noise() error = %v", err)
	}

	same := true
	for i, v := range a.Data() {
		if v != b.Data()[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestGeneratorConfig(t *testing.T) {
	g := NewGenerator(core.WithSize(16, 32))
	if cfg := g.Config(); cfg.Rows != 16 || cfg.Cols != 32 {
		t.Fatalf("Config() = %#v", cfg)
	}
}
