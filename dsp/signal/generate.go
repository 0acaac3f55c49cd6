package signal

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-holo/dsp/core"
)

// Generator creates deterministic synthetic waves and holograms from a
// shared image configuration.
type Generator struct {
	cfg  core.ImageConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured generator.
func NewGenerator(opts ...core.ImageOption) *Generator {
	return &Generator{
		cfg:  core.ApplyImageOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured generator with generator-specific options.
func NewGeneratorWithOptions(coreOpts []core.ImageOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator image configuration.
func (g *Generator) Config() core.ImageConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed changes the noise seed.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// PlaneWave generates a wave of constant amplitude and zero phase.
func (g *Generator) PlaneWave(amplitude float64) (*WaveImage, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("plane wave amplitude must be >= 0: %f", amplitude)
	}
	data := make([]complex128, g.cfg.Rows*g.cfg.Cols)
	for i := range data {
		data[i] = complex(amplitude, 0)
	}
	return NewWaveImage(data, g.cfg.Rows, g.cfg.Cols)
}

// PhaseRamp generates a unit-amplitude wave whose phase is
// slopeRow*row + slopeCol*col + offset.
func (g *Generator) PhaseRamp(slopeRow, slopeCol, offset float64) (*WaveImage, error) {
	w, err := g.PlaneWave(1)
	if err != nil {
		return nil, err
	}
	w.AddPhaseRamp(slopeRow, slopeCol, offset)
	return w, nil
}

// Hologram simulates the intensity of an off-axis hologram of object.
//
// The reference wave has unit amplitude and tilts by carrierRow and
// carrierCol fringe periods across the image, so integer carriers put the
// sidebands exactly on FFT bins. contrast in [0, 1] scales the fringe
// modulation.
func (g *Generator) Hologram(object *WaveImage, carrierRow, carrierCol, contrast float64) (*Image, error) {
	if contrast < 0 || contrast > 1 {
		return nil, fmt.Errorf("hologram contrast must be in [0,1]: %f", contrast)
	}
	rows, cols := g.cfg.Rows, g.cfg.Cols
	if !object.shape.Equal(core.Shape{rows, cols}) {
		return nil, fmt.Errorf("%w: object %v, generator %dx%d", ErrShapeMismatch, object.shape, rows, cols)
	}

	out := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			amp := cmplx.Abs(object.data[i])
			carrier := 2 * math.Pi * (carrierRow*float64(r)/float64(rows) + carrierCol*float64(c)/float64(cols))
			out[i] = 1 + amp*amp + 2*contrast*amp*math.Cos(carrier+cmplx.Phase(object.data[i]))
		}
	}

	img, err := NewImage(out, rows, cols)
	if err != nil {
		return nil, err
	}
	img.SetSampling(g.cfg.Sampling, g.cfg.Units)
	return img, nil
}

// Noise generates a deterministic white-noise image in [-amplitude, amplitude].
func (g *Generator) Noise(amplitude float64) (*Image, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	unit := make([]float64, g.cfg.Rows*g.cfg.Cols)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range unit {
		unit[i] = rng.Float64()*2 - 1
	}
	out := make([]float64, len(unit))
	vecmath.ScaleBlock(out, unit, amplitude)

	img, err := NewImage(out, g.cfg.Rows, g.cfg.Cols)
	if err != nil {
		return nil, err
	}
	img.SetSampling(g.cfg.Sampling, g.cfg.Units)
	return img, nil
}
