package holography

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-holo/dsp/signal"
	"github.com/cwbudde/algo-holo/dsp/spectrum"
	"github.com/cwbudde/algo-holo/dsp/window"
)

// Errors returned by hologram reconstruction.
var (
	ErrNoSideband      = errors.New("holography: no sideband candidate outside the centre band")
	ErrInvalidAperture = errors.New("holography: invalid aperture")
)

// Sideband selects one of the two conjugate sidebands of a hologram.
type Sideband int

const (
	// SidebandLower has a positive row frequency (or zero row and positive
	// column frequency). It carries the object wave itself.
	SidebandLower Sideband = iota
	// SidebandUpper is the conjugate sideband and carries the complex
	// conjugate of the object wave.
	SidebandUpper
)

func (s Sideband) String() string {
	switch s {
	case SidebandLower:
		return "lower"
	case SidebandUpper:
		return "upper"
	default:
		return fmt.Sprintf("Sideband(%d)", int(s))
	}
}

// ParseSideband converts "lower" or "upper".
func ParseSideband(name string) (Sideband, error) {
	switch name {
	case "lower", "":
		return SidebandLower, nil
	case "upper":
		return SidebandUpper, nil
	default:
		return 0, fmt.Errorf("holography: unknown sideband %q", name)
	}
}

func (s Sideband) contains(fr, fc int) bool {
	if s == SidebandUpper {
		fr, fc = -fr, -fc
	}
	return fr > 0 || (fr == 0 && fc > 0)
}

// Position is a frequency in cycles per image along rows and columns.
type Position struct {
	Row int
	Col int
}

// Radius returns the distance of p from zero frequency.
func (p Position) Radius() float64 {
	return math.Hypot(float64(p.Row), float64(p.Col))
}

// HologramImage is a recorded off-axis hologram intensity.
type HologramImage struct {
	*signal.Image
}

// NewHologramImage copies a row-major rows x cols intensity map.
func NewHologramImage(data []float64, rows, cols int) (*HologramImage, error) {
	img, err := signal.NewImage(data, rows, cols)
	if err != nil {
		return nil, err
	}
	return &HologramImage{Image: img}, nil
}

// FromImage wraps a 2-D image as a hologram.
func FromImage(img *signal.Image) (*HologramImage, error) {
	if shape := img.Shape(); len(shape) != 2 {
		return nil, fmt.Errorf("%w: hologram must be 2-D, got %v", signal.ErrShapeMismatch, shape)
	}
	return &HologramImage{Image: img}, nil
}

func (h *HologramImage) dims() (rows, cols int) {
	shape := h.Shape()
	return shape.Rows(), shape.Cols()
}

// fft returns the 2-D spectrum of the hologram intensity, apodized when cfg
// asks for it.
func (h *HologramImage) fft(g *grid2D, cfg config) ([]complex128, error) {
	data := h.Data()
	if cfg.apodize {
		if err := window.Apodize2D(cfg.window, data, g.rows, g.cols, cfg.windowOpts...); err != nil {
			return nil, err
		}
	}
	spec := make([]complex128, len(data))
	for i, v := range data {
		spec[i] = complex(v, 0)
	}
	if err := g.transform(spec, false); err != nil {
		return nil, err
	}
	return spec, nil
}

// CarrierFrequency converts a sideband position into spatial frequencies in
// inverse calibration units.
func (h *HologramImage) CarrierFrequency(pos Position) (fRow, fCol float64, units string) {
	rows, cols := h.dims()
	sampling, u := h.Sampling()
	fRow = float64(pos.Row) / (float64(rows) * sampling)
	fCol = float64(pos.Col) / (float64(cols) * sampling)
	return fRow, fCol, "1/" + u
}

// EstimateSidebandPosition returns the strongest spectral peak in the chosen
// half of the hologram spectrum, ignoring the centre band. The centre band
// radius can be set with [WithCentreBandRadius].
func (h *HologramImage) EstimateSidebandPosition(sb Sideband, opts ...Option) (Position, error) {
	cfg := applyOptions(opts)
	rows, cols := h.dims()
	g, err := newGrid2D(rows, cols)
	if err != nil {
		return Position{}, err
	}
	spec, err := h.fft(g, cfg)
	if err != nil {
		return Position{}, err
	}
	return estimatePosition(spec, rows, cols, sb, cfg.centreRadius)
}

// EstimateSidebandSize returns an aperture radius of half the distance
// between centre band and sideband, so the aperture never reaches either the
// centre band or the conjugate sideband.
func EstimateSidebandSize(pos Position) float64 {
	return pos.Radius() / 2
}

func estimatePosition(spec []complex128, rows, cols int, sb Sideband, centreRadius float64) (Position, error) {
	if centreRadius <= 0 {
		centreRadius = math.Max(1, float64(min(rows, cols))/16)
	}

	mag := spectrum.Magnitude(spec)
	candidates := make([]float64, 0, len(spec)/2)
	positions := make([]Position, 0, len(spec)/2)
	for r := 0; r < rows; r++ {
		fr := signedFreq(r, rows)
		for c := 0; c < cols; c++ {
			fc := signedFreq(c, cols)
			if !sb.contains(fr, fc) || math.Hypot(float64(fr), float64(fc)) <= centreRadius {
				continue
			}
			candidates = append(candidates, mag[r*cols+c])
			positions = append(positions, Position{Row: fr, Col: fc})
		}
	}
	if len(candidates) == 0 {
		return Position{}, ErrNoSideband
	}
	return positions[floats.MaxIdx(candidates)], nil
}

// ReconstructPhase reconstructs the complex object wave from the hologram.
//
// Without options the lower sideband is located automatically and cut out
// with a hard aperture of radius [EstimateSidebandSize]. With
// [WithReference] the reference hologram is reconstructed with the same
// sideband and aperture and removed with [signal.WaveImage.SubtractReference].
func (h *HologramImage) ReconstructPhase(opts ...Option) (*signal.WaveImage, error) {
	cfg := applyOptions(opts)
	rows, cols := h.dims()

	if cfg.reference != nil && !cfg.reference.Shape().Equal(h.Shape()) {
		return nil, fmt.Errorf("%w: reference %v, hologram %v", signal.ErrShapeMismatch, cfg.reference.Shape(), h.Shape())
	}

	g, err := newGrid2D(rows, cols)
	if err != nil {
		return nil, err
	}
	spec, err := h.fft(g, cfg)
	if err != nil {
		return nil, err
	}

	var pos Position
	if cfg.position != nil {
		pos = *cfg.position
	} else if pos, err = estimatePosition(spec, rows, cols, cfg.sideband, cfg.centreRadius); err != nil {
		return nil, err
	}

	radius := cfg.size
	if radius <= 0 {
		radius = EstimateSidebandSize(pos)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be > 0 for sideband %+v", ErrInvalidAperture, pos)
	}
	if cfg.smoothness > radius {
		return nil, fmt.Errorf("%w: smoothness %f exceeds radius %f", ErrInvalidAperture, cfg.smoothness, radius)
	}
	ap := aperture{pos: pos, radius: radius, smoothness: cfg.smoothness}

	wave, err := ap.reconstruct(g, spec)
	if err != nil {
		return nil, err
	}
	if cfg.reference == nil {
		return wave, nil
	}

	refSpec, err := cfg.reference.fft(g, cfg)
	if err != nil {
		return nil, err
	}
	refWave, err := ap.reconstruct(g, refSpec)
	if err != nil {
		return nil, err
	}
	if err := wave.SubtractReference(refWave); err != nil {
		return nil, err
	}
	return wave, nil
}

// aperture is a disk around a sideband, optionally with a raised-cosine edge
// of width smoothness.
type aperture struct {
	pos        Position
	radius     float64
	smoothness float64
}

func (a aperture) weight(d float64) float64 {
	if d > a.radius {
		return 0
	}
	inner := a.radius - a.smoothness
	if a.smoothness <= 0 || d <= inner {
		return 1
	}
	return 0.5 * (1 + math.Cos(math.Pi*(d-inner)/a.smoothness))
}

// reconstruct masks the sideband, moves it to zero frequency and transforms
// back to real space.
func (a aperture) reconstruct(g *grid2D, spec []complex128) (*signal.WaveImage, error) {
	rows, cols := g.rows, g.cols
	out := make([]complex128, len(spec))
	for r := 0; r < rows; r++ {
		dr := signedFreq(r, rows) - a.pos.Row
		for c := 0; c < cols; c++ {
			dc := signedFreq(c, cols) - a.pos.Col
			w := a.weight(math.Hypot(float64(dr), float64(dc)))
			if w == 0 {
				continue
			}
			out[binIndex(dr, rows)*cols+binIndex(dc, cols)] = spec[r*cols+c] * complex(w, 0)
		}
	}
	if err := g.transform(out, true); err != nil {
		return nil, err
	}
	return signal.NewWaveImage(out, rows, cols)
}
