package holography

import "github.com/cwbudde/algo-holo/dsp/window"

// Option configures sideband estimation and reconstruction.
type Option func(*config)

type config struct {
	sideband     Sideband
	position     *Position
	size         float64
	smoothness   float64
	centreRadius float64
	reference    *HologramImage
	apodize      bool
	window       window.Type
	windowOpts   []window.Option
}

func applyOptions(opts []Option) config {
	cfg := config{sideband: SidebandLower}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSideband selects the sideband used when the position is estimated.
func WithSideband(sb Sideband) Option {
	return func(cfg *config) {
		if sb == SidebandLower || sb == SidebandUpper {
			cfg.sideband = sb
		}
	}
}

// WithPosition fixes the sideband position instead of estimating it.
func WithPosition(pos Position) Option {
	return func(cfg *config) {
		p := pos
		cfg.position = &p
	}
}

// WithSize sets the aperture radius in frequency bins.
func WithSize(radius float64) Option {
	return func(cfg *config) {
		if radius > 0 {
			cfg.size = radius
		}
	}
}

// WithSmoothness tapers the aperture edge with a raised cosine of the given
// width in frequency bins. Zero keeps a hard edge.
func WithSmoothness(width float64) Option {
	return func(cfg *config) {
		if width >= 0 {
			cfg.smoothness = width
		}
	}
}

// WithCentreBandRadius sets the radius around zero frequency excluded from
// the sideband search. The default is 1/16 of the smaller image dimension.
func WithCentreBandRadius(radius float64) Option {
	return func(cfg *config) {
		if radius > 0 {
			cfg.centreRadius = radius
		}
	}
}

// WithReference removes the wave reconstructed from a reference (vacuum)
// hologram of the same shape.
func WithReference(ref *HologramImage) Option {
	return func(cfg *config) {
		cfg.reference = ref
	}
}

// WithApodization tapers the hologram (and reference) edges with the given
// window before the Fourier transform.
func WithApodization(t window.Type, opts ...window.Option) Option {
	return func(cfg *config) {
		cfg.apodize = true
		cfg.window = t
		cfg.windowOpts = opts
	}
}
