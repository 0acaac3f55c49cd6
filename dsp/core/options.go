package core

// ImageConfig defines common image geometry and calibration settings.
type ImageConfig struct {
	Rows     int
	Cols     int
	Sampling float64
	Units    string
}

// ImageOption mutates an ImageConfig.
type ImageOption func(*ImageConfig)

// DefaultImageConfig returns a 256x256 image with unit pixel sampling.
func DefaultImageConfig() ImageConfig {
	return ImageConfig{
		Rows:     256,
		Cols:     256,
		Sampling: 1,
		Units:    "px",
	}
}

// WithSize sets the image dimensions.
func WithSize(rows, cols int) ImageOption {
	return func(cfg *ImageConfig) {
		if rows > 0 && cols > 0 {
			cfg.Rows = rows
			cfg.Cols = cols
		}
	}
}

// WithSampling sets the pixel size and its unit.
func WithSampling(sampling float64, units string) ImageOption {
	return func(cfg *ImageConfig) {
		if sampling > 0 {
			cfg.Sampling = sampling
			if units != "" {
				cfg.Units = units
			}
		}
	}
}

// ApplyImageOptions applies zero or more options to the default config.
func ApplyImageOptions(opts ...ImageOption) ImageConfig {
	cfg := DefaultImageConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
